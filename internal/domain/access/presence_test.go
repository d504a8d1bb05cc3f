package access

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordAt(t *testing.T, id uint, movement Movement, at time.Time) *Record {
	t.Helper()
	r, err := ReconstructRecord(id, 1, movement, at, "", "")
	require.NoError(t, err)
	return r
}

func TestIsInside(t *testing.T) {
	base := time.Date(2026, time.August, 1, 8, 0, 0, 0, time.UTC)

	t.Run("no records means outside", func(t *testing.T) {
		assert.False(t, IsInside(nil))
		assert.False(t, IsInside([]*Record{}))
	})

	t.Run("single entry means inside", func(t *testing.T) {
		records := []*Record{recordAt(t, 1, MovementEntry, base)}
		assert.True(t, IsInside(records))
	})

	t.Run("entry exit entry means inside", func(t *testing.T) {
		records := []*Record{
			recordAt(t, 1, MovementEntry, base),
			recordAt(t, 2, MovementExit, base.Add(time.Hour)),
			recordAt(t, 3, MovementEntry, base.Add(2*time.Hour)),
		}
		assert.True(t, IsInside(records))
	})

	t.Run("latest exit means outside", func(t *testing.T) {
		records := []*Record{
			recordAt(t, 1, MovementEntry, base),
			recordAt(t, 2, MovementExit, base.Add(time.Hour)),
		}
		assert.False(t, IsInside(records))
	})

	t.Run("order of the slice does not matter", func(t *testing.T) {
		records := []*Record{
			recordAt(t, 3, MovementEntry, base.Add(2*time.Hour)),
			recordAt(t, 1, MovementEntry, base),
			recordAt(t, 2, MovementExit, base.Add(time.Hour)),
		}
		assert.True(t, IsInside(records))
	})

	t.Run("duplicate consecutive entries are accepted", func(t *testing.T) {
		records := []*Record{
			recordAt(t, 1, MovementEntry, base),
			recordAt(t, 2, MovementEntry, base.Add(time.Minute)),
		}
		assert.True(t, IsInside(records))
	})

	t.Run("timestamp tie broken by higher id", func(t *testing.T) {
		records := []*Record{
			recordAt(t, 1, MovementEntry, base),
			recordAt(t, 2, MovementExit, base),
		}
		assert.False(t, IsInside(records))

		records = []*Record{
			recordAt(t, 1, MovementExit, base),
			recordAt(t, 2, MovementEntry, base),
		}
		assert.True(t, IsInside(records))
	})
}

func TestLatest(t *testing.T) {
	base := time.Date(2026, time.August, 1, 8, 0, 0, 0, time.UTC)

	assert.Nil(t, Latest(nil))

	records := []*Record{
		recordAt(t, 1, MovementEntry, base),
		recordAt(t, 2, MovementExit, base.Add(time.Hour)),
	}
	latest := Latest(records)
	require.NotNil(t, latest)
	assert.Equal(t, uint(2), latest.ID())
}

func TestParseMovement(t *testing.T) {
	m, err := ParseMovement("entry")
	require.NoError(t, err)
	assert.Equal(t, MovementEntry, m)

	m, err = ParseMovement(" EXIT ")
	require.NoError(t, err)
	assert.Equal(t, MovementExit, m)

	_, err = ParseMovement("sideways")
	assert.Error(t, err)

	_, err = ParseMovement("")
	assert.Error(t, err)
}
