package access

// IsInside derives a vehicle's presence from its latest access record:
// the vehicle is inside exactly when the most recent record is an entry.
// A vehicle with no records is outside.
//
// This is a pure last-event-wins rule. Two consecutive records of the same
// movement are accepted as-is — gate operators do miss events, and refusing
// the second record would lose real data. Ties on the timestamp are broken
// by the higher record ID, which storage assigns monotonically.
func IsInside(records []*Record) bool {
	latest := Latest(records)
	return latest != nil && latest.Movement().IsEntry()
}

// Latest returns the most recent record by timestamp, breaking ties by the
// higher ID. Returns nil for an empty history.
func Latest(records []*Record) *Record {
	var latest *Record
	for _, r := range records {
		if r == nil {
			continue
		}
		if latest == nil || after(r, latest) {
			latest = r
		}
	}
	return latest
}

func after(a, b *Record) bool {
	if a.RecordedAt().After(b.RecordedAt()) {
		return true
	}
	if a.RecordedAt().Equal(b.RecordedAt()) {
		return a.ID() > b.ID()
	}
	return false
}
