package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"caseta/internal/application/setting/dto"
	"caseta/internal/domain/setting"
	"caseta/internal/shared/logger"
)

type mockSettingRepository struct {
	mock.Mock
}

func (m *mockSettingRepository) Get(ctx context.Context) (*setting.SiteSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*setting.SiteSettings), args.Error(1)
}

func (m *mockSettingRepository) Save(ctx context.Context, settings *setting.SiteSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func TestGetSiteSettings_DefaultsWhenUnset(t *testing.T) {
	repo := new(mockSettingRepository)
	repo.On("Get", mock.Anything).Return(nil, nil)

	uc := NewGetSiteSettingsUseCase(repo, logger.NewLogger())

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Control de Acceso Vehicular", resp.SiteName)
	assert.NotEmpty(t, resp.OperatingHours)
	assert.Empty(t, resp.Address)
}

func TestGetSiteSettings_ReturnsStoredRow(t *testing.T) {
	stored := setting.ReconstructSiteSettings(1, "Conjunto Los Cedros", "Calle 100 #15-20", "24 horas", time.Now().UTC())

	repo := new(mockSettingRepository)
	repo.On("Get", mock.Anything).Return(stored, nil)

	uc := NewGetSiteSettingsUseCase(repo, logger.NewLogger())

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Conjunto Los Cedros", resp.SiteName)
	assert.Equal(t, "24 horas", resp.OperatingHours)
}

func TestUpdateSiteSettings_CreatesRowOnFirstSave(t *testing.T) {
	repo := new(mockSettingRepository)
	repo.On("Get", mock.Anything).Return(nil, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*setting.SiteSettings")).Return(nil)

	uc := NewUpdateSiteSettingsUseCase(repo, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), dto.UpdateSiteSettingsRequest{
		SiteName:       "Sede Norte",
		OperatingHours: "6:00 - 22:00",
	})

	require.NoError(t, err)
	assert.Equal(t, "Sede Norte", resp.SiteName)
	repo.AssertExpectations(t)
}

func TestUpdateSiteSettings_UpdatesExistingRow(t *testing.T) {
	stored := setting.ReconstructSiteSettings(1, "Sede Norte", "", "", time.Now().UTC().Add(-time.Hour))

	repo := new(mockSettingRepository)
	repo.On("Get", mock.Anything).Return(stored, nil)
	repo.On("Save", mock.Anything, stored).Return(nil)

	uc := NewUpdateSiteSettingsUseCase(repo, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), dto.UpdateSiteSettingsRequest{
		SiteName: "Sede Principal",
		Address:  "Carrera 7 #45-10",
	})

	require.NoError(t, err)
	assert.Equal(t, "Sede Principal", resp.SiteName)
	assert.Equal(t, "Carrera 7 #45-10", resp.Address)
	repo.AssertExpectations(t)
}

func TestUpdateSiteSettings_RejectsEmptyName(t *testing.T) {
	stored := setting.ReconstructSiteSettings(1, "Sede Norte", "", "", time.Now().UTC())

	repo := new(mockSettingRepository)
	repo.On("Get", mock.Anything).Return(stored, nil)

	uc := NewUpdateSiteSettingsUseCase(repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), dto.UpdateSiteSettingsRequest{SiteName: ""})

	require.Error(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
