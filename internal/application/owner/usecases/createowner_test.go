package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"caseta/internal/application/owner/dto"
	domainOwner "caseta/internal/domain/owner"
	"caseta/internal/shared/errors"
	"caseta/internal/shared/logger"
)

type mockOwnerRepository struct {
	mock.Mock
}

func (m *mockOwnerRepository) Create(ctx context.Context, o *domainOwner.Owner) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOwnerRepository) GetByID(ctx context.Context, id uint) (*domainOwner.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainOwner.Owner), args.Error(1)
}

func (m *mockOwnerRepository) GetActiveByID(ctx context.Context, id uint) (*domainOwner.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainOwner.Owner), args.Error(1)
}

func (m *mockOwnerRepository) GetByDocumentNumber(ctx context.Context, documentNumber string) (*domainOwner.Owner, error) {
	args := m.Called(ctx, documentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainOwner.Owner), args.Error(1)
}

func (m *mockOwnerRepository) Update(ctx context.Context, o *domainOwner.Owner) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOwnerRepository) List(ctx context.Context, filter domainOwner.ListFilter) ([]*domainOwner.Owner, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domainOwner.Owner), args.Get(1).(int64), args.Error(2)
}

func (m *mockOwnerRepository) ExistsActiveWithDocument(ctx context.Context, documentNumber string, excludeID uint) (bool, error) {
	args := m.Called(ctx, documentNumber, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockOwnerRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func validCreateOwnerRequest() dto.CreateOwnerRequest {
	return dto.CreateOwnerRequest{
		DocumentNumber: "1020304050",
		FullName:       "María Fernanda Ruiz",
		Phone:          "310-555-1234",
	}
}

func TestCreateOwner_Success(t *testing.T) {
	repo := new(mockOwnerRepository)
	uc := NewCreateOwnerUseCase(repo, logger.NewLogger())

	repo.On("ExistsActiveWithDocument", mock.Anything, "1020304050", uint(0)).Return(false, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*owner.Owner")).
		Run(func(args mock.Arguments) {
			entity := args.Get(1).(*domainOwner.Owner)
			require.NoError(t, entity.SetID(3))
		}).
		Return(nil)

	response, err := uc.Execute(context.Background(), validCreateOwnerRequest())

	require.NoError(t, err)
	assert.Equal(t, uint(3), response.ID)
	assert.Equal(t, "CC", response.DocumentType)
	assert.Equal(t, "natural", response.PersonType)
	// phone is stored digits-only
	assert.Equal(t, "3105551234", response.Phone)
	assert.True(t, response.Active)
	repo.AssertExpectations(t)
}

func TestCreateOwner_DuplicateDocument(t *testing.T) {
	repo := new(mockOwnerRepository)
	uc := NewCreateOwnerUseCase(repo, logger.NewLogger())

	repo.On("ExistsActiveWithDocument", mock.Anything, "1020304050", uint(0)).Return(true, nil)

	_, err := uc.Execute(context.Background(), validCreateOwnerRequest())

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOwner_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *dto.CreateOwnerRequest)
		field  string
	}{
		{
			name:   "document with letters",
			mutate: func(r *dto.CreateOwnerRequest) { r.DocumentNumber = "12a456" },
			field:  "document_number",
		},
		{
			name:   "document too short",
			mutate: func(r *dto.CreateOwnerRequest) { r.DocumentNumber = "12345" },
			field:  "document_number",
		},
		{
			name:   "phone too short",
			mutate: func(r *dto.CreateOwnerRequest) { r.Phone = "123" },
			field:  "phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockOwnerRepository)
			uc := NewCreateOwnerUseCase(repo, logger.NewLogger())
			repo.On("ExistsActiveWithDocument", mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Maybe()

			request := validCreateOwnerRequest()
			tt.mutate(&request)

			_, err := uc.Execute(context.Background(), request)

			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.field, appErr.Field)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestDeactivateOwner(t *testing.T) {
	repo := new(mockOwnerRepository)
	uc := NewDeactivateOwnerUseCase(repo, logger.NewLogger())

	t.Run("deactivates and persists", func(t *testing.T) {
		request := validCreateOwnerRequest()
		createUC := NewCreateOwnerUseCase(repo, logger.NewLogger())
		repo.On("ExistsActiveWithDocument", mock.Anything, "1020304050", uint(0)).Return(false, nil).Once()

		var created *domainOwner.Owner
		repo.On("Create", mock.Anything, mock.AnythingOfType("*owner.Owner")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*domainOwner.Owner)
				require.NoError(t, created.SetID(8))
			}).
			Return(nil).Once()
		_, err := createUC.Execute(context.Background(), request)
		require.NoError(t, err)

		repo.On("GetByID", mock.Anything, uint(8)).Return(created, nil).Once()
		repo.On("Update", mock.Anything, created).Return(nil).Once()

		require.NoError(t, uc.Execute(context.Background(), 8))
		assert.False(t, created.IsActive())
	})

	t.Run("unknown owner reports not found", func(t *testing.T) {
		repo.On("GetByID", mock.Anything, uint(99)).Return(nil, nil).Once()

		err := uc.Execute(context.Background(), 99)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
