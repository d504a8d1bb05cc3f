package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"caseta/internal/domain/owner"
	ownervo "caseta/internal/domain/owner/valueobjects"
	"caseta/internal/domain/vehicle"
	vo "caseta/internal/domain/vehicle/valueobjects"
	"caseta/internal/infrastructure/persistence/models"
	"caseta/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Shared cache plus a single connection keeps every pooled connection on
	// the same in-memory database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = database.AutoMigrate(
		&models.OwnerModel{},
		&models.VehicleModel{},
		&models.AccessRecordModel{},
		&models.SiteSettingModel{},
	)
	require.NoError(t, err)

	return database
}

func createTestOwner(t *testing.T, database *gorm.DB, documentNumber string) *owner.Owner {
	docNum, err := ownervo.NewDocumentNumber(documentNumber)
	require.NoError(t, err)
	fullName, err := ownervo.NewFullName("Carlos Ramírez")
	require.NoError(t, err)

	entity, err := owner.NewOwner(
		ownervo.DocumentTypeCC,
		docNum,
		fullName,
		nil,
		"",
		ownervo.PersonTypeNatural,
	)
	require.NoError(t, err)

	repo := NewOwnerRepository(database, logger.NewLogger())
	require.NoError(t, repo.Create(context.Background(), entity))
	return entity
}

func createTestVehicle(t *testing.T, plateValue string, ownerID uint) *vehicle.Vehicle {
	plate, err := vo.NewPlate(plateValue)
	require.NoError(t, err)
	year, err := vo.NewYear(2020)
	require.NoError(t, err)

	entity, err := vehicle.NewVehicle(
		plate,
		vo.VehicleTypeCar,
		"Renault",
		"Logan",
		vo.ColorGray,
		year,
		ownerID,
		"",
	)
	require.NoError(t, err)
	return entity
}

func TestVehicleRepository_Create(t *testing.T) {
	database := setupTestDB(t)
	repo := NewVehicleRepository(database, logger.NewLogger())
	ctx := context.Background()
	testOwner := createTestOwner(t, database, "1098765432")

	t.Run("create vehicle successfully", func(t *testing.T) {
		v := createTestVehicle(t, " abc123 ", testOwner.ID())

		err := repo.Create(ctx, v)
		assert.NoError(t, err)
		assert.NotZero(t, v.ID())

		found, err := repo.GetByID(ctx, v.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		// plate is stored normalized
		assert.Equal(t, "ABC123", found.Plate().String())
		assert.Equal(t, "Renault", found.Brand())
	})

	t.Run("duplicate plate surfaces a conflict error", func(t *testing.T) {
		v1 := createTestVehicle(t, "DUP123", testOwner.ID())
		require.NoError(t, repo.Create(ctx, v1))

		v2 := createTestVehicle(t, "dup123", testOwner.ID())
		err := repo.Create(ctx, v2)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DUP123")
	})

	t.Run("deactivated vehicle still reserves its plate", func(t *testing.T) {
		v1 := createTestVehicle(t, "XYZ789", testOwner.ID())
		require.NoError(t, repo.Create(ctx, v1))
		v1.Deactivate()
		require.NoError(t, repo.Update(ctx, v1))

		v2 := createTestVehicle(t, "XYZ789", testOwner.ID())
		err := repo.Create(ctx, v2)
		assert.Error(t, err)
	})
}

func TestVehicleRepository_GetByPlate(t *testing.T) {
	database := setupTestDB(t)
	repo := NewVehicleRepository(database, logger.NewLogger())
	ctx := context.Background()
	testOwner := createTestOwner(t, database, "1098765432")

	v := createTestVehicle(t, "JKL456", testOwner.ID())
	require.NoError(t, repo.Create(ctx, v))

	t.Run("found by normalized plate", func(t *testing.T) {
		found, err := repo.GetByPlate(ctx, "JKL456")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, v.ID(), found.ID())
	})

	t.Run("unknown plate returns nil without error", func(t *testing.T) {
		found, err := repo.GetByPlate(ctx, "ZZZ999")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("inactive vehicle invisible to active lookup", func(t *testing.T) {
		v.Deactivate()
		require.NoError(t, repo.Update(ctx, v))

		found, err := repo.GetActiveByPlate(ctx, "JKL456")
		require.NoError(t, err)
		assert.Nil(t, found)

		found, err = repo.GetByPlate(ctx, "JKL456")
		require.NoError(t, err)
		assert.NotNil(t, found)
	})
}

func TestVehicleRepository_Update(t *testing.T) {
	database := setupTestDB(t)
	repo := NewVehicleRepository(database, logger.NewLogger())
	ctx := context.Background()
	testOwner := createTestOwner(t, database, "1098765432")

	v := createTestVehicle(t, "MNO321", testOwner.ID())
	require.NoError(t, repo.Create(ctx, v))

	t.Run("updates mutable fields", func(t *testing.T) {
		year, err := vo.NewYear(2022)
		require.NoError(t, err)
		err = v.UpdateDetails(vo.VehicleTypeMotorcycle, "Yamaha", "FZ", vo.ColorRed, year, testOwner.ID(), "new exhaust")
		require.NoError(t, err)

		require.NoError(t, repo.Update(ctx, v))

		found, err := repo.GetByID(ctx, v.ID())
		require.NoError(t, err)
		assert.Equal(t, vo.VehicleTypeMotorcycle, found.VehicleType())
		assert.Equal(t, "Yamaha", found.Brand())
		assert.Equal(t, 2022, found.Year().Int())
		assert.Equal(t, "new exhaust", found.Notes())
		// plate never changes
		assert.Equal(t, "MNO321", found.Plate().String())
	})

	t.Run("update of missing vehicle reports not found", func(t *testing.T) {
		ghost := createTestVehicle(t, "GHO123", testOwner.ID())
		require.NoError(t, ghost.SetID(9999))

		err := repo.Update(ctx, ghost)
		assert.Error(t, err)
	})
}

func TestVehicleRepository_List(t *testing.T) {
	database := setupTestDB(t)
	repo := NewVehicleRepository(database, logger.NewLogger())
	ctx := context.Background()
	testOwner := createTestOwner(t, database, "1098765432")

	plates := []string{"AAA111", "BBB222", "CCC333"}
	for _, p := range plates {
		require.NoError(t, repo.Create(ctx, createTestVehicle(t, p, testOwner.ID())))
	}

	t.Run("lists ordered by plate", func(t *testing.T) {
		result, total, err := repo.List(ctx, vehicle.ListFilter{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, result, 3)
		assert.Equal(t, "AAA111", result[0].Plate().String())
		assert.Equal(t, "CCC333", result[2].Plate().String())
	})

	t.Run("search matches owner name", func(t *testing.T) {
		result, total, err := repo.List(ctx, vehicle.ListFilter{Page: 1, PageSize: 10, Search: "Ramírez"})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, result, 3)
	})

	t.Run("search matches plate fragment", func(t *testing.T) {
		result, total, err := repo.List(ctx, vehicle.ListFilter{Page: 1, PageSize: 10, Search: "BBB"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, result, 1)
		assert.Equal(t, "BBB222", result[0].Plate().String())
	})

	t.Run("pagination slices the set", func(t *testing.T) {
		result, total, err := repo.List(ctx, vehicle.ListFilter{Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, result, 1)
		assert.Equal(t, "CCC333", result[0].Plate().String())
	})

	t.Run("inactive vehicles excluded by default", func(t *testing.T) {
		v, err := repo.GetByPlate(ctx, "AAA111")
		require.NoError(t, err)
		v.Deactivate()
		require.NoError(t, repo.Update(ctx, v))

		_, total, err := repo.List(ctx, vehicle.ListFilter{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)

		_, total, err = repo.List(ctx, vehicle.ListFilter{Page: 1, PageSize: 10, IncludeInactive: true})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})
}

func TestOwnerRepository_DocumentUniqueness(t *testing.T) {
	database := setupTestDB(t)
	repo := NewOwnerRepository(database, logger.NewLogger())
	ctx := context.Background()

	first := createTestOwner(t, database, "55667788")

	t.Run("existence check excludes the given owner", func(t *testing.T) {
		exists, err := repo.ExistsActiveWithDocument(ctx, "55667788", first.ID())
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = repo.ExistsActiveWithDocument(ctx, "55667788", 0)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("deactivation frees the document for re-registration", func(t *testing.T) {
		first.Deactivate()
		require.NoError(t, repo.Update(ctx, first))

		exists, err := repo.ExistsActiveWithDocument(ctx, "55667788", 0)
		require.NoError(t, err)
		assert.False(t, exists)

		docNum, err := ownervo.NewDocumentNumber("55667788")
		require.NoError(t, err)
		fullName, err := ownervo.NewFullName("Otra Persona")
		require.NoError(t, err)
		replacement, err := owner.NewOwner(ownervo.DocumentTypeCC, docNum, fullName, nil, "", ownervo.PersonTypeNatural)
		require.NoError(t, err)

		require.NoError(t, repo.Create(ctx, replacement))
		assert.NotZero(t, replacement.ID())

		exists, err = repo.ExistsActiveWithDocument(ctx, "55667788", 0)
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestOwnerRepository_List(t *testing.T) {
	database := setupTestDB(t)
	repo := NewOwnerRepository(database, logger.NewLogger())
	ctx := context.Background()

	names := []string{"Andrés Gómez", "Beatriz López", "César Mora"}
	for i, name := range names {
		docNum, err := ownervo.NewDocumentNumber(fmt.Sprintf("10000000%d", i))
		require.NoError(t, err)
		fullName, err := ownervo.NewFullName(name)
		require.NoError(t, err)
		entity, err := owner.NewOwner(ownervo.DocumentTypeCC, docNum, fullName, nil, "", ownervo.PersonTypeNatural)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, entity))
	}

	t.Run("search by document number", func(t *testing.T) {
		result, total, err := repo.List(ctx, owner.ListFilter{Page: 1, PageSize: 10, Search: "100000001"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, result, 1)
		assert.Equal(t, "Beatriz López", result[0].FullName().String())
	})

	t.Run("count active tracks deactivation", func(t *testing.T) {
		count, err := repo.CountActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		first, err := repo.GetByDocumentNumber(ctx, "100000000")
		require.NoError(t, err)
		first.Deactivate()
		require.NoError(t, repo.Update(ctx, first))

		count, err = repo.CountActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}
