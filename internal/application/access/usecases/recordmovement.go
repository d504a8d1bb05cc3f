package usecases

import (
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"

	"caseta/internal/application/access/dto"
	"caseta/internal/domain/access"
	domainVehicle "caseta/internal/domain/vehicle"
	vo "caseta/internal/domain/vehicle/valueobjects"
	"caseta/internal/shared/db"
	"caseta/internal/shared/errors"
	"caseta/internal/shared/logger"
)

// RecordMovementUseCase appends an entry or exit event for a plate. The log
// accepts duplicate consecutive movements; the gatehouse reality wins over
// tidy alternation.
type RecordMovementUseCase struct {
	accessRepo  access.Repository
	vehicleRepo domainVehicle.Repository
	txMgr       *db.TransactionManager
	sanitizer   *bluemonday.Policy
	logger      logger.Interface
}

// NewRecordMovementUseCase creates a new record movement use case
func NewRecordMovementUseCase(
	accessRepo access.Repository,
	vehicleRepo domainVehicle.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *RecordMovementUseCase {
	return &RecordMovementUseCase{
		accessRepo:  accessRepo,
		vehicleRepo: vehicleRepo,
		txMgr:       txMgr,
		sanitizer:   bluemonday.StrictPolicy(),
		logger:      logger,
	}
}

// Execute executes the record movement use case. registeredBy is the
// optional operator name from the request header.
func (uc *RecordMovementUseCase) Execute(ctx context.Context, request dto.RecordMovementRequest, registeredBy string) (*dto.AccessRecordResponse, error) {
	uc.logger.Infow("executing record movement use case", "plate", request.Plate, "movement", request.Movement)

	plate, err := vo.NewPlate(request.Plate)
	if err != nil {
		return nil, domainVehicle.NewPlateFormatError(err.Error())
	}

	movement, err := access.ParseMovement(request.Movement)
	if err != nil {
		return nil, errors.NewFieldValidationError("movement", "invalid movement type", err.Error())
	}

	notes := uc.sanitizer.Sanitize(request.Notes)

	// The active check and the insert run in one transaction so a
	// concurrent deactivation cannot slip between them.
	var record *access.Record
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		vehicleEntity, err := uc.vehicleRepo.GetActiveByPlate(txCtx, plate.String())
		if err != nil {
			uc.logger.Errorw("failed to look up vehicle", "plate", plate.String(), "error", err)
			return fmt.Errorf("failed to look up vehicle: %w", err)
		}
		if vehicleEntity == nil {
			return domainVehicle.NewVehicleNotFoundError(fmt.Sprintf("no active vehicle with plate %s", plate.String()))
		}

		record, err = access.NewRecord(vehicleEntity.ID(), movement, notes, registeredBy)
		if err != nil {
			return errors.NewValidationError("invalid access record", err.Error())
		}

		if err := uc.accessRepo.Create(txCtx, record); err != nil {
			uc.logger.Errorw("failed to persist access record", "plate", plate.String(), "error", err)
			return err
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("movement recorded",
		"id", record.ID(),
		"plate", plate.String(),
		"movement", movement.String())

	return &dto.AccessRecordResponse{
		ID:           record.ID(),
		VehicleID:    record.VehicleID(),
		Plate:        plate.String(),
		Movement:     record.Movement().String(),
		RecordedAt:   record.RecordedAt(),
		Notes:        record.Notes(),
		RegisteredBy: record.RegisteredBy(),
		Inside:       record.Movement().IsEntry(),
	}, nil
}
