package usecases

import (
	"caseta/internal/application/vehicle/dto"
	"caseta/internal/domain/access"
	domainOwner "caseta/internal/domain/owner"
	domainVehicle "caseta/internal/domain/vehicle"
)

func toVehicleResponse(entity *domainVehicle.Vehicle) *dto.VehicleResponse {
	return &dto.VehicleResponse{
		ID:           entity.ID(),
		Plate:        entity.Plate().String(),
		VehicleType:  entity.VehicleType().String(),
		Brand:        entity.Brand(),
		Model:        entity.Model(),
		Color:        entity.Color().String(),
		Year:         entity.Year().Int(),
		OwnerID:      entity.OwnerID(),
		Active:       entity.IsActive(),
		RegisteredAt: entity.RegisteredAt(),
		Notes:        entity.Notes(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func toOwnerSummary(entity *domainOwner.Owner) *dto.OwnerSummary {
	if entity == nil {
		return nil
	}
	summary := &dto.OwnerSummary{
		ID:             entity.ID(),
		DocumentNumber: entity.DocumentNumber().String(),
		FullName:       entity.FullName().String(),
		Active:         entity.IsActive(),
	}
	if entity.Phone() != nil {
		summary.Phone = entity.Phone().String()
	}
	return summary
}

func toAccessLogEntries(records []*access.Record) []*dto.AccessLogEntry {
	entries := make([]*dto.AccessLogEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, &dto.AccessLogEntry{
			ID:           r.ID(),
			Movement:     r.Movement().String(),
			RecordedAt:   r.RecordedAt(),
			Notes:        r.Notes(),
			RegisteredBy: r.RegisteredBy(),
		})
	}
	return entries
}
