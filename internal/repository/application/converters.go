package application

import "prevoz/internal/entities"

func ToDomain(a *ApplicationDB) *entities.Application {
	if a == nil {
		return nil
	}
	return &entities.Application{
		ID:              a.ID,
		TourID:          a.TourID,
		DriverID:        a.DriverID,
		Status:          entities.ApplicationStatusType(a.Status),
		RejectionReason: a.RejectionReason,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func ToDomainList(models []ApplicationDB) []entities.Application {
	applications := make([]entities.Application, 0, len(models))
	for i := range models {
		applications = append(applications, *ToDomain(&models[i]))
	}
	return applications
}
