package tour

import "prevoz/internal/entities"

func ToDomain(t *TourDB) *entities.Tour {
	if t == nil {
		return nil
	}
	return &entities.Tour{
		ID:               t.ID,
		OwnerID:          t.OwnerID,
		Origin:           t.Origin,
		Destination:      t.Destination,
		Date:             t.Date,
		Cargo:            t.Cargo,
		Price:            t.Price,
		PickupAddress:    t.PickupAddress,
		DropoffAddress:   t.DropoffAddress,
		ContactPhone:     t.ContactPhone,
		Notes:            t.Notes,
		AssignedDriverID: t.AssignedDriverID,
		Status:           entities.TourStatusType(t.Status),
		RejectReason:     t.RejectReason,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func ToDomainList(models []TourDB) []entities.Tour {
	tours := make([]entities.Tour, 0, len(models))
	for i := range models {
		tours = append(tours, *ToDomain(&models[i]))
	}
	return tours
}

func FromDomainModify(t *entities.TourModify) *TourModifyDB {
	if t == nil {
		return nil
	}
	tourModifyDB := &TourModifyDB{
		ID:               t.ID,
		OwnerID:          t.OwnerID,
		Origin:           t.Origin,
		Destination:      t.Destination,
		Date:             t.Date,
		Cargo:            t.Cargo,
		Price:            t.Price,
		PickupAddress:    t.PickupAddress,
		DropoffAddress:   t.DropoffAddress,
		ContactPhone:     t.ContactPhone,
		Notes:            t.Notes,
		AssignedDriverID: t.AssignedDriverID,
		RejectReason:     t.RejectReason,
	}

	if t.Status != nil {
		status := t.Status.String()
		tourModifyDB.Status = &status
	}

	return tourModifyDB
}
