package dto

import "prevoz/internal/entities"

func FromTour(t *entities.Tour) Tour {
	return Tour{
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
		Status:           t.Status.String(),
		RejectReason:     t.RejectReason,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func FromTourList(tours []entities.Tour) []Tour {
	result := make([]Tour, 0, len(tours))
	for i := range tours {
		result = append(result, FromTour(&tours[i]))
	}
	return result
}

func FromApplication(a *entities.Application) Application {
	return Application{
		ID:              a.ID,
		TourID:          a.TourID,
		DriverID:        a.DriverID,
		Status:          a.Status.String(),
		RejectionReason: a.RejectionReason,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func FromApplicationList(applications []entities.Application) []Application {
	result := make([]Application, 0, len(applications))
	for i := range applications {
		result = append(result, FromApplication(&applications[i]))
	}
	return result
}

func FromAssignment(a *entities.Assignment) Assignment {
	return Assignment{
		Tour:        FromTour(&a.Tour),
		Application: FromApplication(&a.Application),
		Rejected:    FromApplicationList(a.Rejected),
	}
}

func FromPayment(p *entities.Payment) Payment {
	return Payment{
		ID:          p.ID,
		DriverID:    p.DriverID,
		TourID:      p.TourID,
		Amount:      p.Amount,
		Status:      p.Status.String(),
		ExternalRef: p.ExternalRef,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromPaymentList(payments []entities.Payment) []Payment {
	result := make([]Payment, 0, len(payments))
	for i := range payments {
		result = append(result, FromPayment(&payments[i]))
	}
	return result
}

func FromNotification(n *entities.Notification) Notification {
	return Notification{
		ID:        n.ID,
		Category:  n.Category.String(),
		Message:   n.Message,
		TourID:    n.TourID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func FromNotificationList(notifications []entities.Notification) []Notification {
	result := make([]Notification, 0, len(notifications))
	for i := range notifications {
		result = append(result, FromNotification(&notifications[i]))
	}
	return result
}
