package payment

import "prevoz/internal/entities"

func ToDomain(p *PaymentDB) *entities.Payment {
	if p == nil {
		return nil
	}
	return &entities.Payment{
		ID:          p.ID,
		DriverID:    p.DriverID,
		TourID:      p.TourID,
		Amount:      p.Amount,
		Status:      entities.PaymentStatusType(p.Status),
		ExternalRef: p.ExternalRef,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToDomainList(models []PaymentDB) []entities.Payment {
	payments := make([]entities.Payment, 0, len(models))
	for i := range models {
		payments = append(payments, *ToDomain(&models[i]))
	}
	return payments
}
