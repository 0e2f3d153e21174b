package tour

import (
	"strings"

	"prevoz/internal/entities"
)

func validateSubmit(tourModify entities.TourModify) error {
	if !hasText(tourModify.Origin) || !hasText(tourModify.Destination) ||
		!hasText(tourModify.Cargo) || tourModify.Date == nil {
		return ErrMissingRequiredFields
	}
	if tourModify.Price == nil {
		return ErrMissingRequiredFields
	}
	if *tourModify.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func isValidTourID(id int64) bool {
	return id > 0
}
