package tour_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"prevoz/internal/entities"
	"prevoz/internal/handlers/rest/dto"
	"prevoz/internal/pkg/identity"
	"prevoz/internal/service/tour"
	"prevoz/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, err := identity.FromRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var tourCreateDTO dto.TourCreate
	err = json.NewDecoder(r.Body).Decode(&tourCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	tourModifyEntity := entities.TourModify{
		Origin:         &tourCreateDTO.Origin,
		Destination:    &tourCreateDTO.Destination,
		Date:           &tourCreateDTO.Date,
		Cargo:          &tourCreateDTO.Cargo,
		Price:          &tourCreateDTO.Price,
		PickupAddress:  tourCreateDTO.PickupAddress,
		DropoffAddress: tourCreateDTO.DropoffAddress,
		ContactPhone:   tourCreateDTO.ContactPhone,
		Notes:          tourCreateDTO.Notes,
	}

	tourEntity, err := h.service.Submit(r.Context(), actor, tourModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, tour.ErrNotShipper):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, tour.ErrMissingRequiredFields),
			errors.Is(err, tour.ErrNegativePrice):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromTour(tourEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
