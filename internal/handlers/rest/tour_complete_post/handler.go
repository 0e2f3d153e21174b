package tour_complete_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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

	idStr := mux.Vars(r)["id"]
	tourID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	tourEntity, err := h.service.Complete(r.Context(), actor, tourID)
	if err != nil {
		switch {
		case errors.Is(err, tour.ErrNotDriver),
			errors.Is(err, tour.ErrNotAssignedDriver):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, tour.ErrInvalidTourID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, tour.ErrTourNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, tour.ErrTourNotAssigned),
			errors.Is(err, tour.ErrInvalidTourStatus):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromTour(tourEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
