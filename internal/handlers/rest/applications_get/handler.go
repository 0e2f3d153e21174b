package applications_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"prevoz/internal/entities"
	"prevoz/internal/handlers/rest/dto"
	"prevoz/internal/pkg/identity"
	"prevoz/internal/service/application"
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

	applications, err := h.list(r, actor)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidTourID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, application.ErrNotAdmin):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromApplicationList(applications))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) list(r *http.Request, actor entities.Actor) ([]entities.Application, error) {
	rawTourID := r.URL.Query().Get("tour_id")
	if rawTourID == "" {
		return h.service.ListByDriver(r.Context(), actor.ID)
	}

	if actor.Role != entities.RoleAdmin {
		return nil, application.ErrNotAdmin
	}

	tourID, err := strconv.ParseInt(rawTourID, 10, 64)
	if err != nil {
		return nil, application.ErrInvalidTourID
	}

	return h.service.ListByTour(r.Context(), tourID)
}
