package application_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"prevoz/internal/handlers/rest/dto"
	"prevoz/internal/pkg/identity"
	"prevoz/internal/service/application"
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

	applicationEntity, err := h.service.Apply(r.Context(), actor, tourID)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNotDriver),
			errors.Is(err, application.ErrDriverBlocked):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, application.ErrInvalidTourID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, application.ErrTourNotFound),
			errors.Is(err, tour.ErrTourNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, application.ErrTourNotOpen),
			errors.Is(err, application.ErrAlreadyApplied):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromApplication(applicationEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
