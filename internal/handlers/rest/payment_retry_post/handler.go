package payment_retry_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"prevoz/internal/handlers/rest/dto"
	"prevoz/internal/pkg/identity"
	"prevoz/internal/service/payment"
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
	paymentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	paymentEntity, err := h.service.Retry(r.Context(), actor, paymentID)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrNotPaymentOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, payment.ErrInvalidPaymentID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, payment.ErrPaymentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, payment.ErrPaymentNotRetryable),
			errors.Is(err, payment.ErrRetryConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromPayment(paymentEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
