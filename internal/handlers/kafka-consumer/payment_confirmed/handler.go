package payment_confirmed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"prevoz/internal/entities"
	paymentservice "prevoz/internal/service/payment"
	"prevoz/pkg/logger"
)

type Handler struct {
	paymentService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, paymentService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		paymentService:           paymentService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("payment.confirmed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("payment.confirmed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event confirmedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.confirmed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("external_ref", event.ExternalRef),
		logger.NewField("account", event.AccountID),
		logger.NewField("outcome", event.Outcome),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payment.confirmed processing")

	confirmation := entities.PaymentConfirmation{
		ExternalRef: event.ExternalRef,
		AccountID:   event.AccountID,
		Amount:      event.Amount,
		Outcome:     entities.PaymentStatusType(event.Outcome),
	}

	paymentEntity, err := h.paymentService.Confirm(ctx, confirmation)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.confirmed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, paymentservice.ErrInvalidOutcome),
			errors.Is(err, paymentservice.ErrMissingExternalRef):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.confirmed handler malformed confirmation")

		case errors.Is(err, paymentservice.ErrNoPendingPayment):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.confirmed handler no pending payment for account")

		case errors.Is(err, paymentservice.ErrAmountMismatch):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.confirmed handler amount mismatch")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.confirmed handler failed to process confirmation")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("payment", paymentEntity.ID),
		logger.NewField("driver", paymentEntity.DriverID),
		logger.NewField("status", paymentEntity.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("payment.confirmed: processed")

	sess.MarkMessage(message, "")
	return false
}
