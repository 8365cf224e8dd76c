package order_completed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"dispatch/internal/dto"
	assignmentservice "dispatch/internal/service/assignment"
	settlementservice "dispatch/internal/service/settlement"
	"dispatch/pkg/logger"
)

type Handler struct {
	settlements              SettlementService
	assignments              AssignmentService
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, settlements SettlementService, assignments AssignmentService, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		settlements:              settlements,
		assignments:              assignments,
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
				h.log.Info("order.completed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("order.completed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one message. It returns true when ConsumeClaim
// should stop, which happens only on context cancellation so the message is
// redelivered after the rebalance.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event dto.OrderPayload
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.completed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.completed processing")

	settled, err := h.settlements.RequestSettlement(ctx, event.ToEntity())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.completed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, settlementservice.ErrInvalidOrderID),
			errors.Is(err, settlementservice.ErrMissingCourier):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.completed handler received unsettleable order")

		case errors.Is(err, settlementservice.ErrDistanceUnresolved):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.completed handler blocked on unresolved distance")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.completed handler failed to settle order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	if event.CourierID != nil {
		err = h.assignments.CompleteAssignment(ctx, *event.CourierID)
		if err != nil && !errors.Is(err, assignmentservice.ErrOfferNotFound) {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.completed handler failed to free courier")
		}
	}

	msgLog = h.log.With(
		logger.NewField("order", settled.OrderID),
		logger.NewField("courier", settled.CourierID),
		logger.NewField("courier_total", settled.CourierEarning.Total),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("order.completed: settled")

	sess.MarkMessage(message, "")
	return false
}
