package settlement_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/service/settlement"
	"dispatch/pkg/logger"
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
	var orderPayload dto.OrderPayload
	err := json.NewDecoder(r.Body).Decode(&orderPayload)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	settled, err := h.service.RequestSettlement(r.Context(), orderPayload.ToEntity())
	if err != nil {
		switch {
		case errors.Is(err, settlement.ErrInvalidOrderID),
			errors.Is(err, settlement.ErrMissingCourier):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, settlement.ErrDistanceUnresolved):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.NewSettlementResponse(settled))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
