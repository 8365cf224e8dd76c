package assignment_request_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/dto"
	"dispatch/internal/service/assignment"
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

	offer, err := h.service.RequestAssignment(r.Context(), orderPayload.ToEntity())
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID),
			errors.Is(err, assignment.ErrMissingPickup):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrNoCandidates):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.NewAssignmentOfferResponse(offer))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
