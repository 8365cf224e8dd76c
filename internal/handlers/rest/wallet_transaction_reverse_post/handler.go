package wallet_transaction_reverse_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/dto"
	"dispatch/internal/service/wallet"
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
	transactionID := mux.Vars(r)["transaction_id"]

	var reverseRequest dto.ReverseTransactionRequest
	err := json.NewDecoder(r.Body).Decode(&reverseRequest)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reversal, err := h.service.Reverse(r.Context(), transactionID, reverseRequest.Reason)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrTransactionNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, wallet.ErrNotReversible):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.NewWalletTransactionResponse(reversal))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
