package wallet_transaction_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
	idStr := mux.Vars(r)["courier_id"]
	courierID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var transactionRequest dto.WalletTransactionRequest
	err = json.NewDecoder(r.Body).Decode(&transactionRequest)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	txn, err := h.service.AppendTransaction(
		r.Context(),
		transactionRequest.ToEntity(courierID),
		transactionRequest.AllowOverLimit,
	)
	if err != nil {
		switch {
		case errors.Is(err, wallet.ErrInvalidCourierID),
			errors.Is(err, wallet.ErrInvalidAmount),
			errors.Is(err, wallet.ErrInvalidKind),
			errors.Is(err, wallet.ErrInvalidDetails),
			errors.Is(err, wallet.ErrMissingIdempotencyKey):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, wallet.ErrDuplicateTransaction):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, wallet.ErrCashLimitExceeded):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.NewWalletTransactionResponse(txn))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
