package transport

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
	"github.com/BoburSobirjanov/order-task/pkg/domain/service"
)

type paymentCreateRequest struct {
	UserID        uuid.UUID `json:"userId"`
	OrderID       uuid.UUID `json:"orderId"`
	PaymentMethod string    `json:"paymentMethod"`
}

type paymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	OrderID       uuid.UUID       `json:"orderId"`
	UserID        uuid.UUID       `json:"userId"`
	PaymentMethod string          `json:"paymentMethod"`
	Amount        decimal.Decimal `json:"amount"`
}

func toPaymentResponse(p model.Payment) paymentResponse {
	return paymentResponse{
		ID:            p.ID,
		OrderID:       p.OrderID,
		UserID:        p.UserID,
		PaymentMethod: string(p.Method),
		Amount:        p.Amount,
	}
}

type paymentHandler struct {
	payments service.PaymentService
}

func (h *paymentHandler) register(r *mux.Router) {
	s := r.PathPrefix("/payment").Subrouter()
	s.HandleFunc("/create", h.create).Methods(http.MethodPost)
	s.HandleFunc("/get-all", h.getAll).Methods(http.MethodGet)
	s.HandleFunc("/get-user-payments", h.getUserPayments).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.getOne).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.delete).Methods(http.MethodDelete)
}

func (h *paymentHandler) create(w http.ResponseWriter, r *http.Request) {
	var req paymentCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	method, err := model.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		writeError(w, r, err)
		return
	}
	payment, err := h.payments.Create(req.UserID, req.OrderID, method)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPaymentResponse(*payment))
}

func (h *paymentHandler) getOne(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	payment, err := h.payments.GetOne(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentResponse(*payment))
}

func (h *paymentHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.payments.Delete(id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *paymentHandler) getAll(w http.ResponseWriter, r *http.Request) {
	page, err := h.payments.List(parsePageable(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(page, toPaymentResponse))
}

func (h *paymentHandler) getUserPayments(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUUID(r, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	page, err := h.payments.ListByUser(userID, parsePageable(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(page, toPaymentResponse))
}
