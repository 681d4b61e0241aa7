package transport

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
	"github.com/BoburSobirjanov/order-task/pkg/domain/service"
)

type orderItemCreateRequest struct {
	OrderID   uuid.UUID `json:"orderId"`
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

type orderItemUpdateRequest struct {
	ProductID *uuid.UUID `json:"productId"`
	Quantity  *int       `json:"quantity"`
}

type orderItemResponse struct {
	ID         uuid.UUID       `json:"id"`
	OrderID    uuid.UUID       `json:"orderId"`
	ProductID  uuid.UUID       `json:"productId"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

func toOrderItemResponse(item model.OrderItem) orderItemResponse {
	return orderItemResponse{
		ID:         item.ID,
		OrderID:    item.OrderID,
		ProductID:  item.ProductID,
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
		TotalPrice: item.TotalPrice,
	}
}

type orderItemHandler struct {
	items service.OrderItemService
}

func (h *orderItemHandler) register(r *mux.Router) {
	s := r.PathPrefix("/order-item").Subrouter()
	s.HandleFunc("/create", h.create).Methods(http.MethodPost)
	s.HandleFunc("/get-all", h.getAll).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.getOne).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.update).Methods(http.MethodPut)
	s.HandleFunc("/{id}", h.delete).Methods(http.MethodDelete)
}

func (h *orderItemHandler) create(w http.ResponseWriter, r *http.Request) {
	var req orderItemCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	item, err := h.items.Create(req.OrderID, req.ProductID, req.Quantity)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrderItemResponse(*item))
}

func (h *orderItemHandler) getOne(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	item, err := h.items.GetOne(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderItemResponse(*item))
}

func (h *orderItemHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req orderItemUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	item, err := h.items.Update(id, model.OrderItemPatch{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderItemResponse(*item))
}

func (h *orderItemHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.items.Delete(id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *orderItemHandler) getAll(w http.ResponseWriter, r *http.Request) {
	page, err := h.items.List(parsePageable(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(page, toOrderItemResponse))
}
