package transport

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/BoburSobirjanov/order-task/pkg/domain/model"
	"github.com/BoburSobirjanov/order-task/pkg/domain/service"
)

type orderLineItemRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

type orderCreateRequest struct {
	UserID        uuid.UUID              `json:"userId"`
	OrderItems    []orderLineItemRequest `json:"orderItems"`
	PaymentMethod string                 `json:"paymentMethod"`
}

type orderResponse struct {
	ID          uuid.UUID           `json:"id"`
	UserID      uuid.UUID           `json:"userId"`
	OrderStatus string              `json:"orderStatus"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	CreatedDate time.Time           `json:"createdDate"`
	OrderItems  []orderItemResponse `json:"orderItems"`
}

func toOrderResponse(d model.OrderDetails) orderResponse {
	items := make([]orderItemResponse, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, toOrderItemResponse(item))
	}
	return orderResponse{
		ID:          d.Order.ID,
		UserID:      d.Order.UserID,
		OrderStatus: string(d.Order.Status),
		TotalAmount: d.Order.TotalAmount,
		CreatedDate: d.Order.CreatedAt,
		OrderItems:  items,
	}
}

type orderHandler struct {
	orders service.OrderService
}

func (h *orderHandler) register(r *mux.Router) {
	s := r.PathPrefix("/order").Subrouter()
	s.HandleFunc("/create", h.create).Methods(http.MethodPost)
	s.HandleFunc("/get-all", h.getAll).Methods(http.MethodGet)
	s.HandleFunc("/get-user-orders", h.getUserOrders).Methods(http.MethodGet)
	s.HandleFunc("/{id}/cancel", h.cancel).Methods(http.MethodPut)
	s.HandleFunc("/{id}/change-status", h.changeStatus).Methods(http.MethodPut)
	s.HandleFunc("/{id}", h.getOne).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.delete).Methods(http.MethodDelete)
}

func (h *orderHandler) create(w http.ResponseWriter, r *http.Request) {
	var req orderCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	items := make([]model.LineItem, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		items = append(items, model.LineItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	order, err := h.orders.Create(req.UserID, items, req.PaymentMethod)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOrderResponse(*order))
}

func (h *orderHandler) getOne(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	order, err := h.orders.GetOne(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOrderResponse(*order))
}

func (h *orderHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.orders.Delete(id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *orderHandler) cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	userID, err := queryUUID(r, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.orders.Cancel(id, userID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *orderHandler) changeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	userID, err := queryUUID(r, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.orders.ChangeStatus(id, userID, r.URL.Query().Get("status")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *orderHandler) getAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter model.OrderFilter
	if raw := query.Get("userId"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, r, model.ErrBadRequest)
			return
		}
		filter.UserID = &userID
	}
	from, err := parseTimeParam(query.Get("startTime"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	to, err := parseTimeParam(query.Get("endTime"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	filter.CreatedFrom = from
	filter.CreatedTo = to

	page, err := h.orders.List(filter, parsePageable(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(page, toOrderResponse))
}

func (h *orderHandler) getUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUUID(r, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	page, err := h.orders.ListByUser(userID, parsePageable(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(page, toOrderResponse))
}
