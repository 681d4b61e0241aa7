package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/BoburSobirjanov/order-task/pkg/domain/service"
)

type Services struct {
	Users      service.UserService
	Categories service.CategoryService
	Products   service.ProductService
	Orders     service.OrderService
	OrderItems service.OrderItemService
	Payments   service.PaymentService
}

func Router(s Services) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	(&userHandler{users: s.Users}).register(api)
	(&categoryHandler{categories: s.Categories}).register(api)
	(&productHandler{products: s.Products}).register(api)
	(&orderHandler{orders: s.Orders}).register(api)
	(&orderItemHandler{items: s.OrderItems}).register(api)
	(&paymentHandler{payments: s.Payments}).register(api)

	return logMiddleware(r)
}

func logMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL,
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
		}).Info("got a new request")
		h.ServeHTTP(w, r)
	})
}
