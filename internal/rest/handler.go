package rest

import (
	"net/http"

	"threadline-be/internal/cart"
	"threadline-be/internal/catalog"
	"threadline-be/internal/order"
	"threadline-be/internal/product"
)

// Handler bundles the HTTP surface over the domain services.
type Handler struct {
	carts    cart.Service
	products product.Service
	sync     catalog.Service
	orders   order.Service
}

func NewHandler(carts cart.Service, products product.Service, sync catalog.Service, orders order.Service) *Handler {
	return &Handler{
		carts:    carts,
		products: products,
		sync:     sync,
		orders:   orders,
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.Health)

	mux.HandleFunc("GET /cart", h.GetCart)
	mux.HandleFunc("POST /cart/add", h.AddToCart)
	mux.HandleFunc("PUT /cart/update", h.UpdateCartLine)
	mux.HandleFunc("DELETE /cart/remove/{itemId}", h.RemoveCartLine)

	mux.HandleFunc("GET /products", h.ListProducts)
	mux.HandleFunc("GET /products/{handle}", h.GetProduct)

	mux.HandleFunc("POST /sync-products", h.SyncProducts)

	mux.HandleFunc("GET /orders", h.GetOrders)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
