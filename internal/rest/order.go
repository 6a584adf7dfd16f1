package rest

import (
	"errors"
	"net/http"

	"threadline-be/internal/middleware"
	"threadline-be/internal/order"
)

type ordersResponse struct {
	Orders []order.Order `json:"orders"`
}

// GetOrders serves the authenticated customer's order history. The email
// query parameter selects the customer on the admin API side.
func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, order.ErrUnauthenticated.Error())
		return
	}

	orders, err := h.orders.OrdersByEmail(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		if errors.Is(err, order.ErrMissingEmail) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		internalError(w, r, "failed to fetch orders", err)
		return
	}

	writeJSON(w, http.StatusOK, ordersResponse{Orders: orders})
}
