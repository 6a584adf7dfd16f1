package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"threadline-be/internal/cart"
	"threadline-be/internal/session"
)

type addToCartRequest struct {
	ProductVariantID string  `json:"productVariantId"`
	Quantity         int     `json:"quantity"`
	Price            float64 `json:"price"`
}

type updateCartRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	owner, err := session.Resolve(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.carts.GetCart(r.Context(), owner)
	if err != nil {
		internalError(w, r, "failed to load cart", err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	owner, err := session.Resolve(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.carts.AddLine(r.Context(), owner, cart.AddLineParams{
		VariantID: req.ProductVariantID,
		Quantity:  req.Quantity,
		Price:     req.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrMissingFields), errors.Is(err, cart.ErrInvalidQuantity):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			internalError(w, r, "failed to add item to cart", err)
		}
		return
	}

	h.respondWithCart(w, r, owner)
}

func (h *Handler) UpdateCartLine(w http.ResponseWriter, r *http.Request) {
	owner, err := session.Resolve(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req updateCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.carts.SetLineQuantity(r.Context(), req.ItemID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrMissingFields), errors.Is(err, cart.ErrInvalidQuantity):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, cart.ErrLineNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			internalError(w, r, "failed to update cart item", err)
		}
		return
	}

	h.respondWithCart(w, r, owner)
}

func (h *Handler) RemoveCartLine(w http.ResponseWriter, r *http.Request) {
	owner, err := session.Resolve(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.carts.RemoveLine(r.Context(), r.PathValue("itemId")); err != nil {
		switch {
		case errors.Is(err, cart.ErrMissingFields):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			internalError(w, r, "failed to remove cart item", err)
		}
		return
	}

	h.respondWithCart(w, r, owner)
}

// respondWithCart re-projects the cart after a mutation so the client always
// sees the merged state, not just the line it touched.
func (h *Handler) respondWithCart(w http.ResponseWriter, r *http.Request, owner session.Owner) {
	view, err := h.carts.GetCart(r.Context(), owner)
	if err != nil {
		internalError(w, r, "failed to load cart", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
