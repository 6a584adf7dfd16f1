package rest

import (
	"errors"
	"net/http"

	"threadline-be/internal/product"
)

type productsResponse struct {
	Products []*product.ListView `json:"products"`
}

type productResponse struct {
	Product *product.DetailView `json:"product"`
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	views, err := h.products.ListProducts(r.Context())
	if err != nil {
		internalError(w, r, "failed to list products", err)
		return
	}

	writeJSON(w, http.StatusOK, productsResponse{Products: views})
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	view, err := h.products.GetProductByHandle(r.Context(), r.PathValue("handle"))
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		internalError(w, r, "failed to load product", err)
		return
	}

	writeJSON(w, http.StatusOK, productResponse{Product: view})
}
