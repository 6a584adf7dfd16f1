package cart

import "time"

const StatusActive = "ACTIVE"

// Cart is the persisted cart record. OwnerKey is the authenticated user id
// or the anonymous session token; the split columns are kept for audit.
type Cart struct {
	ID        string
	OwnerKey  string
	UserID    *string
	SessionID *string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Line is one (variant, quantity, captured price) entry within a cart.
// Price is captured at add time and never re-fetched from the catalog.
type Line struct {
	ID        string
	CartID    string
	VariantID string
	Quantity  int
	Price     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AddLineParams struct {
	VariantID string
	Quantity  int
	Price     float64
}

// lineRow is the joined read used by the projector.
type lineRow struct {
	LineID       string
	VariantID    string
	Quantity     int
	Price        float64
	ProductTitle string
	Handle       string
	ImageSrc     *string
	VariantTitle string
	Size         *string
	Color        *string
}

// View is the client-facing cart projection.
type View struct {
	ID        string  `json:"id"`
	Items     []Item  `json:"items"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

type Item struct {
	ID               string      `json:"id"`
	ProductVariantID string      `json:"productVariantId"`
	Quantity         int         `json:"quantity"`
	Price            float64     `json:"price"`
	Product          ItemProduct `json:"product"`
	Variant          ItemVariant `json:"variant"`
}

type ItemProduct struct {
	Title  string  `json:"title"`
	Handle string  `json:"handle"`
	Image  *string `json:"image,omitempty"`
}

type ItemVariant struct {
	Title string  `json:"title"`
	Size  *string `json:"size,omitempty"`
	Color *string `json:"color,omitempty"`
}
