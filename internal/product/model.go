package product

import "time"

const (
	StatusActive   = "active"
	StatusInactive = "inactive"

	ReviewStatusApproved = "APPROVED"
)

type Product struct {
	ID          string
	ExternalID  string
	Title       string
	Description string
	Handle      string
	ProductType string
	Vendor      string
	Tags        []string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Variants []Variant
	Images   []Image
}

type Variant struct {
	ID                string
	ProductID         string
	ExternalID        string
	Title             string
	Price             float64
	CompareAtPrice    *float64
	SKU               *string
	Size              *string
	Color             *string
	Available         bool
	InventoryQuantity int
}

type Image struct {
	ID         string
	ProductID  string
	ExternalID string
	Src        string
	AltText    *string
	Position   int
}

type Review struct {
	ID           string
	ProductID    string
	ReviewerName string
	Rating       int
	Title        *string
	Content      string
	CreatedAt    time.Time
}

// --- client-facing projections ---

type ImageView struct {
	ID      string  `json:"id"`
	Src     string  `json:"src"`
	AltText *string `json:"altText,omitempty"`
}

type VariantView struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Price             float64  `json:"price"`
	CompareAtPrice    *float64 `json:"compareAtPrice,omitempty"`
	SKU               *string  `json:"sku,omitempty"`
	Size              *string  `json:"size,omitempty"`
	Color             *string  `json:"color,omitempty"`
	Available         bool     `json:"available"`
	InventoryQuantity int      `json:"inventoryQuantity"`
}

type ReviewView struct {
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Title     *string   `json:"title,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	User      struct {
		Name string `json:"name"`
	} `json:"user"`
}

type ListView struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Handle         string        `json:"handle"`
	Price          float64       `json:"price"`
	CompareAtPrice *float64      `json:"compareAtPrice,omitempty"`
	Images         []ImageView   `json:"images"`
	Variants       []VariantView `json:"variants"`
	Tags           []string      `json:"tags"`
}

type DetailView struct {
	ListView
	Reviews     []ReviewView `json:"reviews"`
	Rating      float64      `json:"rating"`
	ReviewCount int          `json:"reviewCount"`
}
