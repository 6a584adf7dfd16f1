package catalog

// External* types are the upstream commerce platform's product payload,
// flattened out of its edges/node GraphQL envelope by the client.

type ExternalProduct struct {
	ID          string
	Title       string
	Description string
	Handle      string
	ProductType string
	Vendor      string
	Tags        []string
	Variants    []ExternalVariant
	Images      []ExternalImage
}

type ExternalVariant struct {
	ID                string
	Title             string
	Price             float64
	CompareAtPrice    *float64
	SKU               string
	InventoryQuantity int
	Available         bool
	Options           []SelectedOption
}

type SelectedOption struct {
	Name  string
	Value string
}

type ExternalImage struct {
	ID      string
	URL     string
	AltText *string
}

type SyncResult struct {
	Count           int
	VariantsTouched int
	RowsPruned      int64
}
