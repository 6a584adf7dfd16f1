package order

// Orders are owned by the upstream platform and only projected here; this
// system never writes them.

type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type LineItemProduct struct {
	Handle string `json:"handle"`
	Title  string `json:"title"`
}

type LineItemVariant struct {
	Price   Money           `json:"price"`
	Image   *Image          `json:"image,omitempty"`
	Product LineItemProduct `json:"product"`
}

type Image struct {
	URL string `json:"url"`
}

type LineItem struct {
	Title    string          `json:"title"`
	Quantity int             `json:"quantity"`
	Variant  LineItemVariant `json:"variant"`
}

type Order struct {
	ID                string     `json:"id"`
	OrderNumber       int        `json:"orderNumber"`
	ProcessedAt       string     `json:"processedAt"`
	FinancialStatus   string     `json:"financialStatus"`
	FulfillmentStatus string     `json:"fulfillmentStatus"`
	TotalPrice        Money      `json:"totalPrice"`
	LineItems         []LineItem `json:"lineItems"`
}
