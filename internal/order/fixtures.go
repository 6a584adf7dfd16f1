package order

// fixtureOrders stands in for the admin API when no token is configured,
// mirroring the demo data the storefront ships with.
func fixtureOrders() []Order {
	return []Order{
		{
			ID:                "gid://shop/Order/1",
			OrderNumber:       1001,
			ProcessedAt:       "2024-01-15T10:30:00Z",
			FinancialStatus:   "PAID",
			FulfillmentStatus: "FULFILLED",
			TotalPrice:        Money{Amount: "89.99", CurrencyCode: "USD"},
			LineItems: []LineItem{
				{
					Title:    "Premium Cotton T-Shirt - Black / M",
					Quantity: 2,
					Variant: LineItemVariant{
						Price: Money{Amount: "29.99", CurrencyCode: "USD"},
						Image: &Image{URL: "/placeholder.svg?height=100&width=100"},
						Product: LineItemProduct{
							Handle: "premium-cotton-tshirt",
							Title:  "Premium Cotton T-Shirt",
						},
					},
				},
				{
					Title:    "Denim Jacket - Blue / L",
					Quantity: 1,
					Variant: LineItemVariant{
						Price: Money{Amount: "79.99", CurrencyCode: "USD"},
						Image: &Image{URL: "/placeholder.svg?height=100&width=100"},
						Product: LineItemProduct{
							Handle: "denim-jacket",
							Title:  "Denim Jacket",
						},
					},
				},
			},
		},
		{
			ID:                "gid://shop/Order/2",
			OrderNumber:       1002,
			ProcessedAt:       "2024-01-20T14:15:00Z",
			FinancialStatus:   "PAID",
			FulfillmentStatus: "UNFULFILLED",
			TotalPrice:        Money{Amount: "45.99", CurrencyCode: "USD"},
			LineItems: []LineItem{
				{
					Title:    "Casual Hoodie - Gray / L",
					Quantity: 1,
					Variant: LineItemVariant{
						Price: Money{Amount: "45.99", CurrencyCode: "USD"},
						Image: &Image{URL: "/placeholder.svg?height=100&width=100"},
						Product: LineItemProduct{
							Handle: "casual-hoodie",
							Title:  "Casual Hoodie",
						},
					},
				},
			},
		},
	}
}
