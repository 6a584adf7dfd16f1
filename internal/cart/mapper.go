package cart

import "math"

// roundCents keeps derived money values exact at currency precision.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Project assembles the client-facing view from a cart's joined lines.
// Total and itemCount are always derived, never stored. An empty cart and a
// cart that does not exist yet project identically.
func Project(cartID string, rows []lineRow) *View {
	view := &View{
		ID:    cartID,
		Items: make([]Item, 0, len(rows)),
	}

	for _, r := range rows {
		view.Items = append(view.Items, Item{
			ID:               r.LineID,
			ProductVariantID: r.VariantID,
			Quantity:         r.Quantity,
			Price:            r.Price,
			Product: ItemProduct{
				Title:  r.ProductTitle,
				Handle: r.Handle,
				Image:  r.ImageSrc,
			},
			Variant: ItemVariant{
				Title: r.VariantTitle,
				Size:  r.Size,
				Color: r.Color,
			},
		})

		view.Total += r.Price * float64(r.Quantity)
		view.ItemCount += r.Quantity
	}

	view.Total = roundCents(view.Total)

	return view
}
