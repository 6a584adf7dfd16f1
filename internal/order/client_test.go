package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminClient_OrdersByEmail(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "admin-tok", r.Header.Get("X-Admin-Access-Token"))

			var payload struct {
				Query     string            `json:"query"`
				Variables map[string]string `json:"variables"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "email:a@example.com", payload.Variables["query"])

			// Every field the decode path reads must be requested.
			assert.Contains(t, payload.Query, "orderNumber")
			assert.Contains(t, payload.Query, "totalPrice { amount currencyCode }")
			assert.Contains(t, payload.Query, "price { amount currencyCode }")

			w.Write([]byte(`{
				"data": {"orders": {"edges": [
					{"node": {
						"id": "gid://shop/Order/1",
						"orderNumber": 1001,
						"financialStatus": "PAID",
						"totalPrice": {"amount": "89.99", "currencyCode": "USD"},
						"lineItems": {"edges": [
							{"node": {
								"title": "Linen Shirt",
								"quantity": 2,
								"variant": {
									"price": {"amount": "44.99", "currencyCode": "USD"},
									"product": {"handle": "linen-shirt", "title": "Linen Shirt"}
								}
							}}
						]}
					}}
				]}}
			}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "admin-tok")
		orders, err := client.OrdersByEmail(context.Background(), "a@example.com")

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "gid://shop/Order/1", orders[0].ID)
		assert.Equal(t, 1001, orders[0].OrderNumber)
		assert.Equal(t, "PAID", orders[0].FinancialStatus)
		assert.Equal(t, Money{Amount: "89.99", CurrencyCode: "USD"}, orders[0].TotalPrice)
		require.Len(t, orders[0].LineItems, 1)
		assert.Equal(t, "Linen Shirt", orders[0].LineItems[0].Title)
		assert.Equal(t, 2, orders[0].LineItems[0].Quantity)
		assert.Equal(t, "44.99", orders[0].LineItems[0].Variant.Price.Amount)
	})

	t.Run("Non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "admin-tok")
		_, err := client.OrdersByEmail(context.Background(), "a@example.com")
		assert.ErrorIs(t, err, ErrUpstreamStatus)
	})

	t.Run("GraphQL errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"errors":[{"message":"access denied"}]}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "admin-tok")
		_, err := client.OrdersByEmail(context.Background(), "a@example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access denied")
	})
}
