package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"threadline-be/internal/logger"

	"go.uber.org/zap"
)

// Client fetches a customer's order history from the upstream admin API.
type Client interface {
	OrdersByEmail(ctx context.Context, email string) ([]Order, error)
}

const ordersQuery = `
query GetOrdersByEmail($query: String!) {
  orders(first: 50, query: $query) {
    edges {
      node {
        id
        orderNumber
        processedAt
        financialStatus
        fulfillmentStatus
        totalPrice { amount currencyCode }
        lineItems(first: 50) {
          edges {
            node {
              title
              quantity
              variant {
                price { amount currencyCode }
                image { url }
                product { handle title }
              }
            }
          }
        }
      }
    }
  }
}`

type adminClient struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

func NewClient(endpoint, token string) Client {
	return &adminClient{
		endpoint: endpoint,
		token:    token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// orderNode is the wire shape of a single order. Line items arrive in the
// edges/node envelope and are flattened before leaving this package.
type orderNode struct {
	ID                string `json:"id"`
	OrderNumber       int    `json:"orderNumber"`
	ProcessedAt       string `json:"processedAt"`
	FinancialStatus   string `json:"financialStatus"`
	FulfillmentStatus string `json:"fulfillmentStatus"`
	TotalPrice        Money  `json:"totalPrice"`
	LineItems         struct {
		Edges []struct {
			Node LineItem `json:"node"`
		} `json:"edges"`
	} `json:"lineItems"`
}

type ordersResponse struct {
	Data struct {
		Orders struct {
			Edges []struct {
				Node orderNode `json:"node"`
			} `json:"edges"`
		} `json:"orders"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func flattenOrder(n orderNode) Order {
	o := Order{
		ID:                n.ID,
		OrderNumber:       n.OrderNumber,
		ProcessedAt:       n.ProcessedAt,
		FinancialStatus:   n.FinancialStatus,
		FulfillmentStatus: n.FulfillmentStatus,
		TotalPrice:        n.TotalPrice,
		LineItems:         make([]LineItem, 0, len(n.LineItems.Edges)),
	}
	for _, edge := range n.LineItems.Edges {
		o.LineItems = append(o.LineItems, edge.Node)
	}
	return o
}

func (c *adminClient) OrdersByEmail(ctx context.Context, email string) ([]Order, error) {
	log := logger.FromCtx(ctx).With(zap.String("email", email))

	body, err := json.Marshal(map[string]interface{}{
		"query": ordersQuery,
		"variables": map[string]string{
			"query": "email:" + email,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Access-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("admin API request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("admin API returned non-200", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var decoded ordersResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	if len(decoded.Errors) > 0 {
		return nil, fmt.Errorf("admin API error: %s", decoded.Errors[0].Message)
	}

	orders := make([]Order, 0, len(decoded.Data.Orders.Edges))
	for _, edge := range decoded.Data.Orders.Edges {
		orders = append(orders, flattenOrder(edge.Node))
	}

	return orders, nil
}
