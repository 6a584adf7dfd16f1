package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"threadline-be/internal/logger"

	"go.uber.org/zap"
)

// Client fetches the full product set from the upstream commerce platform.
type Client interface {
	FetchProducts(ctx context.Context) ([]ExternalProduct, error)
}

const productsQuery = `
query GetProducts($first: Int!) {
  products(first: $first) {
    edges {
      node {
        id
        title
        description
        handle
        productType
        vendor
        tags
        images(first: 5) {
          edges { node { id url altText } }
        }
        variants(first: 20) {
          edges {
            node {
              id
              title
              price { amount currencyCode }
              compareAtPrice { amount currencyCode }
              sku
              quantityAvailable
              selectedOptions { name value }
              availableForSale
            }
          }
        }
      }
    }
  }
}`

type httpClient struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

func NewClient(endpoint, token string) Client {
	if token == "" {
		logger.L().Warn("commerce API token is empty")
	}

	return &httpClient{
		endpoint: endpoint,
		token:    token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// --- upstream wire shapes ---

type money struct {
	Amount string `json:"amount"`
}

type wireVariant struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Price             money  `json:"price"`
	CompareAtPrice    *money `json:"compareAtPrice"`
	SKU               string `json:"sku"`
	QuantityAvailable int    `json:"quantityAvailable"`
	SelectedOptions   []struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	} `json:"selectedOptions"`
	AvailableForSale bool `json:"availableForSale"`
}

type wireImage struct {
	ID      string  `json:"id"`
	URL     string  `json:"url"`
	AltText *string `json:"altText"`
}

type wireProduct struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Handle      string   `json:"handle"`
	ProductType string   `json:"productType"`
	Vendor      string   `json:"vendor"`
	Tags        []string `json:"tags"`
	Images      struct {
		Edges []struct {
			Node wireImage `json:"node"`
		} `json:"edges"`
	} `json:"images"`
	Variants struct {
		Edges []struct {
			Node wireVariant `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

type productsResponse struct {
	Data struct {
		Products struct {
			Edges []struct {
				Node wireProduct `json:"node"`
			} `json:"edges"`
		} `json:"products"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *httpClient) FetchProducts(ctx context.Context) ([]ExternalProduct, error) {
	log := logger.FromCtx(ctx).With(zap.String("endpoint", c.endpoint))

	body, err := json.Marshal(map[string]interface{}{
		"query":     productsQuery,
		"variables": map[string]interface{}{"first": 100},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Storefront-Access-Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("upstream request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("upstream returned non-200", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var decoded productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Error("failed to decode upstream response", zap.Error(err))
		return nil, err
	}

	if len(decoded.Errors) > 0 {
		return nil, fmt.Errorf("upstream error: %s", decoded.Errors[0].Message)
	}

	products := make([]ExternalProduct, 0, len(decoded.Data.Products.Edges))
	for _, edge := range decoded.Data.Products.Edges {
		products = append(products, flattenProduct(ctx, edge.Node))
	}

	log.Info("fetched upstream products", zap.Int("count", len(products)))

	return products, nil
}

func flattenProduct(ctx context.Context, w wireProduct) ExternalProduct {
	p := ExternalProduct{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Handle:      w.Handle,
		ProductType: w.ProductType,
		Vendor:      w.Vendor,
		Tags:        w.Tags,
	}

	for _, edge := range w.Variants.Edges {
		price, err := parseAmount(edge.Node.Price.Amount)
		if err != nil {
			// A variant without a parseable price cannot be sold; keep it
			// out of the store rather than syncing it at 0.00.
			logger.FromCtx(ctx).Warn("skipping variant with malformed price",
				zap.String("variant_id", edge.Node.ID),
				zap.String("amount", edge.Node.Price.Amount),
				zap.Error(err),
			)
			continue
		}

		v := ExternalVariant{
			ID:                edge.Node.ID,
			Title:             edge.Node.Title,
			Price:             price,
			SKU:               edge.Node.SKU,
			InventoryQuantity: edge.Node.QuantityAvailable,
			Available:         edge.Node.AvailableForSale,
		}
		if edge.Node.CompareAtPrice != nil {
			amount, err := parseAmount(edge.Node.CompareAtPrice.Amount)
			if err != nil {
				logger.FromCtx(ctx).Warn("dropping malformed compare-at price",
					zap.String("variant_id", edge.Node.ID),
					zap.String("amount", edge.Node.CompareAtPrice.Amount),
					zap.Error(err),
				)
			} else {
				v.CompareAtPrice = &amount
			}
		}
		for _, opt := range edge.Node.SelectedOptions {
			v.Options = append(v.Options, SelectedOption{Name: opt.Name, Value: opt.Value})
		}
		p.Variants = append(p.Variants, v)
	}

	for _, edge := range w.Images.Edges {
		p.Images = append(p.Images, ExternalImage{
			ID:      edge.Node.ID,
			URL:     edge.Node.URL,
			AltText: edge.Node.AltText,
		})
	}

	return p
}

func parseAmount(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
