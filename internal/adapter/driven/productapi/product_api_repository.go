package productapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/diillson/sales-analytics-go/internal/domain/entity"
)

// Valores padrão do catálogo de produtos usado no enriquecimento.
const (
	DefaultBaseURL   = "https://dummyjson.com"
	DefaultPageLimit = 100
)

const (
	maxRetries     = 3
	retryBaseDelay = 500 * time.Millisecond
)

// ProductAPIRepository busca o catálogo de produtos via HTTP.
type ProductAPIRepository struct {
	client *http.Client
}

// NewProductAPIRepository cria o cliente HTTP do catálogo. O timeout
// do client é um teto; o prazo efetivo de cada chamada vem do
// contexto.
func NewProductAPIRepository() *ProductAPIRepository {
	return &ProductAPIRepository{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// productsResponse espelha o envelope da API de produtos.
type productsResponse struct {
	Products []entity.Product `json:"products"`
	Total    int              `json:"total"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
}

// FetchAllProducts busca uma página do catálogo com o limite dado.
// Erros transitórios (rede, 429, 5xx) são tentados de novo com um
// backoff simples; erros 4xx encerram na hora.
func (r *ProductAPIRepository) FetchAllProducts(ctx context.Context, baseURL string, limit int) ([]entity.Product, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	url := fmt.Sprintf("%s/products?limit=%d", strings.TrimSuffix(baseURL, "/"), limit)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if attempt > 1 {
			delay := retryBaseDelay * time.Duration(attempt-1)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		products, retryable, err := r.fetchOnce(ctx, url)
		if err == nil {
			return products, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}
	return nil, fmt.Errorf("product API unavailable after %d attempts: %w", maxRetries, lastErr)
}

func (r *ProductAPIRepository) fetchOnce(ctx context.Context, url string) ([]entity.Product, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to build product API request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("product API request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// segue para o decode
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("product API returned status %d", resp.StatusCode)
	default:
		return nil, false, fmt.Errorf("product API returned status %d", resp.StatusCode)
	}

	var payload productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, false, fmt.Errorf("failed to decode product API response: %w", err)
	}
	return payload.Products, false, nil
}
