package service

import (
	"strconv"
	"unicode/utf8"

	"github.com/diillson/sales-analytics-go/internal/domain/entity"
)

// BuildProductMapping indexa os produtos da API pelo ID numérico.
func BuildProductMapping(products []entity.Product) entity.ProductMapping {
	mapping := entity.ProductMapping{}
	for _, p := range products {
		mapping[p.ID] = p
	}
	return mapping
}

// numericProductKey extrai o sufixo numérico de um ID como "P101".
// O primeiro caractere é descartado; se o restante não for um inteiro
// o ID não é correlacionável.
func numericProductKey(productID string) (int, bool) {
	if productID == "" {
		return 0, false
	}
	_, size := utf8.DecodeRuneInString(productID)
	key, err := strconv.Atoi(productID[size:])
	if err != nil {
		return 0, false
	}
	return key, true
}

// EnrichTransactions joins transactions against the product mapping.
// Enrichment is strictly additive: quantity, unit price and derived
// revenue are never altered. Unmatched transactions keep empty API
// fields and contribute their product name to the unmatched set.
func EnrichTransactions(txs []entity.Transaction, mapping entity.ProductMapping) ([]entity.EnrichedTransaction, entity.EnrichmentSummary) {
	enriched := make([]entity.EnrichedTransaction, 0, len(txs))
	unmatched := map[string]struct{}{}
	matched := 0

	for _, tx := range txs {
		etx := entity.EnrichedTransaction{Transaction: tx}

		if key, ok := numericProductKey(tx.ProductID); ok {
			if product, found := mapping[key]; found {
				etx.APICategory = product.Category
				etx.APIBrand = product.Brand
				etx.APIRating = product.Rating
				etx.APIMatch = true
			}
		}

		if etx.APIMatch {
			matched++
		} else {
			unmatched[tx.ProductName] = struct{}{}
		}
		enriched = append(enriched, etx)
	}

	summary := entity.EnrichmentSummary{
		TotalTransactions: len(txs),
		MatchedCount:      matched,
		UnmatchedProducts: sortedKeys(unmatched),
	}
	if len(txs) > 0 {
		summary.SuccessRate = round2(float64(matched) / float64(len(txs)) * 100)
	}
	return enriched, summary
}
