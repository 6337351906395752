package entity

// Transaction represents a single validated sales record.
// Instances are immutable once emitted by the parser; every field has
// already passed the cleaning rules.
type Transaction struct {
	TransactionID string `json:"transaction_id"`
	Date          string `json:"date"`
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	Quantity      int    `json:"quantity"`
	UnitPrice     int    `json:"unit_price"`
	CustomerID    string `json:"customer_id"`
	Region        string `json:"region"`
}

// LineTotal retorna o valor total da linha (quantidade x preço unitário).
// Sempre calculado sob demanda, nunca armazenado.
func (t Transaction) LineTotal() float64 {
	return float64(t.Quantity) * float64(t.UnitPrice)
}

// EnrichedTransaction is a Transaction augmented with product metadata
// from the external API. The three API fields are only meaningful when
// APIMatch is true.
type EnrichedTransaction struct {
	Transaction
	APICategory string  `json:"api_category,omitempty"`
	APIBrand    string  `json:"api_brand,omitempty"`
	APIRating   float64 `json:"api_rating,omitempty"`
	APIMatch    bool    `json:"api_match"`
}

// ParseStats holds the record counters accumulated while cleaning the
// raw sales data. ValidRecords is derivable and kept for convenience.
type ParseStats struct {
	TotalRecords   int `json:"total_records"`
	InvalidRecords int `json:"invalid_records"`
	ValidRecords   int `json:"valid_records"`
}

// FilterCriteria carries the optional constraints applied before the
// aggregation stage. A nil amount bound means unbounded on that side;
// an empty Region means no region constraint.
type FilterCriteria struct {
	Region    string   `json:"region,omitempty"`
	MinAmount *float64 `json:"min_amount,omitempty"`
	MaxAmount *float64 `json:"max_amount,omitempty"`
}

// IsZero informa se nenhum critério de filtro foi definido.
func (c FilterCriteria) IsZero() bool {
	return c.Region == "" && c.MinAmount == nil && c.MaxAmount == nil
}
