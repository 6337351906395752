package entity

// RegionSummary holds the accumulated sales for one region plus its
// share of the grand total, derived after all records are folded in.
type RegionSummary struct {
	Region           string  `json:"region"`
	TotalSales       float64 `json:"total_sales"`
	Percentage       float64 `json:"percentage"`
	TransactionCount int     `json:"transaction_count"`
}

// ProductSummary aggregates quantity and revenue per product name.
type ProductSummary struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

// CustomerSummary aggregates spending per customer. ProductsBought is
// the sorted set of distinct product names the customer purchased.
type CustomerSummary struct {
	CustomerID     string   `json:"customer_id"`
	TotalSpent     float64  `json:"total_spent"`
	PurchaseCount  int      `json:"purchase_count"`
	AvgOrderValue  float64  `json:"avg_order_value"`
	ProductsBought []string `json:"products_bought"`
}

// DaySummary aggregates revenue, transaction count and distinct
// customers for one calendar date.
type DaySummary struct {
	Date             string  `json:"date"`
	Revenue          float64 `json:"revenue"`
	TransactionCount int     `json:"transaction_count"`
	UniqueCustomers  int     `json:"unique_customers"`
}

// PeakDay identifica o dia com receita estritamente máxima.
type PeakDay struct {
	Date             string  `json:"date"`
	Revenue          float64 `json:"revenue"`
	TransactionCount int     `json:"transaction_count"`
}

// SalesAnalytics bundles every aggregate view computed for one pipeline
// run. Peak is nil when the transaction set is empty.
type SalesAnalytics struct {
	TotalRevenue  float64           `json:"total_revenue"`
	Regions       []RegionSummary   `json:"regions"`
	TopProducts   []ProductSummary  `json:"top_products"`
	LowPerformers []ProductSummary  `json:"low_performers"`
	Customers     []CustomerSummary `json:"customers"`
	DailyTrend    []DaySummary      `json:"daily_trend"`
	Peak          *PeakDay          `json:"peak_day,omitempty"`
}

// EnrichmentSummary describes how many transactions matched a product
// in the external metadata. UnmatchedProducts is the sorted set of
// distinct product names that never matched.
type EnrichmentSummary struct {
	TotalTransactions int      `json:"total_transactions"`
	MatchedCount      int      `json:"matched_count"`
	SuccessRate       float64  `json:"success_rate"`
	UnmatchedProducts []string `json:"unmatched_products"`
}
