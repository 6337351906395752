package service

import (
	"math"
	"sort"
	"time"

	"github.com/diillson/sales-analytics-go/internal/domain/entity"
)

// dateLayout é o formato esperado no campo Date das transações.
const dateLayout = "2006-01-02"

// Valores usados quando a configuração não define cortes próprios.
const (
	DefaultTopProducts  = 5
	DefaultLowThreshold = 10
)

// AnalysisOptions configura os cortes aplicados pela agregação.
type AnalysisOptions struct {
	TopProducts  int
	LowThreshold int
}

// Analyze computes every aggregate view for one pipeline run. Options
// left at zero fall back to the default cuts.
func Analyze(txs []entity.Transaction, opts AnalysisOptions) entity.SalesAnalytics {
	if opts.TopProducts <= 0 {
		opts.TopProducts = DefaultTopProducts
	}
	if opts.LowThreshold <= 0 {
		opts.LowThreshold = DefaultLowThreshold
	}

	trend := DailyTrend(txs)

	return entity.SalesAnalytics{
		TotalRevenue:  TotalRevenue(txs),
		Regions:       SummarizeRegions(txs),
		TopProducts:   TopProducts(txs, opts.TopProducts),
		LowPerformers: LowPerformingProducts(txs, opts.LowThreshold),
		Customers:     SummarizeCustomers(txs),
		DailyTrend:    trend,
		Peak:          FindPeakDay(trend),
	}
}

// TotalRevenue sums quantity times unit price over all transactions,
// rounded to two decimal places.
func TotalRevenue(txs []entity.Transaction) float64 {
	total := 0.0
	for _, tx := range txs {
		total += tx.LineTotal()
	}
	return round2(total)
}

// regionAccumulator acumula vendas de uma região antes da derivação
// do percentual, que depende do total geral.
type regionAccumulator struct {
	sales float64
	count int
}

// SummarizeRegions aggregates sales per region, ordered by descending
// total sales. Ties keep first-seen input order. Percentages are
// derived only after the grand total is known and are 0 when the
// grand total is 0.
func SummarizeRegions(txs []entity.Transaction) []entity.RegionSummary {
	acc := map[string]*regionAccumulator{}
	order := []string{}

	for _, tx := range txs {
		a, ok := acc[tx.Region]
		if !ok {
			a = &regionAccumulator{}
			acc[tx.Region] = a
			order = append(order, tx.Region)
		}
		a.sales += tx.LineTotal()
		a.count++
	}

	grandTotal := 0.0
	for _, a := range acc {
		grandTotal += a.sales
	}

	summaries := make([]entity.RegionSummary, 0, len(order))
	for _, region := range order {
		a := acc[region]
		percentage := 0.0
		if grandTotal > 0 {
			percentage = round2(a.sales / grandTotal * 100)
		}
		summaries = append(summaries, entity.RegionSummary{
			Region:           region,
			TotalSales:       round2(a.sales),
			Percentage:       percentage,
			TransactionCount: a.count,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalSales > summaries[j].TotalSales
	})
	return summaries
}

// productAccumulator acumula quantidade e receita por produto.
type productAccumulator struct {
	quantity int
	revenue  float64
}

// rankProducts dobra quantidade e receita por nome de produto,
// preservando a ordem de primeira aparição.
func rankProducts(txs []entity.Transaction) []entity.ProductSummary {
	acc := map[string]*productAccumulator{}
	order := []string{}

	for _, tx := range txs {
		a, ok := acc[tx.ProductName]
		if !ok {
			a = &productAccumulator{}
			acc[tx.ProductName] = a
			order = append(order, tx.ProductName)
		}
		a.quantity += tx.Quantity
		a.revenue += tx.LineTotal()
	}

	summaries := make([]entity.ProductSummary, 0, len(order))
	for _, name := range order {
		a := acc[name]
		summaries = append(summaries, entity.ProductSummary{
			ProductName: name,
			Quantity:    a.quantity,
			Revenue:     round2(a.revenue),
		})
	}
	return summaries
}

// TopProducts returns the n best-selling products by total quantity,
// descending. Ties preserve first-seen input order.
func TopProducts(txs []entity.Transaction, n int) []entity.ProductSummary {
	ranked := rankProducts(txs)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	if n < 0 {
		n = 0
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// LowPerformingProducts returns products whose total quantity stayed
// strictly below the threshold, ascending by quantity.
func LowPerformingProducts(txs []entity.Transaction, threshold int) []entity.ProductSummary {
	low := []entity.ProductSummary{}
	for _, p := range rankProducts(txs) {
		if p.Quantity < threshold {
			low = append(low, p)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].Quantity < low[j].Quantity
	})
	return low
}

// customerAccumulator acumula gastos e produtos distintos por cliente.
type customerAccumulator struct {
	spent    float64
	count    int
	products map[string]struct{}
}

// SummarizeCustomers aggregates spending per customer, ordered by
// descending total spent with first-seen order on ties. Each summary
// carries the distinct product names bought, sorted alphabetically.
func SummarizeCustomers(txs []entity.Transaction) []entity.CustomerSummary {
	acc := map[string]*customerAccumulator{}
	order := []string{}

	for _, tx := range txs {
		a, ok := acc[tx.CustomerID]
		if !ok {
			a = &customerAccumulator{products: map[string]struct{}{}}
			acc[tx.CustomerID] = a
			order = append(order, tx.CustomerID)
		}
		a.spent += tx.LineTotal()
		a.count++
		a.products[tx.ProductName] = struct{}{}
	}

	summaries := make([]entity.CustomerSummary, 0, len(order))
	for _, customerID := range order {
		a := acc[customerID]
		avg := 0.0
		if a.count > 0 {
			avg = round2(a.spent / float64(a.count))
		}
		summaries = append(summaries, entity.CustomerSummary{
			CustomerID:     customerID,
			TotalSpent:     round2(a.spent),
			PurchaseCount:  a.count,
			AvgOrderValue:  avg,
			ProductsBought: sortedKeys(a.products),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalSpent > summaries[j].TotalSpent
	})
	return summaries
}

// dayAccumulator acumula receita, transações e clientes de um dia.
type dayAccumulator struct {
	revenue   float64
	count     int
	customers map[string]struct{}
}

// DailyTrend aggregates revenue per calendar date in chronological
// order. Dates are parsed so the ordering never depends on plain
// string comparison.
func DailyTrend(txs []entity.Transaction) []entity.DaySummary {
	acc := map[string]*dayAccumulator{}
	order := []string{}

	for _, tx := range txs {
		a, ok := acc[tx.Date]
		if !ok {
			a = &dayAccumulator{customers: map[string]struct{}{}}
			acc[tx.Date] = a
			order = append(order, tx.Date)
		}
		a.revenue += tx.LineTotal()
		a.count++
		a.customers[tx.CustomerID] = struct{}{}
	}

	days := make([]entity.DaySummary, 0, len(order))
	for _, date := range order {
		a := acc[date]
		days = append(days, entity.DaySummary{
			Date:             date,
			Revenue:          round2(a.revenue),
			TransactionCount: a.count,
			UniqueCustomers:  len(a.customers),
		})
	}

	sort.SliceStable(days, func(i, j int) bool {
		return dateLess(days[i].Date, days[j].Date)
	})
	return days
}

// FindPeakDay returns the day with strictly maximal revenue, or nil
// when the trend is empty. On revenue ties the earliest day wins.
func FindPeakDay(trend []entity.DaySummary) *entity.PeakDay {
	if len(trend) == 0 {
		return nil
	}

	best := trend[0]
	for _, day := range trend[1:] {
		if day.Revenue > best.Revenue {
			best = day
		}
	}
	return &entity.PeakDay{
		Date:             best.Date,
		Revenue:          best.Revenue,
		TransactionCount: best.TransactionCount,
	}
}

// dateLess compara duas datas no formato YYYY-MM-DD cronologicamente.
// Datas fora do formato caem na comparação lexicográfica, que para o
// formato esperado produz a mesma ordem.
func dateLess(a, b string) bool {
	ta, errA := time.Parse(dateLayout, a)
	tb, errB := time.Parse(dateLayout, b)
	if errA == nil && errB == nil {
		return ta.Before(tb)
	}
	return a < b
}

// round2 arredonda para duas casas decimais.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// sortedKeys devolve as chaves do conjunto em ordem alfabética.
func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
