package service

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/diillson/sales-analytics-go/internal/domain/entity"
)

// DefaultCurrencySymbol é o símbolo usado quando nada foi configurado.
const DefaultCurrencySymbol = "₹"

// reportTimeLayout é o carimbo de geração impresso no cabeçalho.
const reportTimeLayout = "2006-01-02 15:04:05"

// reportWidth é a largura das réguas de seção do relatório.
const reportWidth = 44

// topCustomersShown limita a tabela de clientes do relatório.
const topCustomersShown = 5

// amountPrinter formata valores monetários com separador de milhar.
var amountPrinter = message.NewPrinter(language.English)

// ReportOptions controla a renderização do relatório de texto.
// GeneratedAt zero usa o horário atual; campos vazios caem nos
// padrões.
type ReportOptions struct {
	CurrencySymbol string
	GeneratedAt    time.Time
	TopProducts    int
}

// BuildSalesReport renders the final plain-text report. It only
// formats data already computed by the aggregation and enrichment
// steps; no totals are recomputed here beyond the average order value.
func BuildSalesReport(txs []entity.Transaction, analytics entity.SalesAnalytics, enrichment entity.EnrichmentSummary, opts ReportOptions) string {
	symbol := opts.CurrencySymbol
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	generatedAt := opts.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}
	topProducts := opts.TopProducts
	if topProducts <= 0 {
		topProducts = DefaultTopProducts
	}

	var b strings.Builder
	rule := strings.Repeat("=", reportWidth)
	sectionRule := strings.Repeat("-", reportWidth)

	b.WriteString(rule + "\n")
	b.WriteString("        SALES ANALYTICS REPORT\n")
	fmt.Fprintf(&b, "      Generated: %s\n", generatedAt.Format(reportTimeLayout))
	fmt.Fprintf(&b, "      Records Processed: %d\n", len(txs))
	b.WriteString(rule + "\n\n")

	avgOrderValue := 0.0
	if len(txs) > 0 {
		avgOrderValue = analytics.TotalRevenue / float64(len(txs))
	}

	b.WriteString("OVERALL SUMMARY\n")
	b.WriteString(sectionRule + "\n")
	fmt.Fprintf(&b, "Total Revenue:        %s%s\n", symbol, formatAmount(analytics.TotalRevenue))
	fmt.Fprintf(&b, "Total Transactions:   %d\n", len(txs))
	fmt.Fprintf(&b, "Average Order Value:  %s%s\n", symbol, formatAmount(avgOrderValue))
	fmt.Fprintf(&b, "Date Range:           %s\n\n", dateRange(txs))

	b.WriteString("REGION-WISE PERFORMANCE\n")
	b.WriteString(sectionRule + "\n")
	b.WriteString("Region     Sales            % Total   Transactions\n")
	for _, r := range analytics.Regions {
		fmt.Fprintf(&b, "%-10s %s%10s     %6.2f%%     %d\n",
			r.Region, symbol, formatAmount(r.TotalSales), r.Percentage, r.TransactionCount)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "TOP %d PRODUCTS\n", topProducts)
	b.WriteString(sectionRule + "\n")
	b.WriteString("Rank  Product            Quantity   Revenue\n")
	for i, p := range analytics.TopProducts {
		fmt.Fprintf(&b, "%-5d %-18s %-10d %s%s\n",
			i+1, p.ProductName, p.Quantity, symbol, formatAmount(p.Revenue))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "TOP %d CUSTOMERS\n", topCustomersShown)
	b.WriteString(sectionRule + "\n")
	b.WriteString("Rank  Customer   Total Spent     Orders\n")
	customers := analytics.Customers
	if len(customers) > topCustomersShown {
		customers = customers[:topCustomersShown]
	}
	for i, c := range customers {
		fmt.Fprintf(&b, "%-5d %-10s %s%s   %d\n",
			i+1, c.CustomerID, symbol, formatAmount(c.TotalSpent), c.PurchaseCount)
	}
	b.WriteString("\n")

	b.WriteString("DAILY SALES TREND\n")
	b.WriteString(sectionRule + "\n")
	b.WriteString("Date         Revenue        Transactions  Customers\n")
	for _, d := range analytics.DailyTrend {
		fmt.Fprintf(&b, "%s  %s%10s     %-5d          %d\n",
			d.Date, symbol, formatAmount(d.Revenue), d.TransactionCount, d.UniqueCustomers)
	}
	b.WriteString("\n")

	b.WriteString("PRODUCT PERFORMANCE ANALYSIS\n")
	b.WriteString(sectionRule + "\n")
	if analytics.Peak != nil {
		fmt.Fprintf(&b, "Best Selling Day: %s (%s%s)\n",
			analytics.Peak.Date, symbol, formatAmount(analytics.Peak.Revenue))
	} else {
		b.WriteString("Best Selling Day: N/A\n")
	}
	b.WriteString("Low Performing Products:\n")
	for _, p := range analytics.LowPerformers {
		fmt.Fprintf(&b, " - %s: %d units, %s%s\n",
			p.ProductName, p.Quantity, symbol, formatAmount(p.Revenue))
	}
	b.WriteString("\n")

	b.WriteString("API ENRICHMENT SUMMARY\n")
	b.WriteString(sectionRule + "\n")
	fmt.Fprintf(&b, "Total Products Enriched: %d\n", enrichment.MatchedCount)
	fmt.Fprintf(&b, "Success Rate: %.2f%%\n", enrichment.SuccessRate)
	b.WriteString("Products Not Enriched:\n")
	for _, p := range enrichment.UnmatchedProducts {
		fmt.Fprintf(&b, " - %s\n", p)
	}

	return b.String()
}

// formatAmount devolve o valor com separador de milhar e duas casas.
func formatAmount(v float64) string {
	return amountPrinter.Sprintf("%.2f", v)
}

// dateRange devolve "primeira to última" data cronologicamente, ou
// "N/A" sem transações.
func dateRange(txs []entity.Transaction) string {
	if len(txs) == 0 {
		return "N/A"
	}

	first, last := txs[0].Date, txs[0].Date
	for _, tx := range txs[1:] {
		if dateLess(tx.Date, first) {
			first = tx.Date
		}
		if dateLess(last, tx.Date) {
			last = tx.Date
		}
	}
	return fmt.Sprintf("%s to %s", first, last)
}
