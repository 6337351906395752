package service

import (
	"strings"
	"testing"
	"time"

	"github.com/diillson/sales-analytics-go/internal/domain/entity"
)

func reportFixture() []entity.Transaction {
	return []entity.Transaction{
		{TransactionID: "T001", Date: "2024-01-05", ProductID: "P101", ProductName: "Laptop", Quantity: 2, UnitPrice: 45000, CustomerID: "C001", Region: "North"},
		{TransactionID: "T002", Date: "2024-01-06", ProductID: "P102", ProductName: "Mouse", Quantity: 10, UnitPrice: 1200, CustomerID: "C002", Region: "South"},
		{TransactionID: "T003", Date: "2024-01-05", ProductID: "P101", ProductName: "Laptop", Quantity: 1, UnitPrice: 45000, CustomerID: "C002", Region: "North"},
	}
}

func TestBuildSalesReport(t *testing.T) {
	txs := reportFixture()
	analytics := Analyze(txs, AnalysisOptions{})
	enrichment := entity.EnrichmentSummary{
		TotalTransactions: 3,
		MatchedCount:      2,
		SuccessRate:       66.67,
		UnmatchedProducts: []string{"Mouse"},
	}
	opts := ReportOptions{
		GeneratedAt: time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC),
	}

	report := BuildSalesReport(txs, analytics, enrichment, opts)

	wantLines := []string{
		strings.Repeat("=", 44),
		"        SALES ANALYTICS REPORT",
		"      Generated: 2024-02-01 10:30:00",
		"      Records Processed: 3",
		"OVERALL SUMMARY",
		"Total Revenue:        ₹147,000.00",
		"Total Transactions:   3",
		"Average Order Value:  ₹49,000.00",
		"Date Range:           2024-01-05 to 2024-01-06",
		"REGION-WISE PERFORMANCE",
		"Region     Sales            % Total   Transactions",
		"North      ₹135,000.00      91.84%     2",
		"South      ₹ 12,000.00       8.16%     1",
		"TOP 5 PRODUCTS",
		"Rank  Product            Quantity   Revenue",
		"1     Mouse              10         ₹12,000.00",
		"2     Laptop             3          ₹135,000.00",
		"TOP 5 CUSTOMERS",
		"Rank  Customer   Total Spent     Orders",
		"1     C001       ₹90,000.00   1",
		"2     C002       ₹57,000.00   2",
		"DAILY SALES TREND",
		"Date         Revenue        Transactions  Customers",
		"2024-01-05  ₹135,000.00     2              2",
		"2024-01-06  ₹ 12,000.00     1              1",
		"PRODUCT PERFORMANCE ANALYSIS",
		"Best Selling Day: 2024-01-05 (₹135,000.00)",
		"Low Performing Products:",
		" - Laptop: 3 units, ₹135,000.00",
		"API ENRICHMENT SUMMARY",
		"Total Products Enriched: 2",
		"Success Rate: 66.67%",
		"Products Not Enriched:",
		" - Mouse",
	}
	for _, line := range wantLines {
		if !strings.Contains(report, line) {
			t.Errorf("relatório sem a linha %q", line)
		}
	}
}

func TestBuildSalesReportMoedaConfiguravel(t *testing.T) {
	txs := reportFixture()
	analytics := Analyze(txs, AnalysisOptions{})
	opts := ReportOptions{
		CurrencySymbol: "$",
		GeneratedAt:    time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC),
	}

	report := BuildSalesReport(txs, analytics, entity.EnrichmentSummary{}, opts)

	if !strings.Contains(report, "Total Revenue:        $147,000.00") {
		t.Error("símbolo de moeda configurado não foi aplicado")
	}
	if strings.Contains(report, "₹") {
		t.Error("símbolo padrão não deveria aparecer com moeda configurada")
	}
}

func TestBuildSalesReportCorteConfiguravel(t *testing.T) {
	txs := reportFixture()
	analytics := Analyze(txs, AnalysisOptions{TopProducts: 3})
	opts := ReportOptions{
		TopProducts: 3,
		GeneratedAt: time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC),
	}

	report := BuildSalesReport(txs, analytics, entity.EnrichmentSummary{}, opts)

	if !strings.Contains(report, "TOP 3 PRODUCTS") {
		t.Error("título deveria refletir o corte configurado")
	}
}

func TestBuildSalesReportSemDados(t *testing.T) {
	analytics := Analyze(nil, AnalysisOptions{})
	opts := ReportOptions{
		GeneratedAt: time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC),
	}

	report := BuildSalesReport(nil, analytics, entity.EnrichmentSummary{}, opts)

	wantLines := []string{
		"      Records Processed: 0",
		"Total Revenue:        ₹0.00",
		"Average Order Value:  ₹0.00",
		"Date Range:           N/A",
		"Best Selling Day: N/A",
		"Success Rate: 0.00%",
	}
	for _, line := range wantLines {
		if !strings.Contains(report, line) {
			t.Errorf("relatório sem a linha %q", line)
		}
	}
}
