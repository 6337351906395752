package repository

import (
	"github.com/diillson/sales-analytics-go/internal/domain/entity"
)

type ExportRepository interface {
	// Saídas canônicas do pipeline
	WriteEnrichedData(enriched []entity.EnrichedTransaction, path string) (string, error)
	WriteSalesReport(report string, path string) (string, error)

	// Exportações opcionais do resumo analítico
	ExportSummaryToCSV(analytics entity.SalesAnalytics, stats entity.ParseStats, filename string, outputDir string) (string, error)
	ExportSummaryToJSON(analytics entity.SalesAnalytics, stats entity.ParseStats, enrichment entity.EnrichmentSummary, filename string, outputDir string) (string, error)
	ExportSummaryToPDF(analytics entity.SalesAnalytics, stats entity.ParseStats, enrichment entity.EnrichmentSummary, filename string, outputDir string) (string, error)
	ExportSummaryToXLSX(analytics entity.SalesAnalytics, filename string, outputDir string) (string, error)
}
