package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/diillson/sales-analytics-go/internal/domain/entity"
	"github.com/diillson/sales-analytics-go/internal/domain/repository"
)

// enrichedHeader é o cabeçalho do arquivo enriquecido, no mesmo
// formato pipe do arquivo de entrada mais as colunas da API.
const enrichedHeader = "TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region|API_Category|API_Brand|API_Rating|API_Match"

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// WriteEnrichedData grava as transações enriquecidas em formato pipe.
// Campos da API ficam vazios quando não houve correspondência; a
// coluna API_Match carrega os literais True/False.
func (r *ExportRepositoryImpl) WriteEnrichedData(enriched []entity.EnrichedTransaction, path string) (string, error) {
	if err := ensureParentDir(path); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(enrichedHeader + "\n")
	for _, etx := range enriched {
		fields := []string{
			etx.TransactionID,
			etx.Date,
			etx.ProductID,
			etx.ProductName,
			strconv.Itoa(etx.Quantity),
			strconv.Itoa(etx.UnitPrice),
			etx.CustomerID,
			etx.Region,
			etx.APICategory,
			etx.APIBrand,
			formatRating(etx.APIRating),
			formatMatch(etx.APIMatch),
		}
		b.WriteString(strings.Join(fields, "|") + "\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("error writing enriched data file: %w", err)
	}
	return path, nil
}

// WriteSalesReport grava o relatório de texto final.
func (r *ExportRepositoryImpl) WriteSalesReport(report string, path string) (string, error) {
	if err := ensureParentDir(path); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(report), 0644); err != nil {
		return "", fmt.Errorf("error writing report file: %w", err)
	}
	return path, nil
}

// ExportSummaryToCSV exporta o desempenho por região em CSV, com os
// contadores da limpeza em uma seção final.
func (r *ExportRepositoryImpl) ExportSummaryToCSV(analytics entity.SalesAnalytics, stats entity.ParseStats, filename string, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Region", "Total Sales", "Percentage", "Transactions"}); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	totalTransactions := 0
	for _, region := range analytics.Regions {
		totalTransactions += region.TransactionCount
		row := []string{
			region.Region,
			fmt.Sprintf("%.2f", region.TotalSales),
			fmt.Sprintf("%.2f%%", region.Percentage),
			strconv.Itoa(region.TransactionCount),
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	totalRow := []string{"Total", fmt.Sprintf("%.2f", analytics.TotalRevenue), "", strconv.Itoa(totalTransactions)}
	if err := writer.Write(totalRow); err != nil {
		return "", fmt.Errorf("error writing CSV totals: %w", err)
	}

	// Seção de contadores da limpeza, separada por uma linha vazia.
	statsRows := [][]string{
		{""},
		{"Records Processed", strconv.Itoa(stats.TotalRecords)},
		{"Valid Records", strconv.Itoa(stats.ValidRecords)},
		{"Invalid Records", strconv.Itoa(stats.InvalidRecords)},
	}
	for _, row := range statsRows {
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("error writing CSV stats: %w", err)
		}
	}

	return outputFilename, nil
}

// summaryPayload é o envelope do resumo exportado em JSON.
type summaryPayload struct {
	ReportID    string                   `json:"report_id"`
	GeneratedAt string                   `json:"generated_at"`
	Stats       entity.ParseStats        `json:"stats"`
	Analytics   entity.SalesAnalytics    `json:"analytics"`
	Enrichment  entity.EnrichmentSummary `json:"enrichment"`
}

// ExportSummaryToJSON exporta o resumo completo da execução em JSON.
func (r *ExportRepositoryImpl) ExportSummaryToJSON(analytics entity.SalesAnalytics, stats entity.ParseStats, enrichment entity.EnrichmentSummary, filename string, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	payload := summaryPayload{
		ReportID:    uuid.New().String(),
		GeneratedAt: time.Now().Format(time.RFC3339),
		Stats:       stats,
		Analytics:   analytics,
		Enrichment:  enrichment,
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return outputFilename, nil
}

// ExportSummaryToPDF exporta o resumo analítico em PDF. Valores
// monetários saem sem símbolo de moeda, que as fontes nativas do PDF
// não cobrem.
func (r *ExportRepositoryImpl) ExportSummaryToPDF(analytics entity.SalesAnalytics, stats entity.ParseStats, enrichment entity.EnrichmentSummary, filename string, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4")
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, tr("Sales Analytics Summary"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, tr(fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05"))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	drawSection := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(190, 8, tr(title), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
	}
	drawLine := func(label, value string) {
		pdf.CellFormat(60, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(130, 6, tr(value), "", 1, "L", false, 0, "")
	}

	drawSection("Overall Summary")
	drawLine("Total Revenue", fmt.Sprintf("%.2f", analytics.TotalRevenue))
	drawLine("Records Processed", strconv.Itoa(stats.TotalRecords))
	drawLine("Valid Records", strconv.Itoa(stats.ValidRecords))
	drawLine("Invalid Records", strconv.Itoa(stats.InvalidRecords))
	pdf.Ln(4)

	drawSection("Region Performance")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(50, 7, tr("Region"), "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, tr("Sales"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, tr("% Total"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, tr("Transactions"), "1", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, region := range analytics.Regions {
		pdf.CellFormat(50, 7, tr(region.Region), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, fmt.Sprintf("%.2f", region.TotalSales), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.2f%%", region.Percentage), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 7, strconv.Itoa(region.TransactionCount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	drawSection("Top Products")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(90, 7, tr("Product"), "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, tr("Quantity"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(50, 7, tr("Revenue"), "1", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, product := range analytics.TopProducts {
		pdf.CellFormat(90, 7, tr(product.ProductName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, strconv.Itoa(product.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 7, fmt.Sprintf("%.2f", product.Revenue), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	drawSection("API Enrichment")
	drawLine("Matched Transactions", fmt.Sprintf("%d of %d", enrichment.MatchedCount, enrichment.TotalTransactions))
	drawLine("Success Rate", fmt.Sprintf("%.2f%%", enrichment.SuccessRate))
	if len(enrichment.UnmatchedProducts) > 0 {
		drawLine("Not Enriched", strings.Join(enrichment.UnmatchedProducts, ", "))
	}

	pdf.SetY(-15)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(190, 10, tr("Sales Analytics Report"), "", 0, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return outputFilename, nil
}

// ExportSummaryToXLSX exporta o resumo analítico em uma planilha com
// uma aba por visão.
func (r *ExportRepositoryImpl) ExportSummaryToXLSX(analytics entity.SalesAnalytics, filename string, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const overviewSheet = "Overview"
	if err := f.SetSheetName("Sheet1", overviewSheet); err != nil {
		return "", fmt.Errorf("error renaming overview sheet: %w", err)
	}

	f.SetCellValue(overviewSheet, "A1", "Metric")
	f.SetCellValue(overviewSheet, "B1", "Value")
	f.SetCellValue(overviewSheet, "A2", "Total Revenue")
	f.SetCellValue(overviewSheet, "B2", analytics.TotalRevenue)
	f.SetCellValue(overviewSheet, "A3", "Regions")
	f.SetCellValue(overviewSheet, "B3", len(analytics.Regions))
	f.SetCellValue(overviewSheet, "A4", "Customers")
	f.SetCellValue(overviewSheet, "B4", len(analytics.Customers))
	if analytics.Peak != nil {
		f.SetCellValue(overviewSheet, "A5", "Best Selling Day")
		f.SetCellValue(overviewSheet, "B5", analytics.Peak.Date)
	}

	const regionSheet = "Regions"
	if _, err := f.NewSheet(regionSheet); err != nil {
		return "", fmt.Errorf("error creating region sheet: %w", err)
	}
	f.SetCellValue(regionSheet, "A1", "Region")
	f.SetCellValue(regionSheet, "B1", "Total Sales")
	f.SetCellValue(regionSheet, "C1", "Percentage")
	f.SetCellValue(regionSheet, "D1", "Transactions")
	for i, region := range analytics.Regions {
		row := i + 2
		f.SetCellValue(regionSheet, fmt.Sprintf("A%d", row), region.Region)
		f.SetCellValue(regionSheet, fmt.Sprintf("B%d", row), region.TotalSales)
		f.SetCellValue(regionSheet, fmt.Sprintf("C%d", row), region.Percentage)
		f.SetCellValue(regionSheet, fmt.Sprintf("D%d", row), region.TransactionCount)
	}

	const productSheet = "Products"
	if _, err := f.NewSheet(productSheet); err != nil {
		return "", fmt.Errorf("error creating product sheet: %w", err)
	}
	f.SetCellValue(productSheet, "A1", "Product")
	f.SetCellValue(productSheet, "B1", "Quantity")
	f.SetCellValue(productSheet, "C1", "Revenue")
	for i, product := range analytics.TopProducts {
		row := i + 2
		f.SetCellValue(productSheet, fmt.Sprintf("A%d", row), product.ProductName)
		f.SetCellValue(productSheet, fmt.Sprintf("B%d", row), product.Quantity)
		f.SetCellValue(productSheet, fmt.Sprintf("C%d", row), product.Revenue)
	}

	const trendSheet = "Daily Trend"
	if _, err := f.NewSheet(trendSheet); err != nil {
		return "", fmt.Errorf("error creating trend sheet: %w", err)
	}
	f.SetCellValue(trendSheet, "A1", "Date")
	f.SetCellValue(trendSheet, "B1", "Revenue")
	f.SetCellValue(trendSheet, "C1", "Transactions")
	f.SetCellValue(trendSheet, "D1", "Unique Customers")
	for i, day := range analytics.DailyTrend {
		row := i + 2
		f.SetCellValue(trendSheet, fmt.Sprintf("A%d", row), day.Date)
		f.SetCellValue(trendSheet, fmt.Sprintf("B%d", row), day.Revenue)
		f.SetCellValue(trendSheet, fmt.Sprintf("C%d", row), day.TransactionCount)
		f.SetCellValue(trendSheet, fmt.Sprintf("D%d", row), day.UniqueCustomers)
	}

	if err := f.SaveAs(outputFilename); err != nil {
		return "", fmt.Errorf("error writing XLSX file: %w", err)
	}

	return outputFilename, nil
}

// generateFilename monta o nome final com carimbo de data e garante o
// diretório de saída.
func generateFilename(baseName string, outputDir string, extension string) (string, error) {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return "", fmt.Errorf("error creating output directory: %w", err)
		}
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", baseName, timestamp, extension)
	return filepath.Join(outputDir, filename), nil
}

// ensureParentDir cria o diretório pai do caminho, se necessário.
func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	return nil
}

// formatRating segue a convenção do arquivo enriquecido: rating zero
// ou ausente vira campo vazio.
func formatRating(rating float64) string {
	if rating == 0 {
		return ""
	}
	return strconv.FormatFloat(rating, 'f', -1, 64)
}

// formatMatch usa os literais True/False no arquivo enriquecido.
func formatMatch(matched bool) string {
	if matched {
		return "True"
	}
	return "False"
}
