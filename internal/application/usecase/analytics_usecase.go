package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/diillson/sales-analytics-go/internal/domain/entity"
	"github.com/diillson/sales-analytics-go/internal/domain/repository"
	"github.com/diillson/sales-analytics-go/internal/domain/service"
	"github.com/diillson/sales-analytics-go/internal/shared/types"
)

// pipelineSteps é o número de etapas numeradas exibidas durante um run.
const pipelineSteps = 10

// defaultAPITimeout limita a busca do catálogo quando nada foi configurado.
const defaultAPITimeout = 10 * time.Second

// topCustomersDisplayed limita a tabela de clientes exibida no console.
const topCustomersDisplayed = 5

// amountPrinter formata valores com separador de milhar nas saídas do console.
var amountPrinter = message.NewPrinter(language.English)

// AnalyticsUseCase handles the end-to-end sales analytics pipeline.
type AnalyticsUseCase struct {
	salesRepo   repository.SalesDataRepository
	productRepo repository.ProductAPIRepository
	exportRepo  repository.ExportRepository
	console     types.ConsoleInterface
}

// NewAnalyticsUseCase creates a new analytics use case.
func NewAnalyticsUseCase(
	salesRepo repository.SalesDataRepository,
	productRepo repository.ProductAPIRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		salesRepo:   salesRepo,
		productRepo: productRepo,
		exportRepo:  exportRepo,
		console:     console,
	}
}

// RunPipeline executa o pipeline completo de análise de vendas em dez
// etapas numeradas: leitura, limpeza, filtro, agregação, exibição,
// enriquecimento via API e geração dos artefatos de saída.
func (uc *AnalyticsUseCase) RunPipeline(ctx context.Context, args *types.CLIArgs) error {
	symbol := args.CurrencySymbol
	if symbol == "" {
		symbol = service.DefaultCurrencySymbol
	}

	progress := uc.console.ProgressWithTotal(pipelineSteps)

	// Etapa 1: leitura do arquivo bruto
	uc.console.LogInfo("[1/10] Reading sales data...")
	lines, err := uc.salesRepo.ReadSalesLines(ctx, args.InputFile)
	if err != nil {
		progress.Stop()
		return err
	}
	uc.console.LogSuccess("Successfully read %d lines", len(lines))
	progress.Increment()

	// Etapa 2: parse e limpeza dos registros
	uc.console.LogInfo("[2/10] Parsing and cleaning data...")
	txs, stats := service.ParseTransactions(lines)
	if stats.TotalRecords == 0 {
		progress.Stop()
		return types.ErrNoRecords
	}
	uc.console.Printf("Total records parsed: %d\n", stats.TotalRecords)
	uc.console.Printf("Invalid records removed: %d\n", stats.InvalidRecords)
	uc.console.Printf("Valid records after cleaning: %d\n", stats.ValidRecords)
	if stats.ValidRecords == 0 {
		progress.Stop()
		return types.ErrNoValidRecords
	}
	progress.Increment()

	// Etapa 3: opções de filtro disponíveis no conjunto válido
	uc.console.LogInfo("[3/10] Filter Options Available:")
	uc.displayFilterOptions(txs, symbol)
	progress.Increment()

	// Etapa 4: resolução e aplicação dos critérios de filtro
	uc.console.LogInfo("[4/10] Validating transactions...")
	criteria := entity.FilterCriteria{
		Region:    args.Region,
		MinAmount: args.MinAmount,
		MaxAmount: args.MaxAmount,
	}
	if args.Interactive {
		criteria = uc.promptFilterCriteria(criteria)
	}
	filtered, rejected := service.FilterTransactions(txs, criteria)
	uc.console.LogSuccess("Valid: %d | Invalid: %d", len(filtered), stats.InvalidRecords)
	if rejected > 0 {
		uc.console.LogInfo("Filtered out %d transactions outside the requested criteria", rejected)
	}
	progress.Increment()

	// Etapa 5: agregação
	uc.console.LogInfo("[5/10] Analyzing sales data...")
	analytics := service.Analyze(filtered, service.AnalysisOptions{
		TopProducts:  args.TopProducts,
		LowThreshold: args.LowThreshold,
	})
	uc.console.LogSuccess("Analysis complete")
	progress.Increment()

	// Etapa 6: exibição das agregações no console
	uc.console.LogInfo("[6/10] Displaying analytics...")
	uc.displayAnalytics(analytics, symbol)
	progress.Increment()

	// Etapa 7: catálogo de produtos da API externa
	uc.console.LogInfo("[7/10] Fetching product data from API...")
	mapping := uc.fetchProductMapping(ctx, args)
	progress.Increment()

	// Etapa 8: enriquecimento das transações válidas
	uc.console.LogInfo("[8/10] Enriching sales data...")
	enriched, enrichment := service.EnrichTransactions(filtered, mapping)
	uc.console.LogSuccess("Enriched %d/%d transactions (%.1f%%)",
		enrichment.MatchedCount, len(enriched), enrichment.SuccessRate)
	progress.Increment()

	// Etapa 9: gravação do arquivo enriquecido
	uc.console.LogInfo("[9/10] Saving enriched data...")
	enrichedPath, err := uc.exportRepo.WriteEnrichedData(enriched, args.EnrichedFile)
	if err != nil {
		progress.Stop()
		return err
	}
	uc.console.LogSuccess("Saved to: %s", enrichedPath)
	progress.Increment()

	// Etapa 10: relatório final e exportações opcionais
	uc.console.LogInfo("[10/10] Generating report...")
	report := service.BuildSalesReport(filtered, analytics, enrichment, service.ReportOptions{
		CurrencySymbol: args.CurrencySymbol,
		TopProducts:    args.TopProducts,
	})
	reportPath, err := uc.exportRepo.WriteSalesReport(report, args.ReportFile)
	if err != nil {
		progress.Stop()
		return err
	}
	uc.console.LogSuccess("Report saved to: %s", reportPath)

	uc.exportSummaries(analytics, stats, enrichment, args)
	progress.Increment()
	progress.Stop()

	uc.console.LogSuccess("Process complete!")
	return nil
}

// displayFilterOptions mostra as regiões e a faixa de valores presentes
// nos registros válidos, antes de o usuário decidir filtrar.
func (uc *AnalyticsUseCase) displayFilterOptions(txs []entity.Transaction, symbol string) {
	regionSet := make(map[string]struct{})
	for _, tx := range txs {
		regionSet[tx.Region] = struct{}{}
	}
	regions := make([]string, 0, len(regionSet))
	for region := range regionSet {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	minTotal := txs[0].LineTotal()
	maxTotal := minTotal
	for _, tx := range txs[1:] {
		total := tx.LineTotal()
		if total < minTotal {
			minTotal = total
		}
		if total > maxTotal {
			maxTotal = total
		}
	}

	uc.console.Printf("Regions: %s\n", strings.Join(regions, ", "))
	uc.console.Printf("Amount Range: %s%s - %s%s\n",
		symbol, amountPrinter.Sprintf("%.0f", minTotal),
		symbol, amountPrinter.Sprintf("%.0f", maxTotal))
}

// promptFilterCriteria coleta critérios de filtro interativamente.
// Entradas vazias mantêm o critério vindo das flags; valores não
// numéricos geram aviso e deixam aquele limite de fora.
func (uc *AnalyticsUseCase) promptFilterCriteria(criteria entity.FilterCriteria) entity.FilterCriteria {
	if !uc.console.PromptConfirm("Do you want to filter data?") {
		return criteria
	}

	if region := uc.console.PromptText("Enter region (or press Enter to skip)"); region != "" {
		criteria.Region = region
	}

	if raw := uc.console.PromptText("Enter minimum amount (or press Enter to skip)"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			uc.console.LogWarning("Ignoring invalid minimum amount: %s", raw)
		} else {
			criteria.MinAmount = &value
		}
	}

	if raw := uc.console.PromptText("Enter maximum amount (or press Enter to skip)"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			uc.console.LogWarning("Ignoring invalid maximum amount: %s", raw)
		} else {
			criteria.MaxAmount = &value
		}
	}

	return criteria
}

// displayAnalytics renderiza as visões agregadas em tabelas e no
// gráfico de barras de tendência diária.
func (uc *AnalyticsUseCase) displayAnalytics(analytics entity.SalesAnalytics, symbol string) {
	uc.console.Printf("\n%s\n",
		pterm.FgYellow.Sprintf("Total Revenue: %s%s", symbol, amountPrinter.Sprintf("%.2f", analytics.TotalRevenue)))

	if len(analytics.Regions) > 0 {
		table := uc.console.CreateTable()
		table.AddColumn("Region")
		table.AddColumn("Total Sales")
		table.AddColumn("Share")
		table.AddColumn("Transactions")

		for _, region := range analytics.Regions {
			table.AddRow(
				pterm.FgMagenta.Sprint(region.Region),
				fmt.Sprintf("%s%s", symbol, amountPrinter.Sprintf("%.2f", region.TotalSales)),
				fmt.Sprintf("%.2f%%", region.Percentage),
				fmt.Sprintf("%d", region.TransactionCount),
			)
		}
		uc.console.Print(table.Render())
	}

	if len(analytics.TopProducts) > 0 {
		table := uc.console.CreateTable()
		table.AddColumn("Product")
		table.AddColumn("Units Sold")
		table.AddColumn("Revenue")

		for _, product := range analytics.TopProducts {
			table.AddRow(
				pterm.FgGreen.Sprint(product.ProductName),
				fmt.Sprintf("%d", product.Quantity),
				fmt.Sprintf("%s%s", symbol, amountPrinter.Sprintf("%.2f", product.Revenue)),
			)
		}
		uc.console.Print(table.Render())
	}

	if len(analytics.Customers) > 0 {
		table := uc.console.CreateTable()
		table.AddColumn("Customer")
		table.AddColumn("Total Spent")
		table.AddColumn("Purchases")
		table.AddColumn("Avg Order")

		customers := analytics.Customers
		if len(customers) > topCustomersDisplayed {
			customers = customers[:topCustomersDisplayed]
		}
		for _, customer := range customers {
			table.AddRow(
				pterm.FgCyan.Sprint(customer.CustomerID),
				fmt.Sprintf("%s%s", symbol, amountPrinter.Sprintf("%.2f", customer.TotalSpent)),
				fmt.Sprintf("%d", customer.PurchaseCount),
				fmt.Sprintf("%s%s", symbol, amountPrinter.Sprintf("%.2f", customer.AvgOrderValue)),
			)
		}
		uc.console.Print(table.Render())
	}

	if len(analytics.DailyTrend) > 0 {
		dailyRevenues := make([]types.DailyRevenue, len(analytics.DailyTrend))
		for i, day := range analytics.DailyTrend {
			dailyRevenues[i] = types.DailyRevenue{Date: day.Date, Revenue: day.Revenue}
		}
		uc.console.DisplayTrendBars(dailyRevenues)
	}

	if analytics.Peak != nil {
		uc.console.LogInfo("Peak sales day: %s (%s%s)",
			analytics.Peak.Date, symbol, amountPrinter.Sprintf("%.2f", analytics.Peak.Revenue))
	}
}

// fetchProductMapping busca o catálogo na API e o indexa por ID
// numérico. Qualquer falha vira aviso e devolve um mapping vazio para
// que o pipeline siga sem enriquecimento.
func (uc *AnalyticsUseCase) fetchProductMapping(ctx context.Context, args *types.CLIArgs) entity.ProductMapping {
	if args.SkipEnrichment {
		uc.console.LogInfo("Enrichment skipped by request")
		return entity.ProductMapping{}
	}

	timeout := time.Duration(args.APITimeout) * time.Second
	if timeout <= 0 {
		timeout = defaultAPITimeout
	}
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	status := uc.console.Status("Fetching product catalog...")
	products, err := uc.productRepo.FetchAllProducts(fetchCtx, args.APIBaseURL, args.APIPageLimit)
	status.Stop()
	if err != nil {
		uc.console.LogWarning("Could not fetch product data: %s. Continuing without enrichment.", err)
		return entity.ProductMapping{}
	}

	uc.console.LogSuccess("Fetched %d products", len(products))
	return service.BuildProductMapping(products)
}

// exportSummaries grava os formatos opcionais de resumo solicitados
// via report-name/report-type. Falhas de exportação são registradas
// sem interromper o pipeline.
func (uc *AnalyticsUseCase) exportSummaries(
	analytics entity.SalesAnalytics,
	stats entity.ParseStats,
	enrichment entity.EnrichmentSummary,
	args *types.CLIArgs,
) {
	if args.ReportName == "" || len(args.ReportType) == 0 {
		return
	}

	for _, reportType := range args.ReportType {
		switch strings.ToLower(reportType) {
		case "csv":
			csvPath, err := uc.exportRepo.ExportSummaryToCSV(analytics, stats, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportSummaryToJSON(analytics, stats, enrichment, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportSummaryToPDF(analytics, stats, enrichment, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		case "xlsx":
			xlsxPath, err := uc.exportRepo.ExportSummaryToXLSX(analytics, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to XLSX: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to XLSX: %s", xlsxPath)
			}
		default:
			uc.console.LogWarning("Skipping unsupported report type: %s", reportType)
		}
	}
}
