package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/diillson/sales-analytics-go/pkg/version"

	"github.com/diillson/sales-analytics-go/internal/application/usecase"
	"github.com/diillson/sales-analytics-go/internal/domain/repository"
	"github.com/diillson/sales-analytics-go/internal/shared/types"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	analyticsUseCase *usecase.AnalyticsUseCase
	configRepo       repository.ConfigRepository
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:     "sales-analytics",
		Short:   "Sales Analytics CLI",
		Version: formattedVersion, // Use a versão formatada
		RunE:    app.runCommand,
		// O pipeline reporta a falha uma única vez na saída do main.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Personaliza a template para incluir mais informações de versão
	rootCmd.SetVersionTemplate(`{{printf "Sales Analytics version: %s\n" .Version}}`)

	// Adiciona flags de linha de comando
	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("input", "i", "data/sales_data.txt", "Path to the pipe-delimited sales data file")
	rootCmd.PersistentFlags().String("enriched-file", "data/enriched_sales_data.txt", "Path for the enriched sales data output")
	rootCmd.PersistentFlags().String("report-file", "output/sales_report.txt", "Path for the plain-text report output")
	rootCmd.PersistentFlags().StringP("region", "r", "", "Only analyze transactions from this region")
	rootCmd.PersistentFlags().Float64("min-amount", 0, "Minimum transaction amount to analyze (0 = no minimum)")
	rootCmd.PersistentFlags().Float64("max-amount", 0, "Maximum transaction amount to analyze (0 = no maximum)")
	rootCmd.PersistentFlags().BoolP("interactive", "I", false, "Prompt interactively for filter criteria")
	rootCmd.PersistentFlags().Int("top-products", 5, "How many products to list in the ranking")
	rootCmd.PersistentFlags().Int("low-threshold", 10, "Quantity below which a product is low performing")
	rootCmd.PersistentFlags().String("currency", "₹", "Currency symbol used in the report")
	rootCmd.PersistentFlags().String("api-url", "https://dummyjson.com", "Base URL of the product catalog API")
	rootCmd.PersistentFlags().Bool("skip-enrichment", false, "Skip the product API enrichment step")
	rootCmd.PersistentFlags().StringP("report-name", "n", "", "Specify the base name for the summary export files (without extension)")
	rootCmd.PersistentFlags().StringSliceP("report-type", "y", []string{"csv"}, "Specify summary export types: csv, json, pdf, xlsx")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory to save the summary export files (default: current directory)")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs() (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()

	configFile, _ := flags.GetString("config-file")
	inputFile, _ := flags.GetString("input")
	enrichedFile, _ := flags.GetString("enriched-file")
	reportFile, _ := flags.GetString("report-file")
	region, _ := flags.GetString("region")
	minAmount, _ := flags.GetFloat64("min-amount")
	maxAmount, _ := flags.GetFloat64("max-amount")
	interactive, _ := flags.GetBool("interactive")
	topProducts, _ := flags.GetInt("top-products")
	lowThreshold, _ := flags.GetInt("low-threshold")
	currency, _ := flags.GetString("currency")
	apiURL, _ := flags.GetString("api-url")
	skipEnrichment, _ := flags.GetBool("skip-enrichment")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")

	minAmountPtr := &minAmount
	if minAmount == 0 {
		minAmountPtr = nil
	}
	maxAmountPtr := &maxAmount
	if maxAmount == 0 {
		maxAmountPtr = nil
	}

	args := &types.CLIArgs{
		ConfigFile:     configFile,
		InputFile:      inputFile,
		EnrichedFile:   enrichedFile,
		ReportFile:     reportFile,
		Region:         region,
		MinAmount:      minAmountPtr,
		MaxAmount:      maxAmountPtr,
		Interactive:    interactive,
		TopProducts:    topProducts,
		LowThreshold:   lowThreshold,
		CurrencySymbol: currency,
		APIBaseURL:     apiURL,
		SkipEnrichment: skipEnrichment,
		ReportName:     reportName,
		ReportType:     reportType,
		Dir:            dir,
	}

	return args, nil
}

// mergeConfig aplica o arquivo de configuração por baixo das flags:
// flag alterada na linha de comando sempre vence; o restante herda o
// valor do arquivo quando definido.
func (app *CLIApp) mergeConfig(args *types.CLIArgs, config *types.Config) {
	flags := app.rootCmd.Flags()

	if !flags.Changed("input") && config.InputFile != "" {
		args.InputFile = config.InputFile
	}
	if !flags.Changed("enriched-file") && config.EnrichedFile != "" {
		args.EnrichedFile = config.EnrichedFile
	}
	if !flags.Changed("report-file") && config.ReportFile != "" {
		args.ReportFile = config.ReportFile
	}
	if !flags.Changed("region") && config.Region != "" {
		args.Region = config.Region
	}
	if !flags.Changed("min-amount") && config.MinAmount > 0 {
		minAmount := config.MinAmount
		args.MinAmount = &minAmount
	}
	if !flags.Changed("max-amount") && config.MaxAmount > 0 {
		maxAmount := config.MaxAmount
		args.MaxAmount = &maxAmount
	}
	if !flags.Changed("top-products") && config.TopProducts > 0 {
		args.TopProducts = config.TopProducts
	}
	if !flags.Changed("low-threshold") && config.LowThreshold > 0 {
		args.LowThreshold = config.LowThreshold
	}
	if !flags.Changed("currency") && config.CurrencySymbol != "" {
		args.CurrencySymbol = config.CurrencySymbol
	}
	if !flags.Changed("api-url") && config.APIBaseURL != "" {
		args.APIBaseURL = config.APIBaseURL
	}
	if !flags.Changed("skip-enrichment") && config.SkipEnrichment {
		args.SkipEnrichment = true
	}
	if !flags.Changed("report-name") && config.ReportName != "" {
		args.ReportName = config.ReportName
	}
	if !flags.Changed("report-type") && len(config.ReportType) > 0 {
		args.ReportType = config.ReportType
	}
	if !flags.Changed("dir") && config.Dir != "" {
		args.Dir = config.Dir
	}

	// Campos sem flag própria vêm apenas do arquivo.
	args.APIPageLimit = config.APIPageLimit
	args.APITimeout = config.APITimeout
}

// resolveDir normaliza o diretório de exportação para um caminho
// absoluto, usando o diretório atual como padrão.
func resolveDir(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return cwd, nil
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	return absDir, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	// Analisa os argumentos da linha de comando
	cliArgs, err := app.parseArgs()
	if err != nil {
		return err
	}

	// Lida com o arquivo de configuração, se especificado
	if cliArgs.ConfigFile != "" && app.configRepo != nil {
		config, err := app.configRepo.LoadConfigFile(cliArgs.ConfigFile)
		if err != nil {
			return err
		}
		app.mergeConfig(cliArgs, config)
	}

	dir, err := resolveDir(cliArgs.Dir)
	if err != nil {
		return err
	}
	cliArgs.Dir = dir

	// Executa o pipeline de análise
	ctx := context.Background()
	return app.analyticsUseCase.RunPipeline(ctx, cliArgs)
}

// SetAnalyticsUseCase sets the analytics use case for the CLI app.
func (app *CLIApp) SetAnalyticsUseCase(useCase *usecase.AnalyticsUseCase) {
	app.analyticsUseCase = useCase
}

// SetConfigRepository sets the configuration repository for the CLI app.
func (app *CLIApp) SetConfigRepository(configRepo repository.ConfigRepository) {
	app.configRepo = configRepo
}
