package main

import (
	"fmt"
	"os"

	"github.com/diillson/sales-analytics-go/internal/adapter/driven/config"
	"github.com/diillson/sales-analytics-go/internal/adapter/driven/datafile"
	"github.com/diillson/sales-analytics-go/internal/adapter/driven/export"
	"github.com/diillson/sales-analytics-go/internal/adapter/driven/productapi"
	"github.com/diillson/sales-analytics-go/internal/adapter/driving/cli"
	"github.com/diillson/sales-analytics-go/internal/application/usecase"
	"github.com/diillson/sales-analytics-go/pkg/console"
	"github.com/diillson/sales-analytics-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios
	salesRepo := datafile.NewSalesDataRepository()
	productRepo := productapi.NewProductAPIRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	analyticsUseCase := usecase.NewAnalyticsUseCase(
		salesRepo,
		productRepo,
		exportRepo,
		consoleImpl,
	)

	// Define o caso de uso e a configuração no aplicativo CLI
	app.SetAnalyticsUseCase(analyticsUseCase)
	app.SetConfigRepository(configRepo)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
