package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("falha ao preparar config de teste: %v", err)
	}
	return path
}

func TestLoadConfigFileTOML(t *testing.T) {
	path := writeConfigFile(t, "config.toml", `
input_file = "data/sales_data.txt"
currency_symbol = "$"
top_products = 3
region = "North"
min_amount = 1000.0
report_type = ["csv", "json"]
`)

	repo := NewConfigRepository()
	config, err := repo.LoadConfigFile(path)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if config.InputFile != "data/sales_data.txt" {
		t.Errorf("InputFile = %q", config.InputFile)
	}
	if config.CurrencySymbol != "$" {
		t.Errorf("CurrencySymbol = %q, esperado $", config.CurrencySymbol)
	}
	if config.TopProducts != 3 {
		t.Errorf("TopProducts = %d, esperado 3", config.TopProducts)
	}
	if config.MinAmount != 1000.0 {
		t.Errorf("MinAmount = %.2f, esperado 1000.00", config.MinAmount)
	}
	if len(config.ReportType) != 2 || config.ReportType[0] != "csv" {
		t.Errorf("ReportType = %v", config.ReportType)
	}
}

func TestLoadConfigFileYAML(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", `
input_file: data/sales_data.txt
low_threshold: 5
skip_enrichment: true
`)

	repo := NewConfigRepository()
	config, err := repo.LoadConfigFile(path)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if config.LowThreshold != 5 {
		t.Errorf("LowThreshold = %d, esperado 5", config.LowThreshold)
	}
	if !config.SkipEnrichment {
		t.Error("SkipEnrichment deveria ser true")
	}
}

func TestLoadConfigFileJSON(t *testing.T) {
	path := writeConfigFile(t, "config.json", `{
	"input_file": "data/sales_data.txt",
	"api_base_url": "https://dummyjson.com",
	"api_page_limit": 50
}`)

	repo := NewConfigRepository()
	config, err := repo.LoadConfigFile(path)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if config.APIBaseURL != "https://dummyjson.com" {
		t.Errorf("APIBaseURL = %q", config.APIBaseURL)
	}
	if config.APIPageLimit != 50 {
		t.Errorf("APIPageLimit = %d, esperado 50", config.APIPageLimit)
	}
}

func TestLoadConfigFileFormatoNaoSuportado(t *testing.T) {
	path := writeConfigFile(t, "config.ini", "input_file=data.txt")

	repo := NewConfigRepository()
	if _, err := repo.LoadConfigFile(path); err == nil {
		t.Fatal("esperado erro para extensão não suportada")
	}
}

func TestLoadConfigFileInexistente(t *testing.T) {
	repo := NewConfigRepository()
	if _, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "nao_existe.toml")); err == nil {
		t.Fatal("esperado erro para arquivo inexistente")
	}
}

func TestLoadConfigFileDiretorio(t *testing.T) {
	repo := NewConfigRepository()
	if _, err := repo.LoadConfigFile(t.TempDir()); err == nil {
		t.Fatal("esperado erro para diretório")
	}
}

func TestLoadConfigFileValidacao(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "min_amount negativo",
			content: "min_amount = -10.0",
			wantErr: "min_amount cannot be negative",
		},
		{
			name:    "faixa invertida",
			content: "min_amount = 500.0\nmax_amount = 100.0",
			wantErr: "greater than max_amount",
		},
		{
			name:    "top_products negativo",
			content: "top_products = -1",
			wantErr: "top_products cannot be negative",
		},
		{
			name:    "formato de relatório desconhecido",
			content: `report_type = ["docx"]`,
			wantErr: "unsupported report type",
		},
	}

	repo := NewConfigRepository()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, "config.toml", tt.content)

			_, err := repo.LoadConfigFile(path)
			if err == nil {
				t.Fatal("esperado erro de validação")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, esperado conter %q", err, tt.wantErr)
			}
		})
	}
}
