package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/sales-analytics-go/internal/domain/repository"
	"github.com/diillson/sales-analytics-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Formatos de exportação aceitos no campo report_type.
var validReportTypes = map[string]struct{}{
	"csv":  {},
	"json": {},
	"pdf":  {},
	"xlsx": {},
}

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON
// e valida os campos do pipeline antes de devolvê-lo.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	// Lê o arquivo
	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedConfigFormat, fileExtension)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig rejeita combinações que tornariam o pipeline
// inconsistente antes mesmo de rodar.
func validateConfig(config *types.Config) error {
	if config.MinAmount < 0 {
		return fmt.Errorf("min_amount cannot be negative: %.2f", config.MinAmount)
	}
	if config.MaxAmount < 0 {
		return fmt.Errorf("max_amount cannot be negative: %.2f", config.MaxAmount)
	}
	if config.MinAmount > 0 && config.MaxAmount > 0 && config.MinAmount > config.MaxAmount {
		return fmt.Errorf("min_amount %.2f is greater than max_amount %.2f", config.MinAmount, config.MaxAmount)
	}
	if config.TopProducts < 0 {
		return fmt.Errorf("top_products cannot be negative: %d", config.TopProducts)
	}
	if config.LowThreshold < 0 {
		return fmt.Errorf("low_threshold cannot be negative: %d", config.LowThreshold)
	}
	for _, reportType := range config.ReportType {
		if _, ok := validReportTypes[strings.ToLower(reportType)]; !ok {
			return fmt.Errorf("%w: %s", types.ErrUnsupportedExportFormat, reportType)
		}
	}
	return nil
}
