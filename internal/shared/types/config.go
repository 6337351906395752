package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	InputFile      string   `json:"input_file" yaml:"input_file" toml:"input_file"`
	EnrichedFile   string   `json:"enriched_file" yaml:"enriched_file" toml:"enriched_file"`
	ReportFile     string   `json:"report_file" yaml:"report_file" toml:"report_file"`
	CurrencySymbol string   `json:"currency_symbol" yaml:"currency_symbol" toml:"currency_symbol"`
	TopProducts    int      `json:"top_products" yaml:"top_products" toml:"top_products"`
	LowThreshold   int      `json:"low_threshold" yaml:"low_threshold" toml:"low_threshold"`
	Region         string   `json:"region" yaml:"region" toml:"region"`
	MinAmount      float64  `json:"min_amount" yaml:"min_amount" toml:"min_amount"`
	MaxAmount      float64  `json:"max_amount" yaml:"max_amount" toml:"max_amount"`
	APIBaseURL     string   `json:"api_base_url" yaml:"api_base_url" toml:"api_base_url"`
	APIPageLimit   int      `json:"api_page_limit" yaml:"api_page_limit" toml:"api_page_limit"`
	APITimeout     int      `json:"api_timeout" yaml:"api_timeout" toml:"api_timeout"`
	SkipEnrichment bool     `json:"skip_enrichment" yaml:"skip_enrichment" toml:"skip_enrichment"`
	ReportName     string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType     []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir            string   `json:"dir" yaml:"dir" toml:"dir"`
}
