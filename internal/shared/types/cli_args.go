package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile     string
	InputFile      string
	EnrichedFile   string
	ReportFile     string
	Region         string
	MinAmount      *float64
	MaxAmount      *float64
	Interactive    bool
	TopProducts    int
	LowThreshold   int
	CurrencySymbol string
	APIBaseURL     string
	APIPageLimit   int
	APITimeout     int
	SkipEnrichment bool
	ReportName     string
	ReportType     []string
	Dir            string
}
