package types

import "errors"

var (
	ErrNoRecords      = errors.New("sales data file contains no records beyond the header")
	ErrNoValidRecords = errors.New("no valid transactions found after cleaning. Please check the input file")

	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
	ErrUnsupportedExportFormat = errors.New("unsupported report type")
)
