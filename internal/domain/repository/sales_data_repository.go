package repository

import "context"

// SalesDataRepository defines the interface for reading the raw sales log.
type SalesDataRepository interface {
	// ReadSalesLines lê o arquivo de vendas e devolve todas as linhas,
	// inclusive o cabeçalho, já decodificadas para strings UTF-8 válidas.
	ReadSalesLines(ctx context.Context, path string) ([]string, error)
}
