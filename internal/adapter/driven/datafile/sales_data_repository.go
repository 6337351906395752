package datafile

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// SalesDataRepository lê o arquivo de vendas delimitado por pipe.
type SalesDataRepository struct{}

// NewSalesDataRepository cria o repositório de leitura de vendas.
func NewSalesDataRepository() *SalesDataRepository {
	return &SalesDataRepository{}
}

// ReadSalesLines carrega o arquivo inteiro e devolve as linhas já sem
// o terminador. Conteúdo fora de UTF-8 é decodificado como Latin-1,
// onde todo byte é válido, para que arquivos legados nunca derrubem a
// leitura.
func (r *SalesDataRepository) ReadSalesLines(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("sales data file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to access sales data file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("sales data path is a directory: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sales data file: %w", err)
	}

	content, err := decodePermissive(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sales data file: %w", err)
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}

// decodePermissive devolve o conteúdo como UTF-8 válido, caindo para
// Latin-1 quando os bytes não formam UTF-8.
func decodePermissive(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
