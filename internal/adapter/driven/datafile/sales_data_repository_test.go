package datafile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("falha ao preparar arquivo de teste: %v", err)
	}
	return path
}

func TestReadSalesLines(t *testing.T) {
	content := "TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region\n" +
		"T001|2024-01-05|P101|Laptop|2|45000|C001|North\n"
	path := writeTempFile(t, "sales_data.txt", []byte(content))

	repo := NewSalesDataRepository()
	lines, err := repo.ReadSalesLines(context.Background(), path)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	// A última quebra de linha gera um elemento vazio final.
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, esperado 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "TransactionID|") {
		t.Errorf("lines[0] = %q, esperado o cabeçalho", lines[0])
	}
	if lines[1] != "T001|2024-01-05|P101|Laptop|2|45000|C001|North" {
		t.Errorf("lines[1] = %q", lines[1])
	}
}

func TestReadSalesLinesCRLF(t *testing.T) {
	content := "TransactionID|Date\r\nT001|2024-01-05\r\n"
	path := writeTempFile(t, "sales_data.txt", []byte(content))

	repo := NewSalesDataRepository()
	lines, err := repo.ReadSalesLines(context.Background(), path)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if lines[1] != "T001|2024-01-05" {
		t.Errorf("lines[1] = %q, esperado sem o \\r", lines[1])
	}
}

func TestReadSalesLinesLatin1(t *testing.T) {
	// "Média" gravado em Latin-1: o byte 0xE9 não é UTF-8 válido.
	raw := []byte("Header\nT001|2024-01-05|P101|M\xe9dia|2|100|C001|North\n")
	path := writeTempFile(t, "sales_data.txt", raw)

	repo := NewSalesDataRepository()
	lines, err := repo.ReadSalesLines(context.Background(), path)
	if err != nil {
		t.Fatalf("arquivo Latin-1 não deveria falhar: %v", err)
	}

	if !strings.Contains(lines[1], "Média") {
		t.Errorf("lines[1] = %q, esperado o byte 0xE9 decodificado como é", lines[1])
	}
}

func TestReadSalesLinesArquivoInexistente(t *testing.T) {
	repo := NewSalesDataRepository()

	_, err := repo.ReadSalesLines(context.Background(), filepath.Join(t.TempDir(), "nao_existe.txt"))
	if err == nil {
		t.Fatal("esperado erro para arquivo inexistente")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("err = %v, esperado mensagem de arquivo não encontrado", err)
	}
}

func TestReadSalesLinesDiretorio(t *testing.T) {
	repo := NewSalesDataRepository()

	_, err := repo.ReadSalesLines(context.Background(), t.TempDir())
	if err == nil {
		t.Fatal("esperado erro para diretório")
	}
}

func TestReadSalesLinesContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewSalesDataRepository()
	if _, err := repo.ReadSalesLines(ctx, "qualquer.txt"); err == nil {
		t.Fatal("esperado erro de contexto cancelado")
	}
}
