package service

import (
	"strconv"
	"strings"

	"github.com/diillson/sales-analytics-go/internal/domain/entity"
)

// fieldCount é o número de campos esperado em cada registro do
// arquivo de vendas delimitado por pipe.
const fieldCount = 8

// ParseTransactions converts raw pipe-delimited lines into validated
// transactions. The first line is treated as the header and discarded.
// Blank lines are skipped without counting; every remaining line either
// becomes a Transaction or increments the invalid counter, never both.
func ParseTransactions(lines []string) ([]entity.Transaction, entity.ParseStats) {
	var stats entity.ParseStats
	valid := []entity.Transaction{}

	for i, line := range lines {
		if i == 0 {
			// Cabeçalho do arquivo.
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		stats.TotalRecords++

		tx, ok := parseRecord(line)
		if !ok {
			stats.InvalidRecords++
			continue
		}
		valid = append(valid, tx)
	}

	stats.ValidRecords = len(valid)
	return valid, stats
}

// parseRecord valida um único registro já sem espaços nas bordas.
// A ordem das validações é fixa: contagem de campos, prefixo do ID,
// campos obrigatórios e por fim os campos numéricos.
func parseRecord(line string) (entity.Transaction, bool) {
	parts := strings.Split(line, "|")
	if len(parts) != fieldCount {
		return entity.Transaction{}, false
	}

	transactionID := parts[0]
	date := parts[1]
	productID := parts[2]
	// Vírgulas dentro do nome do produto quebrariam os exports CSV.
	productName := strings.ReplaceAll(parts[3], ",", "")
	customerID := parts[6]
	region := parts[7]

	if !strings.HasPrefix(transactionID, "T") {
		return entity.Transaction{}, false
	}
	if strings.TrimSpace(customerID) == "" || strings.TrimSpace(region) == "" {
		return entity.Transaction{}, false
	}

	quantity, err := parseNumericField(parts[4])
	if err != nil {
		return entity.Transaction{}, false
	}
	unitPrice, err := parseNumericField(parts[5])
	if err != nil {
		return entity.Transaction{}, false
	}
	if quantity <= 0 || unitPrice <= 0 {
		return entity.Transaction{}, false
	}

	return entity.Transaction{
		TransactionID: transactionID,
		Date:          date,
		ProductID:     productID,
		ProductName:   productName,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    customerID,
		Region:        region,
	}, true
}

// parseNumericField aceita separadores de milhar embutidos ("1,000")
// e espaços ao redor do número.
func parseNumericField(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(raw, ",", "")))
}
