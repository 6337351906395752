package service

import (
	"github.com/diillson/sales-analytics-go/internal/domain/entity"
)

// FilterTransactions aplica os critérios opcionais preservando a ordem
// de entrada. Retorna as transações sobreviventes e quantas foram
// descartadas.
func FilterTransactions(txs []entity.Transaction, criteria entity.FilterCriteria) ([]entity.Transaction, int) {
	if criteria.IsZero() {
		return txs, 0
	}

	kept := []entity.Transaction{}
	for _, tx := range txs {
		if matchesCriteria(tx, criteria) {
			kept = append(kept, tx)
		}
	}
	return kept, len(txs) - len(kept)
}

// matchesCriteria verifica região e faixa de valor total da linha.
// Limites nil significam "sem limite".
func matchesCriteria(tx entity.Transaction, criteria entity.FilterCriteria) bool {
	if criteria.Region != "" && tx.Region != criteria.Region {
		return false
	}

	total := tx.LineTotal()
	if criteria.MinAmount != nil && total < *criteria.MinAmount {
		return false
	}
	if criteria.MaxAmount != nil && total > *criteria.MaxAmount {
		return false
	}
	return true
}
