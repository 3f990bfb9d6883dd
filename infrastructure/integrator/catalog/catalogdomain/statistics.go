package catalogdomain

import (
	"math"

	"github.com/shopspring/decimal"
)

// StatisticsResponse é o corpo de /api/statistics; qualquer campo pode faltar
type StatisticsResponse struct {
	TotalSaleAmount   *decimal.Decimal `json:"totalSaleAmount,omitempty"`
	TotalSoldItems    *int64           `json:"totalSoldItems,omitempty"`
	TotalNotSoldItems *int64           `json:"totalNotSoldItems,omitempty"`
}

// PriceRangeResponse mapeia rótulo da faixa para a contagem. Decodificado
// como valores genéricos para que rótulos desconhecidos, de qualquer tipo,
// não derrubem a resposta inteira.
type PriceRangeResponse map[string]any

// Counts devolve as contagens inteiras não negativas que cabem em int64;
// fracionárias, negativas e fora da faixa são ignoradas
func (r PriceRangeResponse) Counts() map[string]int64 {
	counts := make(map[string]int64, len(r))
	for label, value := range r {
		n, ok := value.(float64)
		if !ok || math.IsNaN(n) || n < 0 || n >= math.MaxInt64 || n != math.Trunc(n) {
			continue
		}
		counts[label] = int64(n)
	}
	return counts
}
