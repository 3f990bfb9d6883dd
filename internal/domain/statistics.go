package domain

import "github.com/shopspring/decimal"

// StatisticsSummary guarda exatamente o que a fonte retornou; campos ausentes ficam nil.
// Os acessores aplicam a regra "ausente = 0" para todos os consumidores.
type StatisticsSummary struct {
	TotalSaleAmount   *decimal.Decimal `json:"total_sale_amount,omitempty"`
	TotalSoldItems    *int64           `json:"total_sold_items,omitempty"`
	TotalNotSoldItems *int64           `json:"total_not_sold_items,omitempty"`
}

func (s StatisticsSummary) SaleAmount() decimal.Decimal {
	if s.TotalSaleAmount == nil {
		return decimal.Zero
	}
	return *s.TotalSaleAmount
}

func (s StatisticsSummary) SoldItems() int64 {
	if s.TotalSoldItems == nil {
		return 0
	}
	return *s.TotalSoldItems
}

func (s StatisticsSummary) NotSoldItems() int64 {
	if s.TotalNotSoldItems == nil {
		return 0
	}
	return *s.TotalNotSoldItems
}
