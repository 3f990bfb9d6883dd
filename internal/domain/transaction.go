package domain

import "github.com/shopspring/decimal"

type TransactionRecord struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Sold        bool            `json:"sold"`
	ImageURL    string          `json:"image_url"`
}

type PaginationMeta struct {
	TotalPages int `json:"total_pages"`
}

type TransactionPage struct {
	Records    []TransactionRecord `json:"records"`
	Pagination PaginationMeta      `json:"pagination"`
}

// TransactionQuery é a tupla que dispara uma nova busca de transações.
// Comparada por valor.
type TransactionQuery struct {
	Month  MonthCode
	Search string
	Page   int
}
