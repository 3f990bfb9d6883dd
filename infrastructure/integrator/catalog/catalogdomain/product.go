package catalogdomain

import "github.com/shopspring/decimal"

type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Sold        bool            `json:"sold"`
	Image       string          `json:"image"`
}

type Pagination struct {
	TotalPages int `json:"totalPages,omitempty"`
}

// ProductsResponse é o corpo de /api/products. Os dois campos podem faltar.
type ProductsResponse struct {
	Products   []Product   `json:"products"`
	Pagination *Pagination `json:"pagination,omitempty"`
}
