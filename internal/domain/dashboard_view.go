package domain

// DashboardSnapshot é o estado bruto das três visões em um instante
type DashboardSnapshot struct {
	Month        MonthCode
	Transactions TransactionSnapshot
	Statistics   ViewState[StatisticsSummary]
	Histogram    ViewState[[]HistogramBucket]
}

type TransactionSnapshot struct {
	Query       TransactionQuery
	TotalPages  int
	HasPrevious bool
	HasNext     bool
	State       ViewState[TransactionPage]
}

// DashboardView é o view-model já resolvido que o renderizador externo consome
type DashboardView struct {
	SessionID    string            `json:"session_id,omitempty"`
	Month        MonthOption       `json:"month"`
	Months       []MonthOption     `json:"months"`
	Transactions TransactionsPanel `json:"transactions"`
	Statistics   StatisticsPanel   `json:"statistics"`
	Histogram    HistogramPanel    `json:"histogram"`
}

type MonthOption struct {
	Code  MonthCode `json:"code"`
	Label string    `json:"label"`
	Name  string    `json:"name"`
}

type TransactionsPanel struct {
	Title       string           `json:"title"`
	Status      ViewStatus       `json:"status"`
	Error       string           `json:"error,omitempty"`
	Search      string           `json:"search"`
	Page        int              `json:"page"`
	TotalPages  int              `json:"total_pages"`
	PageLabel   string           `json:"page_label"`
	HasPrevious bool             `json:"has_previous"`
	HasNext     bool             `json:"has_next"`
	Rows        []TransactionRow `json:"rows"`
	EmptyText   string           `json:"empty_text,omitempty"`
}

type TransactionRow struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Sold        string `json:"sold"`
	ImageURL    string `json:"image_url"`
}

type StatisticsPanel struct {
	Title       string     `json:"title"`
	Status      ViewStatus `json:"status"`
	Error       string     `json:"error,omitempty"`
	TotalSales  string     `json:"total_sales"`
	SoldItems   int64      `json:"sold_items"`
	UnsoldItems int64      `json:"unsold_items"`
}

type HistogramPanel struct {
	Title   string            `json:"title"`
	Status  ViewStatus        `json:"status"`
	Error   string            `json:"error,omitempty"`
	Buckets []HistogramBucket `json:"buckets"`
}
