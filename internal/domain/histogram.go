package domain

// BucketLabels são as 10 faixas de preço, na ordem em que o gráfico as exibe
var BucketLabels = []string{
	"0-100",
	"101-200",
	"201-300",
	"301-400",
	"401-500",
	"501-600",
	"601-700",
	"701-800",
	"801-900",
	"901 and above",
}

type HistogramBucket struct {
	Label string `json:"range"`
	Count int64  `json:"count"`
}

// NewHistogram completa a resposta bruta com as faixas ausentes (contagem 0).
// Rótulos desconhecidos são ignorados.
func NewHistogram(raw map[string]int64) []HistogramBucket {
	buckets := make([]HistogramBucket, len(BucketLabels))
	for i, label := range BucketLabels {
		buckets[i] = HistogramBucket{Label: label, Count: raw[label]}
	}
	return buckets
}
