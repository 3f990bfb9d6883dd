package catalogdomain

import "fmt"

const (
	OpProducts   = "products"
	OpStatistics = "statistics"
	OpPriceRange = "price-range-statistics"
)

var failureMessages = map[string]string{
	OpProducts:   "Failed to fetch transactions",
	OpStatistics: "Failed to fetch statistics",
	OpPriceRange: "Failed to fetch price range statistics",
}

// TransportError é o único tipo de falha da fonte de dados: erro de rede,
// status fora de 2xx ou corpo que não decodifica.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func NewTransportError(op string, statusCode int, err error) *TransportError {
	return &TransportError{Op: op, StatusCode: statusCode, Err: err}
}

// Message é o texto exibido no painel que falhou
func (e *TransportError) Message() string {
	if msg, ok := failureMessages[e.Op]; ok {
		return msg
	}
	return "Failed to fetch " + e.Op
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s (status %d): %v", e.Message(), e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s (status %d)", e.Message(), e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message(), e.Err)
	}
	return e.Message()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
