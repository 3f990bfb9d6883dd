package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro devolvidos pela API do dashboard
const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido (ex.: mês fora de 01..12)
	ErrPageUnavailable     = "VAL_004" // Próxima/anterior desabilitada na página atual

	// Erros de sessão de dashboard (3000-3999)
	ErrDashboardNotFound = "DSH_001" // Sessão inexistente ou expirada
	ErrDashboardClosed   = "DSH_002" // Sessão encerrada durante a requisição

	// Erros de roteamento (4000-4999)
	ErrNotFound         = "RTE_001" // Rota inexistente
	ErrMethodNotAllowed = "RTE_002" // Método não suportado na rota

	// Erros do servidor (5000-5999)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrTooManyRequests = "SRV_005" // Limite de requisições excedido
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrPageUnavailable:     http.StatusConflict,
	ErrNotFound:            http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrDashboardNotFound:   http.StatusNotFound,
	ErrDashboardClosed:     http.StatusGone,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrTooManyRequests:     http.StatusTooManyRequests,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP de um código; desconhecidos viram 500
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
