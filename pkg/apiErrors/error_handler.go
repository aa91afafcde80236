package apiErrors

import (
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API. O prefixo define o status padrão (ver StatusFor).
const (
	// Autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrUserDisabled          = "AUTH_002" // Usuário desativado
	ErrUserNotFound          = "AUTH_003" // Usuário não encontrado
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes
	ErrUserAlreadyExists     = "AUTH_009" // Usuário já existe

	// Validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidDate         = "VAL_004" // Data fora do formato YYYY-MM-DD
	ErrInvalidMonth        = "VAL_005" // Mês fora do intervalo 1-12
	ErrInvalidDateRange    = "VAL_006" // Data inicial posterior à final
	ErrUnsupportedPeriod   = "VAL_007" // Tipo de período não suportado
	ErrInvalidRoomType     = "VAL_008" // Tipo de habitação inválido
	ErrRouteNotFound       = "VAL_404" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_405" // Método não aceito pela rota

	// Servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrAggregationFailed = "SRV_005" // Falha ao agregar dados de relatório
)

// Códigos cujo status foge do padrão do prefixo
var httpStatusMap = map[string]int{
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusConflict,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
}

// StatusFor resolve o status HTTP de um código: exceções primeiro, depois o prefixo (AUTH, VAL, SRV)
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}

	switch {
	case strings.HasPrefix(code, "AUTH_"):
		return http.StatusUnauthorized
	case strings.HasPrefix(code, "VAL_"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}
