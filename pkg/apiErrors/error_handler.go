package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de sessão e credenciais da plataforma (AUTH)
	ErrInvalidToken          = "AUTH_001" // Token de sessão inválido
	ErrExpiredToken          = "AUTH_002" // Token de sessão expirado
	ErrInsufficientPrivilege = "AUTH_003" // Privilégios insuficientes
	ErrPlatformNotConnected  = "AUTH_010" // Principal sem credencial da plataforma de anúncios
	ErrPlatformTokenExpired  = "AUTH_011" // Credencial da plataforma de anúncios expirada

	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes

	// Erros do servidor (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrPlatformNotConnected:  http.StatusUnauthorized,
	ErrPlatformTokenExpired:  http.StatusUnauthorized,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
}

// APIError representa um erro de API padronizado. O campo Error carrega a
// mensagem voltada ao usuário; o contrato consumido pela camada de
// apresentação espera `{ "error": "..." }` com status não-2xx.
type APIError struct {
	Error   string `json:"error"`             // Mensagem descritiva do erro
	Code    string `json:"code,omitempty"`    // Código de erro para o cliente
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Error:   message,
		Code:    code,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// StatusForCode retorna o status HTTP mapeado para um código de erro
func StatusForCode(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
