package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro para autenticação
const (
	// Erros de autenticação (1000-1999)
	ErrInvalidToken          = "AUTH_001" // Token inválido
	ErrExpiredToken          = "AUTH_002" // Token expirado
	ErrMissingToken          = "AUTH_003" // Token ausente
	ErrPlanRequired          = "AUTH_004" // Recurso exclusivo do plano Pro
	ErrMetaTokenExpired      = "AUTH_005" // Token da conexão Meta expirado
	ErrConnectionNotFound    = "AUTH_006" // Conexão com o provedor não encontrada
	ErrConnectionInactive    = "AUTH_007" // Conexão desativada
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrEmptyEntityList     = "VAL_004" // Lista de entidades vazia
	ErrInvalidScaleFactor  = "VAL_005" // Fator de escala de orçamento inválido

	// Erros do servidor (5000-5999)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
	ErrRateLimited       = "SRV_005" // Limite de requisições do Meta atingido
	ErrInsufficientData  = "SRV_006" // Dados insuficientes para a operação
)

// Mensagem fixa para token de conexão expirado, o frontend usa esse texto
// para direcionar o usuário à tela de reconexão
const MetaTokenExpiredMessage = "Meta connection expired. Please reconnect your account."

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrMissingToken:          http.StatusUnauthorized,
	ErrPlanRequired:          http.StatusForbidden,
	ErrMetaTokenExpired:      http.StatusUnauthorized,
	ErrConnectionNotFound:    http.StatusNotFound,
	ErrConnectionInactive:    http.StatusForbidden,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrEmptyEntityList:       http.StatusBadRequest,
	ErrInvalidScaleFactor:    http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
	ErrRateLimited:           http.StatusTooManyRequests,
	ErrInsufficientData:      http.StatusUnprocessableEntity,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
