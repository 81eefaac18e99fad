package insighting

import (
	"errors"
)

// Erros específicos para o contexto de insights de IA
var (
	ErrAccountIDRequired = errors.New("ad account ID is required")
	// ErrInsufficientData indica que a conta não atingiu o gasto mínimo
	// para gerar insights com alguma confiança estatística
	ErrInsufficientData = errors.New("not enough spend data to generate insights")
	ErrLLMUnavailable   = errors.New("ai provider is not configured")
	ErrLLMResponse      = errors.New("could not parse ai provider response")
)
