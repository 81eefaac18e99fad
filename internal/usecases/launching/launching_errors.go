package launching

import (
	"errors"
)

// Erros específicos para o contexto de operações em massa
var (
	// Erros de validação
	ErrEmptyEntityList    = errors.New("entity list is empty")
	ErrInvalidScaleFactor = errors.New("scale factor must be greater than zero")

	// Erros de conexão com o Meta
	ErrConnectionNotFound = errors.New("meta connection not found")
	ErrConnectionInactive = errors.New("meta connection is inactive")
	ErrTokenExpired       = errors.New("meta connection token expired")
)
