package campaigning

import (
	"errors"
)

// Erros específicos para o contexto de campanhas
var (
	ErrAccountIDRequired  = errors.New("ad account ID is required")
	ErrConnectionNotFound = errors.New("meta connection not found")
	ErrConnectionInactive = errors.New("meta connection is inactive")
	ErrTokenExpired       = errors.New("meta connection token expired")
	ErrMetaIntegration    = errors.New("error fetching data from Meta")
)
