package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrCategoriaDesconhecida = errors.New("categoria desconhecida")
)
