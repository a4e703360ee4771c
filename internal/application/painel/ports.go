package painel

import (
	"context"
	"time"

	"github.com/andersonm2se/sku-validator-litoral/internal/domain/entity"
)

// FonteDados porta para a API do validador. A implementação devolve os
// registros da categoria já normalizados para os formatos canônicos.
type FonteDados interface {
	BuscarCategoria(ctx context.Context, cat entity.Categoria) ([]entity.Registro, error)
}

// GeradorRelatorioPDF porta para a renderização PDF do relatório completo de
// uma categoria. Recebe toda a sequência de registros, nunca uma página.
type GeradorRelatorioPDF interface {
	GerarRelatorio(ctx context.Context, cat entity.Categoria, registros []entity.Registro, geradoEm time.Time) ([]byte, error)
}
