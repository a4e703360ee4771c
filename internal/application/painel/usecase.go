package painel

import (
	"context"
	"time"

	"github.com/andersonm2se/sku-validator-litoral/internal/application/dto"
	"github.com/andersonm2se/sku-validator-litoral/internal/domain"
	"github.com/andersonm2se/sku-validator-litoral/internal/domain/entity"
	"github.com/andersonm2se/sku-validator-litoral/internal/domain/paginacao"
)

// PainelUseCase operações de leitura do painel: página renderizada,
// contadores, documento de impressão e relatório PDF.
type PainelUseCase struct {
	store *Store
	pdf   GeradorRelatorioPDF
}

// NewPainelUseCase constrói o caso de uso.
func NewPainelUseCase(store *Store, pdf GeradorRelatorioPDF) *PainelUseCase {
	return &PainelUseCase{store: store, pdf: pdf}
}

// PaginaCategoria devolve as linhas renderizadas e os metadados de paginação.
// pagina nula equivale a ativar a categoria: o cursor volta para 1. Número
// fora do intervalo nunca é erro; o valor é limitado à contagem atual.
func (uc *PainelUseCase) PaginaCategoria(id entity.CategoriaID, pagina *int) (*dto.PaginaCategoriaResponse, error) {
	cat, ok := entity.CategoriaPorID(id)
	if !ok {
		return nil, domain.ErrCategoriaDesconhecida
	}

	alvo := 1
	if pagina != nil {
		alvo = *pagina
	}
	if _, err := uc.store.DefinirPagina(id, alvo); err != nil {
		return nil, err
	}

	registros, err := uc.store.Registros(id)
	if err != nil {
		return nil, err
	}
	cursor, err := uc.store.Pagina(id)
	if err != nil {
		return nil, err
	}
	visiveis, p := paginacao.Recortar(registros, cursor, uc.store.TamanhoPagina())

	return &dto.PaginaCategoriaResponse{
		Categoria:    string(cat.ID),
		Titulo:       cat.Titulo,
		Colunas:      Colunas(cat.Tipo),
		Linhas:       Linhas(cat.Tipo, visiveis),
		Pagina:       p.Numero,
		TotalPaginas: p.Total,
		TotalItens:   p.TotalItens,
		TemAnterior:  p.Numero > 1,
		TemProxima:   p.Numero < p.Total,
	}, nil
}

// Contagens devolve os contadores por categoria e o total geral, na ordem do
// catálogo.
func (uc *PainelUseCase) Contagens() *dto.ContagensResponse {
	contagens := uc.store.Contagens()
	out := &dto.ContagensResponse{Categorias: make([]dto.ContagemCategoria, 0, len(entity.Categorias))}
	for _, c := range entity.Categorias {
		itens := contagens[c.ID]
		out.Categorias = append(out.Categorias, dto.ContagemCategoria{
			Categoria: string(c.ID),
			Titulo:    c.Titulo,
			Itens:     itens,
		})
		out.Total += itens
	}
	return out
}

// Documento monta o documento HTML de impressão da categoria inteira.
func (uc *PainelUseCase) Documento(id entity.CategoriaID) (string, error) {
	cat, ok := entity.CategoriaPorID(id)
	if !ok {
		return "", domain.ErrCategoriaDesconhecida
	}
	registros, err := uc.store.Registros(id)
	if err != nil {
		return "", err
	}
	return DocumentoImpressao(cat, registros, time.Now())
}

// RelatorioPDF gera o relatório PDF da categoria inteira.
func (uc *PainelUseCase) RelatorioPDF(ctx context.Context, id entity.CategoriaID) ([]byte, error) {
	cat, ok := entity.CategoriaPorID(id)
	if !ok {
		return nil, domain.ErrCategoriaDesconhecida
	}
	registros, err := uc.store.Registros(id)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GerarRelatorio(ctx, cat, registros, time.Now())
}
