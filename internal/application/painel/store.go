// Package painel implementa o motor do painel de validação: o store por
// categoria, o ciclo de atualização contra a fonte de dados, a renderização
// das linhas e o documento de impressão.
package painel

import (
	"sync"
	"time"

	"github.com/andersonm2se/sku-validator-litoral/internal/domain"
	"github.com/andersonm2se/sku-validator-litoral/internal/domain/entity"
	"github.com/andersonm2se/sku-validator-litoral/internal/domain/paginacao"
)

// Store guarda, por categoria, a sequência normalizada de registros e o
// cursor de página. As cinco categorias existem desde a construção; o
// conteúdo é trocado por inteiro a cada ciclo de atualização bem-sucedido.
// O RWMutex cobre o único ponto de disputa: o servidor lê enquanto o ciclo
// de atualização escreve.
type Store struct {
	mu            sync.RWMutex
	registros     map[entity.CategoriaID][]entity.Registro
	paginas       map[entity.CategoriaID]int
	tamanhoPagina int
}

// NewStore cria o store vazio com todas as categorias do catálogo na
// página 1. tamanhoPagina menor que 1 cai para o padrão 30.
func NewStore(tamanhoPagina int) *Store {
	if tamanhoPagina < 1 {
		tamanhoPagina = 30
	}
	s := &Store{
		registros:     make(map[entity.CategoriaID][]entity.Registro, len(entity.Categorias)),
		paginas:       make(map[entity.CategoriaID]int, len(entity.Categorias)),
		tamanhoPagina: tamanhoPagina,
	}
	for _, c := range entity.Categorias {
		s.registros[c.ID] = nil
		s.paginas[c.ID] = 1
	}
	return s
}

// TamanhoPagina devolve o tamanho de página configurado.
func (s *Store) TamanhoPagina() int { return s.tamanhoPagina }

// SubstituirRegistros troca o conteúdo inteiro da categoria de forma atômica.
// Retorna se o conteúdo efetivamente mudou; quando muda, o cursor volta para
// a página 1. Conteúdo idêntico ao anterior preserva o cursor.
func (s *Store) SubstituirRegistros(id entity.CategoriaID, registros []entity.Registro) (bool, error) {
	if _, ok := entity.CategoriaPorID(id); !ok {
		return false, domain.ErrCategoriaDesconhecida
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	mudou := !registrosIguais(s.registros[id], registros)
	s.registros[id] = registros
	if mudou {
		s.paginas[id] = 1
	}
	return mudou, nil
}

// Registros devolve a sequência atual da categoria, na ordem de inserção.
func (s *Store) Registros(id entity.CategoriaID) ([]entity.Registro, error) {
	if _, ok := entity.CategoriaPorID(id); !ok {
		return nil, domain.ErrCategoriaDesconhecida
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registros[id], nil
}

// Pagina devolve o cursor da categoria. O valor pode apontar além da última
// página depois de uma troca de conteúdo; o clamp acontece no recorte.
func (s *Store) Pagina(id entity.CategoriaID) (int, error) {
	if _, ok := entity.CategoriaPorID(id); !ok {
		return 0, domain.ErrCategoriaDesconhecida
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paginas[id], nil
}

// DefinirPagina grava o cursor limitado ao intervalo válido da contagem
// atual e devolve o valor efetivo.
func (s *Store) DefinirPagina(id entity.CategoriaID, numero int) (int, error) {
	if _, ok := entity.CategoriaPorID(id); !ok {
		return 0, domain.ErrCategoriaDesconhecida
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := paginacao.Calcular(len(s.registros[id]), numero, s.tamanhoPagina)
	s.paginas[id] = p.Numero
	return p.Numero, nil
}

// Contagens devolve a quantidade de registros por categoria.
func (s *Store) Contagens() map[entity.CategoriaID]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	contagens := make(map[entity.CategoriaID]int, len(s.registros))
	for id, registros := range s.registros {
		contagens[id] = len(registros)
	}
	return contagens
}

// registrosIguais compara duas sequências campo a campo, na ordem.
func registrosIguais(a, b []entity.Registro) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		switch ra := a[i].(type) {
		case entity.ProdutoRegistro:
			rb, ok := b[i].(entity.ProdutoRegistro)
			if !ok || !produtosIguais(ra, rb) {
				return false
			}
		case entity.CodigoNaoCadastrado:
			rb, ok := b[i].(entity.CodigoNaoCadastrado)
			if !ok || !codigosIguais(ra, rb) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func produtosIguais(a, b entity.ProdutoRegistro) bool {
	return a.Codigo == b.Codigo &&
		a.CodBarras == b.CodBarras &&
		a.TipoCodigo == b.TipoCodigo &&
		a.Descricao == b.Descricao &&
		a.NCM == b.NCM &&
		a.PrVenda.Equal(b.PrVenda) &&
		a.Estoque.Equal(b.Estoque) &&
		a.Embalagem == b.Embalagem &&
		a.Ativo == b.Ativo &&
		a.CodTrib == b.CodTrib &&
		a.ICMS == b.ICMS &&
		a.PisCofins == b.PisCofins &&
		a.Status == b.Status &&
		temposIguais(a.Timestamp, b.Timestamp)
}

func codigosIguais(a, b entity.CodigoNaoCadastrado) bool {
	return a.Codigo == b.Codigo &&
		a.Status == b.Status &&
		temposIguais(a.Timestamp, b.Timestamp)
}

func temposIguais(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
