package painel

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/andersonm2se/sku-validator-litoral/internal/domain/entity"
	"github.com/andersonm2se/sku-validator-litoral/pkg/logger"
)

// FalhaCategoria uma categoria que não pôde ser atualizada no ciclo.
type FalhaCategoria struct {
	Categoria entity.CategoriaID
	Causa     error
}

// ErroAtualizacao conjunto das falhas de um ciclo de atualização. Só é
// devolvido quando ao menos uma categoria falhou; as demais já foram
// gravadas no store quando ele chega ao chamador.
type ErroAtualizacao struct {
	Falhas []FalhaCategoria
}

func (e *ErroAtualizacao) Error() string {
	ids := make([]string, 0, len(e.Falhas))
	for _, f := range e.Falhas {
		ids = append(ids, string(f.Categoria))
	}
	return fmt.Sprintf("atualização falhou para %d categoria(s): %s", len(e.Falhas), strings.Join(ids, ", "))
}

// Categorias devolve os ids das categorias com falha, na ordem do catálogo.
func (e *ErroAtualizacao) Categorias() []entity.CategoriaID {
	ids := make([]entity.CategoriaID, 0, len(e.Falhas))
	for _, f := range e.Falhas {
		ids = append(ids, f.Categoria)
	}
	return ids
}

// AtualizarUseCase executa um ciclo completo de atualização: busca as cinco
// categorias em paralelo, espera todas terminarem e grava as que tiveram
// sucesso. Categoria com falha mantém o conteúdo e o cursor anteriores.
type AtualizarUseCase struct {
	fonte   FonteDados
	store   *Store
	log     *logger.Logger
	timeout time.Duration

	// mu serializa ciclos: uma atualização manual disparada com outra em
	// andamento espera a vez em vez de competir pelo store.
	mu sync.Mutex
}

// NewAtualizarUseCase constrói o caso de uso. timeout vale por busca de
// categoria; zero ou negativo cai para 15s.
func NewAtualizarUseCase(fonte FonteDados, store *Store, log *logger.Logger, timeout time.Duration) *AtualizarUseCase {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &AtualizarUseCase{fonte: fonte, store: store, log: log, timeout: timeout}
}

type resultadoBusca struct {
	cat       entity.Categoria
	registros []entity.Registro
	err       error
}

// Atualizar roda um ciclo e devolve *ErroAtualizacao nomeando cada categoria
// que falhou, ou nil quando as cinco foram gravadas. Nunca propaga pânico e
// nunca descarta dados anteriores de categoria com falha: renderizar com o
// que está no store continua possível durante e depois do ciclo.
func (uc *AtualizarUseCase) Atualizar(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	ciclo := uuid.New().String()
	uc.log.Info().Str("ciclo", ciclo).Msg("iniciando atualização do painel")

	resultados := make([]resultadoBusca, len(entity.Categorias))
	var wg sync.WaitGroup
	for i, cat := range entity.Categorias {
		wg.Add(1)
		go func(i int, cat entity.Categoria) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					resultados[i] = resultadoBusca{cat: cat, err: fmt.Errorf("pânico na busca: %v", r)}
				}
			}()
			fctx, cancel := context.WithTimeout(ctx, uc.timeout)
			defer cancel()
			registros, err := uc.fonte.BuscarCategoria(fctx, cat)
			resultados[i] = resultadoBusca{cat: cat, registros: registros, err: err}
		}(i, cat)
	}
	wg.Wait()

	// Só grava depois de todas as buscas terminarem: as bem-sucedidas são
	// confirmadas mesmo quando outras falharam.
	var falhas []FalhaCategoria
	for _, r := range resultados {
		if r.err != nil {
			falhas = append(falhas, FalhaCategoria{Categoria: r.cat.ID, Causa: r.err})
			uc.log.Warn().
				Str("ciclo", ciclo).
				Str("categoria", string(r.cat.ID)).
				Err(r.err).
				Msg("busca falhou; dados anteriores mantidos")
			continue
		}
		mudou, err := uc.store.SubstituirRegistros(r.cat.ID, r.registros)
		if err != nil {
			falhas = append(falhas, FalhaCategoria{Categoria: r.cat.ID, Causa: err})
			continue
		}
		uc.log.Debug().
			Str("ciclo", ciclo).
			Str("categoria", string(r.cat.ID)).
			Int("itens", len(r.registros)).
			Bool("mudou", mudou).
			Msg("categoria gravada")
	}

	if len(falhas) > 0 {
		return &ErroAtualizacao{Falhas: falhas}
	}
	uc.log.Info().Str("ciclo", ciclo).Msg("atualização concluída")
	return nil
}
