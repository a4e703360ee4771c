package painel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andersonm2se/sku-validator-litoral/internal/application/painel"
	"github.com/andersonm2se/sku-validator-litoral/internal/domain/entity"
	"github.com/andersonm2se/sku-validator-litoral/pkg/logger"
)

// fonteFalsa implementa painel.FonteDados com respostas fixas por categoria.
type fonteFalsa struct {
	registros map[entity.CategoriaID][]entity.Registro
	erros     map[entity.CategoriaID]error
}

func (f *fonteFalsa) BuscarCategoria(_ context.Context, cat entity.Categoria) ([]entity.Registro, error) {
	if err, ok := f.erros[cat.ID]; ok {
		return nil, err
	}
	return f.registros[cat.ID], nil
}

// TestAtualizar_TodasComSucesso grava as cinco categorias e devolve nil.
func TestAtualizar_TodasComSucesso(t *testing.T) {
	store := painel.NewStore(30)
	fonte := &fonteFalsa{registros: map[entity.CategoriaID][]entity.Registro{
		entity.CategoriaValidados:      produtos(3),
		entity.CategoriaNaoCadastrados: {entity.CodigoNaoCadastrado{Codigo: "789"}},
	}}
	uc := painel.NewAtualizarUseCase(fonte, store, logger.Nop(), time.Second)

	err := uc.Atualizar(context.Background())
	require.NoError(t, err)

	contagens := store.Contagens()
	assert.Equal(t, 3, contagens[entity.CategoriaValidados])
	assert.Equal(t, 1, contagens[entity.CategoriaNaoCadastrados])
	assert.Equal(t, 0, contagens[entity.CategoriaSemPreco], "categoria sem dados na fonte fica vazia")
}

// TestAtualizar_FalhaParcialPreservaDadosAnteriores: com 2 buscas falhando,
// as 3 com sucesso são gravadas e as 2 com falha mantêm conteúdo e cursor.
func TestAtualizar_FalhaParcialPreservaDadosAnteriores(t *testing.T) {
	store := painel.NewStore(2)

	// Estado anterior das categorias que vão falhar.
	anteriores := produtos(10)
	_, err := store.SubstituirRegistros(entity.CategoriaDesativados, anteriores)
	require.NoError(t, err)
	_, err = store.DefinirPagina(entity.CategoriaDesativados, 4)
	require.NoError(t, err)

	fonte := &fonteFalsa{
		registros: map[entity.CategoriaID][]entity.Registro{
			entity.CategoriaValidados:     produtos(5),
			entity.CategoriaSemTributacao: produtos(2),
			entity.CategoriaSemPreco:      produtos(1),
		},
		erros: map[entity.CategoriaID]error{
			entity.CategoriaDesativados:    errors.New("timeout"),
			entity.CategoriaNaoCadastrados: errors.New("status 500"),
		},
	}
	uc := painel.NewAtualizarUseCase(fonte, store, logger.Nop(), time.Second)

	err = uc.Atualizar(context.Background())

	var falha *painel.ErroAtualizacao
	require.ErrorAs(t, err, &falha, "falha parcial deve devolver ErroAtualizacao")
	assert.ElementsMatch(t,
		[]entity.CategoriaID{entity.CategoriaDesativados, entity.CategoriaNaoCadastrados},
		falha.Categorias(),
		"o erro deve nomear exatamente as categorias que falharam")

	// As bem-sucedidas foram confirmadas.
	contagens := store.Contagens()
	assert.Equal(t, 5, contagens[entity.CategoriaValidados])
	assert.Equal(t, 2, contagens[entity.CategoriaSemTributacao])
	assert.Equal(t, 1, contagens[entity.CategoriaSemPreco])

	// As com falha mantêm conteúdo e cursor anteriores.
	lidos, err := store.Registros(entity.CategoriaDesativados)
	require.NoError(t, err)
	assert.Equal(t, anteriores, lidos, "conteúdo anterior deve sobreviver à falha")
	pagina, err := store.Pagina(entity.CategoriaDesativados)
	require.NoError(t, err)
	assert.Equal(t, 4, pagina, "cursor anterior deve sobreviver à falha")
}

// TestAtualizar_FalhaTotalMantemStore: nenhuma categoria é alterada e o erro
// lista as cinco.
func TestAtualizar_FalhaTotalMantemStore(t *testing.T) {
	store := painel.NewStore(30)
	_, err := store.SubstituirRegistros(entity.CategoriaValidados, produtos(3))
	require.NoError(t, err)

	erros := make(map[entity.CategoriaID]error, len(entity.Categorias))
	for _, c := range entity.Categorias {
		erros[c.ID] = errors.New("rede indisponível")
	}
	uc := painel.NewAtualizarUseCase(&fonteFalsa{erros: erros}, store, logger.Nop(), time.Second)

	err = uc.Atualizar(context.Background())

	var falha *painel.ErroAtualizacao
	require.ErrorAs(t, err, &falha)
	assert.Len(t, falha.Categorias(), len(entity.Categorias))
	assert.Equal(t, 3, store.Contagens()[entity.CategoriaValidados], "dados anteriores seguem no store")
}

// TestErroAtualizacao_Mensagem lista as categorias na mensagem do erro.
func TestErroAtualizacao_Mensagem(t *testing.T) {
	err := &painel.ErroAtualizacao{Falhas: []painel.FalhaCategoria{
		{Categoria: entity.CategoriaValidados, Causa: errors.New("x")},
		{Categoria: entity.CategoriaSemPreco, Causa: errors.New("y")},
	}}
	assert.Contains(t, err.Error(), "2 categoria(s)")
	assert.Contains(t, err.Error(), "validados")
	assert.Contains(t, err.Error(), "sem-preco")
}
