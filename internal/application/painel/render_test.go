package painel_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andersonm2se/sku-validator-litoral/internal/application/painel"
	"github.com/andersonm2se/sku-validator-litoral/internal/domain/entity"
)

// TestColunas_EsquemasFixos: 13 colunas para produto, 3 para códigos.
func TestColunas_EsquemasFixos(t *testing.T) {
	assert.Len(t, painel.Colunas(entity.TipoProduto), 13)
	assert.Len(t, painel.Colunas(entity.TipoCodigo), 3)
}

// TestLinhas_ProdutoCompleto confere célula a célula a derivação dos campos.
func TestLinhas_ProdutoCompleto(t *testing.T) {
	carimbo := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	registros := []entity.Registro{entity.ProdutoRegistro{
		Codigo:     "1234",
		CodBarras:  "7891000100103",
		TipoCodigo: "EAN13",
		Descricao:  "LEITE CONDENSADO 395G",
		NCM:        "04029900",
		PrVenda:    decimal.NewFromFloat(7.5),
		Estoque:    decimal.NewFromInt(12),
		Embalagem:  "UN",
		Ativo:      "Sim",
		CodTrib:    "T01",
		ICMS:       "Tributado",
		PisCofins:  "Monofásico",
		Status:     "validado",
		Timestamp:  &carimbo,
	}}

	linhas := painel.Linhas(entity.TipoProduto, registros)

	require.Len(t, linhas, 1)
	assert.Equal(t, []string{
		"1234", "7891000100103", "EAN13", "LEITE CONDENSADO 395G", "04029900",
		"R$ 7.50", "12.0", "UN", "Sim", "T01", "Tributado", "Monofásico",
		"validado\n14/03/2025 09:26:53",
	}, linhas[0])
}

// TestLinhas_CamposAusentesViramVazio: nenhum campo ausente vira texto
// literal de indefinido; preço e estoque zerados ainda são formatados.
func TestLinhas_CamposAusentesViramVazio(t *testing.T) {
	linhas := painel.Linhas(entity.TipoProduto, []entity.Registro{entity.ProdutoRegistro{}})

	require.Len(t, linhas, 1)
	require.Len(t, linhas[0], 13)
	assert.Equal(t, "R$ 0.00", linhas[0][5], "preço ausente formata como zero")
	assert.Equal(t, "0.0", linhas[0][6], "estoque ausente formata como zero")
	for i, cell := range linhas[0] {
		assert.NotContains(t, cell, "undefined", "célula %d não pode vazar indefinido", i)
	}
	assert.Empty(t, linhas[0][12], "sem status nem carimbo a célula fica vazia")
}

// TestLinhas_VaziaProduzUmaLinhaDeAviso, nunca tabela de zero linhas.
func TestLinhas_VaziaProduzUmaLinhaDeAviso(t *testing.T) {
	linhasProduto := painel.Linhas(entity.TipoProduto, nil)
	require.Len(t, linhasProduto, 1, "exatamente uma linha de aviso")
	assert.Equal(t, "Nenhum produto encontrado", linhasProduto[0][0])
	assert.Len(t, linhasProduto[0], 13, "a linha de aviso preserva o esquema")

	linhasCodigo := painel.Linhas(entity.TipoCodigo, []entity.Registro{})
	require.Len(t, linhasCodigo, 1)
	assert.Equal(t, "Nenhum código encontrado", linhasCodigo[0][0])
	assert.Len(t, linhasCodigo[0], 3)
}

// TestLinhas_CodigoNaoCadastrado cobre o esquema de 3 colunas.
func TestLinhas_CodigoNaoCadastrado(t *testing.T) {
	carimbo := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)
	linhas := painel.Linhas(entity.TipoCodigo, []entity.Registro{
		entity.CodigoNaoCadastrado{Codigo: "7899999999001", Status: "sem cadastro", Timestamp: &carimbo},
		entity.CodigoNaoCadastrado{Codigo: "7899999999002"},
	})

	require.Len(t, linhas, 2)
	assert.Equal(t, []string{"7899999999001", "sem cadastro", "02/01/2025 15:04:05"}, linhas[0])
	assert.Equal(t, []string{"7899999999002", "", ""}, linhas[1], "sem status nem carimbo as células ficam vazias")
}

// TestFormatacao_PrecoEEstoque fixa as regras de 2 e 1 casas.
func TestFormatacao_PrecoEEstoque(t *testing.T) {
	assert.Equal(t, "R$ 10.00", painel.FormatarPreco(decimal.NewFromInt(10)))
	assert.Equal(t, "R$ 9.90", painel.FormatarPreco(decimal.NewFromFloat(9.9)))
	assert.Equal(t, "R$ 0.00", painel.FormatarPreco(decimal.Zero))
	assert.Equal(t, "3.5", painel.FormatarEstoque(decimal.NewFromFloat(3.5)))
	assert.Equal(t, "0.0", painel.FormatarEstoque(decimal.Zero))
	assert.Equal(t, "100.0", painel.FormatarEstoque(decimal.NewFromInt(100)))
}

// TestFormatarData_NuloViraVazio.
func TestFormatarData_NuloViraVazio(t *testing.T) {
	assert.Empty(t, painel.FormatarData(nil))
	carimbo := time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "31/12/2024 23:59:00", painel.FormatarData(&carimbo))
}
