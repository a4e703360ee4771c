package painel

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/andersonm2se/sku-validator-litoral/internal/domain/entity"
)

// Esquemas de coluna fixos por tipo de categoria. Tela, impressão e PDF usam
// os mesmos esquemas e as mesmas funções de formatação, então os valores
// nunca divergem entre as saídas.
var (
	colunasProduto = []string{
		"Código", "Cód. Barras", "Tipo", "Descrição", "NCM", "Preço",
		"Estoque", "Emb", "Ativo", "Cód.Trib", "ICMS", "Pis/Cofins",
		"Status / Data",
	}
	colunasCodigo = []string{"Código", "Status", "Data"}
)

// layoutData formato pt-BR de data e hora das telas do validador.
const layoutData = "02/01/2006 15:04:05"

// Colunas devolve o esquema de colunas do tipo de categoria.
func Colunas(tipo entity.TipoCategoria) []string {
	if tipo == entity.TipoCodigo {
		return colunasCodigo
	}
	return colunasProduto
}

// Linhas converte registros em linhas de exibição, uma lista de células por
// registro, na ordem recebida. Entrada vazia produz exatamente uma linha
// informando que nada foi encontrado, preservando a estrutura da tabela.
func Linhas(tipo entity.TipoCategoria, registros []entity.Registro) [][]string {
	if len(registros) == 0 {
		return [][]string{linhaVazia(tipo)}
	}
	linhas := make([][]string, 0, len(registros))
	for _, r := range registros {
		linhas = append(linhas, linha(r))
	}
	return linhas
}

func linhaVazia(tipo entity.TipoCategoria) []string {
	colunas := Colunas(tipo)
	l := make([]string, len(colunas))
	if tipo == entity.TipoCodigo {
		l[0] = "Nenhum código encontrado"
	} else {
		l[0] = "Nenhum produto encontrado"
	}
	return l
}

func linha(r entity.Registro) []string {
	switch r := r.(type) {
	case entity.ProdutoRegistro:
		return []string{
			r.Codigo,
			r.CodBarras,
			r.TipoCodigo,
			r.Descricao,
			r.NCM,
			FormatarPreco(r.PrVenda),
			FormatarEstoque(r.Estoque),
			r.Embalagem,
			r.Ativo,
			r.CodTrib,
			r.ICMS,
			r.PisCofins,
			statusComData(r.Status, r.Timestamp),
		}
	case entity.CodigoNaoCadastrado:
		return []string{r.Codigo, r.Status, FormatarData(r.Timestamp)}
	}
	return nil
}

// FormatarPreco sempre duas casas decimais com prefixo de moeda.
func FormatarPreco(v decimal.Decimal) string {
	return "R$ " + v.StringFixed(2)
}

// FormatarEstoque sempre uma casa decimal.
func FormatarEstoque(v decimal.Decimal) string {
	return v.StringFixed(1)
}

// FormatarData data e hora no layout pt-BR, ou vazio sem carimbo.
func FormatarData(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(layoutData)
}

// statusComData junta status e carimbo em duas linhas na mesma célula.
func statusComData(status string, t *time.Time) string {
	data := FormatarData(t)
	switch {
	case status == "":
		return data
	case data == "":
		return status
	}
	return status + "\n" + data
}
