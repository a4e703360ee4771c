// Package pdf implementa a versão PDF do relatório de categoria usando
// Maroto v2. O layout em A4 paisagem repete o cabeçalho da tabela em cada
// página e fecha com a contagem total, espelhando o documento de impressão:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  HEADER: Título da categoria          │  Gerado em: data      │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABELA: esquema fixo da categoria (13 ou 3 colunas)          │
//	│  ──────────────────────────────────────────────────────────  │
//	│  RODAPÉ: Total de registros                                   │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/andersonm2se/sku-validator-litoral/internal/application/painel"
	"github.com/andersonm2se/sku-validator-litoral/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// gridRelatorio tamanho do grid: comporta as 13 colunas de produto com
// descrição e status mais largos.
const gridRelatorio = 17

// larguras por coluna, somando gridRelatorio.
var (
	largurasProduto = []int{1, 2, 1, 3, 1, 1, 1, 1, 1, 1, 1, 1, 2}
	largurasCodigo  = []int{7, 5, 5}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoRelatorioGenerator implementa painel.GeradorRelatorioPDF usando Maroto v2.
type MarotoRelatorioGenerator struct{}

// NewMarotoRelatorioGenerator constrói o gerador.
func NewMarotoRelatorioGenerator() *MarotoRelatorioGenerator { return &MarotoRelatorioGenerator{} }

// GerarRelatorio gera o PDF da categoria inteira e devolve seus bytes.
// As células vêm de painel.Linhas, as mesmas da tela e da impressão.
func (g *MarotoRelatorioGenerator) GerarRelatorio(
	_ context.Context,
	cat entity.Categoria,
	registros []entity.Registro,
	geradoEm time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithMaxGridSize(gridRelatorio).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(cat.Titulo, true).
		Build()

	m := maroto.New(cfg)

	// Cabeçalho repetido em cada página: título + data de geração + colunas.
	if err := m.RegisterHeader(
		headerRow(cat.Titulo, geradoEm),
		line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}),
		tableHeaderRow(cat.Tipo),
	); err != nil {
		return nil, fmt.Errorf("pdf: registrar cabeçalho: %w", err)
	}

	larguras := largurasPara(cat.Tipo)
	for _, cells := range painel.Linhas(cat.Tipo, registros) {
		m.AddRows(tableRow(cells, larguras))
	}

	// Rodapé com a contagem total.
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(gridRelatorio).Add(
		text.New(fmt.Sprintf("Total de registros: %d", len(registros)), props.Text{
			Size: 8, Color: colorGray, Top: 1,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título da categoria (esq) e data de geração (dir).
func headerRow(titulo string, geradoEm time.Time) core.Row {
	return row.New(10).Add(
		col.New(11).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(6).Add(
			text.New("Gerado em: "+painel.FormatarData(&geradoEm), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela com o esquema fixo da categoria.
func tableHeaderRow(tipo entity.TipoCategoria) core.Row {
	colunas := painel.Colunas(tipo)
	larguras := largurasPara(tipo)
	cols := make([]core.Col, 0, len(colunas))
	for i, label := range colunas {
		cols = append(cols, col.New(larguras[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1, Left: 0.5,
		})))
	}
	return row.New(6).Add(cols...)
}

// tableRow: uma linha de registro já formatada.
func tableRow(cells []string, larguras []int) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for i, cell := range cells {
		cols = append(cols, col.New(larguras[i]).Add(text.New(cell, props.Text{
			Size: 6.5, Top: 0.5, Left: 0.5,
		})))
	}
	return row.New(6).Add(cols...)
}

func largurasPara(tipo entity.TipoCategoria) []int {
	if tipo == entity.TipoCodigo {
		return largurasCodigo
	}
	return largurasProduto
}
