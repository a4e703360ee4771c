package painel

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/andersonm2se/sku-validator-litoral/internal/domain/entity"
)

// modeloImpressao documento autocontido: estilos, cabeçalho com título e
// data de geração, tabela completa e rodapé com a contagem total. O chamador
// entrega o texto à superfície de impressão; aqui é só texto para fora.
var modeloImpressao = template.Must(template.New("impressao").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
    <meta charset="UTF-8">
    <title>{{.Titulo}} - Impressão</title>
    <style>
        body { font-family: Arial, sans-serif; font-size: 11px; }
        table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        th, td { border: 1px solid #999; padding: 6px 4px; text-align: left; font-size: 9px; white-space: pre-line; }
        th { background: #f5f5f5; }
        tr:nth-child(even) { background: #fafafa; }
    </style>
</head>
<body>
    <h1>{{.Titulo}}</h1>
    <div style="font-size:10px; color:#666;">Gerado em: {{.GeradoEm}}</div>
    <table>
        <thead>
            <tr>{{range .Colunas}}<th>{{.}}</th>{{end}}</tr>
        </thead>
        <tbody>
{{- range .Linhas}}
            <tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
        </tbody>
    </table>
    <div style="font-size:10px; color:#666; margin-top:10px;">
        Total de registros: {{.Total}}
    </div>
</body>
</html>
`))

type dadosImpressao struct {
	Titulo   string
	GeradoEm string
	Colunas  []string
	Linhas   [][]string
	Total    int
}

// DocumentoImpressao monta o documento HTML de impressão da categoria sobre
// TODOS os registros recebidos, ignorando a paginação: o impresso é o
// relatório completo. As células saem das mesmas funções de formatação das
// linhas de tela.
func DocumentoImpressao(cat entity.Categoria, registros []entity.Registro, geradoEm time.Time) (string, error) {
	dados := dadosImpressao{
		Titulo:   cat.Titulo,
		GeradoEm: geradoEm.Format(layoutData),
		Colunas:  Colunas(cat.Tipo),
		Linhas:   Linhas(cat.Tipo, registros),
		Total:    len(registros),
	}
	var buf bytes.Buffer
	if err := modeloImpressao.Execute(&buf, dados); err != nil {
		return "", fmt.Errorf("impressao: montar documento: %w", err)
	}
	return buf.String(), nil
}
