package validatorapi

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andersonm2se/sku-validator-litoral/internal/domain/entity"
)

// Formatos brutos da API do validador. Três variantes circulam nos logs:
// produto embrulhado em log (status e timestamp no nível de cima), produto
// plano sem embrulho e, em sem-cadastro, strings soltas ou objetos só com o
// campo codigo. Tudo converge aqui para os dois formatos canônicos.

type logBruto struct {
	Codigo    valorTexto    `json:"codigo"`
	Status    string        `json:"status"`
	Timestamp valorData     `json:"timestamp"`
	Produto   *produtoBruto `json:"produto"`
}

type produtoBruto struct {
	Codigo     valorTexto  `json:"Codigo"`
	CodBarras  string      `json:"CodBarras"`
	TipoCodigo string      `json:"TipoCodigo"`
	Descricao  string      `json:"Descricao"`
	NCM        string      `json:"NCM"`
	PrVenda    valorNumero `json:"PrVenda"`
	Estoque    valorNumero `json:"Estoque"`
	Emb        string      `json:"Emb"`
	Ativo      string      `json:"Ativo"`
	CodTrib    string      `json:"CodTrib"`
	ICMS       string      `json:"ICMS"`
	PisCofins  string      `json:"PisCofins"`
}

// valorNumero aceita número JSON, string numérica, null ou ausência.
// Qualquer outra coisa degrada para zero em vez de falhar: o normalizador é
// total por contrato.
type valorNumero struct {
	dec decimal.Decimal
}

func (v *valorNumero) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		v.dec = decimal.Zero
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			v.dec = decimal.Zero
			return nil
		}
		s = strings.TrimSpace(str)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		v.dec = decimal.Zero
		return nil
	}
	v.dec = d
	return nil
}

// valorTexto aceita string ou número; Codigo chega nos dois formatos.
type valorTexto string

func (v *valorTexto) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*v = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			*v = ""
			return nil
		}
		*v = valorTexto(str)
		return nil
	}
	*v = valorTexto(s)
	return nil
}

// valorData aceita carimbo RFC 3339; formato inválido degrada para nulo.
type valorData struct {
	t *time.Time
}

func (v *valorData) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil || s == "" {
		v.t = nil
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		v.t = nil
		return nil
	}
	v.t = &t
	return nil
}

// Normalizar converte um elemento bruto no formato canônico da categoria.
// Função total: entrada malformada degrada para os valores padrão (texto
// vazio, zero numérico, carimbo nulo), nunca para erro.
func Normalizar(cat entity.Categoria, bruto json.RawMessage) entity.Registro {
	if cat.Tipo == entity.TipoCodigo {
		return normalizarCodigo(bruto)
	}
	return normalizarProduto(bruto)
}

func normalizarCodigo(bruto json.RawMessage) entity.Registro {
	var s string
	if err := json.Unmarshal(bruto, &s); err == nil {
		return entity.CodigoNaoCadastrado{Codigo: s}
	}
	var l logBruto
	if err := json.Unmarshal(bruto, &l); err != nil {
		return entity.CodigoNaoCadastrado{}
	}
	return entity.CodigoNaoCadastrado{
		Codigo:    string(l.Codigo),
		Status:    l.Status,
		Timestamp: l.Timestamp.t,
	}
}

func normalizarProduto(bruto json.RawMessage) entity.Registro {
	var l logBruto
	if err := json.Unmarshal(bruto, &l); err != nil {
		return entity.ProdutoRegistro{}
	}
	p := l.Produto
	embrulhado := p != nil
	if !embrulhado {
		// Produto plano, sem embrulho de log.
		p = &produtoBruto{}
		_ = json.Unmarshal(bruto, p)
	}

	// Código de barras: o do produto quando presente, senão o codigo do
	// nível do log, senão vazio. Produto plano não tem log em volta, então
	// o campo Codigo dele nunca vira código de barras.
	codBarras := p.CodBarras
	if codBarras == "" && embrulhado {
		codBarras = string(l.Codigo)
	}

	return entity.ProdutoRegistro{
		Codigo:     string(p.Codigo),
		CodBarras:  codBarras,
		TipoCodigo: p.TipoCodigo,
		Descricao:  p.Descricao,
		NCM:        p.NCM,
		PrVenda:    p.PrVenda.dec,
		Estoque:    p.Estoque.dec,
		Embalagem:  p.Emb,
		Ativo:      p.Ativo,
		CodTrib:    p.CodTrib,
		ICMS:       p.ICMS,
		PisCofins:  p.PisCofins,
		Status:     l.Status,
		Timestamp:  l.Timestamp.t,
	}
}
