package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Registro é a união dos dois formatos canônicos que o painel armazena.
// Nenhum objeto bruto da fonte circula fora do normalizador: tudo que chega
// ao store já é um ProdutoRegistro ou um CodigoNaoCadastrado.
type Registro interface {
	registroCanonico()
}

// ProdutoRegistro formato canônico das categorias de produto.
// PrVenda e Estoque usam decimal para a formatação exata de 2 e 1 casas;
// campos de texto ausentes na fonte chegam aqui como string vazia.
type ProdutoRegistro struct {
	Codigo     string
	CodBarras  string
	TipoCodigo string
	Descricao  string
	NCM        string
	PrVenda    decimal.Decimal
	Estoque    decimal.Decimal
	Embalagem  string
	Ativo      string
	CodTrib    string
	ICMS       string
	PisCofins  string
	Status     string
	Timestamp  *time.Time // nulo quando o log não tem carimbo
}

func (ProdutoRegistro) registroCanonico() {}

// CodigoNaoCadastrado formato canônico da categoria nao-cadastrados.
type CodigoNaoCadastrado struct {
	Codigo    string
	Status    string
	Timestamp *time.Time
}

func (CodigoNaoCadastrado) registroCanonico() {}
