// Package paginacao calcula o recorte de página sobre uma sequência de
// registros já carregada em memória. Todo clamp de cursor acontece aqui, na
// leitura: um cursor que ficou além da última página depois de uma troca de
// conteúdo apenas renderiza a última página.
package paginacao

import "github.com/andersonm2se/sku-validator-litoral/internal/domain/entity"

// Pagina metadados de uma página calculada.
type Pagina struct {
	Numero     int // número efetivo após o clamp, sempre em [1, Total]
	Total      int // quantidade de páginas, nunca menor que 1
	TotalItens int
	Inicio     int // intervalo semiaberto [Inicio, Fim) sobre os itens
	Fim        int
}

// Calcular resolve número efetivo, total de páginas e intervalo visível.
// Total = max(1, ceil(totalItens/tamanho)); o número pedido é limitado a
// [1, Total] antes do recorte. Determinística e sem efeitos colaterais.
func Calcular(totalItens, numero, tamanho int) Pagina {
	if tamanho < 1 {
		tamanho = 1
	}
	if totalItens < 0 {
		totalItens = 0
	}
	total := (totalItens + tamanho - 1) / tamanho
	if total < 1 {
		total = 1
	}
	if numero < 1 {
		numero = 1
	}
	if numero > total {
		numero = total
	}
	inicio := (numero - 1) * tamanho
	if inicio > totalItens {
		inicio = totalItens
	}
	fim := inicio + tamanho
	if fim > totalItens {
		fim = totalItens
	}
	return Pagina{Numero: numero, Total: total, TotalItens: totalItens, Inicio: inicio, Fim: fim}
}

// Recortar devolve a fatia visível da página pedida, na ordem de inserção,
// junto com os metadados. Nunca reordena nem copia os registros.
func Recortar(registros []entity.Registro, numero, tamanho int) ([]entity.Registro, Pagina) {
	p := Calcular(len(registros), numero, tamanho)
	return registros[p.Inicio:p.Fim], p
}
