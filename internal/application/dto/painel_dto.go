package dto

// PaginaCategoriaResponse página renderizada de uma categoria: linhas
// prontas para exibição e metadados para os controles de anterior/próxima.
type PaginaCategoriaResponse struct {
	Categoria    string     `json:"categoria"`
	Titulo       string     `json:"titulo"`
	Colunas      []string   `json:"colunas"`
	Linhas       [][]string `json:"linhas"`
	Pagina       int        `json:"pagina"`
	TotalPaginas int        `json:"total_paginas"`
	TotalItens   int        `json:"total_itens"`
	TemAnterior  bool       `json:"tem_anterior"`
	TemProxima   bool       `json:"tem_proxima"`
}

// ContagemCategoria contador de uma categoria do catálogo.
type ContagemCategoria struct {
	Categoria string `json:"categoria"`
	Titulo    string `json:"titulo"`
	Itens     int    `json:"itens"`
}

// ContagensResponse contadores do painel geral, na ordem das abas.
type ContagensResponse struct {
	Categorias []ContagemCategoria `json:"categorias"`
	Total      int                 `json:"total"`
}

// AtualizacaoResponse resultado de um ciclo de atualização. Falhas lista as
// categorias que mantiveram os dados anteriores.
type AtualizacaoResponse struct {
	Atualizadas []string `json:"atualizadas"`
	Falhas      []string `json:"falhas,omitempty"`
}
