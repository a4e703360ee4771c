package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andersonm2se/sku-validator-litoral/internal/application/painel"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	PainelUC    *painel.PainelUseCase
	AtualizarUC *painel.AtualizarUseCase
}

// Router registra as rotas da API. Todas são públicas e de leitura, exceto
// o gatilho de atualização.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	h := NewPainelHandler(deps.PainelUC, deps.AtualizarUC)

	categorias := api.Group("/categorias")
	categorias.Get("/", h.Contagens)
	categorias.Get("/:id", h.Pagina)
	categorias.Get("/:id/impressao", h.Impressao)
	categorias.Get("/:id/relatorio.pdf", h.RelatorioPDF)

	api.Post("/atualizar", h.Atualizar)
}
