package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/andersonm2se/sku-validator-litoral/internal/application/dto"
	"github.com/andersonm2se/sku-validator-litoral/internal/application/painel"
	"github.com/andersonm2se/sku-validator-litoral/internal/domain"
	"github.com/andersonm2se/sku-validator-litoral/internal/domain/entity"
)

// PainelHandler atende as rotas de leitura e atualização do painel.
type PainelHandler struct {
	painelUC    *painel.PainelUseCase
	atualizarUC *painel.AtualizarUseCase
}

// NewPainelHandler constrói o handler.
func NewPainelHandler(painelUC *painel.PainelUseCase, atualizarUC *painel.AtualizarUseCase) *PainelHandler {
	return &PainelHandler{painelUC: painelUC, atualizarUC: atualizarUC}
}

// Contagens godoc
// @Summary      Contadores por categoria e total geral
// @Tags         painel
// @Produce      json
// @Success      200  {object}  dto.ContagensResponse
// @Router       /api/categorias [get]
func (h *PainelHandler) Contagens(c *fiber.Ctx) error {
	return c.JSON(h.painelUC.Contagens())
}

// Pagina godoc
// @Summary      Página renderizada de uma categoria
// @Tags         painel
// @Produce      json
// @Param        id      path   string  true   "ID da categoria"
// @Param        pagina  query  int     false  "Número da página; ausente ativa a categoria na página 1"
// @Success      200  {object}  dto.PaginaCategoriaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [get]
func (h *PainelHandler) Pagina(c *fiber.Ctx) error {
	id := entity.CategoriaID(c.Params("id"))

	var pagina *int
	if q := c.Query("pagina"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pagina deve ser um inteiro"})
		}
		pagina = &n
	}

	out, err := h.painelUC.PaginaCategoria(id, pagina)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// Atualizar godoc
// @Summary      Executa um ciclo de atualização contra a API do validador
// @Tags         painel
// @Produce      json
// @Success      200  {object}  dto.AtualizacaoResponse
// @Failure      502  {object}  dto.AtualizacaoResponse
// @Router       /api/atualizar [post]
func (h *PainelHandler) Atualizar(c *fiber.Ctx) error {
	err := h.atualizarUC.Atualizar(c.Context())

	out := dto.AtualizacaoResponse{}
	var falha *painel.ErroAtualizacao
	if errors.As(err, &falha) {
		for _, id := range falha.Categorias() {
			out.Falhas = append(out.Falhas, string(id))
		}
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	falhou := make(map[string]bool, len(out.Falhas))
	for _, id := range out.Falhas {
		falhou[id] = true
	}
	for _, cat := range entity.Categorias {
		if !falhou[string(cat.ID)] {
			out.Atualizadas = append(out.Atualizadas, string(cat.ID))
		}
	}

	if len(out.Falhas) > 0 {
		// Dados anteriores seguem válidos; o chamador decide se avisa.
		return c.Status(fiber.StatusBadGateway).JSON(out)
	}
	return c.JSON(out)
}

// Impressao godoc
// @Summary      Documento HTML de impressão com a categoria inteira
// @Tags         painel
// @Produce      html
// @Param        id  path  string  true  "ID da categoria"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id}/impressao [get]
func (h *PainelHandler) Impressao(c *fiber.Ctx) error {
	doc, err := h.painelUC.Documento(entity.CategoriaID(c.Params("id")))
	if err != nil {
		return respostaErro(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(doc)
}

// RelatorioPDF godoc
// @Summary      Relatório PDF com a categoria inteira
// @Tags         painel
// @Produce      application/pdf
// @Param        id  path  string  true  "ID da categoria"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id}/relatorio.pdf [get]
func (h *PainelHandler) RelatorioPDF(c *fiber.Ctx) error {
	id := entity.CategoriaID(c.Params("id"))
	pdf, err := h.painelUC.RelatorioPDF(c.Context(), id)
	if err != nil {
		return respostaErro(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s.pdf"`, id))
	return c.Send(pdf)
}

func respostaErro(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrCategoriaDesconhecida) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoria desconhecida"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
