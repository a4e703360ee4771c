// Package validatorapi integra o painel com a API pública do validador:
// uma rota de leitura por categoria, cada uma devolvendo um array JSON de
// registros brutos. A decodificação e a normalização para os formatos
// canônicos também vivem aqui.
package validatorapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/andersonm2se/sku-validator-litoral/internal/domain"
	"github.com/andersonm2se/sku-validator-litoral/internal/domain/entity"
)

// rotas de logs por categoria, conforme a API do validador.
var rotas = map[entity.CategoriaID]string{
	entity.CategoriaValidados:      "/logs/validados",
	entity.CategoriaSemTributacao:  "/logs/sem-tributacao",
	entity.CategoriaDesativados:    "/logs/desativados",
	entity.CategoriaSemPreco:       "/logs/sem-prvenda",
	entity.CategoriaNaoCadastrados: "/logs/sem-cadastro",
}

// Client consome a API do validador. Implementa painel.FonteDados.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constrói o cliente. O timeout por busca vem do contexto do
// chamador, não do http.Client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// BuscarCategoria busca os registros da categoria e devolve a sequência já
// normalizada, na ordem do array de resposta.
func (c *Client) BuscarCategoria(ctx context.Context, cat entity.Categoria) ([]entity.Registro, error) {
	rota, ok := rotas[cat.ID]
	if !ok {
		return nil, domain.ErrCategoriaDesconhecida
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+rota, nil)
	if err != nil {
		return nil, fmt.Errorf("montar requisição de %s: %w", rota, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("buscar %s: %w", rota, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("validador respondeu %d para %s", resp.StatusCode, rota)
	}

	var brutos []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&brutos); err != nil {
		return nil, fmt.Errorf("decodificar resposta de %s: %w", rota, err)
	}

	registros := make([]entity.Registro, 0, len(brutos))
	for _, b := range brutos {
		registros = append(registros, Normalizar(cat, b))
	}
	return registros, nil
}
