package entity

// CategoriaID identifica uma das cinco partições fixas do painel.
type CategoriaID string

const (
	CategoriaValidados      CategoriaID = "validados"
	CategoriaSemTributacao  CategoriaID = "sem-trib"
	CategoriaDesativados    CategoriaID = "desativados"
	CategoriaSemPreco       CategoriaID = "sem-preco"
	CategoriaNaoCadastrados CategoriaID = "nao-cadastrados"
)

// TipoCategoria define qual dos dois formatos canônicos a categoria armazena.
type TipoCategoria int

const (
	// TipoProduto categorias cujos registros são produtos completos.
	TipoProduto TipoCategoria = iota
	// TipoCodigo categoria de códigos sem correspondência no cadastro.
	TipoCodigo
)

// Categoria descreve uma partição do painel. O catálogo é fixo e imutável
// durante toda a vida do processo.
type Categoria struct {
	ID     CategoriaID
	Tipo   TipoCategoria
	Titulo string
}

// Categorias catálogo fixo, na ordem de exibição das abas.
var Categorias = []Categoria{
	{ID: CategoriaValidados, Tipo: TipoProduto, Titulo: "Produtos Validados"},
	{ID: CategoriaSemTributacao, Tipo: TipoProduto, Titulo: "Produtos Sem Tributação"},
	{ID: CategoriaDesativados, Tipo: TipoProduto, Titulo: "Produtos Desativados"},
	{ID: CategoriaSemPreco, Tipo: TipoProduto, Titulo: "Produtos Sem Preço de Venda"},
	{ID: CategoriaNaoCadastrados, Tipo: TipoCodigo, Titulo: "Códigos Não Cadastrados"},
}

// CategoriaPorID busca uma categoria no catálogo. Retorna false para id desconhecido.
func CategoriaPorID(id CategoriaID) (Categoria, bool) {
	for _, c := range Categorias {
		if c.ID == id {
			return c, true
		}
	}
	return Categoria{}, false
}
