package entity

import "github.com/shopspring/decimal"

// Reserva é uma linha da planilha de rentabilização já tipada.
//
// Os nove campos numéricos usam decimal.NullDecimal: célula vazia ou ilegível
// vira "ausente" (Valid=false), nunca zero. A distinção importa: taxa de
// parceiro ausente cai no padrão do canal, mas desconto de campanha ausente
// conta como zero no cálculo.
type Reserva struct {
	// Campos categóricos de texto livre.
	CanalVenda       string
	FormaPagamento   string
	MetodoUtilizacao string

	// Campos numéricos coagidos na ingestão.
	Dias                decimal.NullDecimal
	ValorBruto          decimal.NullDecimal
	QtdAdultos          decimal.NullDecimal
	QtdCriancas712      decimal.NullDecimal
	QtdCriancas06       decimal.NullDecimal
	TaxaParceiroPercent decimal.NullDecimal // override da comissão do canal, % sobre o bruto
	TaxaCartaoPercent   decimal.NullDecimal // override da taxa de cartão, % sobre o bruto
	DescontoCampanha    decimal.NullDecimal
	EstornoDevolucao    decimal.NullDecimal

	// Atributos livres usados apenas para filtro/agrupamento.
	Categoria        string
	ProprietarioNome string
}

// Planilha é o dataset de entrada: as linhas tipadas lado a lado com as células
// originais, na mesma ordem, para que a exportação preserve as colunas enviadas.
type Planilha struct {
	Colunas  []string   // cabeçalho original, na ordem do arquivo
	Celulas  [][]string // células cruas, uma fatia por linha de dados
	Reservas []Reserva  // mesma ordem e mesmo tamanho de Celulas
}

// Vazia informa se a planilha não tem linhas de dados.
func (p Planilha) Vazia() bool { return len(p.Reservas) == 0 }
