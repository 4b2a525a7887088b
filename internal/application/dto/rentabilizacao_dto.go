package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ParametrosOverride overrides opcionais dos parâmetros de cálculo para um
// ciclo. Campo ausente mantém o padrão configurado.
type ParametrosOverride struct {
	AliquotaImpostos     *float64 `json:"aliquota_impostos,omitempty"`
	PrecoCafeAdulto      *float64 `json:"preco_cafe_adulto,omitempty"`
	PrecoCafeCrianca712  *float64 `json:"preco_cafe_crianca_7_12,omitempty"`
	PrecoCafeCrianca06   *float64 `json:"preco_cafe_crianca_0_6,omitempty"`
	GratuidadeCriancas06 *int     `json:"gratuidade_criancas_0_6,omitempty"`
	PctBooking           *float64 `json:"pct_booking,omitempty"`
	PctDecolar           *float64 `json:"pct_decolar,omitempty"`
	PctOperadora         *float64 `json:"pct_operadora,omitempty"`
	TaxaFixaSite         *float64 `json:"taxa_fixa_site,omitempty"`
	PctCartaoPadrao      *float64 `json:"pct_cartao_padrao,omitempty"`
	PctTaxaAdm           *float64 `json:"pct_taxa_adm,omitempty"`
	PctIRRF              *float64 `json:"pct_irrf,omitempty"`
}

// Filtros recorte opcional aplicado antes do cálculo (inclusive da mediana).
// Lista vazia ou ausente não filtra aquele campo.
type Filtros struct {
	Categorias    []string `json:"categorias,omitempty"`
	Canais        []string `json:"canais,omitempty"`
	Proprietarios []string `json:"proprietarios,omitempty"`
}

// CalculoRequest campos JSON opcionais que acompanham o upload da planilha.
type CalculoRequest struct {
	Parametros *ParametrosOverride `json:"parametros,omitempty"`
	Filtros    *Filtros            `json:"filtros,omitempty"`
}

// ParametrosDTO parâmetros efetivamente aplicados num ciclo (ou os padrões,
// no GET /api/parametros).
type ParametrosDTO struct {
	AliquotaImpostos     decimal.Decimal `json:"aliquota_impostos"`
	PrecoCafeAdulto      decimal.Decimal `json:"preco_cafe_adulto"`
	PrecoCafeCrianca712  decimal.Decimal `json:"preco_cafe_crianca_7_12"`
	PrecoCafeCrianca06   decimal.Decimal `json:"preco_cafe_crianca_0_6"`
	GratuidadeCriancas06 int             `json:"gratuidade_criancas_0_6"`
	PctBooking           decimal.Decimal `json:"pct_booking"`
	PctDecolar           decimal.Decimal `json:"pct_decolar"`
	PctOperadora         decimal.Decimal `json:"pct_operadora"`
	TaxaFixaSite         decimal.Decimal `json:"taxa_fixa_site"`
	PctCartaoPadrao      decimal.Decimal `json:"pct_cartao_padrao"`
	PctTaxaAdm           decimal.Decimal `json:"pct_taxa_adm"`
	PctIRRF              decimal.Decimal `json:"pct_irrf"`
}

// KPIsDTO indicadores do portfólio.
type KPIsDTO struct {
	ReceitaBruta      decimal.Decimal `json:"receita_bruta"`
	DescontosTotal    decimal.Decimal `json:"descontos_total"`
	RepasseLiquido    decimal.Decimal `json:"repasse_liquido"`
	TakeRate          decimal.Decimal `json:"take_rate"`
	MedianaTaxaCartao decimal.Decimal `json:"mediana_taxa_cartao"`
}

// ResumoGrupoDTO linha dos detalhamentos por categoria e por canal.
type ResumoGrupoDTO struct {
	Grupo          string          `json:"grupo"`
	ValorBruto     decimal.Decimal `json:"valor_bruto"`
	Impostos       decimal.Decimal `json:"impostos"`
	Comissoes      decimal.Decimal `json:"comissoes"`
	TaxaCartao     decimal.Decimal `json:"taxa_cartao"`
	CafeManha      decimal.Decimal `json:"cafe_manha"`
	TaxaAdm        decimal.Decimal `json:"taxa_adm"`
	IRRF           decimal.Decimal `json:"irrf"`
	LiquidoRepasse decimal.Decimal `json:"liquido_repasse"`
}

// LinhaCalculadaDTO uma reserva da tabela de auditoria: entrada tipada mais as
// nove colunas derivadas. NullDecimal serializa como número ou null.
type LinhaCalculadaDTO struct {
	Categoria        string `json:"categoria,omitempty"`
	CanalVenda       string `json:"canal_venda,omitempty"`
	FormaPagamento   string `json:"forma_pagamento,omitempty"`
	MetodoUtilizacao string `json:"metodo_utilizacao,omitempty"`
	ProprietarioNome string `json:"proprietario_nome,omitempty"`

	Dias                decimal.NullDecimal `json:"dias"`
	ValorBruto          decimal.NullDecimal `json:"valor_bruto"`
	QtdAdultos          decimal.NullDecimal `json:"qtd_adultos"`
	QtdCriancas712      decimal.NullDecimal `json:"qtd_criancas_7_12"`
	QtdCriancas06       decimal.NullDecimal `json:"qtd_criancas_0_6"`
	TaxaParceiroPercent decimal.NullDecimal `json:"taxa_parceiro_percent"`
	TaxaCartaoPercent   decimal.NullDecimal `json:"taxa_cartao_percent"`
	DescontoCampanha    decimal.NullDecimal `json:"desconto_campanha"`
	EstornoDevolucao    decimal.NullDecimal `json:"estorno_devolucao"`

	Impostos        decimal.Decimal `json:"impostos"`
	Comissoes       decimal.Decimal `json:"comissoes"`
	TaxaCartao      decimal.Decimal `json:"taxa_cartao"`
	CafeManha       decimal.Decimal `json:"cafe_manha"`
	DescontosOutros decimal.Decimal `json:"descontos_outros"`
	LiquidoPreAdm   decimal.Decimal `json:"liquido_pre_adm"`
	TaxaAdm         decimal.Decimal `json:"taxa_adm"`
	IRRF            decimal.Decimal `json:"irrf"`
	LiquidoRepasse  decimal.Decimal `json:"liquido_repasse"`
}

// CalculoResponse resposta do POST /api/rentabilizacao/calcular.
type CalculoResponse struct {
	CalculoID    string              `json:"calculo_id"`
	GeradoEm     time.Time           `json:"gerado_em"`
	Parametros   ParametrosDTO       `json:"parametros"`
	KPIs         KPIsDTO             `json:"kpis"`
	PorCategoria []ResumoGrupoDTO    `json:"por_categoria"`
	PorCanal     []ResumoGrupoDTO    `json:"por_canal"`
	Linhas       []LinhaCalculadaDTO `json:"linhas"`
	TotalLinhas  int                 `json:"total_linhas"`
}

// ExtratoDados dados prontos para a renderização do extrato PDF de um
// proprietário (recorte das linhas dele + totais).
type ExtratoDados struct {
	Proprietario string
	GeradoEm     time.Time
	Linhas       []LinhaCalculadaDTO
	KPIs         KPIsDTO
}
