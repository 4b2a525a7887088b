package entity

import "github.com/shopspring/decimal"

// Liquidacao é o resultado do pipeline de deduções para uma reserva.
//
// Cada campo é arredondado a 2 casas de forma independente no momento da
// construção. Os totais e agrupamentos somam os valores já arredondados:
// a tabela de auditoria por reserva é a fonte de verdade, mesmo que isso
// introduza deriva de centavos frente à soma dos valores exatos.
type Liquidacao struct {
	ValorBruto      decimal.Decimal
	Impostos        decimal.Decimal
	Comissoes       decimal.Decimal
	TaxaCartao      decimal.Decimal
	CafeManha       decimal.Decimal
	DescontosOutros decimal.Decimal // desconto de campanha + estorno/devolução
	LiquidoPreAdm   decimal.Decimal
	TaxaAdm         decimal.Decimal
	IRRF            decimal.Decimal
	LiquidoRepasse  decimal.Decimal
}

// DescontosTotais soma todas as deduções da linha (já arredondadas).
func (l Liquidacao) DescontosTotais() decimal.Decimal {
	return l.Impostos.
		Add(l.Comissoes).
		Add(l.TaxaCartao).
		Add(l.CafeManha).
		Add(l.DescontosOutros).
		Add(l.TaxaAdm).
		Add(l.IRRF)
}
