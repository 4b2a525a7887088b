package repasse

import (
	"github.com/shopspring/decimal"

	"github.com/heronscremin91/blue-sea-dashboard/internal/domain"
	"github.com/heronscremin91/blue-sea-dashboard/internal/domain/entity"
)

// Liquidar executa o pipeline de deduções de uma reserva e devolve a linha
// liquidada. A ordem importa: cada etapa usa o resultado da anterior.
//
//	impostos         = bruto × alíquota/100
//	comissões        = Comissao(canal, bruto, taxa parceiro)
//	taxa cartão      = TaxaCartao(pagamento, bruto, taxa informada, mediana)
//	café da manhã    = CustoCafe(método, diárias, ocupação)
//	descontos outros = desconto campanha (ausente→0) + estorno (ausente→0)
//	líquido pré-adm  = bruto − (impostos + comissões + cartão + café + outros)
//	taxa adm         = líquido pré-adm × % adm/100
//	base IRRF        = líquido pré-adm − taxa adm
//	IRRF             = base × % IRRF/100
//	líquido repasse  = base − IRRF
//
// O encadeamento é feito sobre valores exatos; o arredondamento a 2 casas
// acontece campo a campo apenas na construção da Liquidacao. Nenhuma condição
// de erro: linha com dado faltante degrada para o padrão documentado.
func Liquidar(r entity.Reserva, p domain.Parametros, medianaCartaoPct decimal.Decimal) entity.Liquidacao {
	canal := domain.ClassificarCanal(r.CanalVenda)
	pagamento := domain.ClassificarPagamento(r.FormaPagamento)
	cafe := domain.ClassificarCafe(r.MetodoUtilizacao)

	bruto := ouZero(r.ValorBruto)

	impostos := bruto.Mul(p.AliquotaImpostos).Div(cem)
	comissoes := Comissao(canal, bruto, r.TaxaParceiroPercent, p)
	taxaCartao := TaxaCartao(pagamento, bruto, r.TaxaCartaoPercent, medianaCartaoPct)
	cafeManha := CustoCafe(cafe, ouZero(r.Dias), ouZero(r.QtdAdultos), ouZero(r.QtdCriancas712), ouZero(r.QtdCriancas06), p)
	descontosOutros := ouZero(r.DescontoCampanha).Add(ouZero(r.EstornoDevolucao))

	liquidoPreAdm := bruto.Sub(impostos.Add(comissoes).Add(taxaCartao).Add(cafeManha).Add(descontosOutros))
	taxaAdm := liquidoPreAdm.Mul(p.PctTaxaAdm).Div(cem)
	baseIRRF := liquidoPreAdm.Sub(taxaAdm)
	irrf := baseIRRF.Mul(p.PctIRRF).Div(cem)
	liquidoRepasse := baseIRRF.Sub(irrf)

	return entity.Liquidacao{
		ValorBruto:      bruto.Round(2),
		Impostos:        impostos.Round(2),
		Comissoes:       comissoes.Round(2),
		TaxaCartao:      taxaCartao.Round(2),
		CafeManha:       cafeManha.Round(2),
		DescontosOutros: descontosOutros.Round(2),
		LiquidoPreAdm:   liquidoPreAdm.Round(2),
		TaxaAdm:         taxaAdm.Round(2),
		IRRF:            irrf.Round(2),
		LiquidoRepasse:  liquidoRepasse.Round(2),
	}
}

// LiquidarTodas liquida as reservas na ordem de entrada. A mediana da taxa de
// cartão é calculada uma única vez, antes da primeira linha.
func LiquidarTodas(reservas []entity.Reserva, p domain.Parametros) ([]entity.Liquidacao, decimal.Decimal) {
	mediana := MedianaTaxaCartao(reservas, p.PctCartaoPadrao)

	liquidacoes := make([]entity.Liquidacao, len(reservas))
	for i, r := range reservas {
		liquidacoes[i] = Liquidar(r, p, mediana)
	}
	return liquidacoes, mediana
}

func ouZero(d decimal.NullDecimal) decimal.Decimal {
	if d.Valid {
		return d.Decimal
	}
	return decimal.Zero
}
