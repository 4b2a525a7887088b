package repasse

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/heronscremin91/blue-sea-dashboard/internal/domain/entity"
)

// KPIs indicadores do portfólio inteiro, todos arredondados a 2 casas.
type KPIs struct {
	ReceitaBruta      decimal.Decimal // Σ valor bruto
	DescontosTotal    decimal.Decimal // Σ de todas as deduções já arredondadas por linha
	RepasseLiquido    decimal.Decimal // Σ líquido de repasse
	TakeRate          decimal.Decimal // descontos/receita × 100; zero quando receita é zero
	MedianaTaxaCartao decimal.Decimal // mediana efetivamente aplicada no ciclo
}

// Agregar soma as linhas liquidadas nos KPIs do portfólio.
//
// As parcelas somadas já estão arredondadas por linha; é a soma da tabela de
// auditoria, não a soma dos valores exatos.
func Agregar(liquidacoes []entity.Liquidacao, medianaCartaoPct decimal.Decimal) KPIs {
	receita := decimal.Zero
	descontos := decimal.Zero
	repasse := decimal.Zero

	for _, l := range liquidacoes {
		receita = receita.Add(l.ValorBruto)
		descontos = descontos.Add(l.DescontosTotais())
		repasse = repasse.Add(l.LiquidoRepasse)
	}

	takeRate := decimal.Zero
	if !receita.IsZero() {
		takeRate = descontos.Div(receita).Mul(cem)
	}

	return KPIs{
		ReceitaBruta:      receita.Round(2),
		DescontosTotal:    descontos.Round(2),
		RepasseLiquido:    repasse.Round(2),
		TakeRate:          takeRate.Round(2),
		MedianaTaxaCartao: medianaCartaoPct.Round(2),
	}
}

// ResumoGrupo soma das colunas de detalhamento para um valor da chave de
// agrupamento (categoria, canal de venda...). Cada célula arredondada a 2 casas.
type ResumoGrupo struct {
	Chave          string
	ValorBruto     decimal.Decimal
	Impostos       decimal.Decimal
	Comissoes      decimal.Decimal
	TaxaCartao     decimal.Decimal
	CafeManha      decimal.Decimal
	TaxaAdm        decimal.Decimal
	IRRF           decimal.Decimal
	LiquidoRepasse decimal.Decimal
}

// AgruparPor soma as linhas liquidadas por uma chave categórica arbitrária da
// reserva. Grupos em ordem alfabética da chave; linhas com chave vazia formam
// o grupo "".
func AgruparPor(reservas []entity.Reserva, liquidacoes []entity.Liquidacao, chave func(entity.Reserva) string) []ResumoGrupo {
	porChave := make(map[string]*ResumoGrupo)

	for i, r := range reservas {
		k := chave(r)
		g, ok := porChave[k]
		if !ok {
			g = &ResumoGrupo{Chave: k}
			porChave[k] = g
		}
		l := liquidacoes[i]
		g.ValorBruto = g.ValorBruto.Add(l.ValorBruto)
		g.Impostos = g.Impostos.Add(l.Impostos)
		g.Comissoes = g.Comissoes.Add(l.Comissoes)
		g.TaxaCartao = g.TaxaCartao.Add(l.TaxaCartao)
		g.CafeManha = g.CafeManha.Add(l.CafeManha)
		g.TaxaAdm = g.TaxaAdm.Add(l.TaxaAdm)
		g.IRRF = g.IRRF.Add(l.IRRF)
		g.LiquidoRepasse = g.LiquidoRepasse.Add(l.LiquidoRepasse)
	}

	chaves := make([]string, 0, len(porChave))
	for k := range porChave {
		chaves = append(chaves, k)
	}
	sort.Strings(chaves)

	resumos := make([]ResumoGrupo, 0, len(chaves))
	for _, k := range chaves {
		g := porChave[k]
		g.ValorBruto = g.ValorBruto.Round(2)
		g.Impostos = g.Impostos.Round(2)
		g.Comissoes = g.Comissoes.Round(2)
		g.TaxaCartao = g.TaxaCartao.Round(2)
		g.CafeManha = g.CafeManha.Round(2)
		g.TaxaAdm = g.TaxaAdm.Round(2)
		g.IRRF = g.IRRF.Round(2)
		g.LiquidoRepasse = g.LiquidoRepasse.Round(2)
		resumos = append(resumos, *g)
	}
	return resumos
}
