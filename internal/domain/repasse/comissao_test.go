package repasse_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/heronscremin91/blue-sea-dashboard/internal/domain"
	"github.com/heronscremin91/blue-sea-dashboard/internal/domain/repasse"
)

// parametrosTeste devolve os parâmetros com os valores padrão do produto:
// impostos 16.99%, café 50/25/25 com 1 gratuidade, booking 18%, decolar 20%,
// operadora 15%, site R$ 15,40 fixo, cartão padrão 4.5%, adm 10%, IRRF 0%.
func parametrosTeste() domain.Parametros {
	return domain.Parametros{
		AliquotaImpostos:     decimal.NewFromFloat(16.99),
		PrecoCafeAdulto:      decimal.NewFromInt(50),
		PrecoCafeCrianca712:  decimal.NewFromInt(25),
		PrecoCafeCrianca06:   decimal.NewFromInt(25),
		GratuidadeCriancas06: 1,
		PctBooking:           decimal.NewFromInt(18),
		PctDecolar:           decimal.NewFromInt(20),
		PctOperadora:         decimal.NewFromInt(15),
		TaxaFixaSite:         decimal.NewFromFloat(15.40),
		PctCartaoPadrao:      decimal.NewFromFloat(4.5),
		PctTaxaAdm:           decimal.NewFromInt(10),
		PctIRRF:              decimal.Zero,
	}
}

func nd(f float64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(f), Valid: true}
}

func ausente() decimal.NullDecimal {
	return decimal.NullDecimal{}
}

func TestComissao_VendaDiretaSempreZero(t *testing.T) {
	p := parametrosTeste()

	// Venda direta não comissiona, qualquer que seja o bruto, inclusive com
	// taxa de parceiro informada na linha.
	diretos := []string{"walk-in", "Walk In", "WALKIN", "telefone", "WhatsApp", "reserva", "recepcao", "Recepção", "telefone/whatsapp", "  walk-in  "}
	for _, canal := range diretos {
		c := repasse.Comissao(domain.ClassificarCanal(canal), decimal.NewFromInt(10000), nd(25), p)
		assert.True(t, c.IsZero(), "canal %q deve ter comissão zero, obteve %s", canal, c)
	}
}

func TestComissao_SiteTaxaFixaIndependeDoBruto(t *testing.T) {
	p := parametrosTeste()

	for _, bruto := range []int64{0, 100, 50000} {
		c := repasse.Comissao(domain.ClassificarCanal("site"), decimal.NewFromInt(bruto), ausente(), p)
		assert.Equal(t, "15.40", c.StringFixed(2), "bruto %d", bruto)
	}
}

func TestComissao_TaxaParceiroSobrepoePadraoDoCanal(t *testing.T) {
	p := parametrosTeste()

	// Booking padrão seria 18%, mas a linha informa 12%.
	c := repasse.Comissao(domain.ClassificarCanal("booking"), decimal.NewFromInt(1000), nd(12), p)
	assert.Equal(t, "120.00", c.StringFixed(2))
}

func TestComissao_PadroesPorCanal(t *testing.T) {
	p := parametrosTeste()
	bruto := decimal.NewFromInt(1000)

	casos := []struct {
		canal    string
		esperado string
	}{
		{"booking", "180.00"},
		{"decolar", "200.00"},
		{"operadora", "150.00"},
		{"operadoras", "150.00"},
		{"  Booking ", "180.00"},
	}
	for _, caso := range casos {
		c := repasse.Comissao(domain.ClassificarCanal(caso.canal), bruto, ausente(), p)
		assert.Equal(t, caso.esperado, c.StringFixed(2), "canal %q", caso.canal)
	}
}

func TestComissao_CanalNaoReconhecidoDegradaParaZero(t *testing.T) {
	p := parametrosTeste()

	c := repasse.Comissao(domain.ClassificarCanal("airbnb"), decimal.NewFromInt(1000), ausente(), p)
	assert.True(t, c.IsZero(), "canal desconhecido sem taxa informada não comissiona")
}

func TestComissao_CanalNaoReconhecidoComTaxaInformada(t *testing.T) {
	p := parametrosTeste()

	// A taxa de parceiro da linha vale mesmo para canal fora da lista.
	c := repasse.Comissao(domain.ClassificarCanal("airbnb"), decimal.NewFromInt(1000), nd(10), p)
	assert.Equal(t, "100.00", c.StringFixed(2))
}
