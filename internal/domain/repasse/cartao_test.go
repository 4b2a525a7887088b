package repasse_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/heronscremin91/blue-sea-dashboard/internal/domain"
	"github.com/heronscremin91/blue-sea-dashboard/internal/domain/entity"
	"github.com/heronscremin91/blue-sea-dashboard/internal/domain/repasse"
)

func TestTaxaCartao_ZeroForaDoCartao(t *testing.T) {
	mediana := decimal.NewFromFloat(4.5)

	// Qualquer forma de pagamento que não seja cartão ignora as taxas da linha.
	for _, forma := range []string{"dinheiro", "pix", "transferencia", ""} {
		v := repasse.TaxaCartao(domain.ClassificarPagamento(forma), decimal.NewFromInt(1000), nd(3), mediana)
		assert.True(t, v.IsZero(), "forma %q deve ter taxa zero, obteve %s", forma, v)
	}
}

func TestTaxaCartao_TaxaInformadaNaLinha(t *testing.T) {
	v := repasse.TaxaCartao(domain.ClassificarPagamento("cartao"), decimal.NewFromInt(1000), nd(3), decimal.NewFromFloat(4.5))
	assert.Equal(t, "30.00", v.StringFixed(2))
}

func TestTaxaCartao_MedianaQuandoAusente(t *testing.T) {
	v := repasse.TaxaCartao(domain.ClassificarPagamento("Cartao"), decimal.NewFromInt(1000), ausente(), decimal.NewFromFloat(4.5))
	assert.Equal(t, "45.00", v.StringFixed(2))
}

func reservaCartao(taxa decimal.NullDecimal) entity.Reserva {
	return entity.Reserva{FormaPagamento: "cartao", TaxaCartaoPercent: taxa}
}

func TestMedianaTaxaCartao_ImparEPar(t *testing.T) {
	padrao := decimal.NewFromFloat(4.5)

	// Ímpar: mediana é o valor central.
	m := repasse.MedianaTaxaCartao([]entity.Reserva{
		reservaCartao(nd(5)), reservaCartao(nd(3)), reservaCartao(nd(4)),
	}, padrao)
	assert.Equal(t, "4.00", m.StringFixed(2))

	// Par: média dos dois centrais.
	m = repasse.MedianaTaxaCartao([]entity.Reserva{
		reservaCartao(nd(3)), reservaCartao(nd(5)),
	}, padrao)
	assert.Equal(t, "4.00", m.StringFixed(2))
}

func TestMedianaTaxaCartao_IgnoraLinhasForaDoCartao(t *testing.T) {
	// A taxa de 99% está numa linha paga em dinheiro; não entra na mediana.
	m := repasse.MedianaTaxaCartao([]entity.Reserva{
		{FormaPagamento: "dinheiro", TaxaCartaoPercent: nd(99)},
		reservaCartao(nd(4)),
	}, decimal.NewFromFloat(4.5))
	assert.Equal(t, "4.00", m.StringFixed(2))
}

func TestMedianaTaxaCartao_IndefinidaCaiNoPadrao(t *testing.T) {
	padrao := decimal.NewFromFloat(4.5)

	// Nenhuma reserva de cartão informa taxa → mediana indefinida → padrão.
	m := repasse.MedianaTaxaCartao([]entity.Reserva{
		reservaCartao(ausente()),
		{FormaPagamento: "pix", TaxaCartaoPercent: nd(2)},
	}, padrao)
	assert.Equal(t, "4.50", m.StringFixed(2))

	// Dataset vazio idem.
	m = repasse.MedianaTaxaCartao(nil, padrao)
	assert.Equal(t, "4.50", m.StringFixed(2))
}
