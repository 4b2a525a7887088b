package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heronscremin91/blue-sea-dashboard/internal/domain"
)

func TestClassificarCanal(t *testing.T) {
	casos := []struct {
		entrada string
		quero   domain.Canal
	}{
		{"walk-in", domain.CanalDireto},
		{"Walk In", domain.CanalDireto},
		{"WALKIN", domain.CanalDireto},
		{"telefone", domain.CanalDireto},
		{"  WhatsApp  ", domain.CanalDireto},
		{"reserva", domain.CanalDireto},
		{"Recepção", domain.CanalDireto},
		{"recepcao", domain.CanalDireto},
		{"telefone/whatsapp", domain.CanalDireto},
		{"site", domain.CanalSite},
		{"SITE", domain.CanalSite},
		{"Booking", domain.CanalBooking},
		{"decolar", domain.CanalDecolar},
		{"operadora", domain.CanalOperadora},
		{"Operadoras", domain.CanalOperadora},
		{"airbnb", domain.CanalOutro},
		{"", domain.CanalOutro},
	}

	for _, c := range casos {
		assert.Equal(t, c.quero, domain.ClassificarCanal(c.entrada), "canal %q", c.entrada)
	}
}

func TestClassificarPagamento(t *testing.T) {
	assert.Equal(t, domain.PagamentoCartao, domain.ClassificarPagamento("cartao"))
	assert.Equal(t, domain.PagamentoCartao, domain.ClassificarPagamento("Cartão"))
	assert.Equal(t, domain.PagamentoCartao, domain.ClassificarPagamento("  CARTAO  "))
	assert.Equal(t, domain.PagamentoOutro, domain.ClassificarPagamento("dinheiro"))
	assert.Equal(t, domain.PagamentoOutro, domain.ClassificarPagamento("pix"))
	assert.Equal(t, domain.PagamentoOutro, domain.ClassificarPagamento(""))
}

func TestClassificarCafe(t *testing.T) {
	assert.Equal(t, domain.CafePool, domain.ClassificarCafe("POOL"))
	assert.Equal(t, domain.CafePool, domain.ClassificarCafe("pool"))
	assert.Equal(t, domain.CafePool, domain.ClassificarCafe("  Pool "))
	assert.Equal(t, domain.CafeNenhum, domain.ClassificarCafe("incluso"))
	assert.Equal(t, domain.CafeNenhum, domain.ClassificarCafe(""))
}
