package repasse

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/heronscremin91/blue-sea-dashboard/internal/domain"
	"github.com/heronscremin91/blue-sea-dashboard/internal/domain/entity"
)

// TaxaCartao calcula a taxa de processamento de cartão de uma reserva.
//
// Reserva que não foi paga com cartão não tem taxa. Com cartão, vale a taxa
// informada na linha; ausente, aplica-se a mediana do dataset, já resolvida
// para o padrão configurado quando indefinida (ver MedianaTaxaCartao).
func TaxaCartao(pagamento domain.Pagamento, valorBruto decimal.Decimal, taxaInformada decimal.NullDecimal, medianaPct decimal.Decimal) decimal.Decimal {
	if pagamento != domain.PagamentoCartao {
		return decimal.Zero
	}
	if taxaInformada.Valid {
		return valorBruto.Mul(taxaInformada.Decimal).Div(cem)
	}
	return valorBruto.Mul(medianaPct).Div(cem)
}

// MedianaTaxaCartao calcula, uma vez por ciclo, a mediana das taxas de cartão
// informadas entre as reservas pagas com cartão. Quando nenhuma reserva do
// dataset informa taxa, a mediana é indefinida e vale o padrão configurado.
//
// Deve ser chamada antes de liquidar qualquer linha: é a única dependência
// entre linhas de todo o cálculo.
func MedianaTaxaCartao(reservas []entity.Reserva, padraoPct decimal.Decimal) decimal.Decimal {
	var presentes []decimal.Decimal
	for _, r := range reservas {
		if domain.ClassificarPagamento(r.FormaPagamento) != domain.PagamentoCartao {
			continue
		}
		if r.TaxaCartaoPercent.Valid {
			presentes = append(presentes, r.TaxaCartaoPercent.Decimal)
		}
	}
	return medianaOuPadrao(presentes, padraoPct)
}

// medianaOuPadrao devolve a mediana dos valores, ou o padrão se a lista é vazia.
func medianaOuPadrao(valores []decimal.Decimal, padrao decimal.Decimal) decimal.Decimal {
	n := len(valores)
	if n == 0 {
		return padrao
	}

	ordenados := make([]decimal.Decimal, n)
	copy(ordenados, valores)
	sort.Slice(ordenados, func(i, j int) bool {
		return ordenados[i].LessThan(ordenados[j])
	})

	if n%2 == 1 {
		return ordenados[n/2]
	}
	return ordenados[n/2-1].Add(ordenados[n/2]).Div(decimal.NewFromInt(2))
}
