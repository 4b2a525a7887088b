// Package repasse implementa o motor de cálculo da rentabilização: os
// resolvers de dedução por reserva, o pipeline da liquidação e a agregação
// em KPIs e resumos por grupo.
//
// Todas as funções são puras: recebem a reserva, os Parametros imutáveis do
// ciclo e (quando necessário) a mediana de taxa de cartão pré-calculada.
package repasse

import (
	"github.com/shopspring/decimal"

	"github.com/heronscremin91/blue-sea-dashboard/internal/domain"
)

var cem = decimal.NewFromInt(100)

// Comissao calcula a comissão de canal de uma reserva.
//
// Ordem de prioridade:
//  1. venda direta (walk-in, telefone, whatsapp...) → sem intermediário, zero;
//  2. site → taxa fixa por reserva, independente do valor bruto;
//  3. taxa de parceiro informada na linha → % sobre o bruto;
//  4. padrão do canal (booking, decolar, operadora);
//  5. canal não reconhecido → zero.
func Comissao(canal domain.Canal, valorBruto decimal.Decimal, taxaParceiro decimal.NullDecimal, p domain.Parametros) decimal.Decimal {
	switch canal {
	case domain.CanalDireto:
		return decimal.Zero
	case domain.CanalSite:
		return p.TaxaFixaSite
	}

	if taxaParceiro.Valid {
		return valorBruto.Mul(taxaParceiro.Decimal).Div(cem)
	}

	switch canal {
	case domain.CanalBooking:
		return valorBruto.Mul(p.PctBooking).Div(cem)
	case domain.CanalDecolar:
		return valorBruto.Mul(p.PctDecolar).Div(cem)
	case domain.CanalOperadora:
		return valorBruto.Mul(p.PctOperadora).Div(cem)
	}

	// Canal desconhecido não comissiona; a linha segue no cálculo.
	return decimal.Zero
}
