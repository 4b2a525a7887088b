package repasse

import (
	"github.com/shopspring/decimal"

	"github.com/heronscremin91/blue-sea-dashboard/internal/domain"
)

// CustoCafe calcula o custo de café da manhã de uma reserva no regime POOL.
//
// Fora do POOL o custo é zero. No POOL, a gratuidade de crianças 0–6 é uma
// contagem fixa por reserva (não por diária): pagantes = max(0, qtd − isentas).
// Custo diário = adultos×preço adulto + crianças 7–12×preço + pagantes 0–6×preço;
// total = diárias × custo diário. Contagens ausentes valem zero.
func CustoCafe(metodo domain.Cafe, dias, adultos, criancas712, criancas06 decimal.Decimal, p domain.Parametros) decimal.Decimal {
	if metodo != domain.CafePool {
		return decimal.Zero
	}

	pagantes06 := criancas06.IntPart() - int64(p.GratuidadeCriancas06)
	if pagantes06 < 0 {
		pagantes06 = 0
	}

	totalDia := adultos.Mul(p.PrecoCafeAdulto).
		Add(criancas712.Mul(p.PrecoCafeCrianca712)).
		Add(decimal.NewFromInt(pagantes06).Mul(p.PrecoCafeCrianca06))

	return dias.Mul(totalDia)
}
