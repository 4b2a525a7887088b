package domain

import "github.com/shopspring/decimal"

// Parametros reúne todas as alíquotas e preços de um ciclo de cálculo.
//
// É um valor imutável: construído uma vez por execução (padrões de configuração,
// possivelmente sobrescritos pela requisição) e passado por valor aos resolvers
// e à calculadora. Nenhuma função do domínio lê configuração global.
type Parametros struct {
	AliquotaImpostos decimal.Decimal // % sobre o valor bruto

	PrecoCafeAdulto      decimal.Decimal // R$ por pessoa/dia no regime POOL
	PrecoCafeCrianca712  decimal.Decimal
	PrecoCafeCrianca06   decimal.Decimal
	GratuidadeCriancas06 int // crianças 0–6 isentas por reserva (contagem fixa, não por diária)

	PctBooking   decimal.Decimal // % padrão por canal quando não há taxa de parceiro na linha
	PctDecolar   decimal.Decimal
	PctOperadora decimal.Decimal
	TaxaFixaSite decimal.Decimal // R$ fixo por reserva vinda do site, independe do bruto

	PctCartaoPadrao decimal.Decimal // fallback quando a mediana do dataset é indefinida

	PctTaxaAdm decimal.Decimal // % sobre o líquido antes do IRRF
	PctIRRF    decimal.Decimal // % sobre o líquido após a taxa administrativa
}
