package domain

import "strings"

// Classificação dos campos categóricos de texto livre da planilha.
//
// Cada linha é classificada uma única vez (normaliza → enum fechado com
// variante de fallback); os resolvers recebem o enum e não repetem comparação
// de strings. A política de fallback fica centralizada aqui.

// Canal canal de venda da reserva.
type Canal int

const (
	CanalDireto Canal = iota // venda sem intermediário: walk-in, telefone, whatsapp, recepção
	CanalSite                // motor do site (taxa fixa por reserva)
	CanalBooking
	CanalDecolar
	CanalOperadora
	CanalOutro // não reconhecido: comissão zero por decisão de negócio, não erro
)

// vendasDiretas canais sem intermediário, já normalizados.
var vendasDiretas = map[string]struct{}{
	"walk-in":           {},
	"walk in":           {},
	"walkin":            {},
	"telefone":          {},
	"whatsapp":          {},
	"reserva":           {},
	"recepcao":          {},
	"recepção":          {},
	"telefone/whatsapp": {},
}

// ClassificarCanal normaliza (trim, minúsculas) e classifica o canal de venda.
func ClassificarCanal(s string) Canal {
	norm := strings.ToLower(strings.TrimSpace(s))
	if _, ok := vendasDiretas[norm]; ok {
		return CanalDireto
	}
	switch norm {
	case "site":
		return CanalSite
	case "booking":
		return CanalBooking
	case "decolar":
		return CanalDecolar
	case "operadora", "operadoras":
		return CanalOperadora
	}
	return CanalOutro
}

// Pagamento forma de pagamento da reserva.
type Pagamento int

const (
	PagamentoCartao Pagamento = iota
	PagamentoOutro // dinheiro, pix, transferência... sem taxa de cartão
)

// ClassificarPagamento normaliza e classifica a forma de pagamento.
func ClassificarPagamento(s string) Pagamento {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cartao", "cartão":
		return PagamentoCartao
	}
	return PagamentoOutro
}

// Cafe método de utilização do café da manhã.
type Cafe int

const (
	CafePool    Cafe = iota // cobrado por hóspede/dia conforme política interna
	CafeNenhum              // incluído na diária ou não utilizado: custo zero
)

// ClassificarCafe normaliza (trim, maiúsculas) e classifica o método de utilização.
func ClassificarCafe(s string) Cafe {
	if strings.ToUpper(strings.TrimSpace(s)) == "POOL" {
		return CafePool
	}
	return CafeNenhum
}
