package rentabilizacao_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heronscremin91/blue-sea-dashboard/internal/application/dto"
	"github.com/heronscremin91/blue-sea-dashboard/internal/application/rentabilizacao"
	"github.com/heronscremin91/blue-sea-dashboard/internal/domain"
	"github.com/heronscremin91/blue-sea-dashboard/internal/domain/entity"
	"github.com/heronscremin91/blue-sea-dashboard/pkg/config"
	"github.com/heronscremin91/blue-sea-dashboard/pkg/logger"
)

// exportadorStub captura o que o caso de uso entrega ao escritor CSV.
type exportadorStub struct {
	planilha    entity.Planilha
	liquidacoes []entity.Liquidacao
}

func (s *exportadorStub) Escrever(p entity.Planilha, l []entity.Liquidacao) ([]byte, error) {
	s.planilha = p
	s.liquidacoes = l
	return []byte("csv-processado"), nil
}

// extratoStub captura os dados entregues ao renderizador de PDF.
type extratoStub struct {
	dados dto.ExtratoDados
}

func (s *extratoStub) GerarExtrato(_ context.Context, dados dto.ExtratoDados) ([]byte, error) {
	s.dados = dados
	return []byte("%PDF-1.7"), nil
}

func calcConfigTeste() config.CalcConfig {
	return config.CalcConfig{
		AliquotaImpostos:     16.99,
		PrecoCafeAdulto:      50,
		PrecoCafeCrianca712:  25,
		PrecoCafeCrianca06:   25,
		GratuidadeCriancas06: 1,
		PctBooking:           18,
		PctDecolar:           20,
		PctOperadora:         15,
		TaxaFixaSite:         15.40,
		PctCartaoPadrao:      4.5,
		PctTaxaAdm:           10,
		PctIRRF:              0,
	}
}

func usecaseTeste() (*rentabilizacao.UseCase, *exportadorStub, *extratoStub) {
	exportador := &exportadorStub{}
	extrato := &extratoStub{}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return rentabilizacao.New(calcConfigTeste(), exportador, extrato, log), exportador, extrato
}

func nd(f float64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromFloat(f), Valid: true}
}

// planilhaTeste: duas suítes vendidas pelo booking e um apartamento walk-in,
// donos diferentes.
func planilhaTeste() entity.Planilha {
	return entity.Planilha{
		Colunas: []string{"canal_venda", "forma_pagamento", "valor_bruto", "categoria", "proprietario_nome"},
		Celulas: [][]string{
			{"booking", "cartao", "1000", "Suíte", "Maria Souza"},
			{"walk-in", "dinheiro", "500", "Apartamento", "João Lima"},
			{"booking", "cartao", "1000", "Suíte", "Maria Souza"},
		},
		Reservas: []entity.Reserva{
			{CanalVenda: "booking", FormaPagamento: "cartao", ValorBruto: nd(1000), Categoria: "Suíte", ProprietarioNome: "Maria Souza"},
			{CanalVenda: "walk-in", FormaPagamento: "dinheiro", ValorBruto: nd(500), Categoria: "Apartamento", ProprietarioNome: "João Lima"},
			{CanalVenda: "booking", FormaPagamento: "cartao", ValorBruto: nd(1000), Categoria: "Suíte", ProprietarioNome: "Maria Souza"},
		},
	}
}

func TestParametrosPadrao(t *testing.T) {
	uc, _, _ := usecaseTeste()

	p := uc.ParametrosPadrao()

	assert.Equal(t, "16.99", p.AliquotaImpostos.String())
	assert.Equal(t, "15.4", p.TaxaFixaSite.String())
	assert.Equal(t, 1, p.GratuidadeCriancas06)
	assert.Equal(t, "4.5", p.PctCartaoPadrao.String())
}

func TestCalcular_CicloCompleto(t *testing.T) {
	uc, _, _ := usecaseTeste()

	resp, err := uc.Calcular(context.Background(), planilhaTeste(), dto.CalculoRequest{})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.CalculoID)
	assert.False(t, resp.GeradoEm.IsZero())
	assert.Equal(t, 3, resp.TotalLinhas)
	require.Len(t, resp.Linhas, 3)

	// Sem taxa de cartão informada em nenhuma linha, a mediana cai no padrão.
	assert.Equal(t, "4.50", resp.KPIs.MedianaTaxaCartao.StringFixed(2))
	assert.Equal(t, "2500.00", resp.KPIs.ReceitaBruta.StringFixed(2))
	// 2 × 544.59 + 373.55
	assert.Equal(t, "1462.73", resp.KPIs.RepasseLiquido.StringFixed(2))

	require.Len(t, resp.PorCategoria, 2)
	assert.Equal(t, "Apartamento", resp.PorCategoria[0].Grupo)
	assert.Equal(t, "Suíte", resp.PorCategoria[1].Grupo)
	assert.Equal(t, "2000.00", resp.PorCategoria[1].ValorBruto.StringFixed(2))

	require.Len(t, resp.PorCanal, 2)
	assert.Equal(t, "booking", resp.PorCanal[0].Grupo)
	assert.Equal(t, "1089.18", resp.PorCanal[0].LiquidoRepasse.StringFixed(2))

	// Linha de auditoria carrega entrada e derivadas lado a lado.
	assert.Equal(t, "544.59", resp.Linhas[0].LiquidoRepasse.StringFixed(2))
	assert.Equal(t, "booking", resp.Linhas[0].CanalVenda)
}

func TestCalcular_OverridesDeParametros(t *testing.T) {
	uc, _, _ := usecaseTeste()
	irrf := 1.5
	adm := 0.0
	req := dto.CalculoRequest{
		Parametros: &dto.ParametrosOverride{PctIRRF: &irrf, PctTaxaAdm: &adm},
	}

	resp, err := uc.Calcular(context.Background(), planilhaTeste(), req)
	require.NoError(t, err)

	// Overrides são ecoados na resposta.
	assert.Equal(t, "1.5", resp.Parametros.PctIRRF.String())
	assert.True(t, resp.Parametros.PctTaxaAdm.IsZero())
	// E aplicados: sem taxa adm, IRRF 1.5% sobre o pré-adm de 605.10 = 9.08.
	assert.Equal(t, "0.00", resp.Linhas[0].TaxaAdm.StringFixed(2))
	assert.Equal(t, "9.08", resp.Linhas[0].IRRF.StringFixed(2))
	assert.Equal(t, "596.02", resp.Linhas[0].LiquidoRepasse.StringFixed(2))
}

func TestCalcular_Filtros(t *testing.T) {
	uc, _, _ := usecaseTeste()
	req := dto.CalculoRequest{
		Filtros: &dto.Filtros{Categorias: []string{"Suíte"}},
	}

	resp, err := uc.Calcular(context.Background(), planilhaTeste(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalLinhas)
	assert.Equal(t, "2000.00", resp.KPIs.ReceitaBruta.StringFixed(2))
	require.Len(t, resp.PorCategoria, 1)
	assert.Equal(t, "Suíte", resp.PorCategoria[0].Grupo)
}

func TestCalcular_FiltroSemCorrespondencia(t *testing.T) {
	uc, _, _ := usecaseTeste()
	req := dto.CalculoRequest{
		Filtros: &dto.Filtros{Canais: []string{"airbnb"}},
	}

	resp, err := uc.Calcular(context.Background(), planilhaTeste(), req)
	require.NoError(t, err)

	assert.Equal(t, 0, resp.TotalLinhas)
	assert.True(t, resp.KPIs.ReceitaBruta.IsZero())
	assert.True(t, resp.KPIs.TakeRate.IsZero())
}

func TestExportar_EntregaPlanilhaFiltrada(t *testing.T) {
	uc, exportador, _ := usecaseTeste()
	req := dto.CalculoRequest{
		Filtros: &dto.Filtros{Proprietarios: []string{"João Lima"}},
	}

	csv, err := uc.Exportar(context.Background(), planilhaTeste(), req)
	require.NoError(t, err)

	assert.Equal(t, []byte("csv-processado"), csv)
	require.Len(t, exportador.planilha.Reservas, 1)
	require.Len(t, exportador.liquidacoes, 1)
	assert.Equal(t, "João Lima", exportador.planilha.Reservas[0].ProprietarioNome)
	assert.Equal(t, "373.55", exportador.liquidacoes[0].LiquidoRepasse.StringFixed(2))
}

func TestExtrato_RecorteDoProprietario(t *testing.T) {
	uc, _, extrato := usecaseTeste()

	pdf, err := uc.Extrato(context.Background(), planilhaTeste(), dto.CalculoRequest{}, "Maria Souza")
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-1.7"), pdf)
	assert.Equal(t, "Maria Souza", extrato.dados.Proprietario)
	require.Len(t, extrato.dados.Linhas, 2)
	assert.Equal(t, "2000.00", extrato.dados.KPIs.ReceitaBruta.StringFixed(2))
	assert.Equal(t, "1089.18", extrato.dados.KPIs.RepasseLiquido.StringFixed(2))
	// A mediana do ciclo é a do dataset inteiro, não só das linhas do dono.
	assert.Equal(t, "4.50", extrato.dados.KPIs.MedianaTaxaCartao.StringFixed(2))
}

func TestExtrato_ProprietarioNaoEncontrado(t *testing.T) {
	uc, _, _ := usecaseTeste()

	_, err := uc.Extrato(context.Background(), planilhaTeste(), dto.CalculoRequest{}, "Fulano de Tal")
	require.ErrorIs(t, err, domain.ErrProprietarioNaoEncontrado)
}

func TestExtrato_NomeVazio(t *testing.T) {
	uc, _, _ := usecaseTeste()

	_, err := uc.Extrato(context.Background(), planilhaTeste(), dto.CalculoRequest{}, "   ")
	require.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
