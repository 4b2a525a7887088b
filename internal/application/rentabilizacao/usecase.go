// Package rentabilizacao contém o caso de uso que orquestra um ciclo completo
// de cálculo: overrides de parâmetros → filtros → mediana do cartão →
// liquidação linha a linha → KPIs e detalhamentos → exportação/extrato.
package rentabilizacao

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heronscremin91/blue-sea-dashboard/internal/application/dto"
	"github.com/heronscremin91/blue-sea-dashboard/internal/domain"
	"github.com/heronscremin91/blue-sea-dashboard/internal/domain/entity"
	"github.com/heronscremin91/blue-sea-dashboard/internal/domain/repasse"
	"github.com/heronscremin91/blue-sea-dashboard/pkg/config"
	"github.com/heronscremin91/blue-sea-dashboard/pkg/logger"
)

// UseCase executa ciclos de cálculo de rentabilização. Sem estado entre
// requisições: cada chamada recebe sua planilha e devolve valores derivados.
type UseCase struct {
	padrao     domain.Parametros
	exportador ExportadorCSV
	extratoPDF GeradorExtratoPDF
	log        *logger.Logger
}

// New constrói o caso de uso com os parâmetros padrão da configuração.
func New(cfg config.CalcConfig, exportador ExportadorCSV, extratoPDF GeradorExtratoPDF, log *logger.Logger) *UseCase {
	return &UseCase{
		padrao:     parametrosDe(cfg),
		exportador: exportador,
		extratoPDF: extratoPDF,
		log:        log,
	}
}

// ParametrosPadrao devolve os padrões configurados (GET /api/parametros).
func (uc *UseCase) ParametrosPadrao() dto.ParametrosDTO {
	return parametrosDTO(uc.padrao)
}

// Calcular executa um ciclo completo sobre a planilha enviada.
func (uc *UseCase) Calcular(ctx context.Context, planilha entity.Planilha, req dto.CalculoRequest) (*dto.CalculoResponse, error) {
	inicio := time.Now()
	calculoID := uuid.New().String()

	log := uc.log.With().
		Str("calculo_id", calculoID).
		Int("linhas_recebidas", len(planilha.Reservas)).
		Logger()

	params := aplicarOverrides(uc.padrao, req.Parametros)
	filtrada := filtrar(planilha, req.Filtros)

	liquidacoes, mediana := repasse.LiquidarTodas(filtrada.Reservas, params)
	kpis := repasse.Agregar(liquidacoes, mediana)

	porCategoria := repasse.AgruparPor(filtrada.Reservas, liquidacoes, func(r entity.Reserva) string { return r.Categoria })
	porCanal := repasse.AgruparPor(filtrada.Reservas, liquidacoes, func(r entity.Reserva) string { return r.CanalVenda })

	if n := contarCanaisNaoReconhecidos(filtrada.Reservas); n > 0 {
		// Canal desconhecido recebe comissão zero em silêncio; vale registrar
		// para que erro de digitação na planilha não passe despercebido.
		log.Warn().Int("linhas", n).Msg("canais de venda não reconhecidos no ciclo")
	}

	log.Info().
		Int("linhas_calculadas", len(liquidacoes)).
		Str("mediana_taxa_cartao", kpis.MedianaTaxaCartao.String()).
		Str("receita_bruta", kpis.ReceitaBruta.String()).
		Dur("duracao", time.Since(inicio)).
		Msg("ciclo de rentabilização concluído")

	return &dto.CalculoResponse{
		CalculoID:    calculoID,
		GeradoEm:     time.Now(),
		Parametros:   parametrosDTO(params),
		KPIs:         kpisDTO(kpis),
		PorCategoria: resumosDTO(porCategoria),
		PorCanal:     resumosDTO(porCanal),
		Linhas:       linhasDTO(filtrada.Reservas, liquidacoes),
		TotalLinhas:  len(liquidacoes),
	}, nil
}

// Exportar devolve o CSV processado (colunas originais + nove derivadas).
func (uc *UseCase) Exportar(ctx context.Context, planilha entity.Planilha, req dto.CalculoRequest) ([]byte, error) {
	params := aplicarOverrides(uc.padrao, req.Parametros)
	filtrada := filtrar(planilha, req.Filtros)

	liquidacoes, _ := repasse.LiquidarTodas(filtrada.Reservas, params)

	csv, err := uc.exportador.Escrever(filtrada, liquidacoes)
	if err != nil {
		return nil, fmt.Errorf("exportar planilha processada: %w", err)
	}
	return csv, nil
}

// Extrato calcula o ciclo e renderiza o extrato PDF de um proprietário.
//
// A mediana do cartão e os filtros valem para o dataset inteiro; só o recorte
// final das linhas é do proprietário, para que os valores batam com a tabela
// de auditoria completa.
func (uc *UseCase) Extrato(ctx context.Context, planilha entity.Planilha, req dto.CalculoRequest, proprietario string) ([]byte, error) {
	proprietario = strings.TrimSpace(proprietario)
	if proprietario == "" {
		return nil, fmt.Errorf("proprietario_nome: %w", domain.ErrEntradaInvalida)
	}

	params := aplicarOverrides(uc.padrao, req.Parametros)
	filtrada := filtrar(planilha, req.Filtros)
	liquidacoes, mediana := repasse.LiquidarTodas(filtrada.Reservas, params)

	var reservas []entity.Reserva
	var doDono []entity.Liquidacao
	for i, r := range filtrada.Reservas {
		if strings.TrimSpace(r.ProprietarioNome) == proprietario {
			reservas = append(reservas, r)
			doDono = append(doDono, liquidacoes[i])
		}
	}
	if len(doDono) == 0 {
		return nil, fmt.Errorf("%q: %w", proprietario, domain.ErrProprietarioNaoEncontrado)
	}

	dados := dto.ExtratoDados{
		Proprietario: proprietario,
		GeradoEm:     time.Now(),
		Linhas:       linhasDTO(reservas, doDono),
		KPIs:         kpisDTO(repasse.Agregar(doDono, mediana)),
	}

	pdf, err := uc.extratoPDF.GerarExtrato(ctx, dados)
	if err != nil {
		return nil, fmt.Errorf("gerar extrato PDF: %w", err)
	}
	return pdf, nil
}

// ── parâmetros ────────────────────────────────────────────────────────────────

func parametrosDe(c config.CalcConfig) domain.Parametros {
	return domain.Parametros{
		AliquotaImpostos:     decimal.NewFromFloat(c.AliquotaImpostos),
		PrecoCafeAdulto:      decimal.NewFromFloat(c.PrecoCafeAdulto),
		PrecoCafeCrianca712:  decimal.NewFromFloat(c.PrecoCafeCrianca712),
		PrecoCafeCrianca06:   decimal.NewFromFloat(c.PrecoCafeCrianca06),
		GratuidadeCriancas06: c.GratuidadeCriancas06,
		PctBooking:           decimal.NewFromFloat(c.PctBooking),
		PctDecolar:           decimal.NewFromFloat(c.PctDecolar),
		PctOperadora:         decimal.NewFromFloat(c.PctOperadora),
		TaxaFixaSite:         decimal.NewFromFloat(c.TaxaFixaSite),
		PctCartaoPadrao:      decimal.NewFromFloat(c.PctCartaoPadrao),
		PctTaxaAdm:           decimal.NewFromFloat(c.PctTaxaAdm),
		PctIRRF:              decimal.NewFromFloat(c.PctIRRF),
	}
}

func aplicarOverrides(base domain.Parametros, ov *dto.ParametrosOverride) domain.Parametros {
	if ov == nil {
		return base
	}
	aplicar := func(destino *decimal.Decimal, valor *float64) {
		if valor != nil {
			*destino = decimal.NewFromFloat(*valor)
		}
	}
	p := base
	aplicar(&p.AliquotaImpostos, ov.AliquotaImpostos)
	aplicar(&p.PrecoCafeAdulto, ov.PrecoCafeAdulto)
	aplicar(&p.PrecoCafeCrianca712, ov.PrecoCafeCrianca712)
	aplicar(&p.PrecoCafeCrianca06, ov.PrecoCafeCrianca06)
	if ov.GratuidadeCriancas06 != nil {
		p.GratuidadeCriancas06 = *ov.GratuidadeCriancas06
	}
	aplicar(&p.PctBooking, ov.PctBooking)
	aplicar(&p.PctDecolar, ov.PctDecolar)
	aplicar(&p.PctOperadora, ov.PctOperadora)
	aplicar(&p.TaxaFixaSite, ov.TaxaFixaSite)
	aplicar(&p.PctCartaoPadrao, ov.PctCartaoPadrao)
	aplicar(&p.PctTaxaAdm, ov.PctTaxaAdm)
	aplicar(&p.PctIRRF, ov.PctIRRF)
	return p
}

// ── filtros ───────────────────────────────────────────────────────────────────

func filtrar(p entity.Planilha, f *dto.Filtros) entity.Planilha {
	if f == nil || (len(f.Categorias) == 0 && len(f.Canais) == 0 && len(f.Proprietarios) == 0) {
		return p
	}

	categorias := conjunto(f.Categorias)
	canais := conjunto(f.Canais)
	proprietarios := conjunto(f.Proprietarios)

	filtrada := entity.Planilha{Colunas: p.Colunas}
	for i, r := range p.Reservas {
		if !pertence(categorias, r.Categoria) || !pertence(canais, r.CanalVenda) || !pertence(proprietarios, r.ProprietarioNome) {
			continue
		}
		filtrada.Reservas = append(filtrada.Reservas, r)
		filtrada.Celulas = append(filtrada.Celulas, p.Celulas[i])
	}
	return filtrada
}

func conjunto(valores []string) map[string]struct{} {
	if len(valores) == 0 {
		return nil
	}
	m := make(map[string]struct{}, len(valores))
	for _, v := range valores {
		m[strings.TrimSpace(v)] = struct{}{}
	}
	return m
}

// pertence: conjunto nil significa "sem filtro nesse campo".
func pertence(m map[string]struct{}, v string) bool {
	if m == nil {
		return true
	}
	_, ok := m[strings.TrimSpace(v)]
	return ok
}

// ── montagem de DTOs ──────────────────────────────────────────────────────────

func parametrosDTO(p domain.Parametros) dto.ParametrosDTO {
	return dto.ParametrosDTO{
		AliquotaImpostos:     p.AliquotaImpostos,
		PrecoCafeAdulto:      p.PrecoCafeAdulto,
		PrecoCafeCrianca712:  p.PrecoCafeCrianca712,
		PrecoCafeCrianca06:   p.PrecoCafeCrianca06,
		GratuidadeCriancas06: p.GratuidadeCriancas06,
		PctBooking:           p.PctBooking,
		PctDecolar:           p.PctDecolar,
		PctOperadora:         p.PctOperadora,
		TaxaFixaSite:         p.TaxaFixaSite,
		PctCartaoPadrao:      p.PctCartaoPadrao,
		PctTaxaAdm:           p.PctTaxaAdm,
		PctIRRF:              p.PctIRRF,
	}
}

func kpisDTO(k repasse.KPIs) dto.KPIsDTO {
	return dto.KPIsDTO{
		ReceitaBruta:      k.ReceitaBruta,
		DescontosTotal:    k.DescontosTotal,
		RepasseLiquido:    k.RepasseLiquido,
		TakeRate:          k.TakeRate,
		MedianaTaxaCartao: k.MedianaTaxaCartao,
	}
}

func resumosDTO(resumos []repasse.ResumoGrupo) []dto.ResumoGrupoDTO {
	out := make([]dto.ResumoGrupoDTO, len(resumos))
	for i, g := range resumos {
		out[i] = dto.ResumoGrupoDTO{
			Grupo:          g.Chave,
			ValorBruto:     g.ValorBruto,
			Impostos:       g.Impostos,
			Comissoes:      g.Comissoes,
			TaxaCartao:     g.TaxaCartao,
			CafeManha:      g.CafeManha,
			TaxaAdm:        g.TaxaAdm,
			IRRF:           g.IRRF,
			LiquidoRepasse: g.LiquidoRepasse,
		}
	}
	return out
}

func linhasDTO(reservas []entity.Reserva, liquidacoes []entity.Liquidacao) []dto.LinhaCalculadaDTO {
	linhas := make([]dto.LinhaCalculadaDTO, len(reservas))
	for i, r := range reservas {
		l := liquidacoes[i]
		linhas[i] = dto.LinhaCalculadaDTO{
			Categoria:        r.Categoria,
			CanalVenda:       r.CanalVenda,
			FormaPagamento:   r.FormaPagamento,
			MetodoUtilizacao: r.MetodoUtilizacao,
			ProprietarioNome: r.ProprietarioNome,

			Dias:                r.Dias,
			ValorBruto:          r.ValorBruto,
			QtdAdultos:          r.QtdAdultos,
			QtdCriancas712:      r.QtdCriancas712,
			QtdCriancas06:       r.QtdCriancas06,
			TaxaParceiroPercent: r.TaxaParceiroPercent,
			TaxaCartaoPercent:   r.TaxaCartaoPercent,
			DescontoCampanha:    r.DescontoCampanha,
			EstornoDevolucao:    r.EstornoDevolucao,

			Impostos:        l.Impostos,
			Comissoes:       l.Comissoes,
			TaxaCartao:      l.TaxaCartao,
			CafeManha:       l.CafeManha,
			DescontosOutros: l.DescontosOutros,
			LiquidoPreAdm:   l.LiquidoPreAdm,
			TaxaAdm:         l.TaxaAdm,
			IRRF:            l.IRRF,
			LiquidoRepasse:  l.LiquidoRepasse,
		}
	}
	return linhas
}

func contarCanaisNaoReconhecidos(reservas []entity.Reserva) int {
	n := 0
	for _, r := range reservas {
		if domain.ClassificarCanal(r.CanalVenda) == domain.CanalOutro && strings.TrimSpace(r.CanalVenda) != "" {
			n++
		}
	}
	return n
}
