// Package pdf implementa a geração do Extrato de Repasse do cotista.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Blue Sea Hotel  │  Extrato de Repasse + Data       │
//	│  ───────────────────────────────────────────────────────── │
//	│  COTISTA: nome + nº de reservas no período                   │
//	│  ───────────────────────────────────────────────────────── │
//	│  TABELA: Canal | Bruto | Deduções | Taxa Adm | Líquido       │
//	│  ───────────────────────────────────────────────────────── │
//	│  TOTAIS: Receita Bruta / Descontos / REPASSE LÍQUIDO         │
//	│  ───────────────────────────────────────────────────────── │
//	│  RODAPÉ: nota sobre café da manhã (POOL) e transparência     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/heronscremin91/blue-sea-dashboard/internal/application/dto"
)

// ── Paleta de cores ──────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa rentabilizacao.GeradorExtratoPDF usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator constrói o gerador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GerarExtrato gera o PDF do extrato e devolve seus bytes.
func (g *MarotoStatementGenerator) GerarExtrato(_ context.Context, dados dto.ExtratoDados) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Extrato de Repasse — Blue Sea Hotel", true).
		WithAuthor("Blue Sea Hotel", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(dados))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(cotistaRow(dados))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(dados.Linhas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(dados.KPIs))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ───────────────────────────────────────────────────────────────────

// headerRow: marca do hotel (esq) e título + data de geração (dir).
func headerRow(dados dto.ExtratoDados) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Blue Sea Hotel", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Dashboard de Rentabilização", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("EXTRATO DE REPASSE", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Gerado em: "+dados.GeradoEm.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// cotistaRow: identificação do proprietário.
func cotistaRow(dados dto.ExtratoDados) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("COTISTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %d reserva(s) no período",
				dados.Proprietario, len(dados.Linhas),
			), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de reservas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Canal", 2, align.Left),
		h("Categoria", 2, align.Left),
		h("Bruto", 2, align.Right),
		h("Deduções", 2, align.Right),
		h("Taxa Adm", 2, align.Right),
		h("Líquido", 2, align.Right),
	)
}

// tableDetailRows: uma fila por reserva do cotista.
func tableDetailRows(linhas []dto.LinhaCalculadaDTO) []core.Row {
	result := make([]core.Row, 0, len(linhas))
	for _, l := range linhas {
		bruto := "—"
		if l.ValorBruto.Valid {
			bruto = "R$ " + l.ValorBruto.Decimal.StringFixed(2)
		}
		deducoes := l.Impostos.Add(l.Comissoes).Add(l.TaxaCartao).Add(l.CafeManha).Add(l.DescontosOutros)

		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				nonEmpty(l.CanalVenda, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(l.Categoria, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				bruto,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+deducoes.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+l.TaxaAdm.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+l.LiquidoRepasse.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloco de totais alinhado à direita.
func totalsRow(kpis dto.KPIsDTO) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grandLabel := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: top,
		})
	}
	grandValue := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: top,
		})
	}

	return row.New(26).Add(
		col.New(3), // espaço à esquerda
		col.New(4).Add(
			label("Receita Bruta:", 2),
			label("Descontos Totais:", 9),
			grandLabel("REPASSE LÍQUIDO:", 17),
		),
		col.New(4).Add(
			value("R$ "+kpis.ReceitaBruta.StringFixed(2), 2),
			value("R$ "+kpis.DescontosTotal.StringFixed(2), 9),
			grandValue("R$ "+kpis.RepasseLiquido.StringFixed(2), 17),
		),
		col.New(1), // espaço à direita
	)
}

// footerRow: nota de transparência do cálculo.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Café da manhã (regime POOL) é informado por transparência no cálculo e segue a "+
				"política interna do hotel. Valores arredondados a duas casas por reserva; "+
				"os totais somam os valores da tabela de auditoria.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ──────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
