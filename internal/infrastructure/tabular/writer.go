package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/heronscremin91/blue-sea-dashboard/internal/domain/entity"
)

// colunasDerivadas nomes das nove colunas calculadas, na ordem de exportação.
var colunasDerivadas = []string{
	"impostos", "comissoes", "taxa_cartao", "cafe_manha", "descontos_outros",
	"liquido_pre_adm", "taxa_adm", "irrf", "liquido_repasse",
}

// EscritorCSV serializa a planilha processada: células originais intactas,
// colunas numéricas sintetizadas (vazias) e as nove colunas derivadas com duas
// casas decimais. UTF-8, separador vírgula, uma linha por reserva, na ordem de
// entrada.
type EscritorCSV struct{}

// NovoEscritorCSV constrói o escritor.
func NovoEscritorCSV() *EscritorCSV { return &EscritorCSV{} }

// Escrever gera o CSV processado (rentabilizacao_processada.csv).
func (e *EscritorCSV) Escrever(p entity.Planilha, liquidacoes []entity.Liquidacao) ([]byte, error) {
	if len(p.Celulas) != len(liquidacoes) {
		return nil, fmt.Errorf("planilha com %d linhas e %d liquidações", len(p.Celulas), len(liquidacoes))
	}

	// Colunas numéricas ausentes no arquivo original entram vazias no export,
	// como no template.
	presentes := make(map[string]struct{}, len(p.Colunas))
	for _, c := range p.Colunas {
		presentes[c] = struct{}{}
	}
	var sintetizadas []string
	for _, c := range ColunasNumericas {
		if _, ok := presentes[c]; !ok {
			sintetizadas = append(sintetizadas, c)
		}
	}

	cabecalho := make([]string, 0, len(p.Colunas)+len(sintetizadas)+len(colunasDerivadas))
	cabecalho = append(cabecalho, p.Colunas...)
	cabecalho = append(cabecalho, sintetizadas...)
	cabecalho = append(cabecalho, colunasDerivadas...)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(cabecalho); err != nil {
		return nil, fmt.Errorf("escrever cabeçalho: %w", err)
	}

	for i, celulas := range p.Celulas {
		l := liquidacoes[i]

		linha := make([]string, 0, len(cabecalho))
		for j := range p.Colunas {
			if j < len(celulas) {
				linha = append(linha, celulas[j])
			} else {
				linha = append(linha, "")
			}
		}
		for range sintetizadas {
			linha = append(linha, "")
		}
		linha = append(linha,
			l.Impostos.StringFixed(2),
			l.Comissoes.StringFixed(2),
			l.TaxaCartao.StringFixed(2),
			l.CafeManha.StringFixed(2),
			l.DescontosOutros.StringFixed(2),
			l.LiquidoPreAdm.StringFixed(2),
			l.TaxaAdm.StringFixed(2),
			l.IRRF.StringFixed(2),
			l.LiquidoRepasse.StringFixed(2),
		)

		if err := w.Write(linha); err != nil {
			return nil, fmt.Errorf("escrever linha %d: %w", i+2, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("finalizar CSV: %w", err)
	}
	return buf.Bytes(), nil
}
