// Package tabular lê e escreve a planilha de rentabilização (CSV e XLSX).
//
// A leitura é por nome de coluna, insensível à ordem. Coluna esperada ausente
// é sintetizada como inteiramente ausente; célula numérica ilegível vira
// "ausente" (nunca zero). A degradação para zero, quando cabe, é decisão do
// motor de cálculo, não da ingestão.
package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"

	"github.com/heronscremin91/blue-sea-dashboard/internal/domain"
	"github.com/heronscremin91/blue-sea-dashboard/internal/domain/entity"
)

// Colunas numéricas e categóricas do modelo de dados da planilha.
const (
	ColDias                = "dias"
	ColValorBruto          = "valor_bruto"
	ColQtdAdultos          = "qtd_adultos"
	ColQtdCriancas712      = "qtd_criancas_7_12"
	ColQtdCriancas06       = "qtd_criancas_0_6"
	ColTaxaParceiroPercent = "taxa_parceiro_percent"
	ColTaxaCartaoPercent   = "taxa_cartao_percent"
	ColDescontoCampanha    = "desconto_campanha"
	ColEstornoDevolucao    = "estorno_devolucao"

	ColCanalVenda       = "canal_venda"
	ColFormaPagamento   = "forma_pagamento"
	ColMetodoUtilizacao = "metodo_utilizacao"
	ColCategoria        = "categoria"
	ColProprietarioNome = "proprietario_nome"
)

// ColunasNumericas na ordem canônica do template.
var ColunasNumericas = []string{
	ColDias, ColValorBruto, ColQtdAdultos, ColQtdCriancas712, ColQtdCriancas06,
	ColTaxaParceiroPercent, ColTaxaCartaoPercent, ColDescontoCampanha, ColEstornoDevolucao,
}

// Ler materializa a planilha a partir do arquivo enviado, escolhendo o leitor
// pela extensão.
func Ler(nomeArquivo string, dados []byte) (entity.Planilha, error) {
	switch strings.ToLower(filepath.Ext(nomeArquivo)) {
	case ".csv":
		return LerCSV(dados)
	case ".xlsx":
		return LerXLSX(dados)
	}
	return entity.Planilha{}, fmt.Errorf("%q: %w", nomeArquivo, domain.ErrFormatoNaoSuportado)
}

// LerCSV lê um CSV com linha de cabeçalho. Aceita UTF-8 (com ou sem BOM) e
// Windows-1252, comum em exportações de Excel brasileiro.
func LerCSV(dados []byte) (entity.Planilha, error) {
	dados = bytes.TrimPrefix(dados, []byte{0xEF, 0xBB, 0xBF})
	if !utf8.Valid(dados) {
		decodificados, err := charmap.Windows1252.NewDecoder().Bytes(dados)
		if err != nil {
			return entity.Planilha{}, fmt.Errorf("decodificar Windows-1252: %w", err)
		}
		dados = decodificados
	}

	reader := csv.NewReader(bytes.NewReader(dados))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // linhas curtas degradam para células ausentes

	cabecalho, err := reader.Read()
	if err != nil {
		return entity.Planilha{}, fmt.Errorf("ler cabeçalho: %w", err)
	}

	var linhas [][]string
	for {
		linha, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return entity.Planilha{}, fmt.Errorf("ler linha %d: %w", len(linhas)+2, err)
		}
		linhas = append(linhas, linha)
	}

	return materializar(cabecalho, linhas)
}

// LerXLSX lê a primeira aba de um arquivo XLSX.
func LerXLSX(dados []byte) (entity.Planilha, error) {
	f, err := excelize.OpenReader(bytes.NewReader(dados))
	if err != nil {
		return entity.Planilha{}, fmt.Errorf("abrir XLSX: %w", err)
	}
	defer f.Close()

	abas := f.GetSheetList()
	if len(abas) == 0 {
		return entity.Planilha{}, domain.ErrPlanilhaVazia
	}

	linhas, err := f.GetRows(abas[0])
	if err != nil {
		return entity.Planilha{}, fmt.Errorf("ler aba %q: %w", abas[0], err)
	}
	if len(linhas) == 0 {
		return entity.Planilha{}, domain.ErrPlanilhaVazia
	}

	return materializar(linhas[0], linhas[1:])
}

// materializar transforma cabeçalho + células cruas numa Planilha tipada.
func materializar(cabecalho []string, linhas [][]string) (entity.Planilha, error) {
	if len(linhas) == 0 {
		return entity.Planilha{}, domain.ErrPlanilhaVazia
	}

	colunas := make([]string, len(cabecalho))
	indice := make(map[string]int, len(cabecalho))
	for i, c := range cabecalho {
		nome := strings.ToLower(strings.TrimSpace(c))
		colunas[i] = nome
		if _, existe := indice[nome]; !existe {
			indice[nome] = i
		}
	}

	reservas := make([]entity.Reserva, len(linhas))
	for i, linha := range linhas {
		reservas[i] = entity.Reserva{
			CanalVenda:       texto(linha, indice, ColCanalVenda),
			FormaPagamento:   texto(linha, indice, ColFormaPagamento),
			MetodoUtilizacao: texto(linha, indice, ColMetodoUtilizacao),
			Categoria:        texto(linha, indice, ColCategoria),
			ProprietarioNome: texto(linha, indice, ColProprietarioNome),

			Dias:                numero(linha, indice, ColDias),
			ValorBruto:          numero(linha, indice, ColValorBruto),
			QtdAdultos:          numero(linha, indice, ColQtdAdultos),
			QtdCriancas712:      numero(linha, indice, ColQtdCriancas712),
			QtdCriancas06:       numero(linha, indice, ColQtdCriancas06),
			TaxaParceiroPercent: numero(linha, indice, ColTaxaParceiroPercent),
			TaxaCartaoPercent:   numero(linha, indice, ColTaxaCartaoPercent),
			DescontoCampanha:    numero(linha, indice, ColDescontoCampanha),
			EstornoDevolucao:    numero(linha, indice, ColEstornoDevolucao),
		}
	}

	return entity.Planilha{Colunas: colunas, Celulas: linhas, Reservas: reservas}, nil
}

func texto(linha []string, indice map[string]int, coluna string) string {
	i, ok := indice[coluna]
	if !ok || i >= len(linha) {
		return ""
	}
	return strings.TrimSpace(linha[i])
}

// numero coage a célula para decimal; vazio ou ilegível vira ausente.
func numero(linha []string, indice map[string]int, coluna string) decimal.NullDecimal {
	i, ok := indice[coluna]
	if !ok || i >= len(linha) {
		return decimal.NullDecimal{}
	}
	s := strings.TrimSpace(linha[i])
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
