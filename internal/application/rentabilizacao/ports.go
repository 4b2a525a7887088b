package rentabilizacao

import (
	"context"

	"github.com/heronscremin91/blue-sea-dashboard/internal/application/dto"
	"github.com/heronscremin91/blue-sea-dashboard/internal/domain/entity"
)

// ExportadorCSV serializa a planilha enriquecida com as nove colunas derivadas
// (implementado em infrastructure/tabular).
type ExportadorCSV interface {
	Escrever(planilha entity.Planilha, liquidacoes []entity.Liquidacao) ([]byte, error)
}

// GeradorExtratoPDF renderiza o extrato de repasse de um proprietário
// (implementado em infrastructure/pdf).
type GeradorExtratoPDF interface {
	GerarExtrato(ctx context.Context, dados dto.ExtratoDados) ([]byte, error)
}
