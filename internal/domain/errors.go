package domain

import "errors"

// Erros de domínio (sem dependências externas).
//
// O motor de cálculo em si nunca falha: linha com dado ausente ou ilegível
// degrada para o valor padrão documentado. Estes erros existem apenas na
// fronteira de ingestão (upload ilegível, planilha vazia, etc.).
var (
	ErrEntradaInvalida           = errors.New("entrada inválida")
	ErrPlanilhaVazia             = errors.New("planilha sem linhas de reserva")
	ErrFormatoNaoSuportado       = errors.New("formato de arquivo não suportado (use CSV ou XLSX)")
	ErrProprietarioNaoEncontrado = errors.New("proprietário não encontrado na planilha")
)
