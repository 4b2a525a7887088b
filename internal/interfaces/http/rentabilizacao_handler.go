package http

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/heronscremin91/blue-sea-dashboard/internal/application/dto"
	"github.com/heronscremin91/blue-sea-dashboard/internal/application/rentabilizacao"
	"github.com/heronscremin91/blue-sea-dashboard/internal/domain"
	"github.com/heronscremin91/blue-sea-dashboard/internal/domain/entity"
	"github.com/heronscremin91/blue-sea-dashboard/internal/infrastructure/tabular"
)

// RentabilizacaoHandler trata os endpoints do módulo de rentabilização.
type RentabilizacaoHandler struct {
	uc *rentabilizacao.UseCase
}

// NewRentabilizacaoHandler constrói o handler.
func NewRentabilizacaoHandler(uc *rentabilizacao.UseCase) *RentabilizacaoHandler {
	return &RentabilizacaoHandler{uc: uc}
}

// Parametros devolve os parâmetros padrão configurados.
// GET /api/parametros
func (h *RentabilizacaoHandler) Parametros(c *fiber.Ctx) error {
	return c.JSON(h.uc.ParametrosPadrao())
}

// Calcular executa um ciclo de cálculo sobre a planilha enviada.
// POST /api/rentabilizacao/calcular
//
// Corpo multipart: arquivo em "planilha" (CSV ou XLSX) e, opcionalmente, o
// campo "request" com JSON de filtros e overrides de parâmetros.
func (h *RentabilizacaoHandler) Calcular(c *fiber.Ctx) error {
	planilha, req, err := h.lerUpload(c)
	if err != nil {
		return h.erro(c, err)
	}

	resp, err := h.uc.Calcular(c.Context(), planilha, req)
	if err != nil {
		return h.erro(c, err)
	}
	return c.JSON(resp)
}

// Exportar devolve o CSV processado com as nove colunas derivadas.
// POST /api/rentabilizacao/exportar
func (h *RentabilizacaoHandler) Exportar(c *fiber.Ctx) error {
	planilha, req, err := h.lerUpload(c)
	if err != nil {
		return h.erro(c, err)
	}

	csv, err := h.uc.Exportar(c.Context(), planilha, req)
	if err != nil {
		return h.erro(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="rentabilizacao_processada.csv"`)
	return c.Send(csv)
}

// Extrato devolve o extrato de repasse em PDF de um proprietário.
// POST /api/rentabilizacao/extrato
//
// Além da planilha, espera o campo "proprietario_nome" no multipart.
func (h *RentabilizacaoHandler) Extrato(c *fiber.Ctx) error {
	planilha, req, err := h.lerUpload(c)
	if err != nil {
		return h.erro(c, err)
	}

	pdf, err := h.uc.Extrato(c.Context(), planilha, req, c.FormValue("proprietario_nome"))
	if err != nil {
		return h.erro(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="extrato_repasse.pdf"`)
	return c.Send(pdf)
}

// lerUpload materializa a planilha do multipart e decodifica o campo
// opcional "request".
func (h *RentabilizacaoHandler) lerUpload(c *fiber.Ctx) (entity.Planilha, dto.CalculoRequest, error) {
	var req dto.CalculoRequest

	arquivo, err := c.FormFile("planilha")
	if err != nil {
		return entity.Planilha{}, req, domain.ErrEntradaInvalida
	}

	f, err := arquivo.Open()
	if err != nil {
		return entity.Planilha{}, req, err
	}
	defer f.Close()

	dados, err := io.ReadAll(f)
	if err != nil {
		return entity.Planilha{}, req, err
	}

	planilha, err := tabular.Ler(arquivo.Filename, dados)
	if err != nil {
		return entity.Planilha{}, req, err
	}

	if raw := c.FormValue("request"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req); err != nil {
			return entity.Planilha{}, req, domain.ErrEntradaInvalida
		}
	}

	return planilha, req, nil
}

// erro mapeia erros de domínio para status HTTP.
func (h *RentabilizacaoHandler) erro(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "ENTRADA_INVALIDA", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrFormatoNaoSuportado):
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(dto.ErrorResponse{
			Code: "FORMATO_NAO_SUPORTADO", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrPlanilhaVazia):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "PLANILHA_VAZIA", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrProprietarioNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "PROPRIETARIO_NAO_ENCONTRADO", Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: err.Error(),
	})
}
