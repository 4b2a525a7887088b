package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/heronscremin91/blue-sea-dashboard/internal/application/rentabilizacao"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	RentabilizacaoUC *rentabilizacao.UseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	handler := NewRentabilizacaoHandler(deps.RentabilizacaoUC)

	api.Get("/parametros", handler.Parametros)

	rent := api.Group("/rentabilizacao")
	rent.Post("/calcular", handler.Calcular)
	rent.Post("/exportar", handler.Exportar)
	rent.Post("/extrato", handler.Extrato)
}
