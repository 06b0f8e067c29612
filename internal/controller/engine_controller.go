package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/matchboard/gamelogic/internal/protocol"
	"github.com/matchboard/gamelogic/internal/service"
)

type EngineController struct {
	engineService *service.EngineService
}

func NewEngineController(engineService *service.EngineService) *EngineController {
	return &EngineController{engineService: engineService}
}

// HandleRequest serves one engine operation per POST body. The body is
// the same request object the line protocol accepts, and the reply is
// the same response object, so the session layer can use either
// transport interchangeably.
func (ec *EngineController) HandleRequest(c *fiber.Ctx) error {
	var req protocol.Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(protocol.ErrorResponse{
			Error: "malformed request: " + err.Error(),
		})
	}
	return c.JSON(ec.engineService.Dispatch(req))
}
