package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fleetops/shiplog/pkg/response"
	"github.com/fleetops/shiplog/pkg/utils"

	"github.com/fleetops/shiplog/config"
	"github.com/fleetops/shiplog/internal/dto/request"
	"github.com/fleetops/shiplog/internal/dto/resource"
	"github.com/fleetops/shiplog/internal/service"
)

type IAppHandler interface {
	App(c *fiber.Ctx) error
	ListEntries(c *fiber.Ctx) error
}

type appHandler struct {
	appService service.IAppService
}

func NewAppHandler(as service.IAppService) IAppHandler {
	return &appHandler{
		appService: as,
	}
}

func (a *appHandler) App(c *fiber.Ctx) error {
	return c.JSON(response.NewSuccessResponse(&resource.AppResource{
		App:     config.GlobalConfig.GetWebConfig().AppName,
		Env:     config.GlobalConfig.GetWebConfig().Env,
		Time:    time.Now(),
		Version: config.GlobalConfig.GetWebConfig().Version,
	}))
}

func (a *appHandler) ListEntries(c *fiber.Ctx) error {
	var req request.ListEntriesRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response.NewBodyParserErrorResponse())
	}

	ctx := context.Background()

	if errs := utils.ValidateWithContext(c.Context(), req); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response.NewValidationErrorResponse(errs))
	}

	resp, err := a.appService.ListEntries(ctx, req.Limit)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response.NewErrorResponse(ctx, err))
	}

	return c.JSON(response.NewSuccessResponse(resp))
}
