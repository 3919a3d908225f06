package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fleetops/shiplog/pkg/healthcheck"
	"github.com/fleetops/shiplog/pkg/mysqldb"
)

const (
	healthLivenessStatusOk       = "UP"
	healthLivenessStatusShutdown = "SHUTDOWN"
	healthReadinessStatusOk      = "READY"
)

type IHealthCheckHandler interface {
	Liveness(c *fiber.Ctx) error
	Readiness(c *fiber.Ctx) error
}

type healthCheckHandler struct {
	mysqlInstance mysqldb.IMysqlInstance
}

func NewHealthCheckHandler(mysqlInstance mysqldb.IMysqlInstance) IHealthCheckHandler {
	return &healthCheckHandler{
		mysqlInstance: mysqlInstance,
	}
}

func (h *healthCheckHandler) Liveness(c *fiber.Ctx) error {
	if !healthcheck.Liveness() {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": healthLivenessStatusShutdown})
	}

	return c.JSON(fiber.Map{"status": healthLivenessStatusOk})
}

func (h *healthCheckHandler) Readiness(c *fiber.Ctx) error {
	if !healthcheck.Readiness() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": healthLivenessStatusShutdown})
	}

	conn := map[string]bool{
		"mysql": h.mysqlInstance.Ping(c.Context()) == nil,
	}

	if !healthcheck.IsConnectionSuccessful(conn) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(conn)
	}

	return c.JSON(fiber.Map{"status": healthReadinessStatusOk})
}
