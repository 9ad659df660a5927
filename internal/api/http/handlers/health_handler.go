package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// readinessTimeout bounds each dependency ping so a hung store cannot stall
// the probe.
const readinessTimeout = 2 * time.Second

// Check names a dependency the readiness probe must be able to reach.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// HealthHandler answers the portal's liveness and readiness probes.
type HealthHandler struct {
	service string
	version string
	checks  []Check
}

// NewHealthHandler builds the handler over the given dependency checks.
func NewHealthHandler(service, version string, checks ...Check) *HealthHandler {
	return &HealthHandler{service: service, version: version, checks: checks}
}

// Live reports that the process is up. It deliberately touches no
// dependencies; a portal instance with a flapping store is still alive.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "up",
		"service": h.service,
		"version": h.version,
	})
}

// Ready pings every registered dependency and reports per-check results. Any
// failure returns 503 so the load balancer drains this instance.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readinessTimeout)
	defer cancel()

	results := fiber.Map{}
	ready := true
	for _, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			results[check.Name] = err.Error()
			ready = false
			continue
		}
		results[check.Name] = "ok"
	}

	status := "ready"
	code := fiber.StatusOK
	if !ready {
		status = "not_ready"
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"status":  status,
		"service": h.service,
		"checks":  results,
	})
}
