package handler

import (
	"context"
	"time"

	"career-advisor/internal/database"
	"career-advisor/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db Pinger, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	if h.db == nil || h.db.Ping(ctx) != nil {
		dbStatus = "down"
	}

	cacheStatus := "disabled"
	if h.cache != nil {
		cacheStatus = "up"
		if err := h.cache.Ping(ctx); err != nil {
			cacheStatus = "down"
		}
	}

	if dbStatus != "up" {
		return response.Outcome(c, fiber.StatusServiceUnavailable, false, fiber.Map{
			"status": "unhealthy", "database": dbStatus, "redis": cacheStatus,
		})
	}
	body := fiber.Map{"status": "healthy", "database": dbStatus, "redis": cacheStatus}
	if r, ok := h.db.(database.StatsReporter); ok {
		st := r.Stats()
		body["pool"] = fiber.Map{
			"total": st.TotalConns, "idle": st.IdleConns, "acquired": st.AcquiredConns, "max": st.MaxConns,
		}
	}
	return response.Success(c, fiber.StatusOK, body)
}
