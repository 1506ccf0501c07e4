package routes

import (
	"career-advisor/internal/delivery/http/handler"
	"career-advisor/internal/delivery/http/middleware"
	"career-advisor/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health        *handler.HealthHandler
	Users         *handler.UserHandler
	Conversations *handler.ConversationHandler
	Advice        *handler.AdviceHandler
	Prompts       *handler.PromptHandler
	WS            *ws.Handler

	Owner fiber.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if r == nil || app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app.Group("/api"))
	r.registerWS(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.WS != nil {
		r.WS.RegisterRoutes(app, r.owner())
	}
}

func (r *Registry) owner() fiber.Handler {
	if r.Owner != nil {
		return r.Owner
	}
	return middleware.NewOwnerMiddleware(nil).Middleware()
}
