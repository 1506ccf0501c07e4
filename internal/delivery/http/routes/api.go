package routes

import "github.com/gofiber/fiber/v3"

func (r *Registry) registerAPI(api fiber.Router) {
	if r.Prompts != nil {
		r.Prompts.RegisterRoutes(api)
	}

	users := api.Group("/users")
	owner := r.owner()
	if r.Users != nil {
		r.Users.RegisterRoutes(users, owner)
	}
	if r.Conversations != nil {
		r.Conversations.RegisterRoutes(users, owner)
	}
	if r.Advice != nil {
		r.Advice.RegisterRoutes(users, owner)
	}
}
