package routes

import (
	"log"

	"resume-screen/internal/config"
	"resume-screen/internal/database"
	v1 "resume-screen/internal/delivery/http/routes/v1"
	"resume-screen/internal/infrastructure/cache"
	"resume-screen/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the shared infrastructure handed down to versioned
// route registration.
type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

func RegisterV1(r fiber.Router, deps Deps) error {
	if r == nil {
		return nil
	}

	return v1.Register(r, v1.Deps{
		Config: deps.Config,
		DB:     deps.DB,
		Cache:  deps.Cache,
		Hub:    deps.Hub,
		Logger: deps.Logger,
	})
}
