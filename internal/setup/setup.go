package setup

import (
	"github.com/campushub-dev/campushub/internal/config"
	"github.com/campushub-dev/campushub/internal/handler"
	"github.com/campushub-dev/campushub/internal/jwt"
	"github.com/campushub-dev/campushub/internal/markdown"
	"github.com/campushub-dev/campushub/internal/middleware"
	"github.com/campushub-dev/campushub/internal/service"
	"github.com/campushub-dev/campushub/internal/storage/pg"
	"github.com/campushub-dev/campushub/internal/utils"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Config         *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	renderer := markdown.New()

	thread := service.NewThread(storage, storage, &utils.ThreadValidator{Cfg: &cfg.Public}, renderer)
	reply := service.NewReply(storage, storage, storage, &utils.ReplyValidator{Cfg: &cfg.Public}, renderer)
	query := service.NewQuery(storage, storage, renderer, cfg.Public)
	community := service.NewCommunity(storage, cfg.Public)

	h := handler.New(thread, reply, query, community, storage, cfg)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(jwtService),
		Config:         cfg,
	}, nil
}
