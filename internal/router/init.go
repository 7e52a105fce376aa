package router

import (
	userapp "user-registration-service/internal/application"
	"user-registration-service/internal/container"
	pginfra "user-registration-service/internal/infrastructure/postgres"
	handlers "user-registration-service/internal/interface/http"
	"user-registration-service/internal/router/modules"
)

// InitModules wires every feature module with its dependencies and adds it
// to the registry. Resources come in through the container built in main;
// nothing here reaches for package-level state.
func InitModules(r *Registry, c *container.Container) {
	repo := pginfra.NewUserRepository(c.Pool, c.Cfg.BcryptCost)
	service := userapp.NewService(repo, c.Logger)
	handler := handlers.NewUserHandler(service, c.Logger)

	r.Add(modules.NewUserModule(handler))
}
