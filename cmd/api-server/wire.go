//go:build wireinject
// +build wireinject

package main

import (
	"Scribe/config"
	"Scribe/dao"
	"Scribe/dao/cache"
	"Scribe/handler"
	"Scribe/pkg/client"
	"Scribe/pkg/database"
	"Scribe/pkg/email"
	"Scribe/pkg/server"
	"Scribe/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		email.NewClient,
		wire.Bind(new(service.Mailer), new(*email.Client)),
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Article), "*"),
		wire.Struct(new(handler.Comment), "*"),
		wire.Struct(new(handler.Interaction), "*"),
		wire.Struct(new(handler.Profile), "*"),
		wire.Struct(new(handler.Category), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
