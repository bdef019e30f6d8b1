// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"revert_connect_backend/internal/app"
	"revert_connect_backend/internal/auth"
	"revert_connect_backend/internal/catalog"
	"revert_connect_backend/internal/config"
	"revert_connect_backend/internal/event"
	"revert_connect_backend/internal/filestorage"
	"revert_connect_backend/internal/firebase"
	"revert_connect_backend/internal/gate"
	"revert_connect_backend/internal/jobs"
	"revert_connect_backend/internal/mentor"
	"revert_connect_backend/internal/middleware"
	"revert_connect_backend/internal/platform/cache"
	"revert_connect_backend/internal/platform/elasticsearch"
	"revert_connect_backend/internal/platform/metrics"
	"revert_connect_backend/internal/post"
	"revert_connect_backend/internal/resource"
	"revert_connect_backend/internal/revert"
	"revert_connect_backend/internal/user"

	"github.com/google/wire"
)

var platformSet = wire.NewSet(
	provideLogger,
	provideDB,
	cache.New,
	cache.NewLoader,
	metrics.New,
	elasticsearch.NewClient,
)

var userSet = wire.NewSet(
	user.NewGORMRepository,
	user.NewService,
	wire.Bind(new(user.Service), new(*user.ServiceImplementation)),
	wire.Bind(new(auth.UserProvisioner), new(*user.ServiceImplementation)),
	wire.Bind(new(mentor.UserDirectory), new(*user.ServiceImplementation)),
	wire.Bind(new(revert.UserDirectory), new(*user.ServiceImplementation)),
	filestorage.NewFileStorageService,
	wire.Bind(new(user.ImageStore), new(*filestorage.FileStorageService)),
	user.NewHandler,
)

var resourceSet = wire.NewSet(
	resource.NewGORMRepository,
	resource.NewIndexer,
	resource.NewService,
	wire.Bind(new(resource.Service), new(*resource.ServiceImplementation)),
	resource.NewHandler,
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		platformSet,

		// Sessions and the gate
		firebase.NewFirebaseService,
		provideTokenVerifier,
		auth.NewResolver,
		wire.Bind(new(middleware.SessionResolver), new(*auth.Resolver)),
		gate.New,
		gate.NewHandler,

		userSet,
		resourceSet,

		catalog.NewService,
		catalog.NewHandler,
		post.NewGORMRepository,
		post.NewService,
		wire.Bind(new(post.Service), new(*post.ServiceImplementation)),
		post.NewHandler,
		event.NewGORMRepository,
		event.NewService,
		wire.Bind(new(event.Service), new(*event.ServiceImplementation)),
		event.NewHandler,
		provideChannel,
		mentor.NewGORMRepository,
		mentor.NewService,
		wire.Bind(new(mentor.Service), new(*mentor.ServiceImplementation)),
		mentor.NewHandler,
		revert.NewService,
		wire.Bind(new(revert.Service), new(*revert.ServiceImplementation)),
		revert.NewHandler,

		jobs.NewResourceIndexJob,
		wire.Bind(new(jobs.ResourceSyncer), new(*resource.Indexer)),

		wire.Struct(new(app.Handlers), "*"),
		app.NewServer,
	)
	return nil, nil, nil
}

// initializeIndexer builds just what the sync-resources command needs.
func initializeIndexer(cfg *config.Config) (*resource.Indexer, func(), error) {
	wire.Build(
		provideLogger,
		provideDB,
		elasticsearch.NewClient,
		resource.NewGORMRepository,
		resource.NewIndexer,
	)
	return nil, nil, nil
}
