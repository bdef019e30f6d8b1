// File: cmd/server/providers.go
package main

import (
	"log"

	"revert_connect_backend/internal/auth"
	"revert_connect_backend/internal/config"
	"revert_connect_backend/internal/event"
	"revert_connect_backend/internal/firebase"
	"revert_connect_backend/internal/mentor"
	"revert_connect_backend/internal/notification"
	"revert_connect_backend/internal/platform/database"
	"revert_connect_backend/internal/platform/logger"
	"revert_connect_backend/internal/post"
	"revert_connect_backend/internal/resource"
	"revert_connect_backend/internal/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// models are migrated at startup.
var models = []interface{}{
	&user.User{},
	&post.Post{},
	&event.Event{},
	&resource.Resource{},
	&mentor.MentorRequest{},
}

func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	l, err := logger.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return l, func() {
		// Sync fails on stdout/stderr on some platforms; nothing to do about it.
		_ = l.Sync()
	}, nil
}

func provideDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, func(), error) {
	db, err := database.NewGORM(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(db, models...); err != nil {
		database.CloseGORMDB(db)
		return nil, nil, err
	}
	logger.Info("Database migrated", zap.Int("models", len(models)))
	return db, func() {
		log.Println("Closing database connection...")
		database.CloseGORMDB(db)
	}, nil
}

// provideTokenVerifier keeps a missing Firebase service a true nil interface so
// the resolver reports sessions as disabled.
func provideTokenVerifier(fs *firebase.FirebaseService) auth.TokenVerifier {
	if fs == nil {
		return nil
	}
	return fs
}

func provideChannel(logger *zap.Logger) notification.Channel {
	return notification.NewLogChannel(logger)
}
