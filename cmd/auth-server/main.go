package main

import (
	"context"
	"os"

	"github.com/azimmemon2002/socialhub/config"
	"github.com/azimmemon2002/socialhub/internal/account"
	"github.com/azimmemon2002/socialhub/internal/health"
	"github.com/azimmemon2002/socialhub/internal/infrastructure/database"
	"github.com/azimmemon2002/socialhub/internal/routes"
	"github.com/azimmemon2002/socialhub/internal/token"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "auth-local"
	}
	cfg, err := config.Load(env)
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		logrus.SetLevel(logrus.DebugLevel)
	}

	db, err := database.NewPostgresDB(cfg, &account.User{}, &account.Role{})
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	tokenService := token.NewService(cfg.JWT.Secret, cfg.TokenTTL())
	accountService := account.NewService(account.NewRepository(db), tokenService)
	if err := accountService.SeedRoles(context.Background()); err != nil {
		logrus.Fatalf("failed to seed roles: %v", err)
	}

	r := gin.Default()
	routes.SetupAuth(r, account.NewHandler(accountService), health.NewHandler())

	addr := ":" + cfg.Server.Port
	logrus.Infof("starting auth server on %s (env: %s)", addr, env)
	if err := r.Run(addr); err != nil {
		logrus.Fatalf("failed to run server: %v", err)
	}
}
