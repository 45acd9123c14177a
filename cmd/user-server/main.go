package main

import (
	"os"

	"github.com/azimmemon2002/socialhub/config"
	"github.com/azimmemon2002/socialhub/internal/authclient"
	"github.com/azimmemon2002/socialhub/internal/friend"
	"github.com/azimmemon2002/socialhub/internal/health"
	"github.com/azimmemon2002/socialhub/internal/infrastructure/database"
	"github.com/azimmemon2002/socialhub/internal/notify"
	"github.com/azimmemon2002/socialhub/internal/post"
	"github.com/azimmemon2002/socialhub/internal/profile"
	"github.com/azimmemon2002/socialhub/internal/routes"
	"github.com/azimmemon2002/socialhub/internal/token"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "user-local"
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

	db, err := database.NewPostgresDB(cfg,
		&profile.User{}, &profile.Profile{},
		&post.Post{}, &post.Comment{}, &post.Like{},
		&friend.Friend{},
	)
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	tokenService := token.NewService(cfg.JWT.Secret, cfg.TokenTTL())

	notifier, err := notify.New(cfg.Telegram.Token, cfg.Telegram.AdminChatID)
	if err != nil {
		logrus.Warnf("failed to init telegram notifier: %v", err)
	}

	profileService := profile.NewService(profile.NewRepository(db))
	postService := post.NewService(post.NewRepository(db))
	friendService := friend.NewService(friend.NewRepository(db))
	authClient := authclient.NewClient(cfg.AuthService.URL)

	r := gin.Default()
	routes.SetupUser(r, routes.UserHandlers{
		Auth:     authclient.NewHandler(authClient, profileService, notifier),
		Profiles: profile.NewHandler(profileService),
		Posts:    post.NewHandler(postService),
		Friends:  friend.NewHandler(friendService),
		Health:   health.NewHandler(),
	}, tokenService)

	addr := ":" + cfg.Server.Port
	logrus.Infof("starting user server on %s (env: %s)", addr, env)
	if err := r.Run(addr); err != nil {
		logrus.Fatalf("failed to run server: %v", err)
	}
}
