package app

import (
	"context"
	"net/http"
	"time"

	"record-app-go/internal/config"
	"record-app-go/internal/db"
	composerdomain "record-app-go/internal/domain/composer"
	customerdomain "record-app-go/internal/domain/customer"
	persondomain "record-app-go/internal/domain/person"
	teamdomain "record-app-go/internal/domain/team"
	userdomain "record-app-go/internal/domain/user"
	composerrepo "record-app-go/internal/repository/mongo/composer"
	customerrepo "record-app-go/internal/repository/mongo/customer"
	personrepo "record-app-go/internal/repository/mongo/person"
	teamrepo "record-app-go/internal/repository/mongo/team"
	userrepo "record-app-go/internal/repository/mongo/user"
	"record-app-go/internal/transport/httpserver"
	"record-app-go/internal/transport/httpserver/handler"
	"record-app-go/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	cfg         config.Config
	httpServer  *http.Server
	mongoClient *mongo.Client
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: connecting to mongo", "db", cfg.Mongo.Database)
	client, err := db.NewMongo(cfg.Mongo)
	if err != nil {
		return nil, err
	}

	database := client.Database(cfg.Mongo.Database)

	composerService := composerdomain.NewService(composerrepo.NewMongo(database))
	personService := persondomain.NewService(personrepo.NewMongo(database))
	userService := userdomain.NewService(userrepo.NewMongo(database), cfg.Auth.BcryptCost)
	customerService := customerdomain.NewService(customerrepo.NewMongo(database))
	teamService := teamdomain.NewService(teamrepo.NewMongo(database))

	handlers := handler.New(composerService, personService, userService, customerService, teamService, log)

	log.Info("app: initializing http server")
	router := httpserver.NewRouter(handlers)
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:         cfg,
		httpServer:  srv,
		mongoClient: client,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.mongoClient == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return a.mongoClient.Disconnect(ctx)
}
