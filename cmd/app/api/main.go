package main

import (
  "context"
  "errors"
  "net/http"
  "os"
  "os/signal"
  "syscall"
  "time"

  "github.com/go-resty/resty/v2"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/ticketry/internal/api"
  "github.com/ushakovn/ticketry/internal/config"
  "github.com/ushakovn/ticketry/internal/deps/storage/mongodb"
  "github.com/ushakovn/ticketry/internal/deps/webhook"
  "github.com/ushakovn/ticketry/internal/issues"
  "github.com/ushakovn/ticketry/internal/provider/profiles"
  "github.com/ushakovn/ticketry/internal/provider/roles"
  "github.com/ushakovn/ticketry/pkg/logger"
)

func main() {
  ctx := context.Background()

  logger.Init()

  mongoClient, err := mongodb.NewClient(ctx,
    mongodb.Config{
      Host: config.Get(ctx, config.MongodbHost).String(),
      Port: config.Get(ctx, config.MongodbPort).String(),
      Authentication: &mongodb.Authentication{
        User:     config.Get(ctx, config.MongodbUser).String(),
        Password: config.Get(ctx, config.MongodbPassword).String(),
      },
    },
    mongodb.Dependencies{
      Client: http.DefaultClient,
    })
  if err != nil {
    log.Fatalf("mongodb.NewClient: %v", err)
  }
  log.Infof("mongodb connection successfully")

  database := config.Get(ctx, config.MongodbDatabase).String()

  webhookClient, err := webhook.NewClient(ctx,
    webhook.Config{
      URL:     config.Get(ctx, config.WebhookURL).String(),
      Workers: config.Get(ctx, config.WebhookWorkers).Int(),
    },
    webhook.Dependencies{
      Client: resty.NewWithClient(http.DefaultClient),
    })
  if err != nil {
    log.Fatalf("webhook.NewClient: %v", err)
  }

  rolesClient, err := roles.NewClient(
    roles.Config{
      BaseURL: config.Get(ctx, config.RolesURL).String(),
    },
    roles.Dependencies{
      Client: resty.NewWithClient(http.DefaultClient),
    })
  if err != nil {
    log.Fatalf("roles.NewClient: %v", err)
  }

  profilesClient, err := profiles.NewClient(
    profiles.Config{
      Database:   database,
      Collection: "users",
    },
    profiles.Dependencies{
      Mongodb: mongoClient,
    })
  if err != nil {
    log.Fatalf("profiles.NewClient: %v", err)
  }

  issueService, err := issues.NewService(
    issues.Config{
      Database:   database,
      Collection: "issues",
    },
    issues.Dependencies{
      Storage:  mongoClient,
      Roles:    rolesClient,
      Profiles: profilesClient,
      Notifier: webhookClient,
    })
  if err != nil {
    log.Fatalf("issues.NewService: %v", err)
  }

  router := api.NewRouter(api.NewIssueHandler(issueService))

  server := &http.Server{
    Addr:    ":" + config.Get(ctx, config.HTTPPort).String(),
    Handler: router,
  }

  go func() {
    if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
      log.Fatalf("server.ListenAndServe: %v", err)
    }
  }()
  log.Infof("api server listening on %s", server.Addr)

  exitSignal := make(chan os.Signal, 1)
  signal.Notify(exitSignal, syscall.SIGINT, syscall.SIGTERM)
  <-exitSignal

  shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
  defer cancel()

  if err = server.Shutdown(shutdownCtx); err != nil {
    log.Errorf("server.Shutdown: %v", err)
  }

  webhookClient.Shutdown()

  log.Infof("api server stopped")
}
