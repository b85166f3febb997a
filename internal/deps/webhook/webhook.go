package webhook

import (
  "context"
  "encoding/json"
  "fmt"

  "github.com/go-playground/validator/v10"
  "github.com/go-resty/resty/v2"
  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/ticketry/internal/models"
  "github.com/ushakovn/ticketry/pkg/hasher"
  urlvalidator "github.com/ushakovn/ticketry/pkg/validator"
  "github.com/ushakovn/ticketry/pkg/worker"
)

// Client delivers issue events to the configured webhook channel. Delivery
// is decoupled from callers through a worker pool: failures are logged and
// discarded, never returned.
type Client struct {
  config Config
  deps   Dependencies
  pool   *worker.Pool
}

type Config struct {
  URL     string `validate:"required"`
  Workers int
}

func (c *Config) Validate() error {
  if err := validator.New().Struct(c); err != nil {
    return err
  }
  if err := urlvalidator.URL(c.URL); err != nil {
    return fmt.Errorf("invalid webhook url: %w", err)
  }
  return nil
}

type Dependencies struct {
  Client *resty.Client `validate:"required"`
}

func (c *Dependencies) Validate() error {
  return validator.New().Struct(c)
}

func NewClient(ctx context.Context, config Config, deps Dependencies) (*Client, error) {
  if err := deps.Validate(); err != nil {
    return nil, fmt.Errorf("invalid dependencies: %w", err)
  }
  if err := config.Validate(); err != nil {
    return nil, fmt.Errorf("invalid config: %w", err)
  }

  workers := uint8(worker.DefaultCount)
  if config.Workers > 0 {
    workers = uint8(config.Workers)
  }

  return &Client{
    config: config,
    deps:   deps,
    pool:   worker.NewPool(ctx, workers),
  }, nil
}

func (c *Client) SendIssueCreated(event models.IssueEvent) {
  c.send(event)
}

func (c *Client) SendIssueUpdated(event models.IssueEvent) {
  c.send(event)
}

func (c *Client) SendIssueDeleted(event models.IssueEvent) {
  c.send(event)
}

func (c *Client) send(event models.IssueEvent) {
  c.pool.Push(func(ctx context.Context) error {
    if err := c.post(ctx, event); err != nil {
      log.
        WithFields(log.Fields{
          "event.uuid": event.UUID,
          "event.type": event.Type,
        }).
        Errorf("webhook delivery failed: %v", err)
    }

    return nil
  })
}

func (c *Client) post(ctx context.Context, event models.IssueEvent) error {
  body, err := json.Marshal(event)
  if err != nil {
    return fmt.Errorf("json.Marshal: %w", err)
  }

  resp, err := c.deps.Client.R().
    SetContext(ctx).
    SetHeader("Content-Type", "application/json").
    SetHeader("X-Dedup-Key", hasher.SHA256(body)).
    SetBody(body).
    Post(c.config.URL)

  if err != nil {
    return fmt.Errorf("resty.Client.Post: %w", err)
  }

  if resp.IsError() {
    return fmt.Errorf("webhook responded with status: %s", resp.Status())
  }

  log.
    WithFields(log.Fields{
      "event.uuid": event.UUID,
      "event.type": event.Type,
    }).
    Info("event delivered to webhook channel")

  return nil
}

// Shutdown drains queued deliveries and stops the pool.
func (c *Client) Shutdown() {
  c.pool.StopWait()
}
