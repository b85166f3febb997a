package profiles

import (
  "context"
  "errors"
  "fmt"

  "github.com/go-playground/validator/v10"
  "github.com/ushakovn/ticketry/internal/deps/storage/mongodb"
  "github.com/ushakovn/ticketry/internal/models"
)

// Client looks up live player profiles in the users collection.
type Client struct {
  config Config
  deps   Dependencies
}

type Config struct {
  Database   string `validate:"required"`
  Collection string `validate:"required"`
}

func (c *Config) Validate() error {
  return validator.New().Struct(c)
}

type Dependencies struct {
  Mongodb *mongodb.Client `validate:"required"`
}

func (c *Dependencies) Validate() error {
  return validator.New().Struct(c)
}

func NewClient(config Config, deps Dependencies) (*Client, error) {
  if err := deps.Validate(); err != nil {
    return nil, fmt.Errorf("invalid dependencies: %w", err)
  }
  if err := config.Validate(); err != nil {
    return nil, fmt.Errorf("invalid config: %w", err)
  }

  return &Client{
    config: config,
    deps:   deps,
  }, nil
}

// ProfileByPlayerID returns the live profile for a player identity. A
// missing profile is nil, not an error.
func (c *Client) ProfileByPlayerID(ctx context.Context, discordID string) (models.Document, error) {
  doc, err := c.deps.Mongodb.Get(ctx, mongodb.GetParams{
    CommonParams: mongodb.CommonParams{
      Database:   c.config.Database,
      Collection: c.config.Collection,
    },
    Filters: map[string]any{
      "discord_id": discordID,
    },
  })
  if err != nil {
    if errors.Is(err, mongodb.ErrNotFound) {
      return nil, nil
    }
    return nil, fmt.Errorf("c.deps.Mongodb.Get: %w", err)
  }

  return models.Document(doc), nil
}
