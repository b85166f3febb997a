package issues

import (
  "context"
  "errors"
  "fmt"

  "github.com/go-playground/validator/v10"
  "github.com/ushakovn/ticketry/internal/deps/storage/mongodb"
  "github.com/ushakovn/ticketry/internal/models"
)

var (
  ErrNotFound         = errors.New("issue not found")
  ErrPermissionDenied = errors.New("permission denied")
  ErrStorageWrite     = errors.New("storage write failed")
  ErrMalformedInput   = errors.New("malformed input")
)

type Storage interface {
  Get(ctx context.Context, params mongodb.GetParams) (map[string]any, error)
  GetProjection(ctx context.Context, params mongodb.ProjectionParams) (map[string]any, error)
  Insert(ctx context.Context, params mongodb.InsertParams) (string, error)
  Merge(ctx context.Context, params mongodb.MergeParams) error
  Delete(ctx context.Context, params mongodb.DeleteParams) (int64, error)
}

type RoleProvider interface {
  ProjectRoles(ctx context.Context, discordID, projectID string) ([]models.RoleGrant, error)
}

type ProfileProvider interface {
  ProfileByPlayerID(ctx context.Context, discordID string) (models.Document, error)
}

type Notifier interface {
  SendIssueCreated(event models.IssueEvent)
  SendIssueUpdated(event models.IssueEvent)
  SendIssueDeleted(event models.IssueEvent)
}

// Service implements the issue workflows: reads with live profile
// enrichment, and identity-and-role-gated mutations that notify the
// webhook channel.
type Service struct {
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
  Storage  Storage         `validate:"required"`
  Roles    RoleProvider    `validate:"required"`
  Profiles ProfileProvider `validate:"required"`
  Notifier Notifier        `validate:"required"`
}

func (c *Dependencies) Validate() error {
  return validator.New().Struct(c)
}

func NewService(config Config, deps Dependencies) (*Service, error) {
  if err := deps.Validate(); err != nil {
    return nil, fmt.Errorf("invalid dependencies: %w", err)
  }
  if err := config.Validate(); err != nil {
    return nil, fmt.Errorf("invalid config: %w", err)
  }

  return &Service{
    config: config,
    deps:   deps,
  }, nil
}
