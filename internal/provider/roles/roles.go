package roles

import (
  "context"
  "encoding/json"
  "fmt"
  neturl "net/url"

  "github.com/go-playground/validator/v10"
  "github.com/go-resty/resty/v2"
  "github.com/ushakovn/ticketry/internal/models"
  "github.com/ushakovn/ticketry/pkg/cache"
  urlvalidator "github.com/ushakovn/ticketry/pkg/validator"
)

// Client resolves role grants against the external identity and role
// provider.
type Client struct {
  config Config
  deps   Dependencies
  cache  *cache.Cache[string, string, []models.RoleGrant]
}

type Config struct {
  BaseURL string `validate:"required"`
}

func (c *Config) Validate() error {
  if err := validator.New().Struct(c); err != nil {
    return err
  }
  if err := urlvalidator.URL(c.BaseURL); err != nil {
    return fmt.Errorf("invalid base url: %w", err)
  }
  return nil
}

type Dependencies struct {
  Client *resty.Client `validate:"required"`
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
    cache:  cache.NewCache[string, string, []models.RoleGrant](),
  }, nil
}

// ProjectRoles returns the grants an identity holds on a project. Grants
// are memoized per (identity, project) pair.
func (c *Client) ProjectRoles(ctx context.Context, discordID, projectID string) ([]models.RoleGrant, error) {
  key := cache.Key[string, string]{P: discordID, S: projectID}

  if grants, ok := c.cache.Get(key); ok {
    return grants, nil
  }

  endpoint, err := neturl.JoinPath(c.config.BaseURL, "users", discordID, "projects", projectID, "roles")
  if err != nil {
    return nil, fmt.Errorf("neturl.JoinPath: %w", err)
  }

  resp, err := c.deps.Client.R().SetContext(ctx).Get(endpoint)
  if err != nil {
    return nil, fmt.Errorf("resty.Client.Get: %w", err)
  }

  if resp.IsError() {
    return nil, fmt.Errorf("roles provider responded with status: %s", resp.Status())
  }

  var grants []models.RoleGrant

  if err = json.Unmarshal(resp.Body(), &grants); err != nil {
    return nil, fmt.Errorf("grants unmarshal json: %w", err)
  }

  c.cache.Set(key, grants)

  return grants, nil
}

// Forget drops memoized grants for an identity on a project, forcing the
// next lookup to hit the provider.
func (c *Client) Forget(discordID, projectID string) {
  c.cache.Delete(cache.Key[string, string]{P: discordID, S: projectID})
}
