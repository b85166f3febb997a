package issues

import (
  "context"
  "errors"
  "fmt"

  "github.com/ushakovn/ticketry/internal/deps/storage/mongodb"
  "github.com/ushakovn/ticketry/internal/models"
  "github.com/ushakovn/ticketry/pkg/stringer"
)

func (c *Service) commonParams() mongodb.CommonParams {
  return mongodb.CommonParams{
    Database:   c.config.Database,
    Collection: c.config.Collection,
  }
}

func (c *Service) getIssue(ctx context.Context, id string) (models.Document, error) {
  doc, err := c.deps.Storage.Get(ctx, mongodb.GetParams{
    CommonParams: c.commonParams(),
    Filters:      mongodb.IDFilters(id),
  })
  if err != nil {
    if errors.Is(err, mongodb.ErrNotFound) {
      return nil, ErrNotFound
    }
    return nil, fmt.Errorf("c.deps.Storage.Get: %w", err)
  }

  return models.Document(doc), nil
}

// authorize permits a mutation only when the caller is the reporting player
// and holds a contributor grant on the issue's project.
func (c *Service) authorize(ctx context.Context, caller string, issue models.Document) error {
  grants, err := c.deps.Roles.ProjectRoles(ctx, caller, issue.ProjectID())
  if err != nil {
    return fmt.Errorf("c.deps.Roles.ProjectRoles: %w", err)
  }

  if caller == "" || caller != issue.PlayerID() || !models.HasRole(grants, models.RoleContributor) {
    return ErrPermissionDenied
  }

  return nil
}

func validateCategory(payload models.Document) error {
  value, ok := payload[models.FieldCategory]
  if !ok {
    return fmt.Errorf("%w: category is required", ErrMalformedInput)
  }

  text, ok := value.(string)
  if !ok || stringer.IsEmptyStr(text) {
    return fmt.Errorf("%w: category must be a non-empty string", ErrMalformedInput)
  }

  return nil
}
