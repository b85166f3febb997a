package issues

import (
  "context"
  "errors"
  "fmt"
  "strings"

  log "github.com/sirupsen/logrus"
  "github.com/ushakovn/ticketry/internal/deps/storage/mongodb"
  "github.com/ushakovn/ticketry/internal/message"
  "github.com/ushakovn/ticketry/internal/models"
)

// GetByID fetches an issue and overlays the stored player snapshot with the
// live profile. A missing issue is nil, not an error; a failed profile
// lookup falls back to the snapshot.
func (c *Service) GetByID(ctx context.Context, id string) (models.Document, error) {
  issue, err := c.getIssue(ctx, id)
  if err != nil {
    if errors.Is(err, ErrNotFound) {
      return nil, nil
    }
    return nil, err
  }

  profile, err := c.deps.Profiles.ProfileByPlayerID(ctx, issue.PlayerID())
  if err != nil {
    log.
      WithFields(log.Fields{
        "issue.id":        id,
        "issue.player_id": issue.PlayerID(),
      }).
      Warnf("player profile lookup failed: %v", err)

    profile = nil
  }

  return models.EnrichPlayerData(issue, profile), nil
}

// GetModlogs fetches only the modlogs projection of an issue.
func (c *Service) GetModlogs(ctx context.Context, id string) (models.Document, error) {
  doc, err := c.deps.Storage.GetProjection(ctx, mongodb.ProjectionParams{
    GetParams: mongodb.GetParams{
      CommonParams: c.commonParams(),
      Filters:      mongodb.IDFilters(id),
    },
    Fields: []string{models.FieldModlogs},
  })
  if err != nil {
    if errors.Is(err, mongodb.ErrNotFound) {
      return nil, nil
    }
    return nil, fmt.Errorf("c.deps.Storage.GetProjection: %w", err)
  }

  return models.Document(doc), nil
}

// FindExact returns the first issue matching the criteria. An identity
// field in the criteria is ignored, not rejected.
func (c *Service) FindExact(ctx context.Context, criteria models.Document) (models.Document, error) {
  filters := criteria.Clone()
  delete(filters, models.FieldID)

  doc, err := c.deps.Storage.Get(ctx, mongodb.GetParams{
    CommonParams: c.commonParams(),
    Filters:      filters,
  })
  if err != nil {
    if errors.Is(err, mongodb.ErrNotFound) {
      return nil, nil
    }
    return nil, fmt.Errorf("c.deps.Storage.Get: %w", err)
  }

  return models.Document(doc), nil
}

// Update applies caller-supplied fields to an existing issue after the
// authorization gate, then notifies the webhook channel with a field-level
// diff against the pre-update record.
func (c *Service) Update(ctx context.Context, caller, id string, payload, userInfo models.Document) (models.Document, error) {
  stored, err := c.getIssue(ctx, id)
  if err != nil {
    return nil, err
  }

  if err = c.authorize(ctx, caller, stored); err != nil {
    return nil, err
  }

  if err = validateCategory(payload); err != nil {
    return nil, err
  }

  fields := models.SanitizeIssuePayload(payload)
  info := models.ReduceUserInfo(userInfo)

  err = c.deps.Storage.Merge(ctx, mongodb.MergeParams{
    GetParams: mongodb.GetParams{
      CommonParams: c.commonParams(),
      Filters:      mongodb.IDFilters(id),
    },
    Fields: fields,
  })
  if err != nil {
    log.
      WithFields(log.Fields{
        "issue.id": id,
        "caller":   caller,
      }).
      Errorf("issue merge failed: %v", err)

    return nil, fmt.Errorf("%w: c.deps.Storage.Merge: %v", ErrStorageWrite, err)
  }

  diff := models.NewIssueDiff(stored, fields)
  updated := stored.Apply(fields)

  c.deps.Notifier.SendIssueUpdated(message.Do().
    SetIssue(updated).
    SetDiff(diff).
    SetUserInfo(info).
    BuildUpdatedEvent())

  log.
    WithFields(log.Fields{
      "issue.id":   id,
      "caller":     caller,
      "diff.count": len(diff),
    }).
    Info("issue updated")

  return updated, nil
}

// Create inserts a new issue reported by the caller and notifies the
// webhook channel. The store assigns the identifier.
func (c *Service) Create(ctx context.Context, caller string, payload models.Document) (string, error) {
  if err := validateCategory(payload); err != nil {
    return "", err
  }

  if caller == "" || caller != payload.PlayerID() {
    return "", ErrPermissionDenied
  }

  doc := models.StripMarkup(payload)
  delete(doc, models.FieldID)
  doc[models.FieldCategory] = strings.ToLower(doc.Category())

  id, err := c.deps.Storage.Insert(ctx, mongodb.InsertParams{
    CommonParams: c.commonParams(),
    Document:     doc,
  })
  if err != nil {
    log.
      WithFields(log.Fields{
        "issue.project_id": doc.ProjectID(),
        "caller":           caller,
      }).
      Errorf("issue insert failed: %v", err)

    return "", fmt.Errorf("%w: c.deps.Storage.Insert: %v", ErrStorageWrite, err)
  }

  c.deps.Notifier.SendIssueCreated(message.Do().
    SetIssue(doc).
    BuildCreatedEvent())

  log.
    WithFields(log.Fields{
      "issue.id":         id,
      "issue.project_id": doc.ProjectID(),
      "caller":           caller,
    }).
    Info("issue created")

  return id, nil
}

// Delete removes an issue and notifies the webhook channel with the old
// record. Deleting a missing id succeeds and emits a nil old record.
func (c *Service) Delete(ctx context.Context, caller, id string, userInfo models.Document) error {
  stored, err := c.getIssue(ctx, id)
  if err != nil && !errors.Is(err, ErrNotFound) {
    return err
  }

  if stored != nil {
    if err = c.authorize(ctx, caller, stored); err != nil {
      return err
    }
  }

  _, err = c.deps.Storage.Delete(ctx, mongodb.DeleteParams{
    GetParams: mongodb.GetParams{
      CommonParams: c.commonParams(),
      Filters:      mongodb.IDFilters(id),
    },
  })
  if err != nil {
    log.
      WithFields(log.Fields{
        "issue.id": id,
        "caller":   caller,
      }).
      Errorf("issue delete failed: %v", err)

    return fmt.Errorf("%w: c.deps.Storage.Delete: %v", ErrStorageWrite, err)
  }

  info := models.ReduceUserInfo(userInfo)

  c.deps.Notifier.SendIssueDeleted(message.Do().
    SetIssue(stored).
    SetUserInfo(info).
    BuildDeletedEvent())

  log.
    WithFields(log.Fields{
      "issue.id": id,
      "caller":   caller,
    }).
    Info("issue deleted")

  return nil
}
