package message

import (
  "time"

  "github.com/google/uuid"
  "github.com/samber/lo"
  "github.com/ushakovn/ticketry/internal/models"
)

type Builder struct {
  issue    models.Document
  diff     []models.DiffEntry
  userInfo *models.UserInfo
}

func Do() Builder {
  return Builder{}
}

func (b Builder) SetIssue(issue models.Document) Builder {
  b.issue = issue
  return b
}

func (b Builder) SetDiff(diff []models.DiffEntry) Builder {
  b.diff = diff
  return b
}

func (b Builder) SetUserInfo(info models.UserInfo) Builder {
  b.userInfo = lo.ToPtr(info)
  return b
}

func (b Builder) BuildCreatedEvent() models.IssueEvent {
  return b.build(models.IssueCreatedEventType)
}

func (b Builder) BuildUpdatedEvent() models.IssueEvent {
  return b.build(models.IssueUpdatedEventType)
}

func (b Builder) BuildDeletedEvent() models.IssueEvent {
  return b.build(models.IssueDeletedEventType)
}

func (b Builder) build(typ models.EventType) models.IssueEvent {
  return models.IssueEvent{
    UUID:      uuid.NewString(),
    Type:      typ,
    Issue:     b.issue,
    Diff:      b.diff,
    UserInfo:  b.userInfo,
    CreatedAt: time.Now(),
  }
}
