package models

import "time"

type EventType string

const (
  IssueCreatedEventType EventType = "issue_created"
  IssueUpdatedEventType EventType = "issue_updated"
  IssueDeletedEventType EventType = "issue_deleted"
)

// IssueEvent is the payload delivered to the notification channel on every
// mutation. Ephemeral: it is never persisted by this service.
type IssueEvent struct {
  UUID      string      `bson:"uuid" json:"uuid"`
  Type      EventType   `bson:"type" json:"type"`
  Issue     Document    `bson:"issue" json:"issue"`
  Diff      []DiffEntry `bson:"diff" json:"diff,omitempty"`
  UserInfo  *UserInfo   `bson:"user_info" json:"user_info,omitempty"`
  CreatedAt time.Time   `bson:"created_at" json:"created_at"`
}
