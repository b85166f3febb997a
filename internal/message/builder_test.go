package message_test

import (
  . "github.com/onsi/ginkgo/v2"
  . "github.com/onsi/gomega"

  "github.com/ushakovn/ticketry/internal/message"
  "github.com/ushakovn/ticketry/internal/models"
)

var _ = Describe("Builder", func() {
  It("shapes an updated event with diff and user info", func() {
    issue := models.Document{"category": "urgent"}
    diff := []models.DiffEntry{{Key: "category", Old: "bug", New: "urgent"}}
    info := models.UserInfo{DiscordId: "u1", Avatar: "a.png", Username: "player one"}

    event := message.Do().
      SetIssue(issue).
      SetDiff(diff).
      SetUserInfo(info).
      BuildUpdatedEvent()

    Expect(event.UUID).NotTo(BeEmpty())
    Expect(event.Type).To(Equal(models.IssueUpdatedEventType))
    Expect(event.Issue).To(Equal(issue))
    Expect(event.Diff).To(Equal(diff))
    Expect(event.UserInfo).To(HaveValue(Equal(info)))
    Expect(event.CreatedAt).NotTo(BeZero())
  })

  It("shapes a created event without diff or user info", func() {
    event := message.Do().
      SetIssue(models.Document{"category": "bug"}).
      BuildCreatedEvent()

    Expect(event.Type).To(Equal(models.IssueCreatedEventType))
    Expect(event.Diff).To(BeEmpty())
    Expect(event.UserInfo).To(BeNil())
  })

  It("allows a nil issue for deletions of missing records", func() {
    event := message.Do().
      SetUserInfo(models.UserInfo{DiscordId: "u1"}).
      BuildDeletedEvent()

    Expect(event.Type).To(Equal(models.IssueDeletedEventType))
    Expect(event.Issue).To(BeNil())
  })

  It("assigns a fresh identifier per event", func() {
    first := message.Do().BuildCreatedEvent()
    second := message.Do().BuildCreatedEvent()

    Expect(first.UUID).NotTo(Equal(second.UUID))
  })
})
