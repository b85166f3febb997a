package models_test

import (
  . "github.com/onsi/ginkgo/v2"
  . "github.com/onsi/gomega"

  "github.com/ushakovn/ticketry/internal/models"
)

var _ = Describe("NewIssueDiff", func() {
  It("emits one entry per changed key", func() {
    stored := models.Document{
      "category": "bug",
      "status":   "open",
      "severity": "low",
    }
    applied := models.Document{
      "category": "urgent",
      "status":   "open",
      "severity": "high",
    }

    diff := models.NewIssueDiff(stored, applied)

    Expect(diff).To(Equal([]models.DiffEntry{
      {Key: "category", Old: "bug", New: "urgent"},
      {Key: "severity", Old: "low", New: "high"},
    }))
  })

  It("excludes keys whose value did not change", func() {
    stored := models.Document{"category": "bug"}
    applied := models.Document{"category": "bug"}

    Expect(models.NewIssueDiff(stored, applied)).To(BeEmpty())
  })

  It("treats a key absent from the stored record as changed", func() {
    stored := models.Document{"category": "bug"}
    applied := models.Document{"notes": "escalated"}

    diff := models.NewIssueDiff(stored, applied)

    Expect(diff).To(HaveLen(1))
    Expect(diff[0].Key).To(Equal("notes"))
    Expect(diff[0].Old).To(BeNil())
    Expect(diff[0].New).To(Equal("escalated"))
  })

  It("compares nested structures shallowly, as one key", func() {
    stored := models.Document{
      "labels": map[string]any{"area": "chat"},
    }
    applied := models.Document{
      "labels": map[string]any{"area": "chat"},
    }

    Expect(models.NewIssueDiff(stored, applied)).To(BeEmpty())

    applied = models.Document{
      "labels": map[string]any{"area": "voice"},
    }

    Expect(models.NewIssueDiff(stored, applied)).To(HaveLen(1))
  })
})

var _ = Describe("SanitizeIssuePayload", func() {
  It("strips identity and player data, lower-cases category", func() {
    payload := models.Document{
      "_id":        "deadbeef",
      "id":         "deadbeef",
      "category":   "Bug",
      "playerData": map[string]any{"id": "someone_else"},
      "notes":      "escalated",
    }

    out := models.SanitizeIssuePayload(payload)

    Expect(out).To(Equal(models.Document{
      "category": "bug",
      "notes":    "escalated",
    }))
  })

  It("does not mutate the input payload", func() {
    payload := models.Document{"category": "BUG", "playerData": map[string]any{"id": "u1"}}

    models.SanitizeIssuePayload(payload)

    Expect(payload["category"]).To(Equal("BUG"))
    Expect(payload).To(HaveKey("playerData"))
  })

  It("leaves payloads without a category untouched otherwise", func() {
    out := models.SanitizeIssuePayload(models.Document{"notes": "x"})

    Expect(out).To(Equal(models.Document{"notes": "x"}))
  })
})

var _ = Describe("StripMarkup", func() {
  It("removes HTML from string fields and keeps the rest", func() {
    out := models.StripMarkup(models.Document{
      "description": "<script>alert(1)</script>spam in chat",
      "count":       3,
      "playerData":  map[string]any{"id": "u1"},
    })

    Expect(out["description"]).To(Equal("spam in chat"))
    Expect(out["count"]).To(Equal(3))
    Expect(out["playerData"]).To(Equal(map[string]any{"id": "u1"}))
  })
})

var _ = Describe("ReduceUserInfo", func() {
  It("keeps exactly the three identity fields", func() {
    info := models.ReduceUserInfo(map[string]any{
      "discord_id": "u1",
      "avatar":     "a.png",
      "username":   "player one",
      "roles":      []string{"admin"},
      "email":      "u1@example.com",
    })

    Expect(info).To(Equal(models.UserInfo{
      DiscordId: "u1",
      Avatar:    "a.png",
      Username:  "player one",
    }))
  })

  It("tolerates missing fields", func() {
    info := models.ReduceUserInfo(map[string]any{"discord_id": "u1"})

    Expect(info.DiscordId).To(Equal("u1"))
    Expect(info.Avatar).To(BeEmpty())
    Expect(info.Username).To(BeEmpty())
  })
})

var _ = Describe("HasRole", func() {
  It("finds the role in any grant", func() {
    grants := []models.RoleGrant{
      {ProjectId: "p1", Roles: []string{"viewer"}},
      {ProjectId: "p1", Roles: []string{"viewer", "contributor"}},
    }

    Expect(models.HasRole(grants, models.RoleContributor)).To(BeTrue())
  })

  It("is false without the role or without grants", func() {
    grants := []models.RoleGrant{
      {ProjectId: "p1", Roles: []string{"viewer"}},
    }

    Expect(models.HasRole(grants, models.RoleContributor)).To(BeFalse())
    Expect(models.HasRole(nil, models.RoleContributor)).To(BeFalse())
  })
})

var _ = Describe("EnrichPlayerData", func() {
  It("overwrites the snapshot with a live profile", func() {
    issue := models.Document{
      "playerData": map[string]any{"id": "u1", "username": "stale"},
    }
    profile := models.Document{"id": "u1", "username": "fresh"}

    out := models.EnrichPlayerData(issue, profile)

    Expect(out.PlayerData()).To(Equal(map[string]any{"id": "u1", "username": "fresh"}))
  })

  It("keeps the snapshot on a lookup miss", func() {
    issue := models.Document{
      "playerData": map[string]any{"id": "u1", "username": "stale"},
    }

    out := models.EnrichPlayerData(issue, nil)

    Expect(out.PlayerData()).To(Equal(map[string]any{"id": "u1", "username": "stale"}))
  })

  It("is nil for a nil issue", func() {
    Expect(models.EnrichPlayerData(nil, models.Document{"id": "u1"})).To(BeNil())
  })
})

var _ = Describe("Document", func() {
  It("reads the reporter identity from the player data", func() {
    doc := models.Document{
      "playerData": map[string]any{"id": "u1"},
    }

    Expect(doc.PlayerID()).To(Equal("u1"))
  })

  It("applies fields onto a copy", func() {
    doc := models.Document{"category": "bug", "status": "open"}

    out := doc.Apply(models.Document{"category": "urgent"})

    Expect(out).To(Equal(models.Document{"category": "urgent", "status": "open"}))
    Expect(doc["category"]).To(Equal("bug"))
  })
})
