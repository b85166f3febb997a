package models

import (
  set "github.com/deckarep/golang-set/v2"
  "github.com/spf13/cast"
)

const RoleContributor = "contributor"

const (
  FieldID         = "_id"
  FieldAliasID    = "id"
  FieldCategory   = "category"
  FieldPlayerData = "playerData"
  FieldProjectID  = "project_id"
  FieldModlogs    = "modlogs"
)

// Document is a schema-flexible issue record as it lives in the issues
// collection. The reporting flow supplies arbitrary fields; the service
// only reads the well-known ones below.
type Document map[string]any

func (d Document) Category() string {
  return cast.ToString(d[FieldCategory])
}

func (d Document) ProjectID() string {
  return cast.ToString(d[FieldProjectID])
}

func (d Document) PlayerData() map[string]any {
  return cast.ToStringMap(d[FieldPlayerData])
}

// PlayerID is the external identity of the reporting player.
func (d Document) PlayerID() string {
  return cast.ToString(d.PlayerData()[FieldAliasID])
}

func (d Document) Clone() Document {
  if d == nil {
    return nil
  }

  out := make(Document, len(d))

  for key, value := range d {
    out[key] = value
  }

  return out
}

// Apply overlays fields onto a copy of the document.
func (d Document) Apply(fields Document) Document {
  out := d.Clone()

  for key, value := range fields {
    out[key] = value
  }

  return out
}

// EnrichPlayerData overwrites the stored player snapshot with a live
// profile. An empty profile keeps the snapshot as is.
func EnrichPlayerData(issue, profile Document) Document {
  if issue == nil {
    return nil
  }

  out := issue.Clone()

  if len(profile) != 0 {
    out[FieldPlayerData] = map[string]any(profile)
  }

  return out
}

type UserInfo struct {
  DiscordId string `bson:"discord_id" json:"discord_id"`
  Avatar    string `bson:"avatar" json:"avatar"`
  Username  string `bson:"username" json:"username"`
}

// ReduceUserInfo keeps exactly the three identity fields notification
// payloads carry. Extra fields are discarded, missing ones come out empty.
func ReduceUserInfo(info map[string]any) UserInfo {
  return UserInfo{
    DiscordId: cast.ToString(info["discord_id"]),
    Avatar:    cast.ToString(info["avatar"]),
    Username:  cast.ToString(info["username"]),
  }
}

type RoleGrant struct {
  ProjectId string   `bson:"project_id" json:"project_id"`
  Roles     []string `bson:"roles" json:"roles"`
}

func HasRole(grants []RoleGrant, role string) bool {
  for _, grant := range grants {
    if set.NewSet(grant.Roles...).ContainsOne(role) {
      return true
    }
  }

  return false
}
