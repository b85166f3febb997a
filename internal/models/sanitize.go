package models

import (
  "strings"

  "github.com/spf13/cast"
  "github.com/ushakovn/ticketry/pkg/stringer"
)

// SanitizeIssuePayload prepares caller-supplied fields for a merge update.
// Identity and player data are immutable through this path, category is
// normalized to lower case.
func SanitizeIssuePayload(payload Document) Document {
  out := payload.Clone()

  delete(out, FieldID)
  delete(out, FieldAliasID)
  delete(out, FieldPlayerData)

  if _, ok := out[FieldCategory]; ok {
    out[FieldCategory] = strings.ToLower(cast.ToString(out[FieldCategory]))
  }

  return out
}

// StripMarkup removes HTML markup from every top-level string field of a
// player-supplied payload before it is stored.
func StripMarkup(payload Document) Document {
  out := payload.Clone()

  for key, value := range out {
    if text, ok := value.(string); ok {
      out[key] = stringer.StripTags(text)
    }
  }

  return out
}
