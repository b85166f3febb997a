package models

import (
  "reflect"
  "sort"

  "github.com/samber/lo"
)

type DiffEntry struct {
  Key string `bson:"key" json:"key"`
  Old any    `bson:"old" json:"old"`
  New any    `bson:"new" json:"new"`
}

// NewIssueDiff compares the applied payload fields against the record as it
// was before the update. Equality is shallow per top-level field: a nested
// structure either matches entirely or counts as one changed key.
func NewIssueDiff(stored, applied Document) []DiffEntry {
  keys := lo.Keys(applied)
  sort.Strings(keys)

  diff := make([]DiffEntry, 0, len(keys))

  for _, key := range keys {
    if reflect.DeepEqual(applied[key], stored[key]) {
      continue
    }

    diff = append(diff, DiffEntry{
      Key: key,
      Old: stored[key],
      New: applied[key],
    })
  }

  return diff
}
