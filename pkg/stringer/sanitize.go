package stringer

import (
  "html"
  "strings"

  "github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

func Strip(s string) string {
  return strings.TrimSpace(s)
}

func IsEmptyStr(s string) bool {
  return Strip(s) == ""
}

func StripTags(s string) string {
  return Strip(html.UnescapeString(policy.Sanitize(s)))
}
