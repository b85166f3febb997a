package validator

import (
  "fmt"
  "net/url"
)

// URL accepts only absolute http(s) endpoints.
func URL(value string) error {
  parsed, err := url.ParseRequestURI(value)
  if err != nil {
    return err
  }

  if parsed.Scheme != "http" && parsed.Scheme != "https" {
    return fmt.Errorf("unsupported url scheme: %q", parsed.Scheme)
  }

  return nil
}
