package hasher

import (
  "crypto/sha256"
  "fmt"
)

func SHA256(data []byte) string {
  hash := sha256.New()
  hash.Write(data)

  return fmt.Sprintf("%x", hash.Sum(nil))
}
