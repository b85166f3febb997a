package mongodb

import (
  "fmt"

  "go.mongodb.org/mongo-driver/bson"
  "go.mongodb.org/mongo-driver/bson/primitive"
)

// IDFilters builds an identifier filter, converting the hex form to a
// native ObjectID when it parses as one.
func IDFilters(id string) map[string]any {
  if oid, err := primitive.ObjectIDFromHex(id); err == nil {
    return map[string]any{"_id": oid}
  }

  return map[string]any{"_id": id}
}

func makeBsonD(kv map[string]any) bson.D {
  out := bson.D{}

  for key, value := range kv {
    out = append(out, bson.E{
      Key:   key,
      Value: value,
    })
  }

  return out
}

func insertedID(value any) string {
  if oid, ok := value.(primitive.ObjectID); ok {
    return oid.Hex()
  }

  return fmt.Sprint(value)
}
