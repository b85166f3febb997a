package config

import (
  "context"
  "os"

  "github.com/spf13/cast"
)

type Key string

const (
  MongodbHost     Key = "MONGODB_HOST"
  MongodbPort     Key = "MONGODB_PORT"
  MongodbUser     Key = "MONGODB_USER"
  MongodbPassword Key = "MONGODB_PASSWORD"
  MongodbDatabase Key = "MONGODB_DATABASE"
  WebhookURL      Key = "WEBHOOK_URL"
  WebhookWorkers  Key = "WEBHOOK_WORKERS"
  RolesURL        Key = "ROLES_URL"
  HTTPPort        Key = "HTTP_PORT"
)

var defaults = map[Key]string{
  MongodbHost:     "localhost",
  MongodbPort:     "27017",
  MongodbDatabase: "ticketing",
  WebhookWorkers:  "5",
  HTTPPort:        "8080",
}

type Value struct {
  value string
}

// Get reads a config key from the environment, falling back to the key's
// default.
func Get(_ context.Context, key Key) Value {
  if value := os.Getenv(string(key)); value != "" {
    return Value{value: value}
  }

  return Value{value: defaults[key]}
}

func (v Value) String() string {
  return v.value
}

func (v Value) Int() int {
  return cast.ToInt(v.value)
}

func (v Value) Bool() bool {
  return cast.ToBool(v.value)
}
