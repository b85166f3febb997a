package mongodb

import (
  "context"
  "errors"
  "fmt"

  "go.mongodb.org/mongo-driver/bson"
  "go.mongodb.org/mongo-driver/mongo"
  "go.mongodb.org/mongo-driver/mongo/options"
)

type CommonParams struct {
  Database   string
  Collection string
}

type GetParams struct {
  CommonParams

  Filters map[string]any
}

// Get fetches the first document matching the filters. Returns ErrNotFound
// when nothing matches.
func (c *Client) Get(ctx context.Context, params GetParams) (map[string]any, error) {
  res := c.client.
    Database(params.Database).
    Collection(params.Collection).
    FindOne(ctx, makeBsonD(params.Filters))

  doc := make(map[string]any)

  if err := res.Decode(&doc); err != nil {
    if errors.Is(err, mongo.ErrNoDocuments) {
      return nil, ErrNotFound
    }
    return nil, fmt.Errorf("res.Decode: %w", err)
  }

  return doc, nil
}

type ProjectionParams struct {
  GetParams

  Fields []string
}

// GetProjection fetches only the listed fields of a matching document.
func (c *Client) GetProjection(ctx context.Context, params ProjectionParams) (map[string]any, error) {
  projection := bson.D{}

  for _, field := range params.Fields {
    projection = append(projection, bson.E{
      Key:   field,
      Value: 1,
    })
  }

  opts := options.
    FindOne().
    SetProjection(projection)

  res := c.client.
    Database(params.Database).
    Collection(params.Collection).
    FindOne(ctx, makeBsonD(params.Filters), opts)

  doc := make(map[string]any)

  if err := res.Decode(&doc); err != nil {
    if errors.Is(err, mongo.ErrNoDocuments) {
      return nil, ErrNotFound
    }
    return nil, fmt.Errorf("res.Decode: %w", err)
  }

  return doc, nil
}

type InsertParams struct {
  CommonParams

  Document map[string]any
}

// Insert writes a new document and returns the store-assigned identifier.
func (c *Client) Insert(ctx context.Context, params InsertParams) (id string, err error) {
  res, err := c.client.
    Database(params.Database).
    Collection(params.Collection).
    InsertOne(ctx, makeBsonD(params.Document))

  if err != nil {
    return "", fmt.Errorf("c.client.Database.Collection.InsertOne: %w", err)
  }

  return insertedID(res.InsertedID), nil
}

type MergeParams struct {
  GetParams

  Fields map[string]any
}

// Merge sets the given fields on the first matching document, leaving every
// other field untouched. No document is created when nothing matches.
func (c *Client) Merge(ctx context.Context, params MergeParams) error {
  updates := bson.D{{
    Key:   "$set",
    Value: makeBsonD(params.Fields),
  }}

  _, err := c.client.
    Database(params.Database).
    Collection(params.Collection).
    UpdateOne(ctx, makeBsonD(params.Filters), updates)

  if err != nil {
    return fmt.Errorf("c.client.Database.Collection.UpdateOne: %w", err)
  }

  return nil
}

type DeleteParams struct {
  GetParams
}

// Delete removes the first matching document. Deleting nothing is not an
// error.
func (c *Client) Delete(ctx context.Context, params DeleteParams) (count int64, err error) {
  res, err := c.client.
    Database(params.Database).
    Collection(params.Collection).
    DeleteOne(ctx, makeBsonD(params.Filters))

  if err != nil {
    return 0, fmt.Errorf("c.client.Database.Collection.DeleteOne: %w", err)
  }

  return res.DeletedCount, nil
}
