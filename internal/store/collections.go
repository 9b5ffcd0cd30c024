package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/campusconnect/studia/ent"
	"github.com/campusconnect/studia/ent/collection"
)

// entCollections implements Collections over the Collection entity.
// One row per key; a save replaces the row's payload wholesale.
type entCollections struct {
	client *ent.Client
}

func (c *entCollections) Save(ctx context.Context, key Key, data json.RawMessage) error {
	existing, err := c.client.Collection.Query().
		Where(
			collection.CourseID(key.CourseID),
			collection.LearnerID(key.LearnerID),
			collection.Name(key.Name),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query collection %s: %w", key.Name, err)
	}

	if existing != nil {
		_, err = existing.Update().SetData(data).Save(ctx)
		if err != nil {
			return fmt.Errorf("replace collection %s: %w", key.Name, err)
		}
		return nil
	}

	_, err = c.client.Collection.Create().
		SetCourseID(key.CourseID).
		SetLearnerID(key.LearnerID).
		SetName(key.Name).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save collection %s: %w", key.Name, err)
	}
	return nil
}

func (c *entCollections) Load(ctx context.Context, key Key) (json.RawMessage, error) {
	row, err := c.client.Collection.Query().
		Where(
			collection.CourseID(key.CourseID),
			collection.LearnerID(key.LearnerID),
			collection.Name(key.Name),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load collection %s: %w", key.Name, err)
	}
	return row.Data, nil
}
