package course

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/campusconnect/studia/internal/store"
)

const catalogCollection = "courses"

// Catalog manages the course list. The whole list is one collection
// snapshot keyed outside any course scope.
type Catalog struct {
	collections store.Collections
}

// NewCatalog creates a catalog over the given store.
func NewCatalog(collections store.Collections) *Catalog {
	return &Catalog{collections: collections}
}

func (c *Catalog) key() store.Key {
	return store.Key{Name: catalogCollection}
}

func (c *Catalog) load(ctx context.Context) ([]Course, error) {
	data, err := c.collections.Load(ctx, c.key())
	if err != nil {
		return nil, fmt.Errorf("loading course catalog: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	var courses []Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, fmt.Errorf("decoding course catalog: %w", err)
	}
	return courses, nil
}

func (c *Catalog) save(ctx context.Context, courses []Course) error {
	data, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("encoding course catalog: %w", err)
	}
	if err := c.collections.Save(ctx, c.key(), data); err != nil {
		return fmt.Errorf("saving course catalog: %w", err)
	}
	return nil
}

// Create adds a course. Join codes must be unique across the catalog.
func (c *Catalog) Create(ctx context.Context, crs Course) error {
	courses, err := c.load(ctx)
	if err != nil {
		return err
	}
	for _, existing := range courses {
		if existing.ID == crs.ID {
			return fmt.Errorf("course %s already exists", crs.ID)
		}
		if crs.Code != "" && existing.Code == crs.Code {
			return fmt.Errorf("join code %s already in use", crs.Code)
		}
	}
	return c.save(ctx, append(courses, crs))
}

// List returns all courses in creation order.
func (c *Catalog) List(ctx context.Context) ([]Course, error) {
	return c.load(ctx)
}

// Get returns the course with the given ID.
func (c *Catalog) Get(ctx context.Context, id string) (Course, error) {
	courses, err := c.load(ctx)
	if err != nil {
		return Course{}, err
	}
	for _, crs := range courses {
		if crs.ID == id {
			return crs, nil
		}
	}
	return Course{}, &NotFoundError{Kind: "course", ID: id}
}

// FindByCode returns the course with the given join code,
// case-insensitively.
func (c *Catalog) FindByCode(ctx context.Context, code string) (Course, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	courses, err := c.load(ctx)
	if err != nil {
		return Course{}, err
	}
	for _, crs := range courses {
		if crs.Code == code {
			return crs, nil
		}
	}
	return Course{}, &NotFoundError{Kind: "course", ID: code}
}

// Delete removes the course from the catalog. Scoped collections are
// left in place; they become unreachable.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	courses, err := c.load(ctx)
	if err != nil {
		return err
	}
	kept := courses[:0]
	found := false
	for _, crs := range courses {
		if crs.ID == id {
			found = true
			continue
		}
		kept = append(kept, crs)
	}
	if !found {
		return &NotFoundError{Kind: "course", ID: id}
	}
	return c.save(ctx, kept)
}
