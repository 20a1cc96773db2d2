// Package query composes eager-loading scopes and list filters on top of
// the association graph. It never talks to the datastore itself; it only
// shapes the statement the repositories execute.
package query

import (
	"reflect"
	"sort"

	"gorm.io/gorm"

	"github.com/GunarsK-portfolio/social-graph-service/internal/schema"
)

// Traversal is a caller-supplied tree of association aliases indicating
// which related entities to eagerly include, e.g.
//
//	Traversal{"user-posts": {"comments": {}}, "profile": {}}
type Traversal map[string]Traversal

// PreloadPaths resolves a traversal tree rooted at entity into the ORM
// preload paths it requires. Each alias must resolve to exactly one edge
// of the graph; an unknown alias fails with a schema error before any
// datastore call. Paths are sorted for deterministic statements.
func PreloadPaths(g *schema.Graph, entity string, t Traversal) ([]string, error) {
	var paths []string
	for alias, nested := range t {
		edge, err := g.Resolve(entity, alias)
		if err != nil {
			return nil, err
		}
		if len(nested) == 0 {
			paths = append(paths, edge.FieldName)
			continue
		}
		children, err := PreloadPaths(g, edge.Target, nested)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			paths = append(paths, edge.FieldName+"."+child)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Scope applies the traversal's preloads to db.
func Scope(db *gorm.DB, g *schema.Graph, entity string, t Traversal) (*gorm.DB, error) {
	paths, err := PreloadPaths(g, entity, t)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		db = db.Preload(path)
	}
	return db, nil
}

// NormalizeLoaded walks a loaded record (or slice of records) along the
// traversal and sets requested has-many associations that loaded no rows
// to empty slices. The alias keys of a traversal are part of the response
// contract: a user with zero posts must serialize "user-posts": [], not
// drop the key, while fields outside the traversal stay nil and are
// omitted. record must be a pointer.
func NormalizeLoaded(g *schema.Graph, entity string, t Traversal, record any) error {
	if len(t) == 0 || record == nil {
		return nil
	}
	return normalizeValue(g, entity, t, reflect.ValueOf(record).Elem())
}

func normalizeValue(g *schema.Graph, entity string, t Traversal, v reflect.Value) error {
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			if err := normalizeValue(g, entity, t, v.Index(i)); err != nil {
				return err
			}
		}
		return nil
	}

	for alias, nested := range t {
		edge, err := g.Resolve(entity, alias)
		if err != nil {
			return err
		}
		field := v.FieldByName(edge.FieldName)

		switch edge.Cardinality {
		case schema.OneToMany:
			if field.IsNil() {
				field.Set(reflect.MakeSlice(field.Type(), 0, 0))
				continue
			}
			if len(nested) > 0 {
				if err := normalizeValue(g, edge.Target, nested, field); err != nil {
					return err
				}
			}
		case schema.OneToOne:
			if len(nested) > 0 && !field.IsNil() {
				if err := normalizeValue(g, edge.Target, nested, field.Elem()); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// UserFilter narrows user list queries. Only present filters constrain
// the result: Name is a case-insensitive substring match, Age an exact
// match, and an empty filter matches every record.
type UserFilter struct {
	Name string
	Age  *int
}

// Apply adds the conjunction of the present filters to db.
func (f UserFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.Name != "" {
		db = db.Where("name ILIKE ?", "%"+f.Name+"%")
	}
	if f.Age != nil {
		db = db.Where("age = ?", *f.Age)
	}
	return db
}
