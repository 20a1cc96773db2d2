// Package schema declares the entity field specifications and the
// association graph shared by both services. Both are built once at
// process start and are read-only afterwards.
package schema

import (
	"fmt"

	"github.com/GunarsK-portfolio/social-graph-service/internal/apperr"
)

// Entity names used across the schema registry and association graph.
const (
	EntityUser    = "User"
	EntityPost    = "Post"
	EntityComment = "Comment"
	EntityProfile = "Profile"
)

// FieldType is the semantic type of an entity field.
type FieldType string

const (
	TypeString    FieldType = "string"
	TypeInteger   FieldType = "integer"
	TypeText      FieldType = "text"
	TypeUUID      FieldType = "uuid"
	TypeTimestamp FieldType = "timestamp"
)

// Rule is a domain validation rule attached to a field, evaluated
// before persistence.
type Rule func(value any) error

// Field describes one entity field.
type Field struct {
	Name      string
	Type      FieldType
	Required  bool
	Generated bool
	Rule      Rule
}

// Entity is a named set of field specifications.
type Entity struct {
	Name   string
	Fields []Field
}

// Registry holds the entity specifications.
type Registry struct {
	entities map[string]Entity
}

// NewRegistry builds a registry from the given entities.
func NewRegistry(entities ...Entity) *Registry {
	r := &Registry{entities: make(map[string]Entity, len(entities))}
	for _, e := range entities {
		r.entities[e.Name] = e
	}
	return r
}

// Entity returns the specification for the named entity.
func (r *Registry) Entity(name string) (Entity, error) {
	e, ok := r.entities[name]
	if !ok {
		return Entity{}, apperr.Schema(fmt.Sprintf("unknown entity %q", name))
	}
	return e, nil
}

// Validate checks the supplied fields against the entity specification:
// required fields must be present (unless partial, for updates that only
// rewrite a subset), and domain rules run for every supplied field.
// It performs no datastore calls.
func (r *Registry) Validate(entity string, fields map[string]any, partial bool) error {
	spec, err := r.Entity(entity)
	if err != nil {
		return err
	}
	for _, f := range spec.Fields {
		value, present := fields[f.Name]
		if !present {
			if f.Required && !f.Generated && !partial {
				return apperr.Validation(f.Name, "is required")
			}
			continue
		}
		if f.Required {
			if s, ok := value.(string); ok && s == "" {
				return apperr.Validation(f.Name, "is required")
			}
		}
		if f.Rule != nil {
			if err := f.Rule(value); err != nil {
				return apperr.Validation(f.Name, err.Error())
			}
		}
	}
	return nil
}

// MinAge returns a rule rejecting integer values below n.
func MinAge(n int) Rule {
	return func(value any) error {
		age, ok := value.(int)
		if !ok {
			return fmt.Errorf("must be an integer")
		}
		if age < n {
			return fmt.Errorf("must be at least %d", n)
		}
		return nil
	}
}

// DefaultRegistry returns the registry for the four graph entities.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Entity{Name: EntityUser, Fields: []Field{
			{Name: "id", Type: TypeUUID, Required: true, Generated: true},
			{Name: "name", Type: TypeString, Required: true},
			{Name: "age", Type: TypeInteger, Rule: MinAge(18)},
		}},
		Entity{Name: EntityPost, Fields: []Field{
			{Name: "id", Type: TypeUUID, Required: true, Generated: true},
			{Name: "author_id", Type: TypeUUID, Required: true},
			{Name: "content", Type: TypeText, Required: true},
		}},
		Entity{Name: EntityComment, Fields: []Field{
			{Name: "id", Type: TypeUUID, Required: true, Generated: true},
			{Name: "post_id", Type: TypeUUID, Required: true},
			{Name: "user_id", Type: TypeUUID, Required: true},
			{Name: "comment", Type: TypeText, Required: true},
		}},
		Entity{Name: EntityProfile, Fields: []Field{
			{Name: "id", Type: TypeUUID, Required: true, Generated: true},
			{Name: "user_id", Type: TypeUUID, Required: true},
			{Name: "username", Type: TypeString, Required: true},
			{Name: "bio", Type: TypeText},
		}},
	)
}
