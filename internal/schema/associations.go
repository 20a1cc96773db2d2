package schema

import (
	"fmt"

	"github.com/GunarsK-portfolio/social-graph-service/internal/apperr"
)

// Cardinality of an association edge.
type Cardinality int

const (
	OneToMany Cardinality = iota
	OneToOne
)

// String returns a readable name for the cardinality.
func (c Cardinality) String() string {
	if c == OneToOne {
		return "one-to-one"
	}
	return "one-to-many"
}

// Edge is one directed association. Alias is the traversal name exposed
// to callers (and appears verbatim in JSON output); FieldName is the Go
// struct field the ORM loads the related records into.
type Edge struct {
	Source      string
	Target      string
	Cardinality Cardinality
	ForeignKey  string
	Alias       string
	FieldName   string
}

// Graph is the immutable association edge set, keyed by (source, alias).
type Graph struct {
	edges []Edge
	index map[edgeKey]Edge
}

type edgeKey struct {
	source string
	alias  string
}

// NewGraph builds a graph, rejecting duplicate (source, alias) pairs so
// that every traversal alias resolves to exactly one edge.
func NewGraph(edges ...Edge) (*Graph, error) {
	g := &Graph{
		edges: edges,
		index: make(map[edgeKey]Edge, len(edges)),
	}
	for _, e := range edges {
		key := edgeKey{source: e.Source, alias: e.Alias}
		if _, exists := g.index[key]; exists {
			return nil, fmt.Errorf("duplicate association alias %q on %s", e.Alias, e.Source)
		}
		g.index[key] = e
	}
	return g, nil
}

// Resolve returns the edge reachable from source via alias.
func (g *Graph) Resolve(source, alias string) (Edge, error) {
	e, ok := g.index[edgeKey{source: source, alias: alias}]
	if !ok {
		return Edge{}, apperr.Schema(fmt.Sprintf("unknown association alias %q on %s", alias, source))
	}
	return e, nil
}

// Edges returns all declared edges.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// Check verifies every edge against the registry at startup, so a typo
// in the edge table fails the process before it serves requests.
func (g *Graph) Check(r *Registry) error {
	for _, e := range g.edges {
		if _, err := r.Entity(e.Source); err != nil {
			return fmt.Errorf("edge %q: %w", e.Alias, err)
		}
		if _, err := r.Entity(e.Target); err != nil {
			return fmt.Errorf("edge %q: %w", e.Alias, err)
		}
		if e.FieldName == "" {
			return fmt.Errorf("edge %q on %s has no field name", e.Alias, e.Source)
		}
		if e.ForeignKey == "" {
			return fmt.Errorf("edge %q on %s has no foreign key", e.Alias, e.Source)
		}
	}
	return nil
}

// DefaultGraph returns the association graph of the social service.
// The edge table is a compile-time constant; a malformed table is a
// programming error, hence the panic.
func DefaultGraph() *Graph {
	g, err := NewGraph(
		Edge{Source: EntityUser, Target: EntityPost, Cardinality: OneToMany, ForeignKey: "author_id", Alias: "user-posts", FieldName: "Posts"},
		Edge{Source: EntityPost, Target: EntityUser, Cardinality: OneToOne, ForeignKey: "author_id", Alias: "author", FieldName: "Author"},
		Edge{Source: EntityPost, Target: EntityComment, Cardinality: OneToMany, ForeignKey: "post_id", Alias: "comments", FieldName: "Comments"},
		Edge{Source: EntityComment, Target: EntityPost, Cardinality: OneToOne, ForeignKey: "post_id", Alias: "post", FieldName: "Post"},
		Edge{Source: EntityUser, Target: EntityComment, Cardinality: OneToMany, ForeignKey: "user_id", Alias: "user-comments", FieldName: "Comments"},
		Edge{Source: EntityComment, Target: EntityUser, Cardinality: OneToOne, ForeignKey: "user_id", Alias: "commenter", FieldName: "Commenter"},
		Edge{Source: EntityUser, Target: EntityProfile, Cardinality: OneToOne, ForeignKey: "user_id", Alias: "profile", FieldName: "Profile"},
		Edge{Source: EntityProfile, Target: EntityUser, Cardinality: OneToOne, ForeignKey: "user_id", Alias: "user", FieldName: "User"},
	)
	if err != nil {
		panic(err)
	}
	return g
}
