package query

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/GunarsK-portfolio/social-graph-service/internal/apperr"
	"github.com/GunarsK-portfolio/social-graph-service/internal/models"
	"github.com/GunarsK-portfolio/social-graph-service/internal/schema"
)

// =============================================================================
// Traversal Tests
// =============================================================================

func TestPreloadPaths_NestedUserTraversal(t *testing.T) {
	g := schema.DefaultGraph()
	traversal := Traversal{
		"user-posts":    {"comments": {}},
		"profile":       {},
		"user-comments": {"post": {}},
	}

	paths, err := PreloadPaths(g, schema.EntityUser, traversal)
	if err != nil {
		t.Fatalf("PreloadPaths failed: %v", err)
	}

	want := []string{"Comments.Post", "Posts.Comments", "Profile"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestPreloadPaths_NestedPostTraversal(t *testing.T) {
	g := schema.DefaultGraph()
	traversal := Traversal{
		"comments": {"commenter": {}},
		"author":   {"profile": {}},
	}

	paths, err := PreloadPaths(g, schema.EntityPost, traversal)
	if err != nil {
		t.Fatalf("PreloadPaths failed: %v", err)
	}

	want := []string{"Author.Profile", "Comments.Commenter"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestPreloadPaths_UnknownAlias(t *testing.T) {
	g := schema.DefaultGraph()

	_, err := PreloadPaths(g, schema.EntityUser, Traversal{"followers": {}})
	if err == nil {
		t.Fatal("expected schema error for unknown alias")
	}

	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperr.Error, got %T", err)
	}
	if appErr.Kind != apperr.KindSchema {
		t.Errorf("expected kind %s, got %s", apperr.KindSchema, appErr.Kind)
	}
}

func TestPreloadPaths_UnknownNestedAlias(t *testing.T) {
	g := schema.DefaultGraph()

	// "profile" is an edge of User, not of Post.
	_, err := PreloadPaths(g, schema.EntityUser, Traversal{"user-posts": {"profile": {}}})
	if err == nil {
		t.Error("expected schema error for alias unknown at nesting level")
	}
}

func TestPreloadPaths_EmptyTraversal(t *testing.T) {
	g := schema.DefaultGraph()

	paths, err := PreloadPaths(g, schema.EntityUser, nil)
	if err != nil {
		t.Fatalf("PreloadPaths failed: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected no paths for empty traversal, got %v", paths)
	}
}

// =============================================================================
// Normalization Tests
// =============================================================================

func TestNormalizeLoaded_EmptyHasManySerializesAsEmptyArray(t *testing.T) {
	g := schema.DefaultGraph()
	user := models.User{ID: "u1", Name: "Anna"}

	traversal := Traversal{"user-posts": {"comments": {}}, "profile": {}}
	if err := NormalizeLoaded(g, schema.EntityUser, traversal, &user); err != nil {
		t.Fatalf("NormalizeLoaded failed: %v", err)
	}

	if user.Posts == nil {
		t.Fatal("requested has-many must be initialized to an empty slice")
	}

	raw, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	body := string(raw)
	if !strings.Contains(body, `"user-posts":[]`) {
		t.Errorf("expected empty array under the alias key, got %s", body)
	}
	// user-comments was not requested and must stay omitted.
	if strings.Contains(body, `"user-comments"`) {
		t.Errorf("unrequested association must keep its key omitted, got %s", body)
	}
}

func TestNormalizeLoaded_NestedHasMany(t *testing.T) {
	g := schema.DefaultGraph()
	user := models.User{
		ID:   "u1",
		Name: "Anna",
		Posts: []models.Post{
			{ID: "p1", AuthorID: "u1", Content: "hello"},
		},
	}

	traversal := Traversal{"user-posts": {"comments": {}}}
	if err := NormalizeLoaded(g, schema.EntityUser, traversal, &user); err != nil {
		t.Fatalf("NormalizeLoaded failed: %v", err)
	}

	if user.Posts[0].Comments == nil {
		t.Error("nested has-many of a loaded record must be initialized")
	}
}

func TestNormalizeLoaded_SliceOfRecords(t *testing.T) {
	g := schema.DefaultGraph()
	users := []models.User{
		{ID: "u1", Name: "Anna"},
		{ID: "u2", Name: "Bob"},
	}

	if err := NormalizeLoaded(g, schema.EntityUser, Traversal{"user-posts": {}}, &users); err != nil {
		t.Fatalf("NormalizeLoaded failed: %v", err)
	}

	for i := range users {
		if users[i].Posts == nil {
			t.Errorf("user %s: requested has-many must be initialized", users[i].ID)
		}
	}
}

func TestNormalizeLoaded_ThroughLoadedOneToOne(t *testing.T) {
	g := schema.DefaultGraph()
	comment := models.Comment{
		ID:     "c1",
		PostID: "p1",
		UserID: "u1",
		Post:   &models.Post{ID: "p1", AuthorID: "u2", Content: "hello"},
	}

	traversal := Traversal{"post": {"comments": {}}}
	if err := NormalizeLoaded(g, schema.EntityComment, traversal, &comment); err != nil {
		t.Fatalf("NormalizeLoaded failed: %v", err)
	}

	if comment.Post.Comments == nil {
		t.Error("has-many behind a loaded one-to-one must be initialized")
	}
}

func TestNormalizeLoaded_UnknownAlias(t *testing.T) {
	g := schema.DefaultGraph()
	user := models.User{ID: "u1", Name: "Anna"}

	err := NormalizeLoaded(g, schema.EntityUser, Traversal{"followers": {}}, &user)
	if err == nil {
		t.Fatal("expected schema error for unknown alias")
	}

	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindSchema {
		t.Errorf("expected schema error, got %v", err)
	}
}

// =============================================================================
// Filter Tests
// =============================================================================

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("failed to open dry-run db: %v", err)
	}
	return db
}

func TestUserFilter_NameAndAge(t *testing.T) {
	db := dryRunDB(t)
	age := 30
	filter := UserFilter{Name: "an", Age: &age}

	stmt := filter.Apply(db.Model(&models.User{})).Find(&[]models.User{}).Statement

	sql := stmt.SQL.String()
	if !strings.Contains(sql, "ILIKE") {
		t.Errorf("expected ILIKE clause, got %q", sql)
	}
	if !strings.Contains(sql, "age = ") {
		t.Errorf("expected age clause, got %q", sql)
	}

	foundPattern := false
	for _, v := range stmt.Vars {
		if v == "%an%" {
			foundPattern = true
		}
	}
	if !foundPattern {
		t.Errorf("expected substring pattern %%an%% in vars, got %v", stmt.Vars)
	}
}

func TestUserFilter_Empty(t *testing.T) {
	db := dryRunDB(t)

	stmt := UserFilter{}.Apply(db.Model(&models.User{})).Find(&[]models.User{}).Statement

	sql := stmt.SQL.String()
	if strings.Contains(sql, "ILIKE") || strings.Contains(sql, "age = ") {
		t.Errorf("empty filter must not constrain the query, got %q", sql)
	}
}

func TestUserFilter_AgeOnly(t *testing.T) {
	db := dryRunDB(t)
	age := 25

	stmt := UserFilter{Age: &age}.Apply(db.Model(&models.User{})).Find(&[]models.User{}).Statement

	sql := stmt.SQL.String()
	if strings.Contains(sql, "ILIKE") {
		t.Errorf("absent name filter must be omitted entirely, got %q", sql)
	}
	if !strings.Contains(sql, "age = ") {
		t.Errorf("expected age clause, got %q", sql)
	}
}
