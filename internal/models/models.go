// Package models contains data models shared by the users and social services.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the root entity of the social graph. Users are soft-deleted:
// a deleted row keeps its data and is excluded from default queries.
//
// The association field json tags carry the traversal aliases verbatim;
// they are part of the response contract and must not be renamed.
type User struct {
	ID        string         `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Age       *int           `json:"age"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Posts    []Post    `json:"user-posts,omitzero" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"user-comments,omitzero" gorm:"foreignKey:UserID"`
	Profile  *Profile  `json:"profile,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a generated id when none is set.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Post is authored by a User and holds many Comments.
type Post struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	AuthorID  string    `json:"author_id" gorm:"type:uuid;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author   *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"comments,omitzero" gorm:"foreignKey:PostID"`
}

// TableName returns the database table name for the Post model.
func (Post) TableName() string {
	return "posts"
}

// BeforeCreate assigns a generated id when none is set.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Comment belongs to both a Post and the User who wrote it.
type Comment struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	PostID    string    `json:"post_id" gorm:"type:uuid;not null"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null"`
	Comment   string    `json:"comment" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Post      *Post `json:"post,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Commenter *User `json:"commenter,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the Comment model.
func (Comment) TableName() string {
	return "comments"
}

// BeforeCreate assigns a generated id when none is set.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Profile holds the public profile of a User. The unique index on UserID
// enforces the one-to-one: a second profile for the same user is rejected
// by the datastore.
type Profile struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	Username  string    `json:"username" gorm:"not null"`
	Bio       *string   `json:"bio,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the Profile model.
func (Profile) TableName() string {
	return "profiles"
}

// BeforeCreate assigns a generated id when none is set.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
