// Package service implements the record services: validation against the
// entity schema before any write, typed errors, and the per-entity
// create / get / list / update / delete operations both HTTP surfaces
// are built on.
package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GunarsK-portfolio/social-graph-service/internal/apperr"
)

// wrapRead classifies a repository read failure: a missing row becomes a
// not-found error, anything else a persistence error. Schema errors from
// traversal resolution pass through untouched.
func wrapRead(entity, id string, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(entity, id)
	}
	return apperr.Persistence(err)
}

// wrapPersistence classifies a repository failure with no id to report:
// writes, and list reads where a missing row is not an error.
func wrapPersistence(err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperr.Persistence(err)
}
