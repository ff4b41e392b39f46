package repository

import (
	"errors"

	"github.com/heavenofmunroe/backend/internal/database"
)

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a create would duplicate a unique business key.
var ErrConflict = errors.New("conflict")

// ErrStorageUnavailable is returned by the PostgreSQL repository when it holds
// no live connection.
var ErrStorageUnavailable = database.ErrUnavailable
