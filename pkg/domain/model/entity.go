package model

import (
	"time"

	"github.com/google/uuid"
)

// Entity carries the columns shared by every persisted aggregate.
// A row with Deleted=true is invisible to every standard lookup and
// listing; only raw identifier access may see it.
type Entity struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	Deleted   bool      `db:"deleted"`
}

// Base exposes the embedded metadata so generic stores can reach it.
func (e *Entity) Base() *Entity { return e }
