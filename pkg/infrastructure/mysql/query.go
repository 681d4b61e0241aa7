package mysql

import (
	"time"

	"github.com/google/uuid"
)

// clause is a composable SQL predicate. matchAll is the identity of
// and, so optional filters can be chained without conditionals at the
// call site.
type clause struct {
	expr string
	args []any
}

func matchAll() clause { return clause{expr: "1 = 1"} }

func (c clause) and(other clause) clause {
	args := make([]any, 0, len(c.args)+len(other.args))
	args = append(args, c.args...)
	args = append(args, other.args...)
	return clause{
		expr: "(" + c.expr + ") AND (" + other.expr + ")",
		args: args,
	}
}

func notDeleted() clause { return clause{expr: "deleted = FALSE"} }

func byUser(userID *uuid.UUID) clause {
	if userID == nil {
		return matchAll()
	}
	return clause{expr: "user_id = ?", args: []any{*userID}}
}

// createdBetween matches rows created inside the window, bounds
// inclusive. Either bound may be absent.
func createdBetween(from, to *time.Time) clause {
	switch {
	case from != nil && to != nil:
		return clause{expr: "created_at BETWEEN ? AND ?", args: []any{*from, *to}}
	case from != nil:
		return clause{expr: "created_at >= ?", args: []any{*from}}
	case to != nil:
		return clause{expr: "created_at <= ?", args: []any{*to}}
	default:
		return matchAll()
	}
}
