// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

type violationKind int

const (
	uniqueViolation violationKind = iota + 1
	foreignKeyViolation
)

// Constraint targets in "table.column" form.
const (
	constraintUserEmail     = "users.email"
	constraintUserRole      = "users.role"
	constraintPostTitle     = "blog_posts.title"
	constraintPostAuthor    = "blog_posts.author_id"
	constraintCommentAuthor = "comments.author_id"
	constraintCommentPost   = "comments.post_id"
)

// constraintViolation is a driver-independent description of an integrity
// constraint error.
type constraintViolation struct {
	kind   violationKind
	target string
}

// classifyViolation extracts a constraint violation from a PostgreSQL or
// SQLite driver error.
func classifyViolation(err error) (constraintViolation, bool) {
	if err == nil {
		return constraintViolation{}, false
	}

	if v, ok := postgresViolation(err); ok {
		return v, true
	}

	return sqliteViolation(err)
}

func isUniqueViolation(err error, target string) bool {
	v, ok := classifyViolation(err)
	return ok && v.kind == uniqueViolation && v.target == target
}

func isForeignKeyViolation(err error) bool {
	v, ok := classifyViolation(err)
	return ok && v.kind == foreignKeyViolation
}
