// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

// ListComments returns the comments of a post in submission order, each
// joined with its author's name and email. A post without comments (or a
// post that does not exist) yields an empty slice.
func (c *commentRepository) ListComments(ctx context.Context, postID int64) ([]models.CommentView, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.db.buildListCommentsQuery(postID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Int64("post_id", postID).Msg("error selecting comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.CommentView, 0)
	for rows.Next() {
		var view models.CommentView
		if err = rows.Scan(&view.CommentID, &view.Text, &view.AuthorID, &view.PostID, &view.AuthorName, &view.AuthorEmail); err != nil {
			log.Err(err).Str("func", "*commentRepository.ListComments").Msg("error scanning comment")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, view)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

// AddComment inserts a comment after checking, in the same transaction, that
// its post exists.
//
// Error handling:
//   - missing post → [ErrPostNotFound].
//   - foreign key violation on the author → [ErrUserNotFound].
func (c *commentRepository) AddComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	exists, existsArgs, err := c.db.buildPostExistsQuery(comment.PostID)
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insert, insertArgs, err := c.db.buildAddCommentQuery(comment)
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = c.db.WithinTx(ctx, func(tx *sql.Tx) error {
		var found int
		if err := tx.QueryRowContext(ctx, exists, existsArgs...).Scan(&found); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrPostNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		if err := tx.QueryRowContext(ctx, insert, insertArgs...).Scan(&comment.CommentID); err != nil {
			switch {
			case isForeignKeyViolation(err):
				return ErrUserNotFound
			default:
				return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
			}
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrPostNotFound) && !errors.Is(err, ErrUserNotFound) {
			log.Err(err).Str("func", "*commentRepository.AddComment").Int64("post_id", comment.PostID).Msg("error adding comment")
		}
		return models.Comment{}, err
	}

	log.Info().
		Str("func", "*commentRepository.AddComment").
		Int64("comment_id", comment.CommentID).
		Int64("post_id", comment.PostID).
		Msg("comment added")

	return comment, nil
}
