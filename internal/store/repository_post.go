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

// postRepository is the SQL implementation of [PostRepository] over the
// "blog_posts" table.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// ListPosts returns every post in creation order.
func (p *postRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.db.buildListPostsQuery()
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error selecting posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error scanning post")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error iterating posts")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

// GetPost returns the post with the given id or [ErrPostNotFound].
func (p *postRepository) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.db.buildGetPostQuery(postID)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := p.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Int64("post_id", postID).Msg("error selecting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	post, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Int64("post_id", postID).Msg("error scanning post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

// CreatePost inserts post as given; the caller stamps author and date.
//
// Error handling:
//   - unique violation on blog_posts.title → [ErrTitleAlreadyExists].
//   - foreign key violation on the author → [ErrUserNotFound].
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.db.buildCreatePostQuery(post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanPost(p.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch {
		case isUniqueViolation(err, constraintPostTitle):
			log.Info().Str("func", "*postRepository.CreatePost").Str("title", post.Title).Msg("title already exists")
			return models.Post{}, ErrTitleAlreadyExists
		case isForeignKeyViolation(err):
			return models.Post{}, ErrUserNotFound
		default:
			log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")
			return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	log.Info().Str("func", "*postRepository.CreatePost").Int64("post_id", created.PostID).Msg("post created")
	return created, nil
}

// UpdatePost replaces title, subtitle, body and image URL of an existing post.
func (p *postRepository) UpdatePost(ctx context.Context, postID int64, fields models.PostFields) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.db.buildUpdatePostQuery(postID, fields)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanPost(p.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
	case errors.Is(err, sql.ErrNoRows):
		return models.Post{}, ErrPostNotFound
	case isUniqueViolation(err, constraintPostTitle):
		return models.Post{}, ErrTitleAlreadyExists
	default:
		log.Err(err).Str("func", "*postRepository.UpdatePost").Int64("post_id", postID).Msg("error updating post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().Str("func", "*postRepository.UpdatePost").Int64("post_id", postID).Msg("post updated")
	return updated, nil
}

// DeletePost removes the post's comments and then the post in one
// transaction. [ErrPostNotFound] is returned (and nothing is deleted) when
// no post has the given id.
func (p *postRepository) DeletePost(ctx context.Context, postID int64) error {
	log := logger.FromContext(ctx)

	deleteComments, commentArgs, err := p.db.buildDeletePostCommentsQuery(postID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deletePost, postArgs, err := p.db.buildDeletePostQuery(postID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deletedComments int64
	err = p.db.WithinTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, deleteComments, commentArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		deletedComments, _ = res.RowsAffected()

		res, err = tx.ExecContext(ctx, deletePost, postArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrPostNotFound
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrPostNotFound) {
			log.Err(err).Str("func", "*postRepository.DeletePost").Int64("post_id", postID).Msg("error deleting post")
		}
		return err
	}

	log.Info().
		Str("func", "*postRepository.DeletePost").
		Int64("post_id", postID).
		Int64("deleted_comments", deletedComments).
		Msg("post deleted")

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	err := row.Scan(
		&post.PostID,
		&post.AuthorID,
		&post.Title,
		&post.Subtitle,
		&post.Date,
		&post.Body,
		&post.Author,
		&post.ImgURL,
	)
	return post, err
}
