// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PostDateLayout is the layout of [Post.Date], e.g. "March 07, 2026".
const PostDateLayout = "January 02, 2006"

// Post is a blog article. Only the administrator creates, edits or deletes it.
type Post struct {
	// PostID is the unique identifier of the post.
	PostID int64 `json:"id"`

	// AuthorID references the user who created the post.
	AuthorID int64 `json:"author_id"`

	// Author is a snapshot of the creator's display name taken at creation
	// time. Renaming a user does not change it.
	Author string `json:"author"`

	// Date is the creation date already formatted with [PostDateLayout].
	Date string `json:"date"`

	PostFields
}

// PostFields holds the editable part of a [Post].
type PostFields struct {
	// Title is unique across all posts.
	Title    string `json:"title" form:"title" validate:"required,max=250"`
	Subtitle string `json:"subtitle" form:"subtitle" validate:"required,max=250"`
	Body     string `json:"body" form:"body" validate:"required"`
	ImgURL   string `json:"img_url" form:"img_url" validate:"required,url,max=1000"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "blog_posts"
}
