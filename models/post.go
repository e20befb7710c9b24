// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TitleMaxLength is the maximum number of characters (Unicode code points)
// allowed in a post title.
const TitleMaxLength = 150

// Post is a single blog entry. It is the only resource exposed by the API.
//
// ID, AuthorID/Author and CreatedAt are assigned by the server at creation
// time and never change afterwards. Title, Text and Published are the only
// client-mutable fields.
type Post struct {
	// ID is the server-assigned identifier. Posts are listed in ascending ID order.
	ID int64 `json:"id"`

	// AuthorID references the user who created the post.
	AuthorID int64 `json:"-"`

	// Author is the username of the post author. It is resolved from AuthorID
	// when the post is read from storage.
	Author string `json:"author"`

	// Title is the required post title, at most [TitleMaxLength] characters.
	Title string `json:"title"`

	// Text is the required post body.
	Text string `json:"text"`

	// CreatedAt is the moment the post was persisted.
	CreatedAt time.Time `json:"created_at"`

	// Published is stored and returned as-is. No endpoint filters on it.
	Published bool `json:"published"`
}

// PostInput carries client-supplied post fields for both creation and
// partial update. A nil field means "not provided".
type PostInput struct {
	Title     *string
	Text      *string
	Published *bool

	// Invalid maps fields that were present in the request but could not be
	// read (null, wrong type) to the reason. Validation reports them.
	Invalid map[string]string
}

// IsEmpty reports whether no field was provided.
func (in PostInput) IsEmpty() bool {
	return in.Title == nil && in.Text == nil && in.Published == nil && len(in.Invalid) == 0
}

// Merge returns a copy of p with every provided field of in applied on top.
// Fields absent from in keep their current value; server-owned fields are
// never touched.
func (p Post) Merge(in PostInput) Post {
	merged := p
	if in.Title != nil {
		merged.Title = *in.Title
	}
	if in.Text != nil {
		merged.Text = *in.Text
	}
	if in.Published != nil {
		merged.Published = *in.Published
	}
	return merged
}

// PostInputReader produces the client-supplied post fields. Post services
// call it at most once, after the post is found and the requester is
// allowed to write it.
type PostInputReader func() (PostInput, error)

// StaticPostInput returns a reader that always yields in.
func StaticPostInput(in PostInput) PostInputReader {
	return func() (PostInput, error) { return in, nil }
}
