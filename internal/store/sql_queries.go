// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/api-blog/migrations"
	"github.com/MKhiriev/api-blog/models"
)

const (
	postsTable = "posts"
	usersTable = "users"
)

// postColumns is the scan order expected by scanPost.
var postColumns = []string{
	"p.id",
	"p.author_id",
	"u.username",
	"p.title",
	"p.text",
	"p.created_at",
	"p.published",
}

// userColumns is the scan order expected by scanUser.
var userColumns = []string{
	"id",
	"username",
	"password_hash",
	"is_staff",
	"created_at",
}

// queryBuilder produces dialect-specific SQL. PostgreSQL uses $n
// placeholders, SQLite uses ?.
type queryBuilder struct {
	sb sq.StatementBuilderType
}

func newQueryBuilder(dialect string) queryBuilder {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
	}

	return queryBuilder{sb: sq.StatementBuilder.PlaceholderFormat(placeholder)}
}

func (q queryBuilder) selectPosts() sq.SelectBuilder {
	return q.sb.Select(postColumns...).
		From(postsTable + " p").
		Join(usersTable + " u ON u.id = p.author_id")
}

func (q queryBuilder) listPosts() (string, []any, error) {
	return q.selectPosts().OrderBy("p.id ASC").ToSql()
}

func (q queryBuilder) findPost(id int64) (string, []any, error) {
	return q.selectPosts().Where(sq.Eq{"p.id": id}).ToSql()
}

func (q queryBuilder) insertPost(post models.Post) (string, []any, error) {
	return q.sb.Insert(postsTable).
		Columns("author_id", "title", "text", "created_at", "published").
		Values(post.AuthorID, post.Title, post.Text, post.CreatedAt, post.Published).
		Suffix("RETURNING id").
		ToSql()
}

// updatePost writes only the client-mutable columns.
func (q queryBuilder) updatePost(post models.Post) (string, []any, error) {
	return q.sb.Update(postsTable).
		Set("title", post.Title).
		Set("text", post.Text).
		Set("published", post.Published).
		Where(sq.Eq{"id": post.ID}).
		ToSql()
}

func (q queryBuilder) deletePost(id int64) (string, []any, error) {
	return q.sb.Delete(postsTable).Where(sq.Eq{"id": id}).ToSql()
}

func (q queryBuilder) insertUser(user models.User) (string, []any, error) {
	return q.sb.Insert(usersTable).
		Columns("username", "password_hash", "is_staff", "created_at").
		Values(user.Username, user.PasswordHash, user.IsStaff, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func (q queryBuilder) findUser(column string, value any) (string, []any, error) {
	return q.sb.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		ToSql()
}
