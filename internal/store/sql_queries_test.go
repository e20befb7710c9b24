// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/api-blog/migrations"
	"github.com/MKhiriev/api-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_queryBuilder_Placeholders(t *testing.T) {
	tests := []struct {
		name        string
		dialect     string
		placeholder string
	}{
		{name: "postgres uses dollar", dialect: migrations.DialectPostgres, placeholder: "$1"},
		{name: "sqlite uses question mark", dialect: migrations.DialectSQLite, placeholder: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := newQueryBuilder(tt.dialect).findPost(7)
			require.NoError(t, err)

			assert.Contains(t, query, tt.placeholder)
			assert.Equal(t, []any{int64(7)}, args)
		})
	}
}

func Test_queryBuilder_listPosts(t *testing.T) {
	query, args, err := newQueryBuilder(migrations.DialectPostgres).listPosts()
	require.NoError(t, err)
	assert.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from posts p")
	require.Contains(t, q, "join users u on u.id = p.author_id")
	require.Contains(t, q, "order by p.id asc")
	for _, col := range postColumns {
		require.Contains(t, q, col)
	}
	require.NotContains(t, q, "where")
}

func Test_queryBuilder_insertPost(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	post := models.Post{AuthorID: 3, Title: "t", Text: "x", CreatedAt: createdAt, Published: true}

	query, args, err := newQueryBuilder(migrations.DialectPostgres).insertPost(post)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.True(t, strings.HasPrefix(q, "insert into posts"))
	require.True(t, strings.HasSuffix(q, "returning id"))
	require.Contains(t, query, "$5")
	assert.Equal(t, []any{int64(3), "t", "x", createdAt, true}, args)
}

// Test_queryBuilder_updatePost verifies that only client-mutable columns are
// written and the post is addressed by id.
func Test_queryBuilder_updatePost(t *testing.T) {
	post := models.Post{ID: 9, AuthorID: 3, Title: "new", Text: "body", Published: false}

	query, args, err := newQueryBuilder(migrations.DialectPostgres).updatePost(post)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update posts set")
	require.Contains(t, q, "title = $1")
	require.Contains(t, q, "text = $2")
	require.Contains(t, q, "published = $3")
	require.Contains(t, q, "where id = $4")
	require.NotContains(t, q, "author_id")
	require.NotContains(t, q, "created_at")
	assert.Equal(t, []any{"new", "body", false, int64(9)}, args)
}

func Test_queryBuilder_deletePost(t *testing.T) {
	query, args, err := newQueryBuilder(migrations.DialectSQLite).deletePost(4)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM posts WHERE id = ?", query)
	assert.Equal(t, []any{int64(4)}, args)
}

func Test_queryBuilder_users(t *testing.T) {
	qb := newQueryBuilder(migrations.DialectPostgres)

	query, args, err := qb.insertUser(models.User{Username: "alice", PasswordHash: "h", IsStaff: true})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(strings.ToLower(query), "insert into users"))
	require.Len(t, args, 4)
	assert.Equal(t, "alice", args[0])

	query, args, err = qb.findUser("username", "alice")
	require.NoError(t, err)
	require.Contains(t, query, "WHERE username = $1")
	assert.Equal(t, []any{"alice"}, args)
}
