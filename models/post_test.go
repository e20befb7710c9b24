package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool     { return &b }

func TestPost_Merge(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	base := Post{
		ID:        7,
		AuthorID:  3,
		Author:    "TestUser",
		Title:     "Пост",
		Text:      "Тестовый пост 1",
		CreatedAt: created,
	}

	tests := []struct {
		name  string
		input PostInput
		want  Post
	}{
		{
			name:  "empty input keeps everything",
			input: PostInput{},
			want:  base,
		},
		{
			name:  "only text",
			input: PostInput{Text: strPtr("Новый текст")},
			want: Post{ID: 7, AuthorID: 3, Author: "TestUser", Title: "Пост",
				Text: "Новый текст", CreatedAt: created},
		},
		{
			name:  "all mutable fields",
			input: PostInput{Title: strPtr("t"), Text: strPtr("x"), Published: boolPtr(true)},
			want: Post{ID: 7, AuthorID: 3, Author: "TestUser", Title: "t",
				Text: "x", CreatedAt: created, Published: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Merge(tt.input))
		})
	}
}

func TestPost_Merge_DoesNotMutateReceiver(t *testing.T) {
	base := Post{ID: 1, Title: "before"}

	_ = base.Merge(PostInput{Title: strPtr("after")})

	assert.Equal(t, "before", base.Title)
}

func TestPostInput_IsEmpty(t *testing.T) {
	assert.True(t, PostInput{}.IsEmpty())
	assert.False(t, PostInput{Published: boolPtr(false)}.IsEmpty())
	assert.False(t, PostInput{Invalid: map[string]string{"title": "This field may not be null."}}.IsEmpty())
}

func TestNewAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-15", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-10-15", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
