// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/api-blog/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestRequesterCtxKey(t *testing.T) {
	if RequesterCtxKey.String() != "requester" {
		t.Errorf("expected 'requester', got '%s'", RequesterCtxKey.String())
	}
}

func TestGetRequesterFromContext_Success(t *testing.T) {
	want := &models.Requester{UserID: 42, Username: "alice", IsStaff: true}
	ctx := WithRequester(context.Background(), want)

	got := GetRequesterFromContext(ctx)

	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestGetRequesterFromContext_Missing(t *testing.T) {
	if got := GetRequesterFromContext(context.Background()); got != nil {
		t.Errorf("expected nil requester, got %+v", got)
	}
}

func TestGetRequesterFromContext_NilStored(t *testing.T) {
	ctx := WithRequester(context.Background(), nil)

	if got := GetRequesterFromContext(ctx); got != nil {
		t.Errorf("expected nil requester, got %+v", got)
	}
}

func TestGetRequesterFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequesterCtxKey, models.Requester{UserID: 1})

	if got := GetRequesterFromContext(ctx); got != nil {
		t.Errorf("expected nil for non-pointer value, got %+v", got)
	}
}

func TestGetRequesterFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), &models.Requester{UserID: 1})

	if got := GetRequesterFromContext(ctx); got != nil {
		t.Errorf("expected nil for different key, got %+v", got)
	}
}
