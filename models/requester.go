// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Requester is the resolved identity behind a request.
//
// Handlers and services receive it as *Requester: a nil pointer stands for
// an anonymous caller (no credential, or a credential that failed
// verification).
type Requester struct {
	UserID   int64
	Username string
	IsStaff  bool
}
