// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the blog API from its configuration: storage,
// services, HTTP routes and the server that runs them.
package app
