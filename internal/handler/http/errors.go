// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrNoRoute is reported in the body of 404 responses for unknown paths.
var ErrNoRoute = errors.New("route not found")
