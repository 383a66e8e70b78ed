// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while reading a request, before any service call.
var (
	// ErrInvalidPathID is returned for a library or book id that is not a
	// positive integer.
	ErrInvalidPathID = errors.New("invalid id in path")

	// ErrNoCoverFile is returned when the multipart form has no "cover" part.
	ErrNoCoverFile = errors.New("no cover file in request")

	// ErrNoIdentity is returned when a protected handler runs without the
	// auth middleware having stored the caller.
	ErrNoIdentity = errors.New("no identity in request context")
)
