// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classmerge

package classmerge

import "errors"

// Sentinel errors for classmerge operations.
var (
	// ErrInvalidGroup indicates a conflict group without ID or patterns.
	ErrInvalidGroup = errors.New("invalid group")
	// ErrInvalidPattern indicates malformed or unsupported group pattern.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrUnknownGroup indicates a conflict reference to a group that does not exist.
	ErrUnknownGroup = errors.New("unknown group")
	// ErrInvalidSeparator indicates unusable variant separator.
	ErrInvalidSeparator = errors.New("invalid separator")
	// ErrInvalidJSON indicates malformed JSON class input.
	ErrInvalidJSON = errors.New("invalid json")
)
