// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classmerge

package classmerge

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// ParseJSON validates and parses JSON class input.
//
// The result can be passed to CN or Merge directly. Unlike decoding into
// map[string]any, object keys keep their document order:
//
//	in, _ := ParseJSON(`["btn", {"active": true, "disabled": false}]`)
//	CN(in) // "btn active"
func ParseJSON(raw string) (gjson.Result, error) {
	if !gjson.Valid(raw) {
		return gjson.Result{}, fmt.Errorf("%w: %s", ErrInvalidJSON, clip(raw, 64))
	}

	return gjson.Parse(raw), nil
}

// ParseJSONBytes is ParseJSON for byte input.
func ParseJSONBytes(raw []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(raw) {
		return gjson.Result{}, fmt.Errorf("%w: %s", ErrInvalidJSON, clip(string(raw), 64))
	}

	return gjson.ParseBytes(raw), nil
}

// clip shortens s for error messages.
func clip(s string, n int) string {
	if len(s) <= n {
		return fmt.Sprintf("%q", s)
	}

	return fmt.Sprintf("%q...", s[:n])
}
