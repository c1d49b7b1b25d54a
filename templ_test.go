// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classmerge

package classmerge

import (
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttrs(t *testing.T) {
	t.Parallel()

	attrs := Attrs("px-2 py-1", templ.KV("active", true), "px-3")
	assert.Equal(t, templ.Attributes{"class": "py-1 active px-3"}, attrs)
}

func TestClassOverridesExisting(t *testing.T) {
	t.Parallel()

	attrs := templ.Attributes{"class": "btn p-4 text-sm", "id": "save"}
	Class("p-2", map[string]bool{"text-lg": true})(&attrs)

	assert.Equal(t, "btn p-2 text-lg", attrs["class"])
	assert.Equal(t, "save", attrs["id"])
}

func TestClassNilAttributes(t *testing.T) {
	t.Parallel()

	var attrs templ.Attributes
	Class("p-2 p-4")(&attrs)
	require.NotNil(t, attrs)
	assert.Equal(t, "p-4", attrs["class"])

	assert.NotPanics(t, func() { Class("p-2")(nil) })
}

func TestMergerAttrsUsesOwnTable(t *testing.T) {
	t.Parallel()

	m, err := NewMerger(MergerOptions{Prefix: "tw-"})
	require.NoError(t, err)

	assert.Equal(t, templ.Attributes{"class": "p-2 tw-p-4"}, m.Attrs("p-2 tw-p-2", "tw-p-4"))
}
