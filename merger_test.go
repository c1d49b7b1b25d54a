// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classmerge

package classmerge

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergerGroup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		class string
		want  string
	}{
		{"px-2", "px"},
		{"p-[var(--gap)]", "p"},
		{"text-opacity-50", "text-opacity"},
		{"text-lg", "font-size"},
		{"text-center", "text-alignment"},
		{"text-[14px]", "font-size"},
		{"text-[length:var(--size)]", "font-size"},
		{"text-[#fff]", "text-color"},
		{"text-primary-foreground", "text-color"},
		{"hover:flex", "display"},
		{"flex-col", "flex-direction"},
		{"flex-1", "flex"},
		{"[mask-type:alpha]", "[mask-type]"},
		{"-mt-2", "mt"},
		{"w-1/2", "w"},
		{"stroke-2", "stroke-w"},
		{"stroke-red-500", "stroke"},
		{"border-collapse", "border-collapse"},
		{"border-dashed", "border-style"},
		{"table-cell", "display"},
		{"table-fixed", "table-layout"},
		{"content-none", "content"},
		{"content-center", "align-content"},
		{"bg-none", "bg-image"},
		{"bg-blend-multiply", "bg-blend"},
		{"ring-offset-2", "ring-offset-w"},
		{"ring-offset-white", "ring-offset-color"},
		{"from-10%", "gradient-from-pos"},
		{"bg-[url(/a.png)]", "bg-image"},
		{"bg-[image:var(--hero)]", "bg-image"},
		{"bg-[radial-gradient(red,blue)]", "bg-image"},
		{"bg-[length:200px]", "bg-size"},
		{"bg-[size:cover]", "bg-size"},
		{"bg-[position:top]", "bg-position"},
		{"bg-[#fff]", "bg-color"},
		{"bg-[color:var(--c)]", "bg-color"},
		{"font-[600]", "font-weight"},
		{"font-['Inter']", "font-family"},
		{"text-[url(/a.png)]", ""},
		{"stroke-[3px]", ""},
		{"!p-2", "p"},
		{"foo", ""},
		{"hover:", ""},
		{"", ""},
	}

	m := Default()
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Group(tt.class), "class %q", tt.class)
	}
}

func TestMergerPrefix(t *testing.T) {
	t.Parallel()

	m, err := NewMerger(MergerOptions{Prefix: "tw-"})
	require.NoError(t, err)

	assert.Equal(t, "tw-p-4 p-2 p-4", m.Merge("tw-p-2 tw-p-4 p-2 p-4"))
	assert.Equal(t, "hover:!tw-p-4", m.Merge("hover:!tw-p-2", "hover:!tw-p-4"))
	assert.Equal(t, "tw-bg-red-500/50", m.Merge("tw-bg-blue-500 tw-bg-red-500/50"))
}

func TestMergerSeparator(t *testing.T) {
	t.Parallel()

	m, err := NewMerger(MergerOptions{Separator: "__"})
	require.NoError(t, err)

	assert.Equal(t, "hover__p-4", m.Merge("hover__p-2 hover__p-4"))
	assert.Equal(t, "hover:p-2 hover:p-4", m.Merge("hover:p-2 hover:p-4"))
}

func TestMergerCustomGroups(t *testing.T) {
	t.Parallel()

	m, err := NewMerger(MergerOptions{
		Groups: []Group{
			{ID: "btn-size", Patterns: []string{"btn-{sm|md|lg}"}},
			{ID: "icon", Patterns: []string{"icon-*"}},
			{ID: "shadow", Patterns: []string{"shadow-{glow}"}},
		},
		Conflicts: map[string][]string{
			"btn-size": {"p"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "btn-lg", m.Merge("p-4 btn-sm btn-lg"))
	assert.Equal(t, "btn-lg p-2", m.Merge("btn-lg p-2"))
	assert.Equal(t, "icon-user", m.Merge("icon-home icon-user"))
	assert.Equal(t, "shadow-glow", m.Merge("shadow-lg shadow-glow"))

	// Default merger is not affected by extensions.
	assert.Equal(t, "btn-sm btn-lg", CN("btn-sm btn-lg"))
}

func TestMergerLookupOrder(t *testing.T) {
	t.Parallel()

	m, err := NewMerger(MergerOptions{
		Groups: []Group{
			{ID: "icon", Patterns: []string{"icon-*"}},
			{ID: "icon-user", Patterns: []string{"icon-user-*"}},
			{ID: "chip", Patterns: []string{"chip-{any}"}},
			{ID: "chip-tone", Patterns: []string{"chip-{integer}"}},
			{ID: "chip-kind", Patterns: []string{"chip-{solid|ghost}"}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "icon-user", m.Group("icon-user-add"))
	assert.Equal(t, "icon", m.Group("icon-home"))
	assert.Equal(t, "chip-kind", m.Group("chip-solid"))
	assert.Equal(t, "chip-tone", m.Group("chip-3"))
	assert.Equal(t, "chip", m.Group("chip-wide"))
}

func TestMergerInvalidOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    MergerOptions
		wantErr error
	}{
		{"empty group id", MergerOptions{Groups: []Group{{Patterns: []string{"x"}}}}, ErrInvalidGroup},
		{"colon in group id", MergerOptions{Groups: []Group{{ID: "a:b", Patterns: []string{"x"}}}}, ErrInvalidGroup},
		{"no patterns", MergerOptions{Groups: []Group{{ID: "x"}}}, ErrInvalidGroup},
		{"empty keyword", MergerOptions{Groups: []Group{{ID: "x", Patterns: []string{"x-{a|}"}}}}, ErrInvalidPattern},
		{"prefix without dash", MergerOptions{Groups: []Group{{ID: "x", Patterns: []string{"x{any}"}}}}, ErrInvalidPattern},
		{"unbalanced value", MergerOptions{Groups: []Group{{ID: "x", Patterns: []string{"x-{any"}}}}, ErrInvalidPattern},
		{"negative glob", MergerOptions{Groups: []Group{{ID: "x", Patterns: []string{"-?x-*"}}}}, ErrInvalidPattern},
		{"empty pattern", MergerOptions{Groups: []Group{{ID: "x", Patterns: []string{" "}}}}, ErrInvalidPattern},
		{"unknown conflict source", MergerOptions{Conflicts: map[string][]string{"nope": {"p"}}}, ErrUnknownGroup},
		{"unknown conflict target", MergerOptions{Groups: []Group{{ID: "x", Patterns: []string{"x"}, Conflicts: []string{"nope"}}}}, ErrUnknownGroup},
		{"space separator", MergerOptions{Separator: " "}, ErrInvalidSeparator},
		{"bracket separator", MergerOptions{Separator: "["}, ErrInvalidSeparator},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := NewMerger(tt.opts)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, m)
		})
	}
}

func TestMergerOptionsNotAliased(t *testing.T) {
	t.Parallel()

	groups := []Group{{ID: "btn", Patterns: []string{"btn-{any}"}}}
	m, err := NewMerger(MergerOptions{Groups: groups})
	require.NoError(t, err)

	groups[0].Patterns[0] = "mutated-{any}"
	assert.Equal(t, "btn", m.Group("btn-primary"))
	assert.Equal(t, "", m.Group("mutated-x"))
}

func TestMergerLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m, err := NewMerger(MergerOptions{Logger: logger})
	require.NoError(t, err)

	assert.Equal(t, "p-4", m.Merge("p-2 p-4"))

	out := buf.String()
	assert.Contains(t, out, "class overridden")
	assert.Contains(t, out, "class=p-2")
	assert.Contains(t, out, "by=p-4")
}

func TestMergerResolveEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Default().Merge())
	assert.Empty(t, Default().Resolve([]string{}))
}
