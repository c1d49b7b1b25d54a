// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classmerge

package classmerge

import "testing"

func TestMergeConfigs(t *testing.T) {
	t.Parallel()

	a := Config{
		Prefix: "tw-",
		Groups: []Group{{ID: "btn", Patterns: []string{"btn-primary"}}},
	}
	b := Config{
		Separator: "_",
		Groups: []Group{
			{ID: "btn", Patterns: []string{"btn-secondary"}},
			{ID: "icon", Patterns: []string{"icon-*"}},
		},
		Conflicts: map[string][]string{"btn": {"p"}},
	}
	c := Config{
		Conflicts: map[string][]string{"btn": {"m"}},
	}

	merged := MergeConfigs(a, Config{}, b, c)
	if merged.Prefix != "tw-" || merged.Separator != "_" {
		t.Fatalf("unexpected prefix/separator: %+v", merged)
	}

	if len(merged.Groups) != 3 {
		t.Fatalf("len(groups)=%d, want 3", len(merged.Groups))
	}

	if merged.Groups[0].Patterns[0] != "btn-primary" || merged.Groups[1].Patterns[0] != "btn-secondary" || merged.Groups[2].ID != "icon" {
		t.Fatalf("unexpected merged order: %+v", merged.Groups)
	}

	if got := merged.Conflicts["btn"]; len(got) != 2 || got[0] != "p" || got[1] != "m" {
		t.Fatalf("unexpected conflicts: %+v", merged.Conflicts)
	}

	// Ensure result does not alias input backing arrays.
	b.Groups[0].Patterns[0] = "mutated"
	b.Conflicts["btn"][0] = "mutated"
	if merged.Groups[1].Patterns[0] != "btn-secondary" {
		t.Fatalf("merged groups alias input: %+v", merged.Groups)
	}

	if merged.Conflicts["btn"][0] != "p" {
		t.Fatalf("merged conflicts alias input: %+v", merged.Conflicts)
	}
}

func TestMergeConfigsEmpty(t *testing.T) {
	t.Parallel()

	merged := MergeConfigs()
	if merged.Prefix != "" || len(merged.Groups) != 0 || merged.Conflicts != nil {
		t.Fatalf("expected zero config, got %+v", merged)
	}
}

func TestMergeGroupsExtendsExisting(t *testing.T) {
	t.Parallel()

	base := []Group{{ID: "shadow", Patterns: []string{"shadow"}, Conflicts: []string{"a"}}}
	extra := []Group{
		{ID: "shadow", Patterns: []string{"shadow-{glow}"}, PostfixConflicts: []string{"b"}},
		{ID: "glow", Patterns: []string{"glow"}},
	}

	got := mergeGroups(base, extra)
	if len(got) != 2 {
		t.Fatalf("len(groups)=%d, want 2", len(got))
	}

	if len(got[0].Patterns) != 2 || got[0].Patterns[1] != "shadow-{glow}" || got[0].PostfixConflicts[0] != "b" {
		t.Fatalf("shadow not extended: %+v", got[0])
	}

	if len(base[0].Patterns) != 1 {
		t.Fatalf("base mutated: %+v", base[0])
	}
}
