// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classmerge

package classmerge

import "slices"

// MergeConfigs merges configs preserving input order.
//
// Non-empty prefix and separator of later configs override earlier ones,
// groups and conflicts are appended.
func MergeConfigs(configs ...Config) Config {
	total := 0
	for _, cfg := range configs {
		total += len(cfg.Groups)
	}

	out := Config{
		Groups: make([]Group, 0, total),
	}

	for _, cfg := range configs {
		if cfg.Prefix != "" {
			out.Prefix = cfg.Prefix
		}

		if cfg.Separator != "" {
			out.Separator = cfg.Separator
		}

		for _, g := range cfg.Groups {
			out.Groups = append(out.Groups, cloneGroup(g))
		}

		for id, targets := range cfg.Conflicts {
			if out.Conflicts == nil {
				out.Conflicts = make(map[string][]string, len(cfg.Conflicts))
			}

			out.Conflicts[id] = append(out.Conflicts[id], targets...)
		}
	}

	return out
}

// mergeGroups appends extra groups to base. Groups with an existing ID
// extend the existing group instead of adding a new one.
func mergeGroups(base []Group, extra []Group) []Group {
	out := make([]Group, 0, len(base)+len(extra))
	index := make(map[string]int, len(base)+len(extra))

	for _, set := range [][]Group{base, extra} {
		for _, g := range set {
			if i, ok := index[g.ID]; ok {
				out[i].Patterns = append(out[i].Patterns, g.Patterns...)
				out[i].Conflicts = append(out[i].Conflicts, g.Conflicts...)
				out[i].PostfixConflicts = append(out[i].PostfixConflicts, g.PostfixConflicts...)
				continue
			}

			index[g.ID] = len(out)
			out = append(out, cloneGroup(g))
		}
	}

	return out
}

// cloneGroup copies group slices so the result never aliases input.
func cloneGroup(g Group) Group {
	return Group{
		ID:               g.ID,
		Patterns:         slices.Clone(g.Patterns),
		Conflicts:        slices.Clone(g.Conflicts),
		PostfixConflicts: slices.Clone(g.PostfixConflicts),
	}
}
