// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classmerge

package classmerge

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Merger resolves utility class conflicts against a compiled group table.
//
// Merger is immutable after construction and safe for concurrent use.
type Merger struct {
	logger    *slog.Logger
	table     *table
	prefix    string
	separator string
}

// table is compiled group lookup index.
type table struct {
	// exact maps exact class to group index.
	exact map[string]int
	// prefixed maps literal prefix (ending with "-") to patterns sorted by rank.
	prefixed map[string][]compiledPattern
	// groups are compiled groups in table order.
	groups []compiledGroup
	// globs are glob patterns sorted by literal lead length.
	globs []compiledPattern
}

// compiledGroup is one group with resolved conflicts.
type compiledGroup struct {
	id               string
	conflicts        []string
	postfixConflicts []string
}

// NewMerger compiles default table extended by opts into merger.
func NewMerger(opts MergerOptions) (*Merger, error) {
	opts.applyDefaults()

	if strings.ContainsAny(opts.Separator, " \t\r\n[]()!/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSeparator, opts.Separator)
	}

	if strings.ContainsAny(opts.Prefix, " \t\r\n") {
		return nil, fmt.Errorf("%w: whitespace in prefix %q", ErrInvalidPattern, opts.Prefix)
	}

	groups := mergeGroups(defaultGroups(), opts.Groups)
	groups, err := applyConflicts(groups, opts.Conflicts)
	if err != nil {
		return nil, err
	}

	tbl, err := compileTable(groups)
	if err != nil {
		return nil, err
	}

	return &Merger{
		logger:    opts.Logger,
		table:     tbl,
		prefix:    opts.Prefix,
		separator: opts.Separator,
	}, nil
}

// mustNewMerger is NewMerger for static options known to be valid.
func mustNewMerger(opts MergerOptions) *Merger {
	m, err := NewMerger(opts)
	if err != nil {
		panic(fmt.Sprintf("classmerge: %v", err))
	}

	return m
}

// applyConflicts appends extra conflict edges to groups by ID.
func applyConflicts(groups []Group, conflicts map[string][]string) ([]Group, error) {
	if len(conflicts) == 0 {
		return groups, nil
	}

	index := make(map[string]int, len(groups))
	for i := range groups {
		index[groups[i].ID] = i
	}

	ids := make([]string, 0, len(conflicts))
	for id := range conflicts {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		i, ok := index[id]
		if !ok {
			return nil, fmt.Errorf("%w: conflict source %q", ErrUnknownGroup, id)
		}

		groups[i].Conflicts = append(slices.Clip(groups[i].Conflicts), conflicts[id]...)
	}

	return groups, nil
}

// compileTable validates groups and builds lookup index.
func compileTable(groups []Group) (*table, error) {
	t := &table{
		exact:    make(map[string]int),
		prefixed: make(map[string][]compiledPattern),
		groups:   make([]compiledGroup, 0, len(groups)),
	}

	known := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		if g.ID == "" || strings.ContainsAny(g.ID, " \t\r\n:!") {
			return nil, fmt.Errorf("%w: bad id %q", ErrInvalidGroup, g.ID)
		}

		if len(g.Patterns) == 0 {
			return nil, fmt.Errorf("%w: %q has no patterns", ErrInvalidGroup, g.ID)
		}

		known[g.ID] = struct{}{}
	}

	order := 0
	for gi, g := range groups {
		for _, list := range [][]string{g.Conflicts, g.PostfixConflicts} {
			for _, id := range list {
				if _, ok := known[id]; !ok {
					return nil, fmt.Errorf("%w: %q in conflicts of %q", ErrUnknownGroup, id, g.ID)
				}
			}
		}

		t.groups = append(t.groups, compiledGroup{
			id:               g.ID,
			conflicts:        slices.Clone(g.Conflicts),
			postfixConflicts: slices.Clone(g.PostfixConflicts),
		})

		for _, src := range g.Patterns {
			compiled, err := compilePattern(src, gi, order)
			if err != nil {
				return nil, fmt.Errorf("group %q: %w", g.ID, err)
			}
			order++

			for _, cp := range compiled {
				t.add(cp)
			}
		}
	}

	for prefix, list := range t.prefixed {
		slices.SortStableFunc(list, func(a, b compiledPattern) int {
			return cmp.Compare(b.rank(), a.rank())
		})
		t.prefixed[prefix] = list
	}

	slices.SortStableFunc(t.globs, func(a, b compiledPattern) int {
		return cmp.Compare(len(b.lead), len(a.lead))
	})

	return t, nil
}

// add registers one compiled pattern. The first exact owner of a class wins.
func (t *table) add(cp compiledPattern) {
	switch cp.kind {
	case kindExact:
		if _, ok := t.exact[cp.literal]; !ok {
			t.exact[cp.literal] = cp.group
		}
	case kindGlob:
		t.globs = append(t.globs, cp)
	default:
		t.prefixed[cp.literal] = append(t.prefixed[cp.literal], cp)
	}
}

// lookup returns group index of utility base.
//
// Lookup priority:
// - exact class
// - longest literal prefix, patterns inside one prefix by rank
// - globs, longest literal lead first
func (t *table) lookup(base string) (int, bool) {
	if base == "" {
		return -1, false
	}

	if g, ok := t.exact[base]; ok {
		return g, true
	}

	for i := len(base) - 2; i > 0; i-- {
		if base[i] != '-' {
			continue
		}

		list := t.prefixed[base[:i+1]]
		if len(list) == 0 {
			continue
		}

		value := base[i+1:]
		for j := range list {
			if list[j].matchValue(value) {
				return list[j].group, true
			}
		}
	}

	for i := range t.globs {
		if matchSimpleWildcard(t.globs[i].literal, base) {
			return t.globs[i].group, true
		}
	}

	return -1, false
}

// classGroup resolves parsed class into group and postfix usage.
func (m *Merger) classGroup(pc parsedClass) (compiledGroup, bool, bool) {
	base := pc.base
	if m.prefix != "" {
		rest, ok := strings.CutPrefix(base, m.prefix)
		if !ok {
			return compiledGroup{}, false, false
		}

		base = rest
		if pc.postfixAt >= 0 {
			pc.postfixAt -= len(m.prefix)
		}
	}

	if prop, ok := arbitraryProperty(base); ok {
		return compiledGroup{id: "[" + prop + "]"}, false, true
	}

	if pc.postfixAt > 0 {
		if g, ok := m.table.lookup(base[:pc.postfixAt]); ok {
			return m.table.groups[g], true, true
		}
	}

	if g, ok := m.table.lookup(base); ok {
		return m.table.groups[g], false, true
	}

	return compiledGroup{}, false, false
}

// Group returns conflict group ID of one class, empty when class is not grouped.
func (m *Merger) Group(class string) string {
	g, _, ok := m.classGroup(parseClass(class, m.separator))
	if !ok {
		return ""
	}

	return g.id
}

// Resolve drops classes overridden by a later class of the same or a
// conflicting group. Survivors keep their input order.
//
// Decision policy:
// - last class of a group (per variant modifiers) wins
// - a later class also overrides earlier classes of its conflict groups
// - ungrouped classes are always kept, duplicates included
func (m *Merger) Resolve(tokens []string) []string {
	keep := make([]bool, len(tokens))
	claimed := make(map[string]string, len(tokens))

	for i := len(tokens) - 1; i >= 0; i-- {
		pc := parseClass(tokens[i], m.separator)
		g, postfix, ok := m.classGroup(pc)
		if !ok {
			keep[i] = true
			continue
		}

		mods := modifierKey(pc.modifiers, pc.important)
		key := mods + g.id
		if winner, taken := claimed[key]; taken {
			m.logOverride(tokens[i], key, winner)
			continue
		}

		keep[i] = true
		claimed[key] = tokens[i]
		claim(claimed, mods, g.conflicts, tokens[i])
		if postfix {
			claim(claimed, mods, g.postfixConflicts, tokens[i])
		}
	}

	out := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		if keep[i] {
			out = append(out, tok)
		}
	}

	return out
}

// claim marks conflict group keys as taken by winner.
func claim(claimed map[string]string, mods string, ids []string, winner string) {
	for _, id := range ids {
		key := mods + id
		if _, ok := claimed[key]; !ok {
			claimed[key] = winner
		}
	}
}

// logOverride records one dropped class.
func (m *Merger) logOverride(class string, key string, winner string) {
	if m.logger == nil {
		return
	}

	m.logger.Debug("class overridden",
		slog.String("class", class),
		slog.String("group", key),
		slog.String("by", winner),
	)
}

// Merge flattens inputs and resolves conflicts into one space-separated string.
func (m *Merger) Merge(inputs ...any) string {
	return strings.Join(m.Resolve(Flatten(inputs...)), " ")
}
