// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classmerge

package classmerge

import "log/slog"

const defaultSeparator = ":"

// Group is one conflict group of mutually exclusive utility classes.
type Group struct {
	// ID is a canonical group key, e.g. "px" or "text-color".
	ID string `json:"id" yaml:"id"`
	// Patterns are class patterns that belong to the group.
	//
	// Supported forms:
	//   - "flex" exact class
	//   - "text-{left|center|right}" prefix with keyword set, "bg-{none}" single keyword
	//   - "p-{length}" prefix with typed value (any, color, number, integer,
	//     length, size, percent, fraction, image, position, dimension)
	//   - "-?mt-{any}" same as above, negative value allowed
	//   - "btn-*" glob with "*" and "?"
	Patterns []string `json:"patterns,omitempty" yaml:"patterns,omitempty"`
	// Conflicts are group IDs overridden by a later class of this group.
	Conflicts []string `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`
	// PostfixConflicts are group IDs overridden only when the class carries
	// a postfix modifier, e.g. "text-lg/7" overrides line-height.
	PostfixConflicts []string `json:"postfix_conflicts,omitempty" yaml:"postfix_conflicts,omitempty"`
}

// MergerOptions controls merger table and parsing behavior.
type MergerOptions struct {
	// Logger receives debug records for overridden classes. Nil disables logging.
	Logger *slog.Logger `json:"-" yaml:"-"`
	// Conflicts adds group-to-group conflicts on top of group definitions.
	Conflicts map[string][]string `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`
	// Prefix is a utility class prefix (e.g. "tw-"). Classes without it are
	// never grouped.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	// Separator splits variant modifiers from the class. Empty value defaults to ":".
	Separator string `json:"separator,omitempty" yaml:"separator,omitempty"`
	// Groups extend the default table. A group with an existing ID extends
	// that group's patterns and conflicts.
	Groups []Group `json:"groups,omitempty" yaml:"groups,omitempty"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *MergerOptions) applyDefaults() {
	if opts.Separator == "" {
		opts.Separator = defaultSeparator
	}
}
