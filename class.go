// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classmerge

package classmerge

import (
	"slices"
	"strings"
)

// parsedClass is one class token split into variant modifiers and utility base.
type parsedClass struct {
	// modifiers are variant modifiers in source order, e.g. ["hover", "md"].
	modifiers []string
	// base is the utility without modifiers, important marker and prefix.
	base string
	// postfixAt is index of a top-level "/" in base, -1 when absent.
	postfixAt int
	// important reports "!" marker in leading or trailing position.
	important bool
}

// parseClass splits class on separator outside of "[...]" and "(...)".
func parseClass(class string, separator string) parsedClass {
	pc := parsedClass{postfixAt: -1}
	depth := 0
	start := 0
	slash := -1

	for i := 0; i < len(class); i++ {
		switch class[i] {
		case '[', '(':
			depth++
			continue
		case ']', ')':
			if depth > 0 {
				depth--
			}
			continue
		}

		if depth != 0 {
			continue
		}

		if strings.HasPrefix(class[i:], separator) {
			pc.modifiers = append(pc.modifiers, class[start:i])
			start = i + len(separator)
			i = start - 1
			continue
		}

		if class[i] == '/' {
			slash = i
		}
	}

	base := class[start:]
	if slash >= start {
		pc.postfixAt = slash - start
	}

	if rest, ok := strings.CutPrefix(base, "!"); ok {
		pc.important = true
		base = rest
		if pc.postfixAt >= 0 {
			pc.postfixAt--
		}
	} else if rest, ok := strings.CutSuffix(base, "!"); ok {
		pc.important = true
		base = rest
	}

	pc.base = base
	return pc
}

// arbitraryProperty returns property name of "[name:value]" class.
func arbitraryProperty(base string) (string, bool) {
	if len(base) < 4 || base[0] != '[' || base[len(base)-1] != ']' {
		return "", false
	}

	inner := base[1 : len(base)-1]
	i := strings.IndexByte(inner, ':')
	if i <= 0 || i == len(inner)-1 {
		return "", false
	}

	return inner[:i], true
}

// modifierKey returns order-insensitive variant key.
//
// Regular modifiers are sorted; arbitrary variants ("[&>*]") keep their
// position because their order changes the generated selector.
func modifierKey(modifiers []string, important bool) string {
	var b strings.Builder

	if len(modifiers) > 0 {
		sorted := make([]string, 0, len(modifiers))
		run := make([]string, 0, len(modifiers))
		for _, m := range modifiers {
			if strings.HasPrefix(m, "[") {
				slices.Sort(run)
				sorted = append(sorted, run...)
				sorted = append(sorted, m)
				run = run[:0]
				continue
			}

			run = append(run, m)
		}

		slices.Sort(run)
		sorted = append(sorted, run...)

		for _, m := range sorted {
			b.WriteString(m)
			b.WriteByte(':')
		}
	}

	if important {
		b.WriteByte('!')
	}

	return b.String()
}
