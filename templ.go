// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classmerge

package classmerge

import "github.com/a-h/templ"

const classAttr = "class"

// Attrs returns templ attributes with merged "class" value.
func Attrs(inputs ...any) templ.Attributes {
	return defaultMerger.Attrs(inputs...)
}

// Class returns an option that merges inputs into the "class" attribute.
// Existing classes come first, so inputs override them on conflict.
func Class(inputs ...any) func(*templ.Attributes) {
	return defaultMerger.Class(inputs...)
}

// Attrs returns templ attributes with merged "class" value.
func (m *Merger) Attrs(inputs ...any) templ.Attributes {
	return templ.Attributes{classAttr: m.Merge(inputs...)}
}

// Class returns an option that merges inputs into the "class" attribute.
func (m *Merger) Class(inputs ...any) func(*templ.Attributes) {
	return func(attrs *templ.Attributes) {
		if attrs == nil {
			return
		}

		if *attrs == nil {
			*attrs = templ.Attributes{}
		}

		all := make([]any, 0, len(inputs)+1)
		all = append(all, (*attrs)[classAttr])
		all = append(all, inputs...)
		(*attrs)[classAttr] = m.Merge(all...)
	}
}
