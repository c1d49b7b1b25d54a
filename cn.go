// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classmerge

package classmerge

// defaultMerger uses the default Tailwind CSS table with ":" separator and no prefix.
var defaultMerger = mustNewMerger(MergerOptions{})

// CN merges class inputs into one space-separated string with Tailwind CSS
// conflicts resolved: the last class of each conflict group wins.
//
//	CN("px-2 py-1", "px-3")                               // "py-1 px-3"
//	CN("btn", map[string]bool{"active": on}, "p-4", "p-2") // "btn active p-2"
//
// See Flatten for accepted input shapes.
func CN(inputs ...any) string {
	return defaultMerger.Merge(inputs...)
}

// Resolve drops classes overridden by later conflicting classes using the default table.
func Resolve(tokens []string) []string {
	return defaultMerger.Resolve(tokens)
}

// Default returns the merger used by CN.
func Default() *Merger {
	return defaultMerger
}
