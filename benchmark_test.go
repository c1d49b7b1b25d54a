// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classmerge

package classmerge

import (
	"fmt"
	"testing"
)

const benchTokenCount = 64

var (
	benchStringSink string
	benchTokensSink []string
	benchMergerSink *Merger
)

func BenchmarkNewMerger(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m, err := NewMerger(MergerOptions{})
		if err != nil {
			b.Fatalf("NewMerger: %v", err)
		}

		benchMergerSink = m
	}
}

func BenchmarkCN(b *testing.B) {
	active := map[string]bool{"ring-2": true, "opacity-50": false}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchStringSink = CN("px-2 py-1 bg-red-500 hover:bg-red-600 text-sm", active, "px-3 text-lg md:flex")
	}
}

func BenchmarkResolve(b *testing.B) {
	tokens := buildBenchmarkTokens(benchTokenCount)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchTokensSink = Resolve(tokens)
	}
}

func BenchmarkResolveUngrouped(b *testing.B) {
	tokens := make([]string, benchTokenCount)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("component-%d", i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchTokensSink = Resolve(tokens)
	}
}

func BenchmarkFlatten(b *testing.B) {
	inputs := []any{
		"btn btn-primary",
		[]any{"p-2", map[string]bool{"active": true, "disabled": false}, []string{"m-1", "m-2"}},
		map[string]any{"hidden": 0, "block": 1},
		42,
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		benchTokensSink = Flatten(inputs...)
	}
}

// buildBenchmarkTokens returns realistic mixed utility classes.
func buildBenchmarkTokens(n int) []string {
	base := []string{
		"p-2", "px-4", "hover:bg-red-500", "text-sm", "md:flex", "grid-cols-3",
		"text-[#333]", "w-1/2", "-mt-2", "[mask-type:alpha]", "rounded-t-lg", "card",
	}

	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = base[i%len(base)]
	}

	return tokens
}
