// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classmerge

package classmerge

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// valueKind is a typed value accepted after a pattern prefix.
type valueKind uint8

const (
	// kindExact means pattern has no value part.
	kindExact valueKind = iota
	// kindKeyword accepts one of explicit keywords.
	kindKeyword
	kindAny
	kindColor
	kindNumber
	kindInteger
	kindLength
	kindSize
	kindPercent
	kindFraction
	// kindImage accepts arbitrary url() and gradient values.
	kindImage
	// kindPosition accepts arbitrary values hinted as position.
	kindPosition
	// kindDimension accepts arbitrary values hinted as length or size.
	kindDimension
	// kindGlob matches whole class with "*" and "?" wildcards.
	kindGlob
)

// Pattern ranks, higher is more specific.
const (
	rankGlob = iota
	rankAny
	rankTyped
	rankKeyword
	rankExact
)

var valueKindNames = map[string]valueKind{
	"any":       kindAny,
	"color":     kindColor,
	"number":    kindNumber,
	"integer":   kindInteger,
	"length":    kindLength,
	"size":      kindSize,
	"percent":   kindPercent,
	"fraction":  kindFraction,
	"image":     kindImage,
	"position":  kindPosition,
	"dimension": kindDimension,
}

var (
	numberRE   = regexp.MustCompile(`^(?:\d+(?:\.\d+)?|\.\d+)$`)
	integerRE  = regexp.MustCompile(`^\d+$`)
	fractionRE = regexp.MustCompile(`^\d+/\d+$`)
	percentRE  = regexp.MustCompile(`^(?:\d+(?:\.\d+)?|\.\d+)%$`)
	tshirtRE   = regexp.MustCompile(`^(?:\d+(?:\.\d+)?)?(?:xs|sm|md|lg|xl)$`)
	imageRE    = regexp.MustCompile(`^(?:url|image|image-set|cross-fade|(?:repeating-)?(?:linear|radial|conic)-gradient)\(.*\)$`)
	lengthRE   = regexp.MustCompile(`^-?(?:\d+(?:\.\d+)?|\.\d+)(?:%|px|r?em|ex|ch|lh|rlh|vw|vh|vmin|vmax|[sdl]v[hw]|cq[whib]|cqmin|cqmax|pt|pc|in|cm|mm|fr)?$`)
)

// lengthKeywords are non-numeric values accepted by kindLength.
var lengthKeywords = map[string]struct{}{
	"px":     {},
	"full":   {},
	"screen": {},
	"auto":   {},
	"min":    {},
	"max":    {},
	"fit":    {},
	"svh":    {},
	"lvh":    {},
	"dvh":    {},
	"svw":    {},
	"lvw":    {},
	"dvw":    {},
}

// compiledPattern is table-internal compiled representation of one group pattern.
type compiledPattern struct {
	// keywords is accepted value set for kindKeyword.
	keywords map[string]struct{}
	// literal is exact class, prefix ending with "-", or glob source.
	literal string
	// lead is glob text before the first wildcard, used for ordering.
	lead string
	// group is owner group index in table order.
	group int
	// order is pattern index in table order.
	order int
	// kind is value matching strategy.
	kind valueKind
}

// compilePattern compiles one source pattern into the cheapest matching strategy.
// Patterns prefixed with "-?" produce an extra negative variant.
func compilePattern(src string, group int, order int) ([]compiledPattern, error) {
	pattern := strings.TrimSpace(src)
	negative := false
	if rest, ok := strings.CutPrefix(pattern, "-?"); ok {
		negative = true
		pattern = rest
	}

	if pattern == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPattern)
	}

	if strings.ContainsAny(pattern, " \t\r\n") {
		return nil, fmt.Errorf("%w: whitespace in %q", ErrInvalidPattern, src)
	}

	cp := compiledPattern{
		group: group,
		order: order,
	}

	open := strings.IndexByte(pattern, '{')
	switch {
	case open >= 0:
		if !strings.HasSuffix(pattern, "}") || strings.Count(pattern, "{") != 1 || strings.Count(pattern, "}") != 1 {
			return nil, fmt.Errorf("%w: unbalanced value in %q", ErrInvalidPattern, src)
		}

		cp.literal = pattern[:open]
		if cp.literal == "" || !strings.HasSuffix(cp.literal, "-") {
			return nil, fmt.Errorf("%w: value prefix must end with \"-\" in %q", ErrInvalidPattern, src)
		}

		body := pattern[open+1 : len(pattern)-1]
		if strings.Contains(body, "|") || valueKindNames[body] == kindExact {
			keywords, err := compileKeywords(body)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, src, err)
			}

			cp.kind = kindKeyword
			cp.keywords = keywords
			break
		}

		cp.kind = valueKindNames[body]

	case strings.ContainsAny(pattern, "*?"):
		if negative {
			return nil, fmt.Errorf("%w: negative glob %q", ErrInvalidPattern, src)
		}

		cp.kind = kindGlob
		cp.literal = pattern
		cp.lead = pattern[:strings.IndexAny(pattern, "*?")]

	default:
		cp.kind = kindExact
		cp.literal = pattern
	}

	if strings.ContainsAny(cp.literal, "[]{}") {
		return nil, fmt.Errorf("%w: brackets in literal %q", ErrInvalidPattern, src)
	}

	out := []compiledPattern{cp}
	if negative {
		neg := cp
		neg.literal = "-" + cp.literal
		out = append(out, neg)
	}

	return out, nil
}

// compileKeywords parses "a|b|c" keyword set body.
func compileKeywords(body string) (map[string]struct{}, error) {
	parts := strings.Split(body, "|")
	keywords := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("empty keyword")
		}

		keywords[p] = struct{}{}
	}

	return keywords, nil
}

// rank reports pattern specificity inside one literal prefix.
func (p *compiledPattern) rank() int {
	switch p.kind {
	case kindExact:
		return rankExact
	case kindKeyword:
		return rankKeyword
	case kindAny, kindColor:
		return rankAny
	case kindGlob:
		return rankGlob
	default:
		return rankTyped
	}
}

// matchValue reports whether value after literal prefix satisfies pattern.
func (p *compiledPattern) matchValue(value string) bool {
	if value == "" {
		return false
	}

	switch p.kind {
	case kindKeyword:
		_, ok := p.keywords[value]
		return ok
	case kindAny:
		return true
	case kindColor:
		return isColor(value)
	case kindNumber:
		return numberRE.MatchString(value) || isArbitraryNumber(value)
	case kindInteger:
		return integerRE.MatchString(value) || isArbitraryNumber(value)
	case kindLength:
		return isLength(value)
	case kindSize:
		return value == "base" || tshirtRE.MatchString(value) || isArbitraryLength(value)
	case kindPercent:
		return percentRE.MatchString(value) || isArbitraryPercent(value)
	case kindFraction:
		return fractionRE.MatchString(value)
	case kindImage:
		return isArbitraryImage(value)
	case kindPosition:
		return isArbitraryHinted(value, "position")
	case kindDimension:
		return isArbitraryHinted(value, "length", "size", "bg-size")
	default:
		return false
	}
}

// isLength reports whether value is a spacing/sizing value.
func isLength(value string) bool {
	if numberRE.MatchString(value) || fractionRE.MatchString(value) {
		return true
	}

	if _, ok := lengthKeywords[value]; ok {
		return true
	}

	return isArbitraryLength(value)
}

// arbitraryValue splits "[label:inner]" into label and inner value.
// Label is empty when the value has no type hint.
func arbitraryValue(value string) (label string, inner string, ok bool) {
	if len(value) < 3 || value[0] != '[' || value[len(value)-1] != ']' {
		return "", "", false
	}

	inner = value[1 : len(value)-1]
	if i := strings.IndexByte(inner, ':'); i > 0 && isHintLabel(inner[:i]) {
		return inner[:i], inner[i+1:], true
	}

	return "", inner, true
}

// isHintLabel reports whether s is a lower-case type hint such as "length".
func isHintLabel(s string) bool {
	for i := 0; i < len(s); i++ {
		if (s[i] < 'a' || s[i] > 'z') && s[i] != '-' {
			return false
		}
	}

	return true
}

// isArbitraryLength reports whether value is "[...]" holding a length.
func isArbitraryLength(value string) bool {
	label, inner, ok := arbitraryValue(value)
	if !ok {
		return false
	}

	switch label {
	case "length", "size", "percentage":
		return true
	case "":
	default:
		return false
	}

	if lengthRE.MatchString(inner) {
		return true
	}

	for _, fn := range []string{"calc(", "min(", "max(", "clamp("} {
		if strings.HasPrefix(inner, fn) {
			return true
		}
	}

	return false
}

// isColor reports whether value may be a color. Named values are accepted,
// arbitrary values only when they are not a length or an image.
func isColor(value string) bool {
	label, _, ok := arbitraryValue(value)
	if !ok {
		return true
	}

	if label != "" {
		return label == "color"
	}

	return !isArbitraryLength(value) && !isArbitraryImage(value)
}

// isArbitraryImage reports whether value is "[...]" holding url() or a gradient.
func isArbitraryImage(value string) bool {
	label, inner, ok := arbitraryValue(value)
	if !ok {
		return false
	}

	if label != "" {
		return label == "image" || label == "url"
	}

	return imageRE.MatchString(inner)
}

// isArbitraryHinted reports whether value is "[label:...]" with one of labels.
func isArbitraryHinted(value string, labels ...string) bool {
	label, _, ok := arbitraryValue(value)
	return ok && label != "" && slices.Contains(labels, label)
}

// isArbitraryNumber reports whether value is "[...]" holding a plain number.
func isArbitraryNumber(value string) bool {
	label, inner, ok := arbitraryValue(value)
	if !ok {
		return false
	}

	if label != "" {
		return label == "number"
	}

	return numberRE.MatchString(inner)
}

// isArbitraryPercent reports whether value is "[...]" holding a percentage.
func isArbitraryPercent(value string) bool {
	label, inner, ok := arbitraryValue(value)
	if !ok {
		return false
	}

	if label != "" {
		return label == "percentage"
	}

	return percentRE.MatchString(inner)
}

// matchSimpleWildcard matches "*" and "?" wildcard pattern against one class.
func matchSimpleWildcard(pattern string, input string) bool {
	pIdx := 0
	sIdx := 0
	starPattern := -1
	starInput := 0

	for sIdx < len(input) {
		if pIdx < len(pattern) && (pattern[pIdx] == '?' || pattern[pIdx] == input[sIdx]) {
			pIdx++
			sIdx++
			continue
		}

		if pIdx < len(pattern) && pattern[pIdx] == '*' {
			// Remember star position and continue greedily from current input index.
			starPattern = pIdx
			pIdx++
			starInput = sIdx
			continue
		}

		if starPattern >= 0 {
			// Mismatch after a previous star: backtrack to the token after '*'
			// and let '*' consume one more input byte.
			pIdx = starPattern + 1
			starInput++
			sIdx = starInput
			continue
		}

		return false
	}

	for pIdx < len(pattern) && pattern[pIdx] == '*' {
		pIdx++
	}

	return pIdx == len(pattern)
}
