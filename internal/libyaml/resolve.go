// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Tag resolution: maps scalar values without explicit tags to the YAML
// core schema type they represent (null, bool, int, float, str, timestamp),
// and converts between long ("tag:yaml.org,2002:str") and short ("!!str")
// tag forms.

package libyaml

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Short tag names used throughout the decoder, constructor, and
// representer. These are the canonical short forms (e.g. "!!str").
const (
	strTag       = "!!str"
	binaryTag    = "!!binary"
	boolTag      = "!!bool"
	intTag       = "!!int"
	floatTag     = "!!float"
	nullTag      = "!!null"
	timestampTag = "!!timestamp"
	seqTag       = "!!seq"
	mapTag       = "!!map"
	mergeTag     = "!!merge"
)

// longTagPrefix is prepended to a short tag's suffix to build the
// fully qualified YAML core schema tag URI.
const longTagPrefix = "tag:yaml.org,2002:"

// shortTag converts a (possibly already short) tag to its short "!!name"
// form. Tags outside the core schema namespace are returned unchanged.
func shortTag(tag string) string {
	if strings.HasPrefix(tag, longTagPrefix) {
		return "!!" + tag[len(longTagPrefix):]
	}
	return tag
}

// longTag converts a short "!!name" tag to its fully qualified
// "tag:yaml.org,2002:name" form. Tags outside the core schema
// namespace are returned unchanged.
func longTag(tag string) string {
	if strings.HasPrefix(tag, "!!") {
		return longTagPrefix + tag[2:]
	}
	return tag
}

// Resolver determines the implicit type of untagged scalar nodes
// produced by the Composer. It's the second stage of the Loader
// pipeline: Compose (unresolved tags) -> Resolve -> Construct.
type Resolver struct {
	opts *Options
}

// NewResolver returns a new Resolver configured with opts.
func NewResolver(opts *Options) *Resolver {
	return &Resolver{opts: opts}
}

// Resolve walks n and its descendants, assigning a core-schema tag to
// every scalar node that doesn't already carry an explicit one.
func (r *Resolver) Resolve(n *Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case ScalarNode:
		if n.Tag == "" {
			if n.Style&(SingleQuotedStyle|DoubleQuotedStyle|LiteralStyle|FoldedStyle) == 0 && n.Value == "<<" {
				n.Tag = mergeTag
				return
			}
			tag, _ := resolve("", n.Value)
			n.Tag = tag
		}
	case DocumentNode, SequenceNode, MappingNode:
		for _, c := range n.Content {
			r.Resolve(c)
		}
	}
}

// resolve determines the core schema type of a plain scalar value.
//
// If tag is non-empty, the value is coerced to match that explicit tag
// (used when an author writes "!!int" or similar explicitly). If tag
// is empty, the value's implicit type is inferred from its text per
// the YAML 1.1/1.2 core schema.
//
// It returns the resolved short tag and the decoded Go value (nil,
// bool, int, int64, uint64, float64, or string).
func resolve(tag string, in string) (rtag string, out any) {
	if tag != "" && tag != "!" {
		tag = shortTag(tag)
		switch tag {
		case strTag:
			return strTag, in
		case binaryTag:
			return binaryTag, in
		case boolTag:
			b, ok := parseBool(in)
			if !ok {
				failf("cannot decode %q as a bool", in)
			}
			return boolTag, b
		case floatTag:
			f, ok := parseFloat(in)
			if !ok {
				failf("cannot decode %q as a float", in)
			}
			return floatTag, f
		case intTag:
			v, ok := parseInt(in)
			if !ok {
				failf("cannot decode %q as an int", in)
			}
			return intTag, v
		case nullTag:
			return nullTag, nil
		case timestampTag:
			t, ok := parseTimestamp(in)
			if !ok {
				failf("cannot decode %q as a timestamp", in)
			}
			return timestampTag, t
		case mergeTag:
			return mergeTag, in
		default:
			return tag, in
		}
	}

	// Implicit resolution, core schema order: null, bool, int, float,
	// timestamp, then str as the universal fallback.
	if in == "" {
		return nullTag, nil
	}

	switch in {
	case "~", "null", "Null", "NULL":
		return nullTag, nil
	case "<<":
		return mergeTag, in
	}

	if b, ok := parseBool(in); ok {
		return boolTag, b
	}

	if v, ok := parseInt(in); ok {
		return intTag, v
	}

	if f, ok := parseFloat(in); ok {
		return floatTag, f
	}

	if looksLikeTimestamp(in) {
		if t, ok := parseTimestamp(in); ok {
			return timestampTag, t
		}
	}

	return strTag, in
}

func parseBool(in string) (bool, bool) {
	switch in {
	case "true", "True", "TRUE":
		return true, true
	case "false", "False", "FALSE":
		return false, true
	}
	return false, false
}

func parseInt(in string) (any, bool) {
	if in == "" {
		return nil, false
	}
	plain := strings.ReplaceAll(in, "_", "")
	neg := false
	switch plain[0] {
	case '-':
		neg = true
		plain = plain[1:]
	case '+':
		plain = plain[1:]
	}
	if plain == "" {
		return nil, false
	}

	var base int
	digits := plain
	switch {
	case strings.HasPrefix(plain, "0x"), strings.HasPrefix(plain, "0X"):
		base = 16
		digits = plain[2:]
	case strings.HasPrefix(plain, "0o"), strings.HasPrefix(plain, "0O"):
		base = 8
		digits = plain[2:]
	case len(plain) > 1 && plain[0] == '0':
		base = 8
		digits = plain[1:]
	default:
		base = 10
	}
	if digits == "" {
		return nil, false
	}
	for _, c := range digits {
		if !isBaseDigit(byte(c), base) {
			return nil, false
		}
	}

	if neg {
		v, err := strconv.ParseInt("-"+digits, base, 64)
		if err != nil {
			return nil, false
		}
		return int(v), true
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		v2, err2 := strconv.ParseInt(digits, base, 64)
		if err2 != nil {
			return nil, false
		}
		return int(v2), true
	}
	if v <= math.MaxInt64 {
		return int(v), true
	}
	return v, true
}

func isBaseDigit(c byte, base int) bool {
	switch {
	case base == 16:
		return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
	case base == 8:
		return c >= '0' && c <= '7'
	default:
		return c >= '0' && c <= '9'
	}
}

func parseFloat(in string) (float64, bool) {
	plain := strings.ReplaceAll(in, "_", "")
	switch plain {
	case ".inf", ".Inf", ".INF", "+.inf", "+.Inf", "+.INF":
		return math.Inf(1), true
	case "-.inf", "-.Inf", "-.INF":
		return math.Inf(-1), true
	case ".nan", ".NaN", ".NAN":
		return math.NaN(), true
	}
	if !strings.ContainsAny(plain, ".eE") {
		return 0, false
	}
	f, err := strconv.ParseFloat(plain, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

var timestampLayouts = []string{
	"2006-1-2T15:4:5.999999999Z07:00",
	"2006-1-2t15:4:5.999999999Z07:00",
	"2006-1-2 15:4:5.999999999",
	"2006-1-2",
	time.RFC3339Nano,
	time.RFC3339,
}

func looksLikeTimestamp(in string) bool {
	if len(in) < 8 || in[4] != '-' {
		return false
	}
	for i, c := range in[:4] {
		if c < '0' || c > '9' {
			_ = i
			return false
		}
	}
	return true
}

func parseTimestamp(in string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, in); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// shouldUseLiteralStyle reports whether a plain string value should be
// rendered with literal block style ("|") when representing it rather
// than as a single-line (possibly quoted) scalar. This mirrors the
// representer's rule of thumb: strings containing embedded newlines
// read far better as a block than quoted with escaped "\n" sequences.
func shouldUseLiteralStyle(s string) bool {
	if !strings.Contains(s, "\n") {
		return false
	}
	if strings.HasSuffix(s, "\n\n") {
		return false
	}
	if strings.HasPrefix(s, "\n") || strings.HasPrefix(s, " ") {
		return false
	}
	for i, c := range s {
		switch c {
		case 0, '\r':
			return false
		case '\t':
			// Tabs are allowed mid-line but not meaningful at the start.
			if i == 0 {
				return false
			}
		}
	}
	return true
}
