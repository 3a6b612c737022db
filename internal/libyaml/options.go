// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Functional options controlling the Loader/Dumper pipelines: formatting
// knobs for the emitter, strictness knobs for the constructor, and the
// alias-expansion guard that protects against billion-laughs documents.

package libyaml

import (
	"errors"
	"fmt"
)

// AliasingRestrictionFunction decides whether the number of alias
// expansions seen so far (aliasCount) relative to the number of values
// constructed (constructCount) is excessive and construction should
// abort. It is consulted on every Construct call.
type AliasingRestrictionFunction func(aliasCount int, constructCount int) bool

// DefaultAliasingRestrictions rejects a document once both the absolute
// alias count and the ratio of aliases to constructed values grow large,
// the same heuristic classic go-yaml used to guard against alias bombs.
func DefaultAliasingRestrictions(aliasCount int, constructCount int) bool {
	return aliasCount > 100 && constructCount > 1000 &&
		float64(aliasCount)/float64(constructCount) > allowedAliasRatio(constructCount)
}

// allowedAliasRatio returns the maximum alias-to-value ratio tolerated
// for a document containing decodeCount constructed values. Smaller
// documents are held to a stricter ratio since legitimate use rarely
// needs heavy aliasing at small scale.
func allowedAliasRatio(decodeCount int) float64 {
	switch {
	case decodeCount <= 1000:
		return 0.99
	case decodeCount <= 100000:
		return 0.10
	default:
		return 0.01
	}
}

// Options holds every setting the Loader and Dumper pipelines consult.
// It is never constructed directly by callers; use ApplyOptions or
// CombineOptions with one or more Option values instead.
type Options struct {
	Indent           int
	CompactSeqIndent bool
	LineWidth        int
	Unicode          bool
	Canonical        bool
	LineBreak        LineBreak
	ExplicitStart    bool
	ExplicitEnd      bool

	FlowSimpleCollections bool
	QuotePreference       QuoteStyle

	KnownFields    bool
	UniqueKeys     bool
	SingleDocument bool
	StreamNodes    bool
	AllDocuments   bool

	AliasingRestrictionFunction AliasingRestrictionFunction

	// Plugins are consulted by the Composer at comment-attachment
	// points, in registration order.
	Plugins []CommentPlugin

	// CommentsDisabled forces comment capture off even for the legacy
	// entry points, set by WithoutPlugin("comment").
	CommentsDisabled bool

	// FromLegacy marks options produced on behalf of the deprecated
	// Unmarshal/Decoder entry points, which tolerate a single document
	// with no strict trailing-content check, and capture comments the
	// way classic go-yaml v3 always did.
	FromLegacy bool
}

// CommentsEnabled reports whether the Composer should populate node
// comment fields: true when a plugin is registered, or the options
// originate from the legacy entry points, unless explicitly suppressed
// with WithoutPlugin("comment").
func (o *Options) CommentsEnabled() bool {
	if o.CommentsDisabled {
		return false
	}
	return len(o.Plugins) > 0 || o.FromLegacy
}

// Option configures an Options value, returning an error if the
// requested setting is invalid.
type Option func(*Options) error

// defaultOptions returns the go-yaml v4 formatting and strictness
// defaults: 2-space compact-sequence indentation, an 80-column width,
// unicode output, unique mapping keys, and the default alias guard.
func defaultOptions() *Options {
	return &Options{
		Indent:           2,
		CompactSeqIndent: true,
		LineWidth:        80,
		Unicode:          true,
		UniqueKeys:       true,
		LineBreak:        LN_BREAK,
		QuotePreference:  QuoteDouble,
	}
}

// ApplyOptions builds an Options value from the v4 defaults with every
// opt applied in order, returning the first error encountered.
func ApplyOptions(opts ...Option) (*Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// CombineOptions merges several options into a single Option, applying
// each in order. Useful for bundling a version preset together with
// ad-hoc overrides into one value that can be passed around.
func CombineOptions(opts ...Option) Option {
	return func(o *Options) error {
		for _, opt := range opts {
			if opt == nil {
				continue
			}
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

func optBool(dst *bool, args []bool) {
	*dst = len(args) == 0 || args[0]
}

// WithIndent sets the number of spaces used per indentation level.
// Must be between 2 and 9 inclusive.
func WithIndent(indent int) Option {
	return func(o *Options) error {
		if indent < 2 || indent > 9 {
			return fmt.Errorf("yaml: indent must be between 2 and 9, got %d", indent)
		}
		o.Indent = indent
		return nil
	}
}

// WithCompactSeqIndent makes '- ' count as part of a block sequence's
// indentation instead of adding two extra columns. Defaults to true
// when called with no arguments.
func WithCompactSeqIndent(enable ...bool) Option {
	return func(o *Options) error {
		optBool(&o.CompactSeqIndent, enable)
		return nil
	}
}

// WithKnownFields requires that every mapping key decoded into a struct
// match an existing field, reporting unknown keys as errors.
func WithKnownFields(enable ...bool) Option {
	return func(o *Options) error {
		optBool(&o.KnownFields, enable)
		return nil
	}
}

// WithSingleDocument requires the stream to contain exactly one
// document; a second Load call after the first returns io.EOF.
func WithSingleDocument(enable ...bool) Option {
	return func(o *Options) error {
		optBool(&o.SingleDocument, enable)
		return nil
	}
}

// WithStreamNodes makes the Composer return a StreamNode before each
// document and once more at the end of the stream, interleaved with the
// document nodes, so callers can recover document boundaries.
func WithStreamNodes(enable ...bool) Option {
	return func(o *Options) error {
		optBool(&o.StreamNodes, enable)
		return nil
	}
}

// WithAllDocuments switches Load/Dump to multi-document mode: Load
// requires out to be a pointer to a slice and fills it with every
// document found, Dump requires in to be a slice and writes one
// document per element.
func WithAllDocuments(enable ...bool) Option {
	return func(o *Options) error {
		optBool(&o.AllDocuments, enable)
		return nil
	}
}

// WithLineWidth sets the preferred column at which the emitter tries to
// wrap long scalars and flow collections. A negative value disables
// wrapping.
func WithLineWidth(width int) Option {
	return func(o *Options) error {
		o.LineWidth = width
		return nil
	}
}

// WithUnicode allows the emitter to write non-ASCII characters
// unescaped instead of backslash-escaping them.
func WithUnicode(enable ...bool) Option {
	return func(o *Options) error {
		optBool(&o.Unicode, enable)
		return nil
	}
}

// WithUniqueKeys rejects mappings containing duplicate keys instead of
// silently keeping the last one.
func WithUniqueKeys(enable ...bool) Option {
	return func(o *Options) error {
		optBool(&o.UniqueKeys, enable)
		return nil
	}
}

// WithCanonical forces the emitter to always use explicit tags and
// double-quoted scalars, e.g. "1" instead of 1.
func WithCanonical(enable ...bool) Option {
	return func(o *Options) error {
		optBool(&o.Canonical, enable)
		return nil
	}
}

// WithLineBreak sets the line-ending style the emitter writes.
func WithLineBreak(lb LineBreak) Option {
	return func(o *Options) error {
		switch lb {
		case LN_BREAK, CR_BREAK, CRLN_BREAK:
			o.LineBreak = lb
			return nil
		default:
			return fmt.Errorf("yaml: unknown line break value %d", lb)
		}
	}
}

// WithExplicitStart forces a leading "---" marker before every
// document, even the first.
func WithExplicitStart(enable ...bool) Option {
	return func(o *Options) error {
		optBool(&o.ExplicitStart, enable)
		return nil
	}
}

// WithExplicitEnd forces a trailing "..." marker after every document.
func WithExplicitEnd(enable ...bool) Option {
	return func(o *Options) error {
		optBool(&o.ExplicitEnd, enable)
		return nil
	}
}

// WithFlowSimpleCollections renders sequences and mappings that contain
// only scalars in flow style (e.g. [a, b, c]) instead of block style.
func WithFlowSimpleCollections(enable ...bool) Option {
	return func(o *Options) error {
		optBool(&o.FlowSimpleCollections, enable)
		return nil
	}
}

// WithQuotePreference sets which quote style the emitter prefers when a
// scalar requires quoting.
func WithQuotePreference(style QuoteStyle) Option {
	return func(o *Options) error {
		switch style {
		case QuoteSingle, QuoteDouble, QuoteLegacy:
			o.QuotePreference = style
			return nil
		default:
			return fmt.Errorf("yaml: unknown quote style %d", style)
		}
	}
}

// WithAliasingRestrictionFunction overrides the alias-bomb guard
// consulted by the Constructor. Pass a function that always returns
// false to disable the restriction entirely.
func WithAliasingRestrictionFunction(fn AliasingRestrictionFunction) Option {
	return func(o *Options) error {
		o.AliasingRestrictionFunction = fn
		return nil
	}
}

// WithPlugin registers a CommentPlugin, consulted by the Composer in
// registration order when attaching comments to nodes. Registering a
// plugin also turns comment capture on for the Loader/Dumper it is
// attached to, since otherwise the plugin would never be consulted.
//
// p must implement CommentPlugin; any other value is rejected when the
// option is applied.
func WithPlugin(p any) Option {
	return func(o *Options) error {
		cp, ok := p.(CommentPlugin)
		if !ok {
			return errors.New("yaml: unsupported plugin type")
		}
		o.Plugins = append(o.Plugins, cp)
		return nil
	}
}

// WithoutPlugin disables a built-in capability by category name.
// "comment" forces comment capture off, even for the legacy
// Unmarshal/Decoder entry points that otherwise default it on, and even
// if a CommentPlugin is also registered.
func WithoutPlugin(category string) Option {
	return func(o *Options) error {
		switch category {
		case "comment":
			o.CommentsDisabled = true
			return nil
		default:
			return fmt.Errorf("yaml: unknown plugin category %q", category)
		}
	}
}

// WithFromLegacy marks the options as originating from the deprecated
// Unmarshal/Decoder entry points, which skip the strict single-document
// trailing-content check. Not part of the public root package API: only
// the root package's legacy wrappers call it directly.
func WithFromLegacy() Option {
	return func(o *Options) error {
		o.FromLegacy = true
		return nil
	}
}
