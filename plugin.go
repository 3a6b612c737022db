//
// Copyright (c) 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0
//

package yaml

import (
	"github.com/yamlcore/goyaml/internal/libyaml"
	"github.com/yamlcore/goyaml/plugin/comment/v3legacy"
)

// CommentPlugin intercepts comment attachment during composition.
// Each hook returns handled=true to suppress the Composer's own
// default attachment logic for that call. Re-exported from
// internal/libyaml.
//
// Example usage:
//
//	loader, err := yaml.NewLoader(bytes.NewReader(data), yaml.WithPlugin(commentPlugin))
type CommentPlugin = libyaml.CommentPlugin

// CommentContext carries the raw comment bytes captured for the node
// or event currently being processed. Re-exported from internal/libyaml.
type CommentContext = libyaml.CommentContext

// MappingPairContext carries one freshly parsed mapping key/value
// pair, so a plugin can redistribute foot comments. Re-exported from
// internal/libyaml.
type MappingPairContext = libyaml.MappingPairContext

// DefaultCommentBehavior implements CommentPlugin as a no-op; embed
// it in a plugin that only needs to override one or two hooks.
// Re-exported from internal/libyaml.
type DefaultCommentBehavior = libyaml.DefaultCommentBehavior

// WithPlugin registers a CommentPlugin with a Loader or Dumper,
// consulted in registration order when attaching comments to nodes.
// Registering a plugin also turns comment capture on, which is
// otherwise off by default for the new Loader/Dumper API. p must
// implement CommentPlugin; any other value is rejected with an error
// when the option is applied.
var WithPlugin = libyaml.WithPlugin

// WithoutPlugin disables a built-in capability by category name.
// WithoutPlugin("comment") forces comment capture off even when the
// legacy Unmarshal/Decoder entry points would otherwise default it on.
var WithoutPlugin = libyaml.WithoutPlugin

// WithV3LegacyComments enables comment capture using the same
// attachment rules classic go-yaml v3 used, without requiring the
// caller to import plugin/comment/v3legacy directly. Equivalent to
// WithPlugin(v3legacy.New()).
func WithV3LegacyComments() Option {
	return WithPlugin(v3legacy.New())
}
