//
// Copyright (c) 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0
//

// Package plugin documents the comment-plugin extension point used to
// customize how the Composer attaches comments to [yaml.Node] values
// during loading.
//
// # Overview
//
// When comment capture is on, the Composer attaches head/line/foot comments to nodes
// using the same rules classic go-yaml v3 used. A [yaml.CommentPlugin]
// lets a caller intercept that attachment at three points without
// forking the Composer:
//
//	type CommentPlugin interface {
//	    ProcessComment(node *yaml.Node, ctx *yaml.CommentContext) (bool, error)
//	    ProcessMappingPair(ctx *yaml.MappingPairContext) (bool, error)
//	    ProcessEndComments(node *yaml.Node, ctx *yaml.CommentContext) (bool, error)
//	}
//
// Each hook returns handled=true to suppress the Composer's default
// attachment for that call, or false to defer to it. Embed
// [yaml.DefaultCommentBehavior] in a plugin that only needs to
// override one or two hooks.
//
// # Using plugins
//
// Add a plugin to a [yaml.Loader] with [yaml.WithPlugin]:
//
//	import "github.com/yamlcore/goyaml/plugin/comment/v3"
//
//	loader, _ := yaml.NewLoader(r, yaml.WithPlugin(v3.New()))
//
// Multiple plugins may be registered; they are consulted in
// registration order at each hook until one reports it handled the
// call. Registering a plugin also turns comment capture on, which is
// otherwise off by default for [yaml.NewLoader]. Use
// [yaml.WithoutPlugin]("comment") to force capture off regardless, or
// [yaml.WithV3LegacyComments] as a shortcut for
// yaml.WithPlugin(v3legacy.New()) without importing the v3legacy
// package directly.
//
// # Built-in plugins
//
// The plugin/comment subpackage provides comment handling:
//
//   - comment/v3 - the reference v3 attachment strategy
//   - comment/v3legacy - the same strategy plus mapping-pair foot
//     comment redistribution, for callers migrating off go-yaml v3
//     verbatim
//
// See the comment subpackage documentation for details.
package plugin
