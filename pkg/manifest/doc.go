// Package manifest decodes declarative document descriptions into a
// [document.Document].
//
// A manifest names the document metadata and a tree of content nodes.
// The same keys are accepted in TOML, YAML and JSON:
//
//	class = "article"
//	title = "Example"
//	packages = ["amsmath"]
//
//	[[content]]
//	type = "section"
//	title = "Introduction"
//	  [[content.children]]
//	  type = "text"
//	  text = "hello"
//
// # Node Types
//
//   - text, math: "text" holds the literal content
//   - section, subsection, subsubsection, paragraph: "title" and "children"
//   - block: "kind" is the environment name, "children" the body
//   - item: "child" (or "text" as a shorthand for a text child)
//   - tag: "name" and "child"
//   - table: "rows", a list of lists of nodes
//   - equation: "tokens" (classified as symbols or terms) or "elements"
//   - figure: "file", "caption" and an optional positive "scale"
//   - listing: "file" and "language"
//
// Every decoding or construction failure is reported as
// [errors.ErrCodeInvalidManifest] with the path of the offending node,
// such as content[0].children[2].
package manifest
