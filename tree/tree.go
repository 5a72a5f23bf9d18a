// Package tree defines the XML tree provider seam used by the marshalling
// engine. The engine is agnostic to the concrete provider; drivers must
// behave identically regardless of how the input declares its namespaces
// (default namespace, prefixed, or none at all).
//
// Tags are exchanged in Clark notation, "{uri}local", so that namespace
// handling differences between documents never leak into the engine.
package tree

// Node is one element of a materialized XML tree.
type Node interface {
	// Tag returns the qualified tag in Clark notation, or the bare local
	// name for elements outside any namespace.
	Tag() string
	// Attr returns the value of a literal attribute and whether it is set.
	// Namespace declarations are not reported as attributes.
	Attr(name string) (string, bool)
	SetAttr(name, value string)
	// Text returns the element's own character data.
	Text() string
	SetText(s string)
	// Children returns all child elements in document order.
	Children() []Node
	// Find returns the first child with the given qualified tag, or nil.
	Find(tag string) Node
	// FindAll returns all children with the given qualified tag in
	// document order.
	FindAll(tag string) []Node
	Append(child Node)
}

// Provider parses, allocates, and serializes XML trees.
type Provider interface {
	// Parse materializes a tree from serialized XML.
	Parse(data []byte) (Node, error)
	// CreateElement allocates a detached element for the qualified tag.
	CreateElement(tag string) Node
	// Serialize renders the tree rooted at n. Namespace declarations for
	// every namespace in use are attached to the root element.
	Serialize(n Node, pretty bool) ([]byte, error)
}

// Default returns the etree-backed provider.
func Default() Provider { return etreeProvider{} }
