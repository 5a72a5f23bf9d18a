package tree

import (
	"fmt"
	"maps"
	"strings"

	"github.com/beevik/etree"
)

// etreeProvider is the default Provider, backed by beevik/etree.
//
// Parsed elements keep their document prefixes; Tag resolves them against
// the in-scope xmlns declarations. Engine-created elements store the Clark
// tag directly and are rewritten to prefixed form on Serialize.
type etreeProvider struct{}

type enode struct {
	e     *etree.Element
	scope map[string]string // prefix -> uri; nil for engine-created nodes
}

func (etreeProvider) Parse(data []byte) (Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("parse xml: no root element")
	}
	return wrap(root, nil), nil
}

func (etreeProvider) CreateElement(tag string) Node {
	// The tag is assigned directly: etree.NewElement would split a Clark
	// tag at the first colon inside the namespace URI.
	e := etree.NewElement("x")
	e.Space = ""
	e.Tag = tag
	return &enode{e: e}
}

func (etreeProvider) Serialize(n Node, pretty bool) ([]byte, error) {
	en, ok := n.(*enode)
	if !ok {
		return nil, fmt.Errorf("serialize: node from a different provider")
	}
	root := en.e.Copy()
	declare(root)
	doc := etree.NewDocument()
	doc.SetRoot(root)
	if pretty {
		doc.Indent(2)
	}
	return doc.WriteToBytes()
}

// wrap layers the element's own xmlns declarations over the parent scope.
func wrap(e *etree.Element, parent map[string]string) *enode {
	scope := parent
	var extended map[string]string
	for _, a := range e.Attr {
		var prefix string
		switch {
		case a.Space == "" && a.Key == "xmlns":
			prefix = ""
		case a.Space == "xmlns":
			prefix = a.Key
		default:
			continue
		}
		if extended == nil {
			extended = make(map[string]string, len(parent)+1)
			maps.Copy(extended, parent)
		}
		extended[prefix] = a.Value
	}
	if extended != nil {
		scope = extended
	}
	return &enode{e: e, scope: scope}
}

func (n *enode) Tag() string {
	if strings.HasPrefix(n.e.Tag, "{") {
		return n.e.Tag
	}
	if uri, ok := n.scope[n.e.Space]; ok && uri != "" {
		return "{" + uri + "}" + n.e.Tag
	}
	if n.e.Space != "" {
		// Undeclared prefix; keep it literally rather than guessing.
		return n.e.Space + ":" + n.e.Tag
	}
	return n.e.Tag
}

func (n *enode) Attr(name string) (string, bool) {
	for _, a := range n.e.Attr {
		if a.Space == "" && a.Key == name && a.Key != "xmlns" {
			return a.Value, true
		}
	}
	return "", false
}

func (n *enode) SetAttr(name, value string) {
	n.e.CreateAttr(name, value)
}

func (n *enode) Text() string     { return n.e.Text() }
func (n *enode) SetText(s string) { n.e.SetText(s) }

func (n *enode) Children() []Node {
	elems := n.e.ChildElements()
	out := make([]Node, 0, len(elems))
	for _, c := range elems {
		out = append(out, wrap(c, n.scope))
	}
	return out
}

func (n *enode) Find(tag string) Node {
	for _, c := range n.Children() {
		if c.Tag() == tag {
			return c
		}
	}
	return nil
}

func (n *enode) FindAll(tag string) []Node {
	var out []Node
	for _, c := range n.Children() {
		if c.Tag() == tag {
			out = append(out, c)
		}
	}
	return out
}

func (n *enode) Append(child Node) {
	c, ok := child.(*enode)
	if !ok {
		return
	}
	n.e.AddChild(c.e)
}

// Canonical prefixes for the KML vocabulary and its companion namespaces.
var canonicalPrefixes = map[string]string{
	"http://www.opengis.net/kml/2.2":              "kml",
	"http://www.w3.org/2005/Atom":                 "atom",
	"http://www.google.com/kml/ext/2.2":           "gx",
	"urn:oasis:names:tc:ciq:xsdschema:xAL:2.0":    "xal",
	"http://www.opengis.net/kml/2.2/networklinks": "kml",
}

// declare rewrites Clark tags to prefixed form and attaches the namespace
// declarations for every namespace in use to the root element. The root's
// own namespace becomes the default namespace unless an element outside any
// namespace shares the tree.
func declare(root *etree.Element) {
	uris := make([]string, 0, 4)
	seen := map[string]bool{}
	hasBare := false
	var collect func(e *etree.Element)
	collect = func(e *etree.Element) {
		if uri, _, ok := splitClark(e.Tag); ok {
			if !seen[uri] {
				seen[uri] = true
				uris = append(uris, uri)
			}
		} else if e.Space == "" {
			hasBare = true
		}
		for _, c := range e.ChildElements() {
			collect(c)
		}
	}
	collect(root)
	if len(uris) == 0 {
		return
	}

	rootURI, _, rootClark := splitClark(root.Tag)
	prefixes := make(map[string]string, len(uris))
	auto := 0
	for _, uri := range uris {
		if rootClark && uri == rootURI && !hasBare {
			prefixes[uri] = ""
			continue
		}
		p, ok := canonicalPrefixes[uri]
		if !ok {
			auto++
			p = fmt.Sprintf("ns%d", auto)
		}
		prefixes[uri] = p
	}

	var rewrite func(e *etree.Element)
	rewrite = func(e *etree.Element) {
		if uri, local, ok := splitClark(e.Tag); ok {
			e.Space = prefixes[uri]
			e.Tag = local
		}
		for _, c := range e.ChildElements() {
			rewrite(c)
		}
	}
	rewrite(root)

	for _, uri := range uris {
		if p := prefixes[uri]; p == "" {
			root.CreateAttr("xmlns", uri)
		} else {
			root.CreateAttr("xmlns:"+p, uri)
		}
	}
}

func splitClark(tag string) (uri, local string, ok bool) {
	if !strings.HasPrefix(tag, "{") {
		return "", "", false
	}
	i := strings.IndexByte(tag, '}')
	if i < 0 {
		return "", "", false
	}
	return tag[1:i], tag[i+1:], true
}
