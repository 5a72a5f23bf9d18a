package tree_test

import (
	"strings"
	"testing"

	"github.com/reoring/gokml/tree"
)

const kmlNS = "http://www.opengis.net/kml/2.2"

// The provider must report identical Clark tags no matter how the document
// declares its namespaces.
func TestTagResolution(t *testing.T) {
	docs := map[string]string{
		"default ns": `<kml xmlns="http://www.opengis.net/kml/2.2"><Document><name>x</name></Document></kml>`,
		"prefixed":   `<k:kml xmlns:k="http://www.opengis.net/kml/2.2"><k:Document><k:name>x</k:name></k:Document></k:kml>`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			root, err := tree.Default().Parse([]byte(doc))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got, want := root.Tag(), "{"+kmlNS+"}kml"; got != want {
				t.Fatalf("root tag = %q, want %q", got, want)
			}
			d := root.Find("{" + kmlNS + "}Document")
			if d == nil {
				t.Fatal("Document not found by Clark tag")
			}
			n := d.Find("{" + kmlNS + "}name")
			if n == nil || n.Text() != "x" {
				t.Fatalf("name child = %v", n)
			}
		})
	}
}

func TestTagWithoutNamespace(t *testing.T) {
	root, err := tree.Default().Parse([]byte(`<kml><Document/></kml>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if root.Tag() != "kml" {
		t.Errorf("root tag = %q, want bare kml", root.Tag())
	}
	if root.Find("Document") == nil {
		t.Error("bare child not found")
	}
}

func TestNestedScopeOverride(t *testing.T) {
	doc := `<a xmlns="http://one/"><b xmlns="http://two/"><c/></b><d/></a>`
	root, err := tree.Default().Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	kids := root.Children()
	if len(kids) != 2 {
		t.Fatalf("got %d children", len(kids))
	}
	if got := kids[0].Tag(); got != "{http://two/}b" {
		t.Errorf("b tag = %q", got)
	}
	if got := kids[0].Children()[0].Tag(); got != "{http://two/}c" {
		t.Errorf("c inherits the overridden default: %q", got)
	}
	if got := kids[1].Tag(); got != "{http://one/}d" {
		t.Errorf("d tag = %q", got)
	}
}

func TestXMLNSNotReportedAsAttr(t *testing.T) {
	root, err := tree.Default().Parse([]byte(`<kml xmlns="http://one/" id="r"/>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := root.Attr("xmlns"); ok {
		t.Error("xmlns reported as attribute")
	}
	if v, ok := root.Attr("id"); !ok || v != "r" {
		t.Errorf("id = %q, %v", v, ok)
	}
}

func TestSerializeDeclaresNamespaces(t *testing.T) {
	p := tree.Default()
	root := p.CreateElement("{" + kmlNS + "}kml")
	child := p.CreateElement("{http://www.w3.org/2005/Atom}link")
	child.SetAttr("href", "http://example.com/")
	root.Append(child)

	out, err := p.Serialize(root, false)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, `xmlns="`+kmlNS+`"`) {
		t.Errorf("missing default kml namespace: %s", s)
	}
	if !strings.Contains(s, `xmlns:atom="http://www.w3.org/2005/Atom"`) {
		t.Errorf("missing atom declaration: %s", s)
	}
	if !strings.Contains(s, "<atom:link") {
		t.Errorf("atom child not prefixed: %s", s)
	}
}

func TestSerializeParseAgain(t *testing.T) {
	p := tree.Default()
	root := p.CreateElement("{" + kmlNS + "}Placemark")
	name := p.CreateElement("{" + kmlNS + "}name")
	name.SetText("home")
	root.Append(name)

	out, err := p.Serialize(root, false)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	back, err := p.Parse(out)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if back.Tag() != "{"+kmlNS+"}Placemark" {
		t.Errorf("tag = %q", back.Tag())
	}
	n := back.Find("{" + kmlNS + "}name")
	if n == nil || n.Text() != "home" {
		t.Errorf("name lost in round trip: %v", n)
	}
}
