package links_test

import (
	"strings"
	"testing"

	gokml "github.com/reoring/gokml"
	"github.com/reoring/gokml/enums"
	"github.com/reoring/gokml/links"
)

func TestLinkRoundTrip(t *testing.T) {
	doc := `<Link xmlns="http://www.opengis.net/kml/2.2">` +
		`<href>http://example.com/feed.kml</href>` +
		`<refreshMode>onInterval</refreshMode><refreshInterval>30.000000</refreshInterval>` +
		`<viewRefreshMode>onStop</viewRefreshMode>` +
		`</Link>`
	got, err := gokml.FromString(doc, gokml.ParseOptions{Strict: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	l := got.(*links.Link)
	if *l.Href != "http://example.com/feed.kml" {
		t.Errorf("href = %v", l.Href)
	}
	if *l.RefreshMode != enums.OnInterval || *l.RefreshInterval != 30 {
		t.Errorf("refresh = %v %v", l.RefreshMode, l.RefreshInterval)
	}
	if *l.ViewRefreshMode != enums.OnStop {
		t.Errorf("viewRefreshMode = %v", l.ViewRefreshMode)
	}

	out, err := gokml.ToString(l, gokml.SerializeOptions{})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	for _, want := range []string{
		"<refreshMode>onInterval</refreshMode>",
		// Scalar floats serialize in shortest form; precision is a
		// coordinate concern.
		"<refreshInterval>30</refreshInterval>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %s: %s", want, out)
		}
	}
}

func TestLinkDefaults(t *testing.T) {
	doc := `<Link xmlns="http://www.opengis.net/kml/2.2"><href>x</href></Link>`
	got, err := gokml.FromString(doc, gokml.ParseOptions{Strict: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	l := got.(*links.Link)
	if l.RefreshMode == nil || *l.RefreshMode != enums.OnChange {
		t.Errorf("refreshMode = %v, want default onChange", l.RefreshMode)
	}
	if l.RefreshInterval == nil || *l.RefreshInterval != 4 {
		t.Errorf("refreshInterval = %v, want default 4", l.RefreshInterval)
	}
	if l.ViewBoundScale == nil || *l.ViewBoundScale != 1 {
		t.Errorf("viewBoundScale = %v, want default 1", l.ViewBoundScale)
	}

	out, err := gokml.ToString(l, gokml.SerializeOptions{})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if strings.Contains(out, "refreshInterval") {
		t.Errorf("filled-in default serialized: %s", out)
	}
}

func TestIconSharesLinkFields(t *testing.T) {
	doc := `<Icon xmlns="http://www.opengis.net/kml/2.2"><href>http://example.com/icon.png</href></Icon>`
	got, err := gokml.FromString(doc, gokml.ParseOptions{Strict: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ic, ok := got.(*links.Icon)
	if !ok {
		t.Fatalf("parsed %T", got)
	}
	if ic.Href == nil || *ic.Href != "http://example.com/icon.png" {
		t.Errorf("href = %v", ic.Href)
	}
	out, err := gokml.ToString(ic, gokml.SerializeOptions{})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if !strings.Contains(out, "<Icon") {
		t.Errorf("tag = %s", out)
	}
}
