package styles_test

import (
	"strings"
	"testing"

	gokml "github.com/reoring/gokml"
	"github.com/reoring/gokml/enums"
	"github.com/reoring/gokml/styles"
)

func TestStyleRoundTrip(t *testing.T) {
	doc := `<Style xmlns="http://www.opengis.net/kml/2.2" id="main">` +
		`<IconStyle><scale>1.500000</scale><Icon><href>http://example.com/pin.png</href></Icon></IconStyle>` +
		`<LineStyle><color>ff0000ff</color><width>2.500000</width></LineStyle>` +
		`<PolyStyle><fill>0</fill></PolyStyle>` +
		`</Style>`
	got, err := gokml.FromString(doc, gokml.ParseOptions{Strict: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	s := got.(*styles.Style)
	if s.ID != "main" || len(s.Styles) != 3 {
		t.Fatalf("style = %+v", s)
	}
	is, ok := s.Styles[0].(*styles.IconStyle)
	if !ok {
		t.Fatalf("styles[0] = %T", s.Styles[0])
	}
	if is.Scale == nil || *is.Scale != 1.5 {
		t.Errorf("scale = %v", is.Scale)
	}
	if is.Icon == nil || is.Icon.Href == nil || *is.Icon.Href != "http://example.com/pin.png" {
		t.Errorf("icon = %+v", is.Icon)
	}
	ls := s.Styles[1].(*styles.LineStyle)
	if ls.Color == nil || *ls.Color != "ff0000ff" {
		t.Errorf("color = %v", ls.Color)
	}
	ps := s.Styles[2].(*styles.PolyStyle)
	if ps.Fill == nil || *ps.Fill {
		t.Errorf("fill = %v", ps.Fill)
	}

	out, err := gokml.ToString(s, gokml.SerializeOptions{})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	for _, want := range []string{
		`id="main"`, "<IconStyle>", "<scale>1.5</scale>", "<width>2.5</width>", "<fill>0</fill>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %s:\n%s", want, out)
		}
	}
	// Sub-styles keep their document order.
	if strings.Index(out, "<IconStyle>") > strings.Index(out, "<LineStyle>") {
		t.Errorf("sub-style order lost: %s", out)
	}
}

func TestBalloonStyle(t *testing.T) {
	doc := `<BalloonStyle xmlns="http://www.opengis.net/kml/2.2">` +
		`<bgColor>ffffffbb</bgColor><text>$[description]</text><displayMode>hide</displayMode>` +
		`</BalloonStyle>`
	got, err := gokml.FromString(doc, gokml.ParseOptions{Strict: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	bs := got.(*styles.BalloonStyle)
	if bs.Text == nil || *bs.Text != "$[description]" {
		t.Errorf("text = %v", bs.Text)
	}
	if bs.DisplayMode == nil || *bs.DisplayMode != enums.DisplayModeHide {
		t.Errorf("displayMode = %v", bs.DisplayMode)
	}
}

func TestStyleMap(t *testing.T) {
	doc := `<StyleMap xmlns="http://www.opengis.net/kml/2.2" id="m">` +
		`<Pair><key>normal</key><styleUrl>#n</styleUrl></Pair>` +
		`<Pair><key>highlight</key><Style><LineStyle><width>4.000000</width></LineStyle></Style></Pair>` +
		`</StyleMap>`
	got, err := gokml.FromString(doc, gokml.ParseOptions{Strict: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	m := got.(*styles.StyleMap)
	if len(m.Pairs) != 2 {
		t.Fatalf("pairs = %d", len(m.Pairs))
	}
	if *m.Pairs[0].Key != enums.PairNormal || *m.Pairs[0].StyleURL != "#n" {
		t.Errorf("pair 0 = %+v", m.Pairs[0])
	}
	if *m.Pairs[1].Key != enums.PairHighlight || m.Pairs[1].Style == nil {
		t.Errorf("pair 1 = %+v", m.Pairs[1])
	}
}

func TestPairCheck(t *testing.T) {
	p := &styles.Pair{Key: gokml.Ptr(enums.PairNormal)}
	if err := p.Check(); err == nil {
		t.Error("pair without target passed Check")
	}
	p.StyleURL = gokml.Ptr("#x")
	if err := p.Check(); err != nil {
		t.Errorf("valid pair: %v", err)
	}
	if err := (&styles.Pair{StyleURL: gokml.Ptr("#x")}).Check(); err == nil {
		t.Error("keyless pair passed Check")
	}
}

func TestColorModeRelaxedCase(t *testing.T) {
	doc := `<LineStyle xmlns="http://www.opengis.net/kml/2.2"><colorMode>Random</colorMode></LineStyle>`
	got, err := gokml.FromString(doc, gokml.ParseOptions{Strict: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ls := got.(*styles.LineStyle)
	if ls.ColorMode == nil || *ls.ColorMode != enums.ColorModeRandom {
		t.Errorf("colorMode = %v, want canonical random", ls.ColorMode)
	}
}
