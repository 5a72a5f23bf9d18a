package gokml_test

import (
	"strings"
	"testing"

	gokml "github.com/reoring/gokml"
)

// widget is a minimal custom type used to exercise the engine without the
// KML vocabulary.
type widget struct {
	gokml.BaseObject
	Label *string
	Count *int
}

var widgetType = &gokml.TypeInfo{
	Name: "Widget", NSID: "kml",
	New: func() gokml.Object { return &widget{} },
}

func (w *widget) TypeInfo() *gokml.TypeInfo { return widgetType }

func widgetRegistry() *gokml.Registry {
	r := gokml.NewRegistry()
	r.RegisterType(widgetType)
	get, set := gokml.ChildText(func(o gokml.Object) **string { return &o.(*widget).Label }, gokml.StringCodec)
	r.Register(widgetType, gokml.Item{
		Attr: "label", Node: "label", NSIDs: []string{"kml"},
		Get: get, Set: set,
	})
	getC, setC := gokml.ChildText(func(o gokml.Object) **int { return &o.(*widget).Count }, gokml.IntCodec)
	r.Register(widgetType, gokml.Item{
		Attr: "count", Node: "count", NSIDs: []string{"kml"},
		Get: getC, Set: setC, Default: 1,
	})
	return r
}

func TestRoundTrip(t *testing.T) {
	r := widgetRegistry()
	w := &widget{Label: gokml.Ptr("hello"), Count: gokml.Ptr(3)}
	w.ID = "w1"

	out, err := gokml.ToString(w, gokml.SerializeOptions{Registry: r})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	got, err := gokml.FromString(out, gokml.ParseOptions{Registry: r, Strict: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	w2, ok := got.(*widget)
	if !ok {
		t.Fatalf("parsed %T, want *widget", got)
	}
	if w2.ID != "w1" {
		t.Errorf("id = %q, want w1", w2.ID)
	}
	if w2.Label == nil || *w2.Label != "hello" {
		t.Errorf("label = %v, want hello", w2.Label)
	}
	if w2.Count == nil || *w2.Count != 3 {
		t.Errorf("count = %v, want 3", w2.Count)
	}
}

func TestAbsentFieldStaysAbsent(t *testing.T) {
	r := widgetRegistry()
	doc := `<Widget xmlns="http://www.opengis.net/kml/2.2"></Widget>`
	got, err := gokml.FromString(doc, gokml.ParseOptions{Registry: r, Strict: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	w := got.(*widget)
	if w.Label != nil {
		t.Errorf("label = %q, want absent", *w.Label)
	}
	// count has a registered default, so absence fills it in.
	if w.Count == nil || *w.Count != 1 {
		t.Fatalf("count = %v, want default 1", w.Count)
	}
	// A value equal to the default re-serializes as absent.
	out, err := gokml.ToString(w, gokml.SerializeOptions{Registry: r})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if strings.Contains(out, "<count>") {
		t.Errorf("default count serialized: %s", out)
	}
	if strings.Contains(out, "<label>") {
		t.Errorf("absent label serialized: %s", out)
	}
}

func TestVerboseEmitsDefaults(t *testing.T) {
	r := widgetRegistry()
	out, err := gokml.ToString(&widget{}, gokml.SerializeOptions{Registry: r, Verbosity: gokml.Verbose})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if !strings.Contains(out, "<count>1</count>") {
		t.Errorf("verbose output misses default count: %s", out)
	}
}

func TestStrictCoercionFailure(t *testing.T) {
	r := widgetRegistry()
	doc := `<Widget xmlns="http://www.opengis.net/kml/2.2"><count>three</count></Widget>`
	_, err := gokml.FromString(doc, gokml.ParseOptions{Registry: r, Strict: true})
	if err == nil {
		t.Fatal("strict parse accepted malformed count")
	}
	iss, ok := gokml.AsIssues(err)
	if !ok {
		t.Fatalf("error %T is not Issues", err)
	}
	if iss[0].Code != gokml.CodeParse {
		t.Errorf("code = %s, want %s", iss[0].Code, gokml.CodeParse)
	}
}

func TestLenientCoercionSubstitutesDefault(t *testing.T) {
	r := widgetRegistry()
	doc := `<Widget xmlns="http://www.opengis.net/kml/2.2"><count>three</count><label>kept</label></Widget>`
	got, err := gokml.FromString(doc, gokml.ParseOptions{Registry: r})
	if err != nil {
		t.Fatalf("lenient parse: %v", err)
	}
	w := got.(*widget)
	if w.Count == nil || *w.Count != 1 {
		t.Errorf("count = %v, want default 1", w.Count)
	}
	if w.Label == nil || *w.Label != "kept" {
		t.Errorf("label = %v, want kept", w.Label)
	}
}

func TestUnrecognizedRoot(t *testing.T) {
	r := widgetRegistry()
	_, err := gokml.FromString(`<Gadget xmlns="http://www.opengis.net/kml/2.2"/>`, gokml.ParseOptions{Registry: r, Strict: true})
	iss, ok := gokml.AsIssues(err)
	if !ok {
		t.Fatalf("error = %v, want Issues", err)
	}
	if iss[0].Code != gokml.CodeUnrecognizedElement {
		t.Errorf("code = %s, want %s", iss[0].Code, gokml.CodeUnrecognizedElement)
	}
}

func TestPrefixlessDocument(t *testing.T) {
	r := widgetRegistry()
	got, err := gokml.FromString(`<Widget><label>bare</label></Widget>`, gokml.ParseOptions{Registry: r, Strict: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	w := got.(*widget)
	if w.Label == nil || *w.Label != "bare" {
		t.Errorf("label = %v, want bare", w.Label)
	}
	if w.NS != "" {
		t.Errorf("ns = %q, want empty binding", w.NS)
	}
}
