package data_test

import (
	"strings"
	"testing"

	gokml "github.com/reoring/gokml"
	"github.com/reoring/gokml/data"
	"github.com/reoring/gokml/enums"
)

func TestExtendedDataMixedElements(t *testing.T) {
	doc := `<ExtendedData xmlns="http://www.opengis.net/kml/2.2">` +
		`<Data name="holeNumber"><displayName>Hole</displayName><value>1</value></Data>` +
		`<SchemaData schemaUrl="#TrailHeadType">` +
		`<SimpleData name="TrailHeadName">Pi in the sky</SimpleData>` +
		`<SimpleData name="ElevationGain">10</SimpleData>` +
		`</SchemaData>` +
		`<Data name="par"><value>4</value></Data>` +
		`</ExtendedData>`
	got, err := gokml.FromString(doc, gokml.ParseOptions{Strict: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	ed := got.(*data.ExtendedData)
	if len(ed.Elements) != 3 {
		t.Fatalf("elements = %d", len(ed.Elements))
	}
	d0, ok := ed.Elements[0].(*data.Data)
	if !ok || *d0.Name != "holeNumber" || *d0.Value != "1" {
		t.Errorf("elements[0] = %+v", ed.Elements[0])
	}
	if d0.DisplayName == nil || *d0.DisplayName != "Hole" {
		t.Errorf("displayName = %v", d0.DisplayName)
	}
	sd, ok := ed.Elements[1].(*data.SchemaData)
	if !ok || *sd.SchemaURL != "#TrailHeadType" {
		t.Fatalf("elements[1] = %+v", ed.Elements[1])
	}
	if len(sd.Data) != 2 || sd.Data[0].Value != "Pi in the sky" {
		t.Errorf("schema data = %+v", sd.Data)
	}
	if d2 := ed.Elements[2].(*data.Data); *d2.Name != "par" {
		t.Errorf("elements[2] = %+v", d2)
	}

	out, err := gokml.ToString(ed, gokml.SerializeOptions{})
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	for _, want := range []string{
		`<Data name="holeNumber">`,
		`<SchemaData schemaUrl="#TrailHeadType">`,
		`<SimpleData name="ElevationGain">10</SimpleData>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %s:\n%s", want, out)
		}
	}
	// Mixed elements keep document order.
	if strings.Index(out, "holeNumber") > strings.Index(out, "SchemaData") {
		t.Errorf("element order lost: %s", out)
	}
}

func TestSchemaDeclaration(t *testing.T) {
	doc := `<Schema xmlns="http://www.opengis.net/kml/2.2" id="TrailHeadType" name="TrailHead">` +
		`<SimpleField name="TrailHeadName" type="string"><displayName>Name</displayName></SimpleField>` +
		`<SimpleField name="ElevationGain" type="int"/>` +
		`</Schema>`
	got, err := gokml.FromString(doc, gokml.ParseOptions{Strict: true})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	s := got.(*data.Schema)
	if s.ID != "TrailHeadType" || *s.Name != "TrailHead" {
		t.Errorf("schema = %+v", s)
	}
	if len(s.Fields) != 2 {
		t.Fatalf("fields = %d", len(s.Fields))
	}
	if *s.Fields[0].Type != enums.TypeString || *s.Fields[1].Type != enums.TypeInt {
		t.Errorf("field types = %v, %v", s.Fields[0].Type, s.Fields[1].Type)
	}
}

func TestSchemaRequiresID(t *testing.T) {
	doc := `<Schema xmlns="http://www.opengis.net/kml/2.2" name="anonymous"/>`
	if _, err := gokml.FromString(doc, gokml.ParseOptions{Strict: true}); err == nil {
		t.Error("id-less schema accepted")
	}
}

func TestSchemaDataRequiresURL(t *testing.T) {
	sd := &data.SchemaData{}
	if err := sd.Check(); err == nil {
		t.Error("schemaUrl-less SchemaData passed Check")
	}
}
