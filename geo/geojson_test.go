package geo_test

import (
	"strings"
	"testing"

	"github.com/reoring/gokml/geo"
)

func TestPointGeoInterface(t *testing.T) {
	p, err := geo.NewPoint([]float64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	gi := p.GeoInterface()
	if gi["type"] != "Point" {
		t.Errorf("type = %v", gi["type"])
	}
	coords, ok := gi["coordinates"].([]float64)
	if !ok || len(coords) != 3 || coords[2] != 3 {
		t.Errorf("coordinates = %v", gi["coordinates"])
	}
}

func TestPolygonGeoInterface(t *testing.T) {
	p, err := geo.NewPolygon(
		[][]float64{{0, 0}, {0, 1}, {1, 1}, {0, 0}},
		[][]float64{{0.2, 0.2}, {0.2, 0.4}, {0.4, 0.4}, {0.2, 0.2}},
	)
	if err != nil {
		t.Fatal(err)
	}
	gi := p.GeoInterface()
	rings, ok := gi["coordinates"].([][][]float64)
	if !ok || len(rings) != 2 {
		t.Fatalf("coordinates = %v", gi["coordinates"])
	}
}

func TestMultiGeometryGeoInterface(t *testing.T) {
	p, err := geo.NewPoint([]float64{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	l, err := geo.NewLineString([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatal(err)
	}
	m, err := geo.NewMultiGeometry(p, l)
	if err != nil {
		t.Fatal(err)
	}
	gi := m.GeoInterface()
	if gi["type"] != "GeometryCollection" {
		t.Errorf("type = %v", gi["type"])
	}
	parts, ok := gi["geometries"].([]map[string]any)
	if !ok || len(parts) != 2 {
		t.Fatalf("geometries = %v", gi["geometries"])
	}
	if parts[1]["type"] != "LineString" {
		t.Errorf("part 1 type = %v", parts[1]["type"])
	}
}

func TestAsGeoJSON(t *testing.T) {
	p, err := geo.NewPoint([]float64{1.5, 2.5})
	if err != nil {
		t.Fatal(err)
	}
	out, err := geo.AsGeoJSON(p)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	s := string(out)
	if !strings.Contains(s, `"type":"Point"`) {
		t.Errorf("output = %s", s)
	}
	if !strings.Contains(s, "1.5") || !strings.Contains(s, "2.5") {
		t.Errorf("coordinates missing: %s", s)
	}
}

func TestAdapt(t *testing.T) {
	g, err := geo.Adapt("Point", []float64{1, 2})
	if err != nil {
		t.Fatalf("point: %v", err)
	}
	if _, ok := g.(*geo.Point); !ok {
		t.Errorf("adapted %T", g)
	}

	g, err = geo.Adapt("LineString", []any{[]any{1.0, 2.0}, []any{3.0, 4.0}})
	if err != nil {
		t.Fatalf("linestring from decoded JSON: %v", err)
	}
	if ls, ok := g.(*geo.LineString); !ok || ls.Coordinates.Len() != 2 {
		t.Errorf("adapted %T", g)
	}

	g, err = geo.Adapt("MultiPoint", [][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("multipoint: %v", err)
	}
	m, ok := g.(*geo.MultiGeometry)
	if !ok || len(m.Geometries) != 2 {
		t.Errorf("adapted %T", g)
	}

	if _, err := geo.Adapt("Hypercube", nil); err == nil {
		t.Error("unknown type adapted")
	}
	if _, err := geo.Adapt("Point", []float64{1, 2, 3, 4}); err == nil {
		t.Error("4d point adapted")
	}
}

func TestAdaptJSON(t *testing.T) {
	g, err := geo.AdaptJSON([]byte(`{"type":"Polygon","coordinates":[[[0,0],[0,1],[1,1],[0,0]]]}`))
	if err != nil {
		t.Fatalf("polygon: %v", err)
	}
	p, ok := g.(*geo.Polygon)
	if !ok || p.OuterBoundary == nil {
		t.Fatalf("adapted %T", g)
	}

	g, err = geo.AdaptJSON([]byte(`{"type":"GeometryCollection","geometries":[{"type":"Point","coordinates":[1,2]}]}`))
	if err != nil {
		t.Fatalf("collection: %v", err)
	}
	if m, ok := g.(*geo.MultiGeometry); !ok || len(m.Geometries) != 1 {
		t.Fatalf("adapted %T", g)
	}
}
