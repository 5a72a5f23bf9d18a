package geo

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// GeoInterface returns the GeoJSON-shaped mapping of the point.
func (p *Point) GeoInterface() map[string]any {
	var coords []float64
	if p.Coordinates != nil && p.Coordinates.Len() > 0 {
		coords = p.Coordinates.Points()[0]
	}
	return map[string]any{"type": "Point", "coordinates": coords}
}

func (l *LineString) GeoInterface() map[string]any {
	var coords [][]float64
	if l.Coordinates != nil {
		coords = l.Coordinates.Points()
	}
	return map[string]any{"type": "LineString", "coordinates": coords}
}

// GeoInterface maps a LinearRing to a GeoJSON LineString; GeoJSON has no
// standalone ring type.
func (l *LinearRing) GeoInterface() map[string]any {
	var coords [][]float64
	if l.Coordinates != nil {
		coords = l.Coordinates.Points()
	}
	return map[string]any{"type": "LineString", "coordinates": coords}
}

func (p *Polygon) GeoInterface() map[string]any {
	var rings [][][]float64
	if p.OuterBoundary != nil && p.OuterBoundary.Ring != nil && p.OuterBoundary.Ring.Coordinates != nil {
		rings = append(rings, p.OuterBoundary.Ring.Coordinates.Points())
	}
	for _, b := range p.InnerBoundaries {
		if b.Ring != nil && b.Ring.Coordinates != nil {
			rings = append(rings, b.Ring.Coordinates.Points())
		}
	}
	return map[string]any{"type": "Polygon", "coordinates": rings}
}

func (m *MultiGeometry) GeoInterface() map[string]any {
	geometries := make([]map[string]any, 0, len(m.Geometries))
	for _, g := range m.Geometries {
		geometries = append(geometries, g.GeoInterface())
	}
	return map[string]any{"type": "GeometryCollection", "geometries": geometries}
}

// AsGeoJSON encodes a geometry as a GeoJSON geometry document.
func AsGeoJSON(g Geometry) ([]byte, error) {
	return json.Marshal(g.GeoInterface())
}

// Adapt converts an externally produced GeoJSON-shaped geometry into the
// matching KML geometry. typeName is the GeoJSON type; coords is the nested
// coordinates value as decoded from JSON ([]any of float64 at the deepest
// level) or as native [][]float64 slices. Multi types map onto
// MultiGeometry; dimensionality is validated the same as any construction.
func Adapt(typeName string, coords any) (Geometry, error) {
	switch typeName {
	case "Point":
		tuple, err := toTuple(coords)
		if err != nil {
			return nil, fmt.Errorf("adapt %s: %w", typeName, err)
		}
		return NewPoint(tuple)
	case "LineString":
		tuples, err := toTuples(coords)
		if err != nil {
			return nil, fmt.Errorf("adapt %s: %w", typeName, err)
		}
		return NewLineString(tuples)
	case "LinearRing":
		tuples, err := toTuples(coords)
		if err != nil {
			return nil, fmt.Errorf("adapt %s: %w", typeName, err)
		}
		return NewLinearRing(tuples)
	case "Polygon":
		rings, err := toRings(coords)
		if err != nil {
			return nil, fmt.Errorf("adapt %s: %w", typeName, err)
		}
		if len(rings) == 0 {
			return nil, fmt.Errorf("adapt %s: no rings", typeName)
		}
		return NewPolygon(rings[0], rings[1:]...)
	case "MultiPoint":
		tuples, err := toTuples(coords)
		if err != nil {
			return nil, fmt.Errorf("adapt %s: %w", typeName, err)
		}
		parts := make([]Geometry, 0, len(tuples))
		for _, t := range tuples {
			p, err := NewPoint(t)
			if err != nil {
				return nil, err
			}
			parts = append(parts, p)
		}
		return NewMultiGeometry(parts...)
	case "MultiLineString":
		lines, err := toRings(coords)
		if err != nil {
			return nil, fmt.Errorf("adapt %s: %w", typeName, err)
		}
		parts := make([]Geometry, 0, len(lines))
		for _, line := range lines {
			l, err := NewLineString(line)
			if err != nil {
				return nil, err
			}
			parts = append(parts, l)
		}
		return NewMultiGeometry(parts...)
	case "MultiPolygon":
		polys, err := toPolygons(coords)
		if err != nil {
			return nil, fmt.Errorf("adapt %s: %w", typeName, err)
		}
		parts := make([]Geometry, 0, len(polys))
		for _, rings := range polys {
			if len(rings) == 0 {
				return nil, fmt.Errorf("adapt %s: empty polygon", typeName)
			}
			p, err := NewPolygon(rings[0], rings[1:]...)
			if err != nil {
				return nil, err
			}
			parts = append(parts, p)
		}
		return NewMultiGeometry(parts...)
	}
	return nil, fmt.Errorf("adapt: unsupported geometry type %q", typeName)
}

// AdaptJSON decodes a GeoJSON geometry document and converts it.
func AdaptJSON(data []byte) (Geometry, error) {
	var doc struct {
		Type        string `json:"type"`
		Coordinates any    `json:"coordinates"`
		Geometries  []struct {
			Type        string `json:"type"`
			Coordinates any    `json:"coordinates"`
		} `json:"geometries"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("adapt: %w", err)
	}
	if doc.Type == "GeometryCollection" {
		parts := make([]Geometry, 0, len(doc.Geometries))
		for _, sub := range doc.Geometries {
			g, err := Adapt(sub.Type, sub.Coordinates)
			if err != nil {
				return nil, err
			}
			parts = append(parts, g)
		}
		return NewMultiGeometry(parts...)
	}
	return Adapt(doc.Type, doc.Coordinates)
}

func toTuple(v any) ([]float64, error) {
	switch t := v.(type) {
	case []float64:
		return t, nil
	case []any:
		tuple := make([]float64, 0, len(t))
		for _, c := range t {
			f, ok := c.(float64)
			if !ok {
				return nil, fmt.Errorf("coordinate component %v is not a number", c)
			}
			tuple = append(tuple, f)
		}
		return tuple, nil
	}
	return nil, fmt.Errorf("coordinates %T is not a tuple", v)
}

func toTuples(v any) ([][]float64, error) {
	switch t := v.(type) {
	case [][]float64:
		return t, nil
	case []any:
		tuples := make([][]float64, 0, len(t))
		for _, e := range t {
			tuple, err := toTuple(e)
			if err != nil {
				return nil, err
			}
			tuples = append(tuples, tuple)
		}
		return tuples, nil
	}
	return nil, fmt.Errorf("coordinates %T is not a tuple sequence", v)
}

func toRings(v any) ([][][]float64, error) {
	switch t := v.(type) {
	case [][][]float64:
		return t, nil
	case []any:
		rings := make([][][]float64, 0, len(t))
		for _, e := range t {
			ring, err := toTuples(e)
			if err != nil {
				return nil, err
			}
			rings = append(rings, ring)
		}
		return rings, nil
	}
	return nil, fmt.Errorf("coordinates %T is not a ring sequence", v)
}

func toPolygons(v any) ([][][][]float64, error) {
	switch t := v.(type) {
	case [][][][]float64:
		return t, nil
	case []any:
		polys := make([][][][]float64, 0, len(t))
		for _, e := range t {
			rings, err := toRings(e)
			if err != nil {
				return nil, err
			}
			polys = append(polys, rings)
		}
		return polys, nil
	}
	return nil, fmt.Errorf("coordinates %T is not a polygon sequence", v)
}
