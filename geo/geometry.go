// Package geo implements the KML geometry elements: Point, LineString,
// LinearRing, Polygon, and MultiGeometry.
//
// Dimensionality is structural: all coordinate tuples within one geometry
// carry 2 or 3 components, never a mixture, and the check runs at
// construction (parsing included), never at serialization.
package geo

import (
	"fmt"

	gokml "github.com/reoring/gokml"
	"github.com/reoring/gokml/enums"
)

// Geometry is any KML geometry element.
type Geometry interface {
	gokml.Object
	// Dim returns 2 or 3, or 0 for an empty geometry.
	Dim() int
	// GeoInterface returns the GeoJSON-shaped mapping of the geometry.
	GeoInterface() map[string]any
}

// GeometryBase carries the fields shared by the primitive geometries.
type GeometryBase struct {
	gokml.BaseObject
	Extrude      *bool
	Tessellate   *bool
	AltitudeMode *enums.AltitudeMode
}

type hasGeometryBase interface{ geomBase() *GeometryBase }

func (g *GeometryBase) geomBase() *GeometryBase { return g }

// GeometryBaseType is the abstract ancestor holding the shared items.
var GeometryBaseType = &gokml.TypeInfo{Name: "_Geometry", NSID: "kml", Abstract: true}

// Point is a single geographic location.
type Point struct {
	GeometryBase
	Coordinates *Coordinates
}

var PointType = &gokml.TypeInfo{
	Name: "Point", NSID: "kml", Parent: GeometryBaseType,
	New: func() gokml.Object { return &Point{} },
}

func (p *Point) TypeInfo() *gokml.TypeInfo { return PointType }

// NewPoint builds a Point from one coordinate tuple.
func NewPoint(point []float64) (*Point, error) {
	c, err := NewCoordinates([][]float64{point})
	if err != nil {
		return nil, err
	}
	return &Point{Coordinates: &c}, nil
}

func (p *Point) Dim() int {
	if p.Coordinates == nil {
		return 0
	}
	return p.Coordinates.Dim()
}

func (p *Point) Check() error {
	if p.Coordinates == nil || p.Coordinates.Len() == 0 {
		return fmt.Errorf("point: coordinates are required")
	}
	return nil
}

// LineString is a connected set of line segments.
type LineString struct {
	GeometryBase
	Coordinates *Coordinates
}

var LineStringType = &gokml.TypeInfo{
	Name: "LineString", NSID: "kml", Parent: GeometryBaseType,
	New: func() gokml.Object { return &LineString{} },
}

func (l *LineString) TypeInfo() *gokml.TypeInfo { return LineStringType }

// NewLineString builds a LineString from a tuple sequence.
func NewLineString(points [][]float64) (*LineString, error) {
	c, err := NewCoordinates(points)
	if err != nil {
		return nil, err
	}
	return &LineString{Coordinates: &c}, nil
}

func (l *LineString) Dim() int {
	if l.Coordinates == nil {
		return 0
	}
	return l.Coordinates.Dim()
}

func (l *LineString) Check() error {
	if l.Coordinates == nil || l.Coordinates.Len() == 0 {
		return fmt.Errorf("linestring: coordinates are required")
	}
	return nil
}

// LinearRing is a closed line string, used as a polygon boundary.
type LinearRing struct {
	GeometryBase
	Coordinates *Coordinates
}

var LinearRingType = &gokml.TypeInfo{
	Name: "LinearRing", NSID: "kml", Parent: GeometryBaseType,
	New: func() gokml.Object { return &LinearRing{} },
}

func (l *LinearRing) TypeInfo() *gokml.TypeInfo { return LinearRingType }

// NewLinearRing builds a LinearRing from a tuple sequence.
func NewLinearRing(points [][]float64) (*LinearRing, error) {
	c, err := NewCoordinates(points)
	if err != nil {
		return nil, err
	}
	return &LinearRing{Coordinates: &c}, nil
}

func (l *LinearRing) Dim() int {
	if l.Coordinates == nil {
		return 0
	}
	return l.Coordinates.Dim()
}

func (l *LinearRing) Check() error {
	if l.Coordinates == nil || l.Coordinates.Len() == 0 {
		return fmt.Errorf("linearring: coordinates are required")
	}
	return nil
}

// OuterBoundary wraps the outer LinearRing of a Polygon.
type OuterBoundary struct {
	gokml.BaseObject
	Ring *LinearRing
}

var OuterBoundaryType = &gokml.TypeInfo{
	Name: "outerBoundaryIs", NSID: "kml",
	New: func() gokml.Object { return &OuterBoundary{} },
}

func (b *OuterBoundary) TypeInfo() *gokml.TypeInfo { return OuterBoundaryType }

// InnerBoundary wraps one inner LinearRing (hole) of a Polygon.
type InnerBoundary struct {
	gokml.BaseObject
	Ring *LinearRing
}

var InnerBoundaryType = &gokml.TypeInfo{
	Name: "innerBoundaryIs", NSID: "kml",
	New: func() gokml.Object { return &InnerBoundary{} },
}

func (b *InnerBoundary) TypeInfo() *gokml.TypeInfo { return InnerBoundaryType }

// Polygon is an outer boundary with zero or more inner boundaries.
type Polygon struct {
	GeometryBase
	OuterBoundary   *OuterBoundary
	InnerBoundaries []*InnerBoundary
}

var PolygonType = &gokml.TypeInfo{
	Name: "Polygon", NSID: "kml", Parent: GeometryBaseType,
	New: func() gokml.Object { return &Polygon{} },
}

func (p *Polygon) TypeInfo() *gokml.TypeInfo { return PolygonType }

// NewPolygon builds a Polygon from an outer ring and optional inner rings.
func NewPolygon(outer [][]float64, inner ...[][]float64) (*Polygon, error) {
	outerRing, err := NewLinearRing(outer)
	if err != nil {
		return nil, err
	}
	p := &Polygon{OuterBoundary: &OuterBoundary{Ring: outerRing}}
	for _, ring := range inner {
		r, err := NewLinearRing(ring)
		if err != nil {
			return nil, err
		}
		p.InnerBoundaries = append(p.InnerBoundaries, &InnerBoundary{Ring: r})
	}
	if err := p.Check(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Polygon) Dim() int {
	if p.OuterBoundary == nil || p.OuterBoundary.Ring == nil {
		return 0
	}
	return p.OuterBoundary.Ring.Dim()
}

func (p *Polygon) Check() error {
	if p.OuterBoundary == nil || p.OuterBoundary.Ring == nil {
		return fmt.Errorf("polygon: outer boundary is required")
	}
	dim := p.OuterBoundary.Ring.Dim()
	for i, b := range p.InnerBoundaries {
		if b.Ring == nil {
			return fmt.Errorf("polygon: inner boundary %d has no ring", i)
		}
		if b.Ring.Dim() != dim {
			return dimensionalityIssue(fmt.Sprintf("polygon: inner boundary %d is %dD, outer is %dD", i, b.Ring.Dim(), dim))
		}
	}
	return nil
}

// MultiGeometry is a container of any number of geometries, possibly
// nested. All parts must agree on dimensionality.
type MultiGeometry struct {
	gokml.BaseObject
	Geometries []Geometry
}

var MultiGeometryType = &gokml.TypeInfo{
	Name: "MultiGeometry", NSID: "kml",
	New: func() gokml.Object { return &MultiGeometry{} },
}

func (m *MultiGeometry) TypeInfo() *gokml.TypeInfo { return MultiGeometryType }

// NewMultiGeometry builds a collection, rejecting mixed dimensionality
// before construction completes.
func NewMultiGeometry(geometries ...Geometry) (*MultiGeometry, error) {
	m := &MultiGeometry{Geometries: geometries}
	if err := m.Check(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *MultiGeometry) Dim() int {
	for _, g := range m.Geometries {
		if d := g.Dim(); d != 0 {
			return d
		}
	}
	return 0
}

func (m *MultiGeometry) Check() error {
	dim := 0
	for i, g := range m.Geometries {
		d := g.Dim()
		if d == 0 {
			continue
		}
		if dim == 0 {
			dim = d
		} else if d != dim {
			return dimensionalityIssue(fmt.Sprintf("multigeometry: part %d is %dD, collection started with %dD", i, d, dim))
		}
	}
	return nil
}

// GeometryTypes lists the concrete geometry types in dispatch order.
var GeometryTypes = []*gokml.TypeInfo{
	PointType, LineStringType, LinearRingType, PolygonType, MultiGeometryType,
}

var altitudeModeCodec = gokml.Codec[enums.AltitudeMode]{
	Parse:  enums.ParseAltitudeMode,
	Format: func(v enums.AltitudeMode, _ int) string { return string(v) },
}

func init() {
	for _, ti := range GeometryTypes {
		gokml.RegisterType(ti)
	}
	gokml.RegisterType(OuterBoundaryType)
	gokml.RegisterType(InnerBoundaryType)

	// Shared geometry fields, on the abstract ancestor.
	get, set := gokml.ChildBool(func(o gokml.Object) **bool { return &o.(hasGeometryBase).geomBase().Extrude })
	gokml.Register(GeometryBaseType, gokml.Item{
		Attr: "extrude", Node: "extrude", NSIDs: []string{"kml"},
		Get: get, Set: set, Default: false,
	})
	get, set = gokml.ChildBool(func(o gokml.Object) **bool { return &o.(hasGeometryBase).geomBase().Tessellate })
	gokml.Register(GeometryBaseType, gokml.Item{
		Attr: "tessellate", Node: "tessellate", NSIDs: []string{"kml"},
		Get: get, Set: set, Default: false,
	})
	getAM, setAM := gokml.ChildTextNS(
		func(o gokml.Object) **enums.AltitudeMode { return &o.(hasGeometryBase).geomBase().AltitudeMode },
		altitudeModeCodec,
		enums.AltitudeMode.NSID,
	)
	gokml.Register(GeometryBaseType, gokml.Item{
		Attr: "altitudeMode", Node: "altitudeMode", NSIDs: []string{"kml", "gx"},
		Get: getAM, Set: setAM, Default: enums.ClampToGround,
	})

	// Coordinates on each primitive geometry.
	getC, setC := gokml.ChildText(func(o gokml.Object) **Coordinates { return &o.(*Point).Coordinates }, coordinatesCodec)
	gokml.Register(PointType, gokml.Item{
		Attr: "coordinates", Node: "coordinates", NSIDs: []string{"kml"},
		Get: getC, Set: setC, Required: true,
	})
	getC, setC = gokml.ChildText(func(o gokml.Object) **Coordinates { return &o.(*LineString).Coordinates }, coordinatesCodec)
	gokml.Register(LineStringType, gokml.Item{
		Attr: "coordinates", Node: "coordinates", NSIDs: []string{"kml"},
		Get: getC, Set: setC, Required: true,
	})
	getC, setC = gokml.ChildText(func(o gokml.Object) **Coordinates { return &o.(*LinearRing).Coordinates }, coordinatesCodec)
	gokml.Register(LinearRingType, gokml.Item{
		Attr: "coordinates", Node: "coordinates", NSIDs: []string{"kml"},
		Get: getC, Set: setC, Required: true,
	})

	// Polygon boundaries.
	getO, setO := gokml.Child(
		func(o, v gokml.Object) { o.(*Polygon).OuterBoundary = v.(*OuterBoundary) },
		func(o gokml.Object) gokml.Object {
			if b := o.(*Polygon).OuterBoundary; b != nil {
				return b
			}
			return nil
		},
	)
	gokml.Register(PolygonType, gokml.Item{
		Attr: "outerBoundary", Node: "outerBoundaryIs", NSIDs: []string{"kml"},
		Types: []*gokml.TypeInfo{OuterBoundaryType},
		Get:   getO, Set: setO, Required: true,
	})
	getI, setI := gokml.ChildList(
		func(o, v gokml.Object) {
			p := o.(*Polygon)
			p.InnerBoundaries = append(p.InnerBoundaries, v.(*InnerBoundary))
		},
		func(o gokml.Object) []gokml.Object {
			p := o.(*Polygon)
			out := make([]gokml.Object, 0, len(p.InnerBoundaries))
			for _, b := range p.InnerBoundaries {
				out = append(out, b)
			}
			return out
		},
	)
	gokml.Register(PolygonType, gokml.Item{
		Attr: "innerBoundaries", Node: "innerBoundaryIs", NSIDs: []string{"kml"},
		Types: []*gokml.TypeInfo{InnerBoundaryType},
		Get:   getI, Set: setI,
	})

	// Boundary rings.
	getR, setR := gokml.Child(
		func(o, v gokml.Object) { o.(*OuterBoundary).Ring = v.(*LinearRing) },
		func(o gokml.Object) gokml.Object {
			if r := o.(*OuterBoundary).Ring; r != nil {
				return r
			}
			return nil
		},
	)
	gokml.Register(OuterBoundaryType, gokml.Item{
		Attr: "ring", Node: "LinearRing", NSIDs: []string{"kml"},
		Types: []*gokml.TypeInfo{LinearRingType},
		Get:   getR, Set: setR, Required: true,
	})
	getR, setR = gokml.Child(
		func(o, v gokml.Object) { o.(*InnerBoundary).Ring = v.(*LinearRing) },
		func(o gokml.Object) gokml.Object {
			if r := o.(*InnerBoundary).Ring; r != nil {
				return r
			}
			return nil
		},
	)
	gokml.Register(InnerBoundaryType, gokml.Item{
		Attr: "ring", Node: "LinearRing", NSIDs: []string{"kml"},
		Types: []*gokml.TypeInfo{LinearRingType},
		Get:   getR, Set: setR, Required: true,
	})

	// MultiGeometry owns every child element that is a geometry.
	getM, setM := gokml.ChildList(
		func(o, v gokml.Object) {
			m := o.(*MultiGeometry)
			m.Geometries = append(m.Geometries, v.(Geometry))
		},
		func(o gokml.Object) []gokml.Object {
			m := o.(*MultiGeometry)
			out := make([]gokml.Object, 0, len(m.Geometries))
			for _, g := range m.Geometries {
				out = append(out, g)
			}
			return out
		},
	)
	gokml.Register(MultiGeometryType, gokml.Item{
		Attr: "geometries", Node: "", NSIDs: []string{"kml"},
		Types:      GeometryTypes,
		Get:        getM, Set: setM,
		Exhaustive: true,
	})
}
