// Package views implements the KML abstract views Camera and LookAt, which
// position the virtual camera relative to the earth or a point of interest.
package views

import (
	gokml "github.com/reoring/gokml"
	"github.com/reoring/gokml/enums"
	"github.com/reoring/gokml/times"
)

// ViewBase carries the position and orientation fields shared by Camera
// and LookAt, plus the optional time primitive a view can carry.
type ViewBase struct {
	gokml.BaseObject
	Longitude    *float64
	Latitude     *float64
	Altitude     *float64
	Heading      *float64
	Tilt         *float64
	AltitudeMode *enums.AltitudeMode
	Times        gokml.Object
}

type hasViewBase interface{ viewBase() *ViewBase }

func (v *ViewBase) viewBase() *ViewBase { return v }

// ViewBaseType is the abstract ancestor holding the shared items.
var ViewBaseType = &gokml.TypeInfo{Name: "_AbstractView", NSID: "kml", Abstract: true}

// LookAt positions the camera relative to a point on the earth.
type LookAt struct {
	ViewBase
	Range *float64
}

var LookAtType = &gokml.TypeInfo{
	Name: "LookAt", NSID: "kml", Parent: ViewBaseType,
	New: func() gokml.Object { return &LookAt{} },
}

func (l *LookAt) TypeInfo() *gokml.TypeInfo { return LookAtType }

// Camera positions the camera directly, with full orientation control.
type Camera struct {
	ViewBase
	Roll *float64
}

var CameraType = &gokml.TypeInfo{
	Name: "Camera", NSID: "kml", Parent: ViewBaseType,
	New: func() gokml.Object { return &Camera{} },
}

func (c *Camera) TypeInfo() *gokml.TypeInfo { return CameraType }

// ViewTypes lists the concrete view types in dispatch order.
var ViewTypes = []*gokml.TypeInfo{CameraType, LookAtType}

var altitudeModeCodec = gokml.Codec[enums.AltitudeMode]{
	Parse:  enums.ParseAltitudeMode,
	Format: func(v enums.AltitudeMode, _ int) string { return string(v) },
}

func init() {
	gokml.RegisterType(LookAtType)
	gokml.RegisterType(CameraType)

	base := func(o gokml.Object) *ViewBase { return o.(hasViewBase).viewBase() }

	register := func(attr string, field func(o gokml.Object) **float64) {
		get, set := gokml.ChildText(field, gokml.FloatCodec)
		gokml.Register(ViewBaseType, gokml.Item{
			Attr: attr, Node: attr, NSIDs: []string{"kml"},
			Get: get, Set: set,
		})
	}
	register("longitude", func(o gokml.Object) **float64 { return &base(o).Longitude })
	register("latitude", func(o gokml.Object) **float64 { return &base(o).Latitude })
	register("altitude", func(o gokml.Object) **float64 { return &base(o).Altitude })
	register("heading", func(o gokml.Object) **float64 { return &base(o).Heading })
	register("tilt", func(o gokml.Object) **float64 { return &base(o).Tilt })

	getAM, setAM := gokml.ChildTextNS(
		func(o gokml.Object) **enums.AltitudeMode { return &base(o).AltitudeMode },
		altitudeModeCodec,
		enums.AltitudeMode.NSID,
	)
	gokml.Register(ViewBaseType, gokml.Item{
		Attr: "altitudeMode", Node: "altitudeMode", NSIDs: []string{"kml", "gx"},
		Get: getAM, Set: setAM, Default: enums.ClampToGround,
	})

	getT, setT := gokml.Child(
		func(o, v gokml.Object) { base(o).Times = v },
		func(o gokml.Object) gokml.Object { return base(o).Times },
	)
	gokml.Register(ViewBaseType, gokml.Item{
		Attr: "times", Node: "", NSIDs: []string{"kml", "gx"},
		Types: []*gokml.TypeInfo{times.TimeSpanType, times.TimeStampType},
		Get:   getT, Set: setT,
	})

	getR, setR := gokml.ChildText(func(o gokml.Object) **float64 { return &o.(*LookAt).Range }, gokml.FloatCodec)
	gokml.Register(LookAtType, gokml.Item{
		Attr: "range", Node: "range", NSIDs: []string{"kml"},
		Get: getR, Set: setR,
	})
	getR, setR = gokml.ChildText(func(o gokml.Object) **float64 { return &o.(*Camera).Roll }, gokml.FloatCodec)
	gokml.Register(CameraType, gokml.Item{
		Attr: "roll", Node: "roll", NSIDs: []string{"kml"},
		Get: getR, Set: setR,
	})
}
