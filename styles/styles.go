// Package styles implements the KML style selectors and sub-styles: Style,
// StyleMap, and the icon, label, line, poly and balloon styles they carry.
//
// Colors are aabbggrr hex strings, as KML writes them; they are carried
// verbatim, not decoded.
package styles

import (
	"fmt"

	gokml "github.com/reoring/gokml"
	"github.com/reoring/gokml/enums"
	"github.com/reoring/gokml/links"
)

// ColorStyleBase carries the color fields shared by the colored sub-styles.
type ColorStyleBase struct {
	gokml.BaseObject
	Color     *string
	ColorMode *enums.ColorMode
}

type hasColorStyleBase interface{ colorStyleBase() *ColorStyleBase }

func (c *ColorStyleBase) colorStyleBase() *ColorStyleBase { return c }

// ColorStyleBaseType is the abstract ancestor holding the shared items.
var ColorStyleBaseType = &gokml.TypeInfo{Name: "_ColorStyle", NSID: "kml", Abstract: true}

// IconStyle styles the icon of a point placemark.
type IconStyle struct {
	ColorStyleBase
	Scale   *float64
	Heading *float64
	Icon    *links.Icon
}

var IconStyleType = &gokml.TypeInfo{
	Name: "IconStyle", NSID: "kml", Parent: ColorStyleBaseType,
	New: func() gokml.Object { return &IconStyle{} },
}

func (s *IconStyle) TypeInfo() *gokml.TypeInfo { return IconStyleType }

// LabelStyle styles the name label drawn next to an icon.
type LabelStyle struct {
	ColorStyleBase
	Scale *float64
}

var LabelStyleType = &gokml.TypeInfo{
	Name: "LabelStyle", NSID: "kml", Parent: ColorStyleBaseType,
	New: func() gokml.Object { return &LabelStyle{} },
}

func (s *LabelStyle) TypeInfo() *gokml.TypeInfo { return LabelStyleType }

// LineStyle styles line geometry and polygon outlines.
type LineStyle struct {
	ColorStyleBase
	Width *float64
}

var LineStyleType = &gokml.TypeInfo{
	Name: "LineStyle", NSID: "kml", Parent: ColorStyleBaseType,
	New: func() gokml.Object { return &LineStyle{} },
}

func (s *LineStyle) TypeInfo() *gokml.TypeInfo { return LineStyleType }

// PolyStyle styles polygon interiors.
type PolyStyle struct {
	ColorStyleBase
	Fill    *bool
	Outline *bool
}

var PolyStyleType = &gokml.TypeInfo{
	Name: "PolyStyle", NSID: "kml", Parent: ColorStyleBaseType,
	New: func() gokml.Object { return &PolyStyle{} },
}

func (s *PolyStyle) TypeInfo() *gokml.TypeInfo { return PolyStyleType }

// BalloonStyle styles the description balloon.
type BalloonStyle struct {
	gokml.BaseObject
	BgColor     *string
	TextColor   *string
	Text        *string
	DisplayMode *enums.DisplayMode
}

var BalloonStyleType = &gokml.TypeInfo{
	Name: "BalloonStyle", NSID: "kml",
	New: func() gokml.Object { return &BalloonStyle{} },
}

func (s *BalloonStyle) TypeInfo() *gokml.TypeInfo { return BalloonStyleType }

// SubStyleTypes lists the sub-style types a Style can carry, in dispatch
// order.
var SubStyleTypes = []*gokml.TypeInfo{
	IconStyleType, LabelStyleType, LineStyleType, PolyStyleType, BalloonStyleType,
}

// Style groups any combination of sub-styles under one id.
type Style struct {
	gokml.BaseObject
	Styles []gokml.Object
}

var StyleType = &gokml.TypeInfo{
	Name: "Style", NSID: "kml",
	New: func() gokml.Object { return &Style{} },
}

func (s *Style) TypeInfo() *gokml.TypeInfo { return StyleType }

// Pair binds one style state to a style or style reference inside a
// StyleMap.
type Pair struct {
	gokml.BaseObject
	Key      *enums.PairKey
	StyleURL *string
	Style    *Style
}

var PairType = &gokml.TypeInfo{
	Name: "Pair", NSID: "kml",
	New: func() gokml.Object { return &Pair{} },
}

func (p *Pair) TypeInfo() *gokml.TypeInfo { return PairType }

// Check requires a key and exactly one of styleUrl or an inline style.
func (p *Pair) Check() error {
	if p.Key == nil {
		return fmt.Errorf("pair: key is required")
	}
	if p.StyleURL == nil && p.Style == nil {
		return fmt.Errorf("pair: either styleUrl or an inline Style is required")
	}
	return nil
}

// StyleMap maps the normal and highlight states to styles.
type StyleMap struct {
	gokml.BaseObject
	Pairs []*Pair
}

var StyleMapType = &gokml.TypeInfo{
	Name: "StyleMap", NSID: "kml",
	New: func() gokml.Object { return &StyleMap{} },
}

func (s *StyleMap) TypeInfo() *gokml.TypeInfo { return StyleMapType }

// SelectorTypes lists the style selector types a feature can carry.
var SelectorTypes = []*gokml.TypeInfo{StyleType, StyleMapType}

var colorModeCodec = gokml.Codec[enums.ColorMode]{
	Parse:  enums.ParseColorMode,
	Format: func(v enums.ColorMode, _ int) string { return string(v) },
}

var displayModeCodec = gokml.Codec[enums.DisplayMode]{
	Parse:  enums.ParseDisplayMode,
	Format: func(v enums.DisplayMode, _ int) string { return string(v) },
}

var pairKeyCodec = gokml.Codec[enums.PairKey]{
	Parse:  enums.ParsePairKey,
	Format: func(v enums.PairKey, _ int) string { return string(v) },
}

func init() {
	for _, ti := range SubStyleTypes {
		gokml.RegisterType(ti)
	}
	gokml.RegisterType(StyleType)
	gokml.RegisterType(StyleMapType)
	gokml.RegisterType(PairType)

	colorBase := func(o gokml.Object) *ColorStyleBase { return o.(hasColorStyleBase).colorStyleBase() }

	get, set := gokml.ChildText(func(o gokml.Object) **string { return &colorBase(o).Color }, gokml.StringCodec)
	gokml.Register(ColorStyleBaseType, gokml.Item{
		Attr: "color", Node: "color", NSIDs: []string{"kml"},
		Get: get, Set: set, Default: "ffffffff",
	})
	getCM, setCM := gokml.ChildText(func(o gokml.Object) **enums.ColorMode { return &colorBase(o).ColorMode }, colorModeCodec)
	gokml.Register(ColorStyleBaseType, gokml.Item{
		Attr: "colorMode", Node: "colorMode", NSIDs: []string{"kml"},
		Get: getCM, Set: setCM, Default: enums.ColorModeNormal,
	})

	getF, setF := gokml.ChildText(func(o gokml.Object) **float64 { return &o.(*IconStyle).Scale }, gokml.FloatCodec)
	gokml.Register(IconStyleType, gokml.Item{
		Attr: "scale", Node: "scale", NSIDs: []string{"kml"},
		Get: getF, Set: setF, Default: 1.0,
	})
	getF, setF = gokml.ChildText(func(o gokml.Object) **float64 { return &o.(*IconStyle).Heading }, gokml.FloatCodec)
	gokml.Register(IconStyleType, gokml.Item{
		Attr: "heading", Node: "heading", NSIDs: []string{"kml"},
		Get: getF, Set: setF,
	})
	getIc, setIc := gokml.Child(
		func(o, v gokml.Object) { o.(*IconStyle).Icon = v.(*links.Icon) },
		func(o gokml.Object) gokml.Object {
			if ic := o.(*IconStyle).Icon; ic != nil {
				return ic
			}
			return nil
		},
	)
	gokml.Register(IconStyleType, gokml.Item{
		Attr: "icon", Node: "Icon", NSIDs: []string{"kml"},
		Types: []*gokml.TypeInfo{links.IconType},
		Get:   getIc, Set: setIc,
	})

	getF, setF = gokml.ChildText(func(o gokml.Object) **float64 { return &o.(*LabelStyle).Scale }, gokml.FloatCodec)
	gokml.Register(LabelStyleType, gokml.Item{
		Attr: "scale", Node: "scale", NSIDs: []string{"kml"},
		Get: getF, Set: setF, Default: 1.0,
	})

	getF, setF = gokml.ChildText(func(o gokml.Object) **float64 { return &o.(*LineStyle).Width }, gokml.FloatCodec)
	gokml.Register(LineStyleType, gokml.Item{
		Attr: "width", Node: "width", NSIDs: []string{"kml"},
		Get: getF, Set: setF, Default: 1.0,
	})

	getB, setB := gokml.ChildBool(func(o gokml.Object) **bool { return &o.(*PolyStyle).Fill })
	gokml.Register(PolyStyleType, gokml.Item{
		Attr: "fill", Node: "fill", NSIDs: []string{"kml"},
		Get: getB, Set: setB, Default: true,
	})
	getB, setB = gokml.ChildBool(func(o gokml.Object) **bool { return &o.(*PolyStyle).Outline })
	gokml.Register(PolyStyleType, gokml.Item{
		Attr: "outline", Node: "outline", NSIDs: []string{"kml"},
		Get: getB, Set: setB, Default: true,
	})

	get, set = gokml.ChildText(func(o gokml.Object) **string { return &o.(*BalloonStyle).BgColor }, gokml.StringCodec)
	gokml.Register(BalloonStyleType, gokml.Item{
		Attr: "bgColor", Node: "bgColor", NSIDs: []string{"kml"},
		Get: get, Set: set,
	})
	get, set = gokml.ChildText(func(o gokml.Object) **string { return &o.(*BalloonStyle).TextColor }, gokml.StringCodec)
	gokml.Register(BalloonStyleType, gokml.Item{
		Attr: "textColor", Node: "textColor", NSIDs: []string{"kml"},
		Get: get, Set: set,
	})
	get, set = gokml.ChildText(func(o gokml.Object) **string { return &o.(*BalloonStyle).Text }, gokml.StringCodec)
	gokml.Register(BalloonStyleType, gokml.Item{
		Attr: "text", Node: "text", NSIDs: []string{"kml"},
		Get: get, Set: set,
	})
	getDM, setDM := gokml.ChildText(func(o gokml.Object) **enums.DisplayMode { return &o.(*BalloonStyle).DisplayMode }, displayModeCodec)
	gokml.Register(BalloonStyleType, gokml.Item{
		Attr: "displayMode", Node: "displayMode", NSIDs: []string{"kml"},
		Get: getDM, Set: setDM, Default: enums.DisplayModeDefault,
	})

	getS, setS := gokml.ChildList(
		func(o, v gokml.Object) {
			s := o.(*Style)
			s.Styles = append(s.Styles, v)
		},
		func(o gokml.Object) []gokml.Object { return o.(*Style).Styles },
	)
	gokml.Register(StyleType, gokml.Item{
		Attr: "styles", Node: "", NSIDs: []string{"kml"},
		Types: SubStyleTypes,
		Get:   getS, Set: setS,
	})

	getK, setK := gokml.ChildText(func(o gokml.Object) **enums.PairKey { return &o.(*Pair).Key }, pairKeyCodec)
	gokml.Register(PairType, gokml.Item{
		Attr: "key", Node: "key", NSIDs: []string{"kml"},
		Get: getK, Set: setK, Required: true,
	})
	get, set = gokml.ChildText(func(o gokml.Object) **string { return &o.(*Pair).StyleURL }, gokml.StringCodec)
	gokml.Register(PairType, gokml.Item{
		Attr: "styleUrl", Node: "styleUrl", NSIDs: []string{"kml"},
		Get: get, Set: set,
	})
	getSt, setSt := gokml.Child(
		func(o, v gokml.Object) { o.(*Pair).Style = v.(*Style) },
		func(o gokml.Object) gokml.Object {
			if s := o.(*Pair).Style; s != nil {
				return s
			}
			return nil
		},
	)
	gokml.Register(PairType, gokml.Item{
		Attr: "style", Node: "Style", NSIDs: []string{"kml"},
		Types: []*gokml.TypeInfo{StyleType},
		Get:   getSt, Set: setSt,
	})

	getP, setP := gokml.ChildList(
		func(o, v gokml.Object) {
			m := o.(*StyleMap)
			m.Pairs = append(m.Pairs, v.(*Pair))
		},
		func(o gokml.Object) []gokml.Object {
			m := o.(*StyleMap)
			out := make([]gokml.Object, 0, len(m.Pairs))
			for _, p := range m.Pairs {
				out = append(out, p)
			}
			return out
		},
	)
	gokml.Register(StyleMapType, gokml.Item{
		Attr: "pairs", Node: "Pair", NSIDs: []string{"kml"},
		Types: []*gokml.TypeInfo{PairType},
		Get:   getP, Set: setP,
	})
}
