// Package links implements the KML link elements Link and Icon, which
// reference remote or local resources and describe their refresh behavior.
package links

import (
	gokml "github.com/reoring/gokml"
	"github.com/reoring/gokml/enums"
)

// LinkBase carries the fields shared by Link and Icon; the two elements
// have identical content and differ only in tag name.
type LinkBase struct {
	gokml.BaseObject
	Href            *string
	RefreshMode     *enums.RefreshMode
	RefreshInterval *float64
	ViewRefreshMode *enums.ViewRefreshMode
	ViewRefreshTime *float64
	ViewBoundScale  *float64
	ViewFormat      *string
	HTTPQuery       *string
}

type hasLinkBase interface{ linkBase() *LinkBase }

func (l *LinkBase) linkBase() *LinkBase { return l }

// LinkBaseType is the abstract ancestor holding the shared items.
var LinkBaseType = &gokml.TypeInfo{Name: "_Link", NSID: "kml", Abstract: true}

// Link specifies the location of a resource fetched by a NetworkLink.
type Link struct {
	LinkBase
}

var LinkType = &gokml.TypeInfo{
	Name: "Link", NSID: "kml", Parent: LinkBaseType,
	New: func() gokml.Object { return &Link{} },
}

func (l *Link) TypeInfo() *gokml.TypeInfo { return LinkType }

// Icon specifies the image used by an IconStyle or overlay.
type Icon struct {
	LinkBase
}

var IconType = &gokml.TypeInfo{
	Name: "Icon", NSID: "kml", Parent: LinkBaseType,
	New: func() gokml.Object { return &Icon{} },
}

func (i *Icon) TypeInfo() *gokml.TypeInfo { return IconType }

var refreshModeCodec = gokml.Codec[enums.RefreshMode]{
	Parse:  enums.ParseRefreshMode,
	Format: func(v enums.RefreshMode, _ int) string { return string(v) },
}

var viewRefreshModeCodec = gokml.Codec[enums.ViewRefreshMode]{
	Parse:  enums.ParseViewRefreshMode,
	Format: func(v enums.ViewRefreshMode, _ int) string { return string(v) },
}

func init() {
	gokml.RegisterType(LinkType)
	gokml.RegisterType(IconType)

	base := func(o gokml.Object) *LinkBase { return o.(hasLinkBase).linkBase() }

	get, set := gokml.ChildText(func(o gokml.Object) **string { return &base(o).Href }, gokml.StringCodec)
	gokml.Register(LinkBaseType, gokml.Item{
		Attr: "href", Node: "href", NSIDs: []string{"kml"},
		Get: get, Set: set,
	})
	getRM, setRM := gokml.ChildText(func(o gokml.Object) **enums.RefreshMode { return &base(o).RefreshMode }, refreshModeCodec)
	gokml.Register(LinkBaseType, gokml.Item{
		Attr: "refreshMode", Node: "refreshMode", NSIDs: []string{"kml"},
		Get: getRM, Set: setRM, Default: enums.OnChange,
	})
	getF, setF := gokml.ChildText(func(o gokml.Object) **float64 { return &base(o).RefreshInterval }, gokml.FloatCodec)
	gokml.Register(LinkBaseType, gokml.Item{
		Attr: "refreshInterval", Node: "refreshInterval", NSIDs: []string{"kml"},
		Get: getF, Set: setF, Default: 4.0,
	})
	getVM, setVM := gokml.ChildText(func(o gokml.Object) **enums.ViewRefreshMode { return &base(o).ViewRefreshMode }, viewRefreshModeCodec)
	gokml.Register(LinkBaseType, gokml.Item{
		Attr: "viewRefreshMode", Node: "viewRefreshMode", NSIDs: []string{"kml"},
		Get: getVM, Set: setVM, Default: enums.Never,
	})
	getF, setF = gokml.ChildText(func(o gokml.Object) **float64 { return &base(o).ViewRefreshTime }, gokml.FloatCodec)
	gokml.Register(LinkBaseType, gokml.Item{
		Attr: "viewRefreshTime", Node: "viewRefreshTime", NSIDs: []string{"kml"},
		Get: getF, Set: setF, Default: 4.0,
	})
	getF, setF = gokml.ChildText(func(o gokml.Object) **float64 { return &base(o).ViewBoundScale }, gokml.FloatCodec)
	gokml.Register(LinkBaseType, gokml.Item{
		Attr: "viewBoundScale", Node: "viewBoundScale", NSIDs: []string{"kml"},
		Get: getF, Set: setF, Default: 1.0,
	})
	get, set = gokml.ChildText(func(o gokml.Object) **string { return &base(o).ViewFormat }, gokml.StringCodec)
	gokml.Register(LinkBaseType, gokml.Item{
		Attr: "viewFormat", Node: "viewFormat", NSIDs: []string{"kml"},
		Get: get, Set: set,
	})
	get, set = gokml.ChildText(func(o gokml.Object) **string { return &base(o).HTTPQuery }, gokml.StringCodec)
	gokml.Register(LinkBaseType, gokml.Item{
		Attr: "httpQuery", Node: "httpQuery", NSIDs: []string{"kml"},
		Get: get, Set: set,
	})
}
