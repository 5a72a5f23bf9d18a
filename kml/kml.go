// Package kml implements the KML document structure: the kml root
// element, the containers Document and Folder, Placemark, and NetworkLink,
// together with the feature fields they all share.
package kml

import (
	"fmt"

	gokml "github.com/reoring/gokml"
	"github.com/reoring/gokml/atom"
	"github.com/reoring/gokml/data"
	"github.com/reoring/gokml/geo"
	"github.com/reoring/gokml/links"
	"github.com/reoring/gokml/styles"
	"github.com/reoring/gokml/times"
	"github.com/reoring/gokml/views"
)

// Snippet is a short feature description with a maximum line count.
type Snippet struct {
	gokml.BaseObject
	Text     string
	MaxLines *int
}

var SnippetType = &gokml.TypeInfo{
	Name: "Snippet", NSID: "kml",
	New: func() gokml.Object { return &Snippet{} },
}

func (s *Snippet) TypeInfo() *gokml.TypeInfo { return SnippetType }

// FeatureBase carries the fields shared by every feature: the containers,
// Placemark, and NetworkLink.
type FeatureBase struct {
	gokml.BaseObject
	Name         *string
	Visibility   *bool
	Isopen       *bool
	AtomLink     *atom.Link
	AtomAuthor   *atom.Author
	Address      *string
	PhoneNumber  *string
	Snippet      *Snippet
	Description  *string
	View         gokml.Object
	Times        gokml.Object
	StyleURL     *string
	Styles       []gokml.Object
	ExtendedData *data.ExtendedData
}

type hasFeatureBase interface{ featureBase() *FeatureBase }

func (f *FeatureBase) featureBase() *FeatureBase { return f }

// FeatureBaseType is the abstract ancestor holding the shared items.
var FeatureBaseType = &gokml.TypeInfo{Name: "_Feature", NSID: "kml", Abstract: true}

// Placemark is a feature with an associated geometry.
type Placemark struct {
	FeatureBase
	Geometry geo.Geometry
}

var PlacemarkType = &gokml.TypeInfo{
	Name: "Placemark", NSID: "kml", Parent: FeatureBaseType,
	New: func() gokml.Object { return &Placemark{} },
}

func (p *Placemark) TypeInfo() *gokml.TypeInfo { return PlacemarkType }

// NetworkLink is a feature whose content is fetched from a linked
// resource.
type NetworkLink struct {
	FeatureBase
	RefreshVisibility *bool
	FlyToView         *bool
	Link              *links.Link
}

var NetworkLinkType = &gokml.TypeInfo{
	Name: "NetworkLink", NSID: "kml", Parent: FeatureBaseType,
	New: func() gokml.Object { return &NetworkLink{} },
}

func (n *NetworkLink) TypeInfo() *gokml.TypeInfo { return NetworkLinkType }

// Check requires the link target.
func (n *NetworkLink) Check() error {
	if n.Link == nil {
		return fmt.Errorf("networklink: link is required")
	}
	return nil
}

// Folder is a container grouping features hierarchically.
type Folder struct {
	FeatureBase
	Features []gokml.Object
}

var FolderType = &gokml.TypeInfo{
	Name: "Folder", NSID: "kml", Parent: FeatureBaseType,
	New: func() gokml.Object { return &Folder{} },
}

func (f *Folder) TypeInfo() *gokml.TypeInfo { return FolderType }

// Document is a container for features and shared definitions: schemas
// and the styles features reference by URL.
type Document struct {
	FeatureBase
	Schemata []*data.Schema
	Features []gokml.Object
}

var DocumentType = &gokml.TypeInfo{
	Name: "Document", NSID: "kml", Parent: FeatureBaseType,
	New: func() gokml.Object { return &Document{} },
}

func (d *Document) TypeInfo() *gokml.TypeInfo { return DocumentType }

// FeatureTypes lists the concrete feature types in dispatch order.
var FeatureTypes = []*gokml.TypeInfo{
	DocumentType, FolderType, PlacemarkType, NetworkLinkType,
}

// KML is the root element of a KML document.
type KML struct {
	gokml.BaseObject
	Features []gokml.Object
}

var KMLType = &gokml.TypeInfo{
	Name: "kml", NSID: "kml",
	New: func() gokml.Object { return &KML{} },
}

func (k *KML) TypeInfo() *gokml.TypeInfo { return KMLType }

// New returns a root ready to serialize under the default KML namespace.
func New(features ...gokml.Object) *KML {
	k := &KML{Features: features}
	k.BindNamespace(gokml.KMLNS)
	return k
}

// Append adds features to the root in order.
func (k *KML) Append(features ...gokml.Object) {
	k.Features = append(k.Features, features...)
}

func featureList(owner *gokml.TypeInfo, field func(o gokml.Object) *[]gokml.Object) {
	get, set := gokml.ChildList(
		func(o, v gokml.Object) {
			fs := field(o)
			*fs = append(*fs, v)
		},
		func(o gokml.Object) []gokml.Object { return *field(o) },
	)
	gokml.Register(owner, gokml.Item{
		Attr: "features", Node: "", NSIDs: []string{"kml"},
		Types:      FeatureTypes,
		Get:        get, Set: set,
		Exhaustive: true,
	})
}

func init() {
	gokml.RegisterType(SnippetType)
	for _, ti := range FeatureTypes {
		gokml.RegisterType(ti)
	}
	gokml.RegisterType(KMLType)

	base := func(o gokml.Object) *FeatureBase { return o.(hasFeatureBase).featureBase() }

	// Shared feature fields, in KML schema order.
	get, set := gokml.ChildText(func(o gokml.Object) **string { return &base(o).Name }, gokml.StringCodec)
	gokml.Register(FeatureBaseType, gokml.Item{
		Attr: "name", Node: "name", NSIDs: []string{"kml"},
		Get: get, Set: set,
	})
	getB, setB := gokml.ChildBool(func(o gokml.Object) **bool { return &base(o).Visibility })
	gokml.Register(FeatureBaseType, gokml.Item{
		Attr: "visibility", Node: "visibility", NSIDs: []string{"kml"},
		Get: getB, Set: setB, Default: true,
	})
	getB, setB = gokml.ChildBool(func(o gokml.Object) **bool { return &base(o).Isopen })
	gokml.Register(FeatureBaseType, gokml.Item{
		Attr: "isopen", Node: "open", NSIDs: []string{"kml"},
		Get: getB, Set: setB, Default: false,
	})
	getAL, setAL := gokml.Child(
		func(o, v gokml.Object) { base(o).AtomLink = v.(*atom.Link) },
		func(o gokml.Object) gokml.Object {
			if l := base(o).AtomLink; l != nil {
				return l
			}
			return nil
		},
	)
	gokml.Register(FeatureBaseType, gokml.Item{
		Attr: "atomLink", Node: "link", NSIDs: []string{"atom"},
		Types: []*gokml.TypeInfo{atom.LinkType},
		Get:   getAL, Set: setAL,
	})
	getAA, setAA := gokml.Child(
		func(o, v gokml.Object) { base(o).AtomAuthor = v.(*atom.Author) },
		func(o gokml.Object) gokml.Object {
			if a := base(o).AtomAuthor; a != nil {
				return a
			}
			return nil
		},
	)
	gokml.Register(FeatureBaseType, gokml.Item{
		Attr: "atomAuthor", Node: "author", NSIDs: []string{"atom"},
		Types: []*gokml.TypeInfo{atom.AuthorType},
		Get:   getAA, Set: setAA,
	})
	get, set = gokml.ChildText(func(o gokml.Object) **string { return &base(o).Address }, gokml.StringCodec)
	gokml.Register(FeatureBaseType, gokml.Item{
		Attr: "address", Node: "address", NSIDs: []string{"kml"},
		Get: get, Set: set,
	})
	get, set = gokml.ChildText(func(o gokml.Object) **string { return &base(o).PhoneNumber }, gokml.StringCodec)
	gokml.Register(FeatureBaseType, gokml.Item{
		Attr: "phoneNumber", Node: "phoneNumber", NSIDs: []string{"kml"},
		Get: get, Set: set,
	})
	getSn, setSn := gokml.Child(
		func(o, v gokml.Object) { base(o).Snippet = v.(*Snippet) },
		func(o gokml.Object) gokml.Object {
			if s := base(o).Snippet; s != nil {
				return s
			}
			return nil
		},
	)
	gokml.Register(FeatureBaseType, gokml.Item{
		Attr: "snippet", Node: "Snippet", NSIDs: []string{"kml"},
		Types: []*gokml.TypeInfo{SnippetType},
		Get:   getSn, Set: setSn,
	})
	get, set = gokml.ChildText(func(o gokml.Object) **string { return &base(o).Description }, gokml.StringCodec)
	gokml.Register(FeatureBaseType, gokml.Item{
		Attr: "description", Node: "description", NSIDs: []string{"kml"},
		Get: get, Set: set,
	})
	getV, setV := gokml.Child(
		func(o, v gokml.Object) { base(o).View = v },
		func(o gokml.Object) gokml.Object { return base(o).View },
	)
	gokml.Register(FeatureBaseType, gokml.Item{
		Attr: "view", Node: "", NSIDs: []string{"kml"},
		Types: views.ViewTypes,
		Get:   getV, Set: setV,
	})
	getT, setT := gokml.Child(
		func(o, v gokml.Object) { base(o).Times = v },
		func(o gokml.Object) gokml.Object { return base(o).Times },
	)
	gokml.Register(FeatureBaseType, gokml.Item{
		Attr: "times", Node: "", NSIDs: []string{"kml", "gx"},
		Types: []*gokml.TypeInfo{times.TimeSpanType, times.TimeStampType},
		Get:   getT, Set: setT,
	})
	get, set = gokml.ChildText(func(o gokml.Object) **string { return &base(o).StyleURL }, gokml.StringCodec)
	gokml.Register(FeatureBaseType, gokml.Item{
		Attr: "styleUrl", Node: "styleUrl", NSIDs: []string{"kml"},
		Get: get, Set: set,
	})
	getSt, setSt := gokml.ChildList(
		func(o, v gokml.Object) {
			fb := base(o)
			fb.Styles = append(fb.Styles, v)
		},
		func(o gokml.Object) []gokml.Object { return base(o).Styles },
	)
	gokml.Register(FeatureBaseType, gokml.Item{
		Attr: "styles", Node: "", NSIDs: []string{"kml"},
		Types: styles.SelectorTypes,
		Get:   getSt, Set: setSt,
	})
	getED, setED := gokml.Child(
		func(o, v gokml.Object) { base(o).ExtendedData = v.(*data.ExtendedData) },
		func(o gokml.Object) gokml.Object {
			if ed := base(o).ExtendedData; ed != nil {
				return ed
			}
			return nil
		},
	)
	gokml.Register(FeatureBaseType, gokml.Item{
		Attr: "extendedData", Node: "ExtendedData", NSIDs: []string{"kml"},
		Types: []*gokml.TypeInfo{data.ExtendedDataType},
		Get:   getED, Set: setED,
	})

	// Snippet carries its text as character data plus a maxLines attribute.
	getTx, setTx := gokml.NodeText(func(o gokml.Object) *string { return &o.(*Snippet).Text })
	gokml.Register(SnippetType, gokml.Item{
		Attr: "text", Node: "", NSIDs: []string{"kml"},
		Get: getTx, Set: setTx,
	})
	getML, setML := gokml.Attr(func(o gokml.Object) **int { return &o.(*Snippet).MaxLines }, gokml.IntCodec)
	gokml.Register(SnippetType, gokml.Item{
		Attr: "maxLines", Node: "maxLines", NSIDs: []string{"kml"},
		Get: getML, Set: setML, Default: 2,
	})

	// Placemark geometry, polymorphic over the geometry types.
	getG, setG := gokml.Child(
		func(o, v gokml.Object) { o.(*Placemark).Geometry = v.(geo.Geometry) },
		func(o gokml.Object) gokml.Object {
			if g := o.(*Placemark).Geometry; g != nil {
				return g
			}
			return nil
		},
	)
	gokml.Register(PlacemarkType, gokml.Item{
		Attr: "geometry", Node: "", NSIDs: []string{"kml"},
		Types: geo.GeometryTypes,
		Get:   getG, Set: setG,
	})

	// NetworkLink specifics.
	getB, setB = gokml.ChildBool(func(o gokml.Object) **bool { return &o.(*NetworkLink).RefreshVisibility })
	gokml.Register(NetworkLinkType, gokml.Item{
		Attr: "refreshVisibility", Node: "refreshVisibility", NSIDs: []string{"kml"},
		Get: getB, Set: setB, Default: false,
	})
	getB, setB = gokml.ChildBool(func(o gokml.Object) **bool { return &o.(*NetworkLink).FlyToView })
	gokml.Register(NetworkLinkType, gokml.Item{
		Attr: "flyToView", Node: "flyToView", NSIDs: []string{"kml"},
		Get: getB, Set: setB, Default: false,
	})
	getL, setL := gokml.Child(
		func(o, v gokml.Object) { o.(*NetworkLink).Link = v.(*links.Link) },
		func(o gokml.Object) gokml.Object {
			if l := o.(*NetworkLink).Link; l != nil {
				return l
			}
			return nil
		},
	)
	gokml.Register(NetworkLinkType, gokml.Item{
		Attr: "link", Node: "Link", NSIDs: []string{"kml"},
		Types: []*gokml.TypeInfo{links.LinkType},
		Get:   getL, Set: setL, Required: true,
	})

	// Document shared schemas, then its features.
	getSc, setSc := gokml.ChildList(
		func(o, v gokml.Object) {
			d := o.(*Document)
			d.Schemata = append(d.Schemata, v.(*data.Schema))
		},
		func(o gokml.Object) []gokml.Object {
			d := o.(*Document)
			out := make([]gokml.Object, 0, len(d.Schemata))
			for _, s := range d.Schemata {
				out = append(out, s)
			}
			return out
		},
	)
	gokml.Register(DocumentType, gokml.Item{
		Attr: "schemata", Node: "Schema", NSIDs: []string{"kml"},
		Types: []*gokml.TypeInfo{data.SchemaType},
		Get:   getSc, Set: setSc,
	})
	featureList(DocumentType, func(o gokml.Object) *[]gokml.Object { return &o.(*Document).Features })
	featureList(FolderType, func(o gokml.Object) *[]gokml.Object { return &o.(*Folder).Features })
	featureList(KMLType, func(o gokml.Object) *[]gokml.Object { return &o.(*KML).Features })
}
