// Package atom implements the Atom syndication elements KML embeds in
// features: atom:author and atom:link.
package atom

import (
	"errors"

	gokml "github.com/reoring/gokml"
)

// Link is an atom:link reference carried as attributes only.
type Link struct {
	gokml.BaseObject
	Href     *string
	Rel      *string
	Type     *string
	Hreflang *string
	Title    *string
	Length   *int
}

var LinkType = &gokml.TypeInfo{
	Name: "link", NSID: "atom",
	New: func() gokml.Object { return &Link{} },
}

func (l *Link) TypeInfo() *gokml.TypeInfo { return LinkType }

// Check requires href, the one mandatory atom:link attribute.
func (l *Link) Check() error {
	if l.Href == nil || *l.Href == "" {
		return errors.New("atom link: href is required")
	}
	return nil
}

// Author identifies the author of a feature.
type Author struct {
	gokml.BaseObject
	Name  *string
	URI   *string
	Email *string
}

var AuthorType = &gokml.TypeInfo{
	Name: "author", NSID: "atom",
	New: func() gokml.Object { return &Author{} },
}

func (a *Author) TypeInfo() *gokml.TypeInfo { return AuthorType }

// Check requires the author name.
func (a *Author) Check() error {
	if a.Name == nil || *a.Name == "" {
		return errors.New("atom author: name is required")
	}
	return nil
}

func init() {
	gokml.RegisterType(LinkType)
	gokml.RegisterType(AuthorType)

	get, set := gokml.Attr(func(o gokml.Object) **string { return &o.(*Link).Href }, gokml.StringCodec)
	gokml.Register(LinkType, gokml.Item{
		Attr: "href", Node: "href", NSIDs: []string{"atom"},
		Get: get, Set: set, Required: true,
	})
	get, set = gokml.Attr(func(o gokml.Object) **string { return &o.(*Link).Rel }, gokml.StringCodec)
	gokml.Register(LinkType, gokml.Item{
		Attr: "rel", Node: "rel", NSIDs: []string{"atom"},
		Get: get, Set: set,
	})
	get, set = gokml.Attr(func(o gokml.Object) **string { return &o.(*Link).Type }, gokml.StringCodec)
	gokml.Register(LinkType, gokml.Item{
		Attr: "type", Node: "type", NSIDs: []string{"atom"},
		Get: get, Set: set,
	})
	get, set = gokml.Attr(func(o gokml.Object) **string { return &o.(*Link).Hreflang }, gokml.StringCodec)
	gokml.Register(LinkType, gokml.Item{
		Attr: "hreflang", Node: "hreflang", NSIDs: []string{"atom"},
		Get: get, Set: set,
	})
	get, set = gokml.Attr(func(o gokml.Object) **string { return &o.(*Link).Title }, gokml.StringCodec)
	gokml.Register(LinkType, gokml.Item{
		Attr: "title", Node: "title", NSIDs: []string{"atom"},
		Get: get, Set: set,
	})
	getL, setL := gokml.Attr(func(o gokml.Object) **int { return &o.(*Link).Length }, gokml.IntCodec)
	gokml.Register(LinkType, gokml.Item{
		Attr: "length", Node: "length", NSIDs: []string{"atom"},
		Get: getL, Set: setL,
	})

	get, set = gokml.ChildText(func(o gokml.Object) **string { return &o.(*Author).Name }, gokml.StringCodec)
	gokml.Register(AuthorType, gokml.Item{
		Attr: "name", Node: "name", NSIDs: []string{"atom"},
		Get: get, Set: set, Required: true,
	})
	get, set = gokml.ChildText(func(o gokml.Object) **string { return &o.(*Author).URI }, gokml.StringCodec)
	gokml.Register(AuthorType, gokml.Item{
		Attr: "uri", Node: "uri", NSIDs: []string{"atom"},
		Get: get, Set: set,
	})
	get, set = gokml.ChildText(func(o gokml.Object) **string { return &o.(*Author).Email }, gokml.StringCodec)
	gokml.Register(AuthorType, gokml.Item{
		Attr: "email", Node: "email", NSIDs: []string{"atom"},
		Get: get, Set: set,
	})
}
