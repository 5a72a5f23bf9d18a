// Package data implements KML extended data: untyped Data name/value
// pairs, typed SchemaData referencing a Schema, and the Schema and
// SimpleField declarations themselves.
package data

import (
	"fmt"

	gokml "github.com/reoring/gokml"
	"github.com/reoring/gokml/enums"
)

// SimpleField declares one typed field of a Schema.
type SimpleField struct {
	gokml.BaseObject
	Name        *string
	Type        *enums.DataType
	DisplayName *string
}

var SimpleFieldType = &gokml.TypeInfo{
	Name: "SimpleField", NSID: "kml",
	New: func() gokml.Object { return &SimpleField{} },
}

func (f *SimpleField) TypeInfo() *gokml.TypeInfo { return SimpleFieldType }

// Schema declares a custom typed schema referenced by SchemaData.
type Schema struct {
	gokml.BaseObject
	Name   *string
	Fields []*SimpleField
}

var SchemaType = &gokml.TypeInfo{
	Name: "Schema", NSID: "kml",
	New: func() gokml.Object { return &Schema{} },
}

func (s *Schema) TypeInfo() *gokml.TypeInfo { return SchemaType }

// Check requires the id a SchemaData needs to reference the schema.
func (s *Schema) Check() error {
	if s.ID == "" {
		return fmt.Errorf("schema: id is required")
	}
	return nil
}

// Data is one untyped name/value pair.
type Data struct {
	gokml.BaseObject
	Name        *string
	DisplayName *string
	Value       *string
}

var DataType = &gokml.TypeInfo{
	Name: "Data", NSID: "kml",
	New: func() gokml.Object { return &Data{} },
}

func (d *Data) TypeInfo() *gokml.TypeInfo { return DataType }

// SimpleData is one typed value inside a SchemaData, named after a
// SimpleField and carrying its value as character data.
type SimpleData struct {
	gokml.BaseObject
	Name  *string
	Value string
}

var SimpleDataType = &gokml.TypeInfo{
	Name: "SimpleData", NSID: "kml",
	New: func() gokml.Object { return &SimpleData{} },
}

func (d *SimpleData) TypeInfo() *gokml.TypeInfo { return SimpleDataType }

// SchemaData carries typed values conforming to a referenced Schema.
type SchemaData struct {
	gokml.BaseObject
	SchemaURL *string
	Data      []*SimpleData
}

var SchemaDataType = &gokml.TypeInfo{
	Name: "SchemaData", NSID: "kml",
	New: func() gokml.Object { return &SchemaData{} },
}

func (d *SchemaData) TypeInfo() *gokml.TypeInfo { return SchemaDataType }

// Check requires the schemaUrl reference.
func (d *SchemaData) Check() error {
	if d.SchemaURL == nil || *d.SchemaURL == "" {
		return fmt.Errorf("schemadata: schemaUrl is required")
	}
	return nil
}

// ExtendedData is the container features carry custom data in. Elements
// preserve document order and may mix Data and SchemaData.
type ExtendedData struct {
	gokml.BaseObject
	Elements []gokml.Object
}

var ExtendedDataType = &gokml.TypeInfo{
	Name: "ExtendedData", NSID: "kml",
	New: func() gokml.Object { return &ExtendedData{} },
}

func (e *ExtendedData) TypeInfo() *gokml.TypeInfo { return ExtendedDataType }

var dataTypeCodec = gokml.Codec[enums.DataType]{
	Parse:  enums.ParseDataType,
	Format: func(v enums.DataType, _ int) string { return string(v) },
}

func init() {
	gokml.RegisterType(SimpleFieldType)
	gokml.RegisterType(SchemaType)
	gokml.RegisterType(DataType)
	gokml.RegisterType(SimpleDataType)
	gokml.RegisterType(SchemaDataType)
	gokml.RegisterType(ExtendedDataType)

	get, set := gokml.Attr(func(o gokml.Object) **string { return &o.(*SimpleField).Name }, gokml.StringCodec)
	gokml.Register(SimpleFieldType, gokml.Item{
		Attr: "name", Node: "name", NSIDs: []string{"kml"},
		Get: get, Set: set, Required: true,
	})
	getT, setT := gokml.Attr(func(o gokml.Object) **enums.DataType { return &o.(*SimpleField).Type }, dataTypeCodec)
	gokml.Register(SimpleFieldType, gokml.Item{
		Attr: "type", Node: "type", NSIDs: []string{"kml"},
		Get: getT, Set: setT, Required: true,
	})
	get, set = gokml.ChildText(func(o gokml.Object) **string { return &o.(*SimpleField).DisplayName }, gokml.StringCodec)
	gokml.Register(SimpleFieldType, gokml.Item{
		Attr: "displayName", Node: "displayName", NSIDs: []string{"kml"},
		Get: get, Set: set,
	})

	get, set = gokml.Attr(func(o gokml.Object) **string { return &o.(*Schema).Name }, gokml.StringCodec)
	gokml.Register(SchemaType, gokml.Item{
		Attr: "name", Node: "name", NSIDs: []string{"kml"},
		Get: get, Set: set,
	})
	getF, setF := gokml.ChildList(
		func(o, v gokml.Object) {
			s := o.(*Schema)
			s.Fields = append(s.Fields, v.(*SimpleField))
		},
		func(o gokml.Object) []gokml.Object {
			s := o.(*Schema)
			out := make([]gokml.Object, 0, len(s.Fields))
			for _, f := range s.Fields {
				out = append(out, f)
			}
			return out
		},
	)
	gokml.Register(SchemaType, gokml.Item{
		Attr: "fields", Node: "SimpleField", NSIDs: []string{"kml"},
		Types: []*gokml.TypeInfo{SimpleFieldType},
		Get:   getF, Set: setF,
	})

	get, set = gokml.Attr(func(o gokml.Object) **string { return &o.(*Data).Name }, gokml.StringCodec)
	gokml.Register(DataType, gokml.Item{
		Attr: "name", Node: "name", NSIDs: []string{"kml"},
		Get: get, Set: set, Required: true,
	})
	get, set = gokml.ChildText(func(o gokml.Object) **string { return &o.(*Data).DisplayName }, gokml.StringCodec)
	gokml.Register(DataType, gokml.Item{
		Attr: "displayName", Node: "displayName", NSIDs: []string{"kml"},
		Get: get, Set: set,
	})
	get, set = gokml.ChildText(func(o gokml.Object) **string { return &o.(*Data).Value }, gokml.StringCodec)
	gokml.Register(DataType, gokml.Item{
		Attr: "value", Node: "value", NSIDs: []string{"kml"},
		Get: get, Set: set,
	})

	get, set = gokml.Attr(func(o gokml.Object) **string { return &o.(*SimpleData).Name }, gokml.StringCodec)
	gokml.Register(SimpleDataType, gokml.Item{
		Attr: "name", Node: "name", NSIDs: []string{"kml"},
		Get: get, Set: set, Required: true,
	})
	getV, setV := gokml.NodeText(func(o gokml.Object) *string { return &o.(*SimpleData).Value })
	gokml.Register(SimpleDataType, gokml.Item{
		Attr: "value", Node: "", NSIDs: []string{"kml"},
		Get: getV, Set: setV,
	})

	get, set = gokml.Attr(func(o gokml.Object) **string { return &o.(*SchemaData).SchemaURL }, gokml.StringCodec)
	gokml.Register(SchemaDataType, gokml.Item{
		Attr: "schemaUrl", Node: "schemaUrl", NSIDs: []string{"kml"},
		Get: get, Set: set, Required: true,
	})
	getD, setD := gokml.ChildList(
		func(o, v gokml.Object) {
			d := o.(*SchemaData)
			d.Data = append(d.Data, v.(*SimpleData))
		},
		func(o gokml.Object) []gokml.Object {
			d := o.(*SchemaData)
			out := make([]gokml.Object, 0, len(d.Data))
			for _, s := range d.Data {
				out = append(out, s)
			}
			return out
		},
	)
	gokml.Register(SchemaDataType, gokml.Item{
		Attr: "data", Node: "SimpleData", NSIDs: []string{"kml"},
		Types: []*gokml.TypeInfo{SimpleDataType},
		Get:   getD, Set: setD,
	})

	getE, setE := gokml.ChildList(
		func(o, v gokml.Object) {
			e := o.(*ExtendedData)
			e.Elements = append(e.Elements, v)
		},
		func(o gokml.Object) []gokml.Object { return o.(*ExtendedData).Elements },
	)
	gokml.Register(ExtendedDataType, gokml.Item{
		Attr: "elements", Node: "", NSIDs: []string{"kml"},
		Types: []*gokml.TypeInfo{DataType, SchemaDataType},
		Get:   getE, Set: setE,
	})
}
