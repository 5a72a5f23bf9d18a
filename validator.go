package gokml

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/jacoelho/xsd"
)

// SchemaValidator validates documents against an XML Schema (for KML, the
// OGC ogckml22.xsd). It is an optional collaborator: parsing consults it
// only in strict mode.
type SchemaValidator struct {
	schema *xsd.Engine
}

// NewSchemaValidator loads and compiles a schema from the given filesystem
// and location.
func NewSchemaValidator(fsys fs.FS, location string) (*SchemaValidator, error) {
	open := func(name string) func(context.Context) (io.ReadCloser, error) {
		return func(context.Context) (io.ReadCloser, error) { return fsys.Open(name) }
	}
	resolver := xsd.ResolverFunc(func(_ context.Context, base, loc string) (xsd.SchemaSource, error) {
		name := path.Join(path.Dir(base), loc)
		return xsd.Open(name, open(name)), nil
	})
	src := xsd.Open(location, open(location)).WithResolver(resolver)
	schema, err := xsd.Compile(context.Background(), src)
	if err != nil {
		return nil, fmt.Errorf("load schema %s: %w", location, err)
	}
	return &SchemaValidator{schema: schema}, nil
}

// Validate checks a serialized document; failures are reported as
// validation_error issues carrying the schema's description.
func (v *SchemaValidator) Validate(data []byte) error {
	if v == nil || v.schema == nil {
		return nil
	}
	if err := v.schema.Validate(context.Background(), bytes.NewReader(data)); err != nil {
		return Issues{Issue{Path: "/", Code: CodeValidation, Message: err.Error(), Cause: err}}
	}
	return nil
}
