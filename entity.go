package gokml

import (
	"fmt"
	"io"
	"strings"

	"github.com/reoring/gokml/tree"
)

// Object is implemented by every marshallable type.
type Object interface {
	TypeInfo() *TypeInfo
	Base() *BaseObject
}

// Checker is implemented by types with structural invariants. FromElement
// runs Check after population, so parsed objects undergo the same validation
// as hand-built ones.
type Checker interface {
	Check() error
}

// BaseObject carries the namespace binding and the id/targetId attributes
// shared by every KML object. Concrete types embed it.
type BaseObject struct {
	// NS is the Clark namespace the object is bound to. Empty means "use
	// the default namespace of the object's type"; it is narrowed to the
	// document's actual namespace during parsing.
	NS       string
	ID       string
	TargetID string

	// nsBound distinguishes an explicit empty binding (document without
	// namespaces) from the zero value.
	nsBound bool
}

// Base returns the embedded BaseObject.
func (b *BaseObject) Base() *BaseObject { return b }

// BindNamespace pins the object to a namespace, including the empty one for
// prefix-less documents. Assign NS directly for ordinary non-empty bindings.
func (b *BaseObject) BindNamespace(ns string) {
	b.NS = ns
	b.nsBound = true
}

// ns resolves the object's own namespace, falling back to the default
// namespace of its type.
func ns(obj Object) string {
	b := obj.Base()
	if b.nsBound || b.NS != "" {
		return b.NS
	}
	return DefaultNameSpaces[obj.TypeInfo().NSID]
}

// nsFor resolves a registry item namespace id against the object. The
// object's own namespace id follows the document binding; foreign ids keep
// their well-known namespaces.
func nsFor(obj Object, nsid string) string {
	if nsid == obj.TypeInfo().NSID {
		return ns(obj)
	}
	return DefaultNameSpaces[nsid]
}

// ToElement builds a namespaced node for obj, driven entirely by registry
// lookups: the tag is fixed by the concrete type, id/targetId are set when
// present, and every registered item's setter runs in declaration order.
func ToElement(obj Object, opts SerializeOptions) (tree.Node, error) {
	ti := obj.TypeInfo()
	if ti == nil || ti.Abstract {
		return nil, singleIssue(fmt.Sprintf("%T", obj), CodeRegistration, "abstract type cannot be serialized")
	}
	el := opts.provider().CreateElement(ns(obj) + ti.Name)
	b := obj.Base()
	if b.ID != "" {
		el.SetAttr("id", b.ID)
	}
	if b.TargetID != "" {
		el.SetAttr("targetId", b.TargetID)
	}
	var iss Issues
	for _, it := range opts.registry().Get(ti) {
		if it.Set == nil {
			iss = AppendIssues(iss, Issue{Path: itemPath(ti, it), Code: CodeRegistration, Message: "item has no setter"})
			continue
		}
		if err := it.Set(obj, el, it, opts); err != nil {
			iss = AppendIssues(iss, issuesFromErr(itemPath(ti, it), err)...)
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return el, nil
}

// FromElement populates obj from node, driven by registry lookups in
// declaration order. Unknown children are dropped silently unless an
// exhaustive list item owns them. In strict mode every structural error
// aborts the parse; lenient mode has already substituted defaults per field,
// so remaining issues are logged and swallowed.
func FromElement(obj Object, node tree.Node, opts ParseOptions) error {
	ti := obj.TypeInfo()
	tag := node.Tag()
	if localOf(tag) != ti.Name {
		return singleIssue(tag, CodeParse, fmt.Sprintf("expected element %s", ns(obj)+ti.Name))
	}
	b := obj.Base()
	// Bind the object to the document's actual namespace so child lookups
	// and re-serialization follow it, prefix-less documents included.
	b.BindNamespace(nsOf(tag))
	if v, ok := node.Attr("id"); ok {
		b.ID = v
	}
	if v, ok := node.Attr("targetId"); ok {
		b.TargetID = v
	}
	var iss Issues
	for _, it := range opts.registry().Get(ti) {
		if it.Get == nil {
			iss = AppendIssues(iss, Issue{Path: itemPath(ti, it), Code: CodeRegistration, Message: "item has no getter"})
			continue
		}
		if err := it.Get(obj, node, it, opts); err != nil {
			iss = AppendIssues(iss, issuesFromErr(itemPath(ti, it), err)...)
		}
	}
	if len(iss) > 0 {
		if opts.Strict {
			return iss
		}
		for _, is := range iss {
			opts.logger().Warn("lenient parse", "path", is.Path, "code", is.Code, "msg", is.Message)
		}
	}
	if c, ok := obj.(Checker); ok {
		if err := c.Check(); err != nil {
			return issuesFromErr(ti.Name, err)
		}
	}
	return nil
}

// Parse reads a complete document and returns its root object, resolved
// through the qualified-tag dispatch.
func Parse(r io.Reader, opts ParseOptions) (Object, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return fromBytes(data, opts)
}

// FromString parses a document from text.
func FromString(s string, opts ParseOptions) (Object, error) {
	return fromBytes([]byte(s), opts)
}

func fromBytes(data []byte, opts ParseOptions) (Object, error) {
	if opts.Strict && opts.Validator != nil {
		if err := opts.Validator.Validate(data); err != nil {
			return nil, err
		}
	}
	root, err := opts.provider().Parse(data)
	if err != nil {
		return nil, issuesFromErr("/", err)
	}
	ti, ok := opts.registry().TypeForTag(root.Tag())
	if !ok {
		// Documents without namespace declarations dispatch on the bare
		// local name against the type's default namespace.
		ti, ok = opts.registry().TypeForTag(DefaultNameSpaces["kml"] + localOf(root.Tag()))
	}
	if !ok {
		return nil, singleIssue(root.Tag(), CodeUnrecognizedElement, "no registered type for root element")
	}
	obj := ti.New()
	if err := FromElement(obj, root, opts); err != nil {
		return nil, err
	}
	return obj, nil
}

// ToString serializes obj, prettyprinted on request, with coordinate output
// at the configured numeric precision.
func ToString(obj Object, opts SerializeOptions) (string, error) {
	el, err := ToElement(obj, opts)
	if err != nil {
		return "", err
	}
	out, err := opts.provider().Serialize(el, opts.Prettyprint)
	if err != nil {
		return "", fmt.Errorf("serialize %s: %w", obj.TypeInfo().Name, err)
	}
	return string(out), nil
}

func itemPath(ti *TypeInfo, it Item) string {
	return ti.Name + "/" + it.Attr
}

func nsOf(tag string) string {
	if i := strings.IndexByte(tag, '}'); strings.HasPrefix(tag, "{") && i >= 0 {
		return tag[:i+1]
	}
	return ""
}

func localOf(tag string) string {
	if i := strings.IndexByte(tag, '}'); strings.HasPrefix(tag, "{") && i >= 0 {
		return tag[i+1:]
	}
	return tag
}
