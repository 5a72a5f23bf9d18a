package gokml

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/reoring/gokml/tree"
)

// Codec coerces between a field value and its XML text form. Format receives
// the configured numeric precision; non-numeric codecs ignore it.
type Codec[T any] struct {
	Parse  func(string) (T, error)
	Format func(v T, precision int) string
}

// StringCodec passes text through unchanged.
var StringCodec = Codec[string]{
	Parse:  func(s string) (string, error) { return s, nil },
	Format: func(v string, _ int) string { return v },
}

// FloatCodec emits the shortest exact decimal form. The precision option
// applies only to coordinate output, which has its own codec.
var FloatCodec = Codec[float64]{
	Parse:  func(s string) (float64, error) { return strconv.ParseFloat(s, 64) },
	Format: func(v float64, _ int) string { return strconv.FormatFloat(v, 'f', -1, 64) },
}

// IntCodec coerces whole numbers.
var IntCodec = Codec[int]{
	Parse:  strconv.Atoi,
	Format: func(v int, _ int) string { return strconv.Itoa(v) },
}

// Attr returns the strategy pair for a literal XML attribute.
func Attr[T any](field func(Object) **T, c Codec[T]) (Getter, Setter) {
	get := func(obj Object, node tree.Node, it Item, opts ParseOptions) error {
		raw, ok := node.Attr(it.Node)
		if !ok {
			warnRequired(obj, it, opts)
			applyDefault(obj, field, it)
			return nil
		}
		v, err := c.Parse(raw)
		if err != nil {
			return mismatch(obj, field, it, opts, fmt.Errorf("attribute %s: %w", it.Node, err))
		}
		*field(obj) = &v
		return nil
	}
	set := func(obj Object, node tree.Node, it Item, opts SerializeOptions) error {
		v := serialized(obj, field, it, opts)
		if v == nil {
			return nil
		}
		node.SetAttr(it.Node, c.Format(*v, opts.precision()))
		return nil
	}
	return get, set
}

// ChildText returns the strategy pair for a uniquely named scalar
// subelement. An absent or empty child leaves the field absent (or applies
// the registered default); it is never coerced to a zero value.
func ChildText[T any](field func(Object) **T, c Codec[T]) (Getter, Setter) {
	get := func(obj Object, node tree.Node, it Item, opts ParseOptions) error {
		child := findChild(obj, node, it)
		if child == nil {
			warnRequired(obj, it, opts)
			applyDefault(obj, field, it)
			return nil
		}
		text := strings.TrimSpace(child.Text())
		if text == "" {
			applyDefault(obj, field, it)
			return nil
		}
		v, err := c.Parse(text)
		if err != nil {
			return mismatch(obj, field, it, opts, fmt.Errorf("element %s: %w", it.Node, err))
		}
		*field(obj) = &v
		return nil
	}
	set := func(obj Object, node tree.Node, it Item, opts SerializeOptions) error {
		v := serialized(obj, field, it, opts)
		if v == nil {
			return nil
		}
		subElement(node, obj, it, opts).SetText(c.Format(*v, opts.precision()))
		return nil
	}
	return get, set
}

// ChildBool returns the strategy pair for a boolean subelement. Reading
// accepts "0"/"1" and "true"/"false"; writing always emits "1"/"0".
func ChildBool(field func(Object) **bool) (Getter, Setter) {
	return ChildText(field, boolCodec)
}

var boolCodec = Codec[bool]{
	Parse: func(s string) (bool, error) {
		switch strings.ToLower(s) {
		case "1", "true":
			return true, nil
		case "0", "false":
			return false, nil
		}
		return false, fmt.Errorf("invalid boolean %q", s)
	},
	Format: func(v bool, _ int) string {
		if v {
			return "1"
		}
		return "0"
	},
}

// ChildTextNS is ChildText for scalar subelements whose owning namespace
// depends on the value: nsid maps each value to the namespace id its element
// serializes under (the gx altitude modes). Reading is identical to
// ChildText.
func ChildTextNS[T any](field func(Object) **T, c Codec[T], nsid func(T) string) (Getter, Setter) {
	get, _ := ChildText(field, c)
	set := func(obj Object, node tree.Node, it Item, opts SerializeOptions) error {
		v := serialized(obj, field, it, opts)
		if v == nil {
			return nil
		}
		el := opts.provider().CreateElement(nsFor(obj, nsid(*v)) + it.Node)
		node.Append(el)
		el.SetText(c.Format(*v, opts.precision()))
		return nil
	}
	return get, set
}

// Child returns the strategy pair for a nested object subelement. Reading
// tries each of the item's accepted types in declared order and keeps the
// first that parses without a structural error, so one field can hold any of
// several related types.
func Child(assign func(obj, value Object), value func(Object) Object) (Getter, Setter) {
	get := func(obj Object, node tree.Node, it Item, opts ParseOptions) error {
		var firstErr error
		for _, ti := range it.Types {
			child := findTypedChild(obj, node, it, ti)
			if child == nil {
				continue
			}
			inst := ti.New()
			if err := FromElement(inst, child, opts); err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			assign(obj, inst)
			return nil
		}
		if firstErr != nil {
			return mismatchObject(obj, it, opts, firstErr)
		}
		warnRequired(obj, it, opts)
		return nil
	}
	set := func(obj Object, node tree.Node, it Item, opts SerializeOptions) error {
		v := value(obj)
		if v == nil {
			return nil
		}
		el, err := ToElement(v, opts)
		if err != nil {
			return err
		}
		node.Append(el)
		return nil
	}
	return get, set
}

// ChildList returns the strategy pair for a heterogeneous list of
// subelements. Reading collects all matching children in document order;
// writing appends each list element in sequence, preserving order both ways.
// On an exhaustive item, a child resolving to no candidate type raises
// unrecognized_element in strict mode and is skipped in lenient mode.
func ChildList(appendFn func(obj, value Object), values func(Object) []Object) (Getter, Setter) {
	get := func(obj Object, node tree.Node, it Item, opts ParseOptions) error {
		candidates := make(map[string]*TypeInfo, len(it.Types))
		for _, ti := range it.Types {
			candidates[nsFor(obj, ti.NSID)+ti.Name] = ti
			if b := obj.Base(); b.nsBound && b.NS == "" {
				candidates[ti.Name] = ti
			}
		}
		var iss Issues
		for _, child := range node.Children() {
			ti, ok := candidates[child.Tag()]
			if !ok {
				if it.Exhaustive && !isAttrChild(obj, child, it, opts) {
					if opts.Strict {
						iss = AppendIssues(iss, Issue{Path: child.Tag(), Code: CodeUnrecognizedElement, Message: "no registered type for element"})
					} else {
						opts.logger().Warn("skipping unrecognized element", "tag", child.Tag())
					}
				}
				continue
			}
			inst := ti.New()
			if err := FromElement(inst, child, opts); err != nil {
				if opts.Strict {
					iss = AppendIssues(iss, issuesFromErr(child.Tag(), err)...)
				} else {
					opts.logger().Warn("skipping malformed element", "tag", child.Tag(), "err", err)
				}
				continue
			}
			appendFn(obj, inst)
		}
		if len(iss) > 0 {
			return iss
		}
		return nil
	}
	set := func(obj Object, node tree.Node, it Item, opts SerializeOptions) error {
		for _, v := range values(obj) {
			el, err := ToElement(v, opts)
			if err != nil {
				return err
			}
			node.Append(el)
		}
		return nil
	}
	return get, set
}

// NodeText returns the strategy pair for an element's own character data
// (elements like Snippet or SimpleData that carry text directly).
func NodeText(field func(Object) *string) (Getter, Setter) {
	get := func(obj Object, node tree.Node, it Item, opts ParseOptions) error {
		if text := strings.TrimSpace(node.Text()); text != "" {
			*field(obj) = text
		}
		return nil
	}
	set := func(obj Object, node tree.Node, it Item, opts SerializeOptions) error {
		if v := *field(obj); v != "" {
			node.SetText(v)
		}
		return nil
	}
	return get, set
}

// ---- helpers shared by the strategies ----

// findChild locates the item's subelement, trying each owning namespace id
// in declared order.
func findChild(obj Object, node tree.Node, it Item) tree.Node {
	for _, nsid := range it.NSIDs {
		bound := nsFor(obj, nsid)
		if c := node.Find(bound + it.Node); c != nil {
			return c
		}
		// An object bound to an extension namespace still carries children
		// from the canonical one: gx:TimeSpan holds plain kml begin/end.
		if canon := DefaultNameSpaces[nsid]; canon != bound {
			if c := node.Find(canon + it.Node); c != nil {
				return c
			}
		}
	}
	// Prefix-less documents bind the empty namespace.
	if b := obj.Base(); b.nsBound && b.NS == "" {
		if c := node.Find(it.Node); c != nil {
			return c
		}
	}
	return nil
}

// findTypedChild locates a child element named after a candidate type, under
// the type's own namespace or any other namespace id the item declares.
func findTypedChild(obj Object, node tree.Node, it Item, ti *TypeInfo) tree.Node {
	if c := node.Find(nsFor(obj, ti.NSID) + ti.Name); c != nil {
		return c
	}
	for _, nsid := range it.NSIDs {
		if nsid == ti.NSID {
			continue
		}
		if c := node.Find(nsFor(obj, nsid) + ti.Name); c != nil {
			return c
		}
	}
	if b := obj.Base(); b.nsBound && b.NS == "" {
		if c := node.Find(ti.Name); c != nil {
			return c
		}
	}
	return nil
}

// isAttrChild reports whether a child element is claimed by another
// registered item of the owner type, so exhaustive lists do not flag it.
func isAttrChild(obj Object, child tree.Node, it Item, opts ParseOptions) bool {
	local := localOf(child.Tag())
	for _, other := range opts.registry().Get(obj.TypeInfo()) {
		if other.Node == local && other.Attr != it.Attr {
			return true
		}
		for _, ti := range other.Types {
			if other.Attr != it.Attr && ti.Name == local {
				return true
			}
		}
	}
	return false
}

func subElement(parent tree.Node, obj Object, it Item, opts SerializeOptions) tree.Node {
	nsid := "kml"
	if len(it.NSIDs) > 0 {
		nsid = it.NSIDs[0]
	}
	el := opts.provider().CreateElement(nsFor(obj, nsid) + it.Node)
	parent.Append(el)
	return el
}

func applyDefault[T any](obj Object, field func(Object) **T, it Item) {
	if it.Default == nil {
		return
	}
	if dv, ok := it.Default.(T); ok {
		*field(obj) = &dv
	}
}

// serialized resolves the value a setter should emit. Under Normal, values
// equal to the registered default are omitted, so a parse that filled
// defaults re-serializes to the same absent fields it read; Verbose emits
// defaults even for unset fields.
func serialized[T any](obj Object, field func(Object) **T, it Item, opts SerializeOptions) *T {
	if v := *field(obj); v != nil {
		if opts.Verbosity != Verbose && it.Default != nil {
			if dv, ok := it.Default.(T); ok && reflect.DeepEqual(dv, *v) {
				return nil
			}
		}
		return v
	}
	if opts.Verbosity == Verbose && it.Default != nil {
		if dv, ok := it.Default.(T); ok {
			return &dv
		}
	}
	return nil
}

// mismatch handles a structural coercion failure: strict mode surfaces it,
// lenient mode logs, substitutes the registered default, and continues.
// Coercion errors that are already Issues keep their code (for example
// dimensionality_error from coordinate parsing).
func mismatch[T any](obj Object, field func(Object) **T, it Item, opts ParseOptions, err error) error {
	if opts.Strict {
		if iss, ok := AsIssues(err); ok {
			return iss
		}
		return singleIssue(itemPath(obj.TypeInfo(), it), CodeParse, err.Error())
	}
	opts.logger().Warn("lenient parse", "path", itemPath(obj.TypeInfo(), it), "err", err)
	applyDefault(obj, field, it)
	return nil
}

func mismatchObject(obj Object, it Item, opts ParseOptions, err error) error {
	if opts.Strict {
		return err
	}
	opts.logger().Warn("lenient parse", "path", itemPath(obj.TypeInfo(), it), "err", err)
	return nil
}

func warnRequired(obj Object, it Item, opts ParseOptions) {
	if it.Required {
		opts.logger().Warn("required element missing", "path", itemPath(obj.TypeInfo(), it))
	}
}
