package gokml

import "github.com/reoring/gokml/tree"

// TypeInfo describes one marshallable type: its fixed element name, the
// namespace id it belongs to, its declared ancestor for registry inheritance,
// and a zero-value factory. The element tag is derived from the TypeInfo,
// never stored as instance state.
type TypeInfo struct {
	// Name is the local element name, e.g. "Placemark".
	Name string
	// NSID is the namespace id of the element, e.g. "kml" or "atom".
	NSID string
	// Parent is the declared ancestor whose registry items precede this
	// type's own; nil at the root of a chain.
	Parent *TypeInfo
	// Abstract types share registry items with subtypes but never appear
	// as elements themselves.
	Abstract bool
	// New returns a zero value ready for FromElement; nil for abstract types.
	New func() Object
}

// Getter moves one value from an XML node into a field of obj. Absence is
// not an error: the getter applies the item's default instead of writing an
// incorrect zero value.
type Getter func(obj Object, node tree.Node, it Item, opts ParseOptions) error

// Setter moves one field of obj onto an XML node.
type Setter func(obj Object, node tree.Node, it Item, opts SerializeOptions) error

// Item is a single declarative mapping between an object attribute and an
// XML attribute or (list of) subelement(s).
type Item struct {
	// Attr is the owner attribute name, used in issue paths.
	Attr string
	// Node is the XML node or attribute name.
	Node string
	// NSIDs are the namespace ids the node may appear under, in trial order.
	NSIDs []string
	// Types are the accepted concrete types for object and list fields, in
	// trial order.
	Types []*TypeInfo
	// Get and Set are the field strategy pair.
	Get Getter
	Set Setter
	// Default is substituted when the node is absent, or when lenient
	// parsing swallows a structural mismatch.
	Default any
	// Required fields log a warning when missing; parsing continues.
	Required bool
	// Exhaustive marks a list field that owns every child of its element:
	// a child that resolves to no candidate type is an unrecognized
	// element (strict mode) or is skipped (lenient mode).
	Exhaustive bool
}

// Registry is the process-wide table mapping a type to its ordered field
// items, plus the qualified-tag dispatch used for heterogeneous children.
//
// Populate it before first use; concurrent Register calls are not
// synchronized. Read-only use from multiple goroutines is safe.
type Registry struct {
	items map[*TypeInfo][]Item
	tags  map[string]*TypeInfo
}

// NewRegistry returns an empty registry. Tests use isolated registries via
// ParseOptions.Registry instead of resetting the process-wide one.
func NewRegistry() *Registry {
	return &Registry{
		items: map[*TypeInfo][]Item{},
		tags:  map[string]*TypeInfo{},
	}
}

// Register appends an item to the type's list. It never fails and never
// deduplicates: a second item for the same attribute adds an alternative
// mapping. Registration order fixes serialization order.
func (r *Registry) Register(ti *TypeInfo, it Item) {
	r.items[ti] = append(r.items[ti], it)
}

// RegisterType makes a concrete type resolvable by its qualified tag.
func (r *Registry) RegisterType(ti *TypeInfo) {
	if ti.Abstract || ti.New == nil {
		return
	}
	r.tags[DefaultNameSpaces[ti.NSID]+ti.Name] = ti
}

// RegisterTag binds an explicit qualified tag to a type, for vocabularies
// whose elements appear under more than one namespace.
func (r *Registry) RegisterTag(tag string, ti *TypeInfo) {
	r.tags[tag] = ti
}

// Get returns ancestor items (base first, walking the declared Parent
// chain) followed by the type's own items, in declaration order. Unknown
// types yield an empty list.
func (r *Registry) Get(ti *TypeInfo) []Item {
	var chain []*TypeInfo
	for t := ti; t != nil; t = t.Parent {
		chain = append(chain, t)
	}
	var out []Item
	for i := len(chain) - 1; i >= 0; i-- {
		out = append(out, r.items[chain[i]]...)
	}
	return out
}

// TypeForTag resolves a qualified tag to its registered type.
func (r *Registry) TypeForTag(tag string) (*TypeInfo, bool) {
	ti, ok := r.tags[tag]
	return ti, ok
}

// defaultRegistry is the process-wide registry, pre-populated by the
// vocabulary packages' init functions.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry. Extend it with custom
// element types before spawning goroutines that parse or serialize.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register adds an item to the process-wide registry.
func Register(ti *TypeInfo, it Item) { defaultRegistry.Register(ti, it) }

// RegisterType adds a type to the process-wide tag dispatch.
func RegisterType(ti *TypeInfo) { defaultRegistry.RegisterType(ti) }
