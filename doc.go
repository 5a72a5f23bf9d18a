package gokml

// Package gokml reads, builds, and writes KML 2.2 documents with round-trip
// fidelity: a document parsed and re-serialized reproduces its semantic
// content exactly.
//
// The package provides:
//
// - A declarative field registry mapping object attributes to XML attributes
//   and (lists of) subelements per type (Registry/Item)
// - A namespace-aware base object whose parsing and serialization are driven
//   entirely by registry lookups (BaseObject, ToElement/FromElement)
// - Resolution-tagged dates and times that serialize only the digits their
//   precision implies (times.KmlDateTime)
// - Tag-to-type dispatch for heterogeneous child lists and ordered-candidate
//   parsing for polymorphic fields
// - A stable error model via Issues (path, code, message)
//
// Design policy:
// - Keep the engine in the root package; put the KML vocabulary under kml/,
//   geo/, times/, styles/, links/, atom/, data/ and views/.
// - The XML tree is an external collaborator behind tree.Provider; the
//   default driver is backed by beevik/etree.
// - Strictness is a per-call option, never a global mode switch.
//
// Typical usage:
//
//	doc, err := gokml.FromString(xmlText, gokml.ParseOptions{})
//	out, err := gokml.ToString(doc, gokml.SerializeOptions{Prettyprint: true})
//
// New element types become marshallable by embedding BaseObject, declaring a
// TypeInfo, and registering items for their fields; the engine itself never
// changes.
