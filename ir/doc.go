// Package ir provides the tree representation for PVL labels.
//
// # Overview
//
// A label is a tree of Node values. Mappings (objects and groups) hold
// parallel Fields/Values slices so that key order is preserved and
// duplicate keys are representable; insertion order equals output
// order. Scalars carry their payload in the Node itself.
//
// The node kinds form a closed set (see Type). Group and Object differ
// only in their Type tag; the tag, not the contents, selects the
// structural tokens the encoder writes.
//
// Trees are pure: they contain no cycles by construction, and encoding
// never mutates them.
//
// # Related Packages
//
//   - github.com/planetarypy/pvl-format/go-pvl/parse - Parse label text
//   - github.com/planetarypy/pvl-format/go-pvl/encode - Encode label trees
package ir
