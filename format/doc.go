// Package format names the PVL dialects this module reads and writes.
//
// A Dialect is the encoder-facing view: the structural token table and
// end-line style used when writing a label. A Flavor is the
// validation-facing view: one of the five named profiles (PDS3, ODL,
// PVL, ISIS, Omni) pairing a parsing strictness with an encoding
// dialect.
//
// # Related Packages
//
//   - github.com/planetarypy/pvl-format/go-pvl/parse - Parse label text
//   - github.com/planetarypy/pvl-format/go-pvl/encode - Encode label trees
package format
