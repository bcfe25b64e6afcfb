// Package parse parses PVL label text into ir trees.
//
// # Usage
//
//	node, err := parse.Parse([]byte("A = 1\nEND"))
//	if err != nil {
//	    return err
//	}
//
//	// Parse under a specific dialect profile
//	node, err := parse.Parse(data, parse.ParseFlavor(format.PDS3Flavor))
//
// The default profile is Omni, which accepts every structural spelling
// case-insensitively. Stricter profiles (PVL, ODL, PDS3) restrict the
// accepted keyword set and require the terminal END statement.
//
// Group and object blocks are closed by pairing each close keyword
// with the innermost open block. This stack pairing is what makes
// PDS3 labels readable at all: PDS3 writes the same literal END for
// group closes, object closes, and the label terminal.
//
// # Related Packages
//
//   - github.com/planetarypy/pvl-format/go-pvl/ir - label tree
//   - github.com/planetarypy/pvl-format/go-pvl/encode - encode label trees
//   - github.com/planetarypy/pvl-format/go-pvl/token - tokenization
package parse
