// Package encode writes ir label trees as PVL text.
//
// # Usage
//
//	label := ir.NewObject().
//	    Add("MISSION", ir.FromText("CASSINI")).
//	    Add("EXPOSURE", ir.FromFloat(1.5).WithUnits("s"))
//	err := encode.Encode(label, w)
//
//	// Encode as a PDS3 label
//	err := encode.Encode(label, w, encode.EncodeDialect(format.PDS3Dialect()))
//
// Encode writes the terminal statement (END, or End for the cube
// dialect) with no trailing line break; callers wanting one append it
// themselves.
//
// Encoding is one-shot: the first unsupported value or quoting
// rejection aborts the call. Bytes already written are not retracted;
// callers needing atomicity encode into a buffer and adopt it on
// success.
//
// # Related Packages
//
//   - github.com/planetarypy/pvl-format/go-pvl/ir - label tree
//   - github.com/planetarypy/pvl-format/go-pvl/parse - parse label text
//   - github.com/planetarypy/pvl-format/go-pvl/format - dialects
package encode
