package encode

import (
	"bytes"

	"github.com/planetarypy/pvl-format/go-pvl/ir"
)

func MustString(y *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(y, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
