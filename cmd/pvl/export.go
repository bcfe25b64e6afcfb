package main

import (
	"encoding/json"
	"fmt"

	"github.com/planetarypy/pvl-format/go-pvl/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		cfg.Export.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		label, err := loadArg(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		var d []byte
		if cfg.YAML {
			d, err = yaml.Marshal(toGo(label))
		} else {
			d, err = json.MarshalIndent(toGo(label), "", "  ")
		}
		if err != nil {
			return fmt.Errorf("error exporting %s: %w", arg, err)
		}
		if _, err := cc.Out.Write(append(d, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// toGo lowers a label tree to plain Go values for json and yaml
// marshalling. Duplicate keys collapse to the last occurrence, and
// set elements keep their tree order.
func toGo(y *ir.Node) any {
	switch y.Type {
	case ir.NullType:
		return nil
	case ir.BooleanType:
		return y.Bool
	case ir.IntegerType:
		if y.Int64 == nil {
			return nil
		}
		return *y.Int64
	case ir.RealType:
		if y.Float64 == nil {
			return nil
		}
		return *y.Float64
	case ir.TextType:
		return y.String
	case ir.UnitsType:
		m := map[string]any{"units": y.String}
		if len(y.Values) == 1 {
			m["value"] = toGo(y.Values[0])
		}
		return m
	case ir.SequenceType, ir.SetType:
		elems := make([]any, len(y.Values))
		for i, v := range y.Values {
			elems[i] = toGo(v)
		}
		return elems
	case ir.ObjectType, ir.GroupType:
		m := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			if i < len(y.Values) {
				m[f.String] = toGo(y.Values[i])
			}
		}
		return m
	default:
		return nil
	}
}
