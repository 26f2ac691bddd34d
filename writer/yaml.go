package writer

import (
	"github.com/goccy/go-yaml"

	"github.com/m-cat/over/errs"
	"github.com/m-cat/over/value"
)

// FormatYAML renders v as YAML for debugging (cmd/overfmt's --debug-yaml
// flag): a plain-old-data mirror of the value tree, not a lossless
// alternate encoding — Frac collapses to its decimal approximation and
// Tup/Arr both become YAML sequences, so this is one-way only.
func FormatYAML(v value.Value) (string, error) {
	out, err := yaml.Marshal(toPlain(v))
	if err != nil {
		return "", errs.ErrWrite.Wrap(err)
	}

	return string(out), nil
}

func toPlain(v value.Value) any {
	switch v.Kind() {
	case value.KNull:
		return nil
	case value.KBool:
		b, _ := v.AsBool()
		return b
	case value.KInt:
		i, _ := v.AsInt()
		return i.String()
	case value.KFrac:
		f, _ := v.AsFrac()
		approx, _ := f.Float64()
		return approx
	case value.KChar:
		c, _ := v.AsChar()
		return string(c)
	case value.KStr:
		s, _ := v.AsStr()
		return s
	case value.KArr:
		arr, _ := v.AsArr()
		out := make([]any, 0, arr.Len())
		for _, e := range arr.Iter() {
			out = append(out, toPlain(e))
		}
		return out
	case value.KTup:
		tup, _ := v.AsTup()
		out := make([]any, 0, tup.Len())
		for _, e := range tup.Iter() {
			out = append(out, toPlain(e))
		}
		return out
	case value.KObj:
		obj, _ := v.AsObj()
		out := make(map[string]any, obj.Len())
		for name, fv := range obj.Iter() {
			out[name] = toPlain(fv)
		}
		return out
	default:
		return nil
	}
}
