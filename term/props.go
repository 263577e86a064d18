package term

import (
	"fmt"
	"math"

	"github.com/germtb/gox"
	"github.com/germtb/grid"
)

// SlotSpec configures one row or column of a frame through the "columns"
// and "rows" props.
type SlotSpec struct {
	Index   int    `yaml:"index" toml:"index"`
	MinSize int    `yaml:"minsize" toml:"minsize"`
	Weight  int    `yaml:"weight" toml:"weight"`
	Pad     int    `yaml:"pad" toml:"pad"`
	Uniform string `yaml:"uniform" toml:"uniform"`
}

func (s SlotSpec) options() []grid.SlotOption {
	opts := []grid.SlotOption{grid.MinSize(s.MinSize), grid.Weight(s.Weight), grid.Pad(s.Pad)}
	if s.Uniform != "" {
		opts = append(opts, grid.Uniform(s.Uniform))
	}
	return opts
}

// toInt accepts the integer types props and decoders produce, and floats
// holding whole numbers.
func toInt(v any) (int, error) {
	switch i := v.(type) {
	case int:
		return i, nil
	case int64:
		return int(i), nil
	case int32:
		return int(i), nil
	case uint64:
		return int(i), nil
	case float64:
		if i != math.Trunc(i) {
			return 0, fmt.Errorf("expected an integer, got %v", i)
		}
		return int(i), nil
	}
	return 0, fmt.Errorf("expected an integer, got %T", v)
}

func toInts(v any) ([]int, error) {
	switch vs := v.(type) {
	case []int:
		return vs, nil
	case [2]int:
		return vs[:], nil
	case []any:
		out := make([]int, len(vs))
		for i, e := range vs {
			n, err := toInt(e)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	}
	n, err := toInt(v)
	if err != nil {
		return nil, err
	}
	return []int{n}, nil
}

func intProp(props gox.Props, key string) (int, bool, error) {
	v, ok := props[key]
	if !ok || v == nil {
		return 0, false, nil
	}
	n, err := toInt(v)
	if err != nil {
		return 0, false, fmt.Errorf("prop %q: %w", key, err)
	}
	return n, true, nil
}

func stringProp(props gox.Props, key string) (string, bool, error) {
	v, ok := props[key]
	if !ok || v == nil {
		return "", false, nil
	}
	s, isString := v.(string)
	if !isString {
		return "", false, fmt.Errorf("prop %q: expected a string, got %T", key, v)
	}
	return s, true, nil
}

// gridOptions turns the placement props of an element into grid options.
func gridOptions(props gox.Props) ([]grid.Option, error) {
	var opts []grid.Option
	ints := []struct {
		key string
		opt func(int) grid.Option
	}{
		{"row", grid.Row},
		{"column", grid.Column},
		{"rowspan", grid.RowSpan},
		{"columnspan", grid.ColumnSpan},
		{"ipadx", grid.IPadX},
		{"ipady", grid.IPadY},
	}
	for _, p := range ints {
		n, ok, err := intProp(props, p.key)
		if err != nil {
			return nil, err
		}
		if ok {
			opts = append(opts, p.opt(n))
		}
	}
	pads := []struct {
		key string
		opt func(...int) grid.Option
	}{
		{"padx", grid.PadX},
		{"pady", grid.PadY},
	}
	for _, p := range pads {
		v, ok := props[p.key]
		if !ok || v == nil {
			continue
		}
		values, err := toInts(v)
		if err != nil {
			return nil, fmt.Errorf("prop %q: %w", p.key, err)
		}
		opts = append(opts, p.opt(values...))
	}
	sticky, ok, err := stringProp(props, "sticky")
	if err != nil {
		return nil, err
	}
	if ok {
		opts = append(opts, grid.StickyString(sticky))
	}
	return opts, nil
}

func slotSpecs(props gox.Props, key string) ([]SlotSpec, error) {
	v, ok := props[key]
	if !ok || v == nil {
		return nil, nil
	}
	specs, isSpecs := v.([]SlotSpec)
	if !isSpecs {
		return nil, fmt.Errorf("prop %q: expected []term.SlotSpec, got %T", key, v)
	}
	return specs, nil
}

func styleProp(props gox.Props) (Style, error) {
	switch s := props["style"].(type) {
	case nil:
		return Style{}, nil
	case Style:
		return s, nil
	case map[string]any:
		return StyleFromMap(s), nil
	default:
		return Style{}, fmt.Errorf("prop \"style\": unexpected %T", s)
	}
}
