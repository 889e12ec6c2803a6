package ini

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Range is an optimisation sweep for one expert input.
type Range struct {
	Value any
	Start any
	Step  any
	Stop  any
}

// Input is one entry of the [TesterInputs] section. Exactly one of Value or Range is
// meaningful: Range when the input is optimised.
type Input struct {
	Value any
	Range *Range
	Name  string
}

// Line renders the input as Name=value or Name=value||start||step||stop||Y.
func (in Input) Line() string {
	if in.Range != nil {
		cur := in.Range.Value
		if cur == nil {
			cur = in.Range.Start
		}
		return fmt.Sprintf("%s=%s||%s||%s||%s||Y", in.Name,
			FormatValue(cur), FormatValue(in.Range.Start), FormatValue(in.Range.Step), FormatValue(in.Range.Stop))
	}
	return in.Name + "=" + FormatValue(in.Value)
}

// Inputs keeps the declaration order of a JSON or YAML object of expert inputs.
type Inputs []Input

// UnmarshalYAML decodes {name: value} mappings. Each value is a scalar, an object with
// start/step/stop (and optional value), or an object with just value.
func (ins *Inputs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.New("inputs must be an object of {param: value}")
	}
	out := make(Inputs, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		in, err := decodeInput(name, node.Content[i+1])
		if err != nil {
			return err
		}
		out = append(out, in)
	}
	*ins = out
	return nil
}

func decodeInput(name string, node *yaml.Node) (Input, error) {
	if node.Kind != yaml.MappingNode {
		var v any
		if err := node.Decode(&v); err != nil {
			return Input{}, fmt.Errorf("input %s: %w", name, err)
		}
		return Input{Name: name, Value: v}, nil
	}

	var def map[string]any
	if err := node.Decode(&def); err != nil {
		return Input{}, fmt.Errorf("input %s: %w", name, err)
	}
	_, hasStart := def["start"]
	_, hasStep := def["step"]
	_, hasStop := def["stop"]
	if hasStart && hasStep && hasStop {
		return Input{Name: name, Range: &Range{
			Value: def["value"],
			Start: def["start"],
			Step:  def["step"],
			Stop:  def["stop"],
		}}, nil
	}
	return Input{Name: name, Value: def["value"]}, nil
}

// Set replaces the value of name or appends it when absent.
func (ins Inputs) Set(name string, value any) Inputs {
	for i := range ins {
		if ins[i].Name == name {
			ins[i] = Input{Name: name, Value: value}
			return ins
		}
	}
	return append(ins, Input{Name: name, Value: value})
}

// Clone returns a copy safe to modify independently.
func (ins Inputs) Clone() Inputs {
	out := make(Inputs, len(ins))
	copy(out, ins)
	return out
}

func (ins Inputs) String() string {
	sec := newSection("TesterInputs")
	for _, in := range ins {
		sec.lines = append(sec.lines, in.Line())
	}
	return sec.String()
}

// ParseInputs decodes a JSON or YAML document holding an inputs object.
func ParseInputs(data []byte) (Inputs, error) {
	var ins Inputs
	if err := yaml.Unmarshal(data, &ins); err != nil {
		return nil, fmt.Errorf("failed to parse inputs: %w", err)
	}
	return ins, nil
}

// FormatValue renders a decoded scalar the way the tester expects: booleans as
// true/false, floats always with a decimal point.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		return strconv.FormatBool(val)
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		s := strconv.FormatFloat(val, 'f', -1, 64)
		if !strings.ContainsAny(s, ".eEnN") {
			s += ".0"
		}
		return s
	default:
		return fmt.Sprint(val)
	}
}
