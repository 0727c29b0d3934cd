package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/neo3d/internal/config"
	"github.com/Faultbox/neo3d/pkg/math"
)

// report is an ordered set of named results. Values are float32, []float32,
// matrix, string, int, bool, report or []report.
type report []field

type field struct {
	key   string
	value any
}

func (r report) add(key string, value any) report {
	return append(r, field{key, value})
}

func (r report) get(key string) any {
	for _, f := range r {
		if f.key == key {
			return f.value
		}
	}
	return nil
}

// matrix is a square column-major matrix. Text output shows it row by row,
// YAML output keeps the storage order.
type matrix struct {
	dim    int
	values []float32
}

func newMatrix(values []float32) matrix {
	dim := 2
	switch len(values) {
	case 9:
		dim = 3
	case 16:
		dim = 4
	}
	return matrix{dim: dim, values: values}
}

func emit(w io.Writer, cfg *config.Config, r report) error {
	if cfg.Output.Format == config.FormatYAML {
		return writeYAML(w, r, cfg.Output.Precision)
	}
	return writeText(w, r, cfg.Output.Precision)
}

// formatFloat never prints a negative zero.
func formatFloat(v float32, prec int) string {
	if math.IsInf(v, 0) {
		if v > 0 {
			return "+Inf"
		}
		return "-Inf"
	}
	s := strconv.FormatFloat(float64(v), 'f', prec, 32)
	if strings.Trim(s, "-0.") == "" {
		s = strings.TrimPrefix(s, "-")
	}
	return s
}

func writeText(w io.Writer, r report, prec int) error {
	var b strings.Builder
	textFields(&b, r, prec, "")
	_, err := io.WriteString(w, b.String())
	return err
}

func textFields(b *strings.Builder, r report, prec int, indent string) {
	for _, f := range r {
		switch v := f.value.(type) {
		case report:
			fmt.Fprintf(b, "%s%s:\n", indent, f.key)
			textFields(b, v, prec, indent+"  ")
		case []report:
			for i, item := range v {
				fmt.Fprintf(b, "%s%s[%d]:\n", indent, f.key, i)
				textFields(b, item, prec, indent+"  ")
			}
		case matrix:
			fmt.Fprintf(b, "%s%s:\n", indent, f.key)
			textMatrix(b, v, prec, indent+"  ")
		default:
			fmt.Fprintf(b, "%s%s: %s\n", indent, f.key, textValue(v, prec))
		}
	}
}

func textValue(v any, prec int) string {
	switch v := v.(type) {
	case float32:
		return formatFloat(v, prec)
	case []float32:
		parts := make([]string, len(v))
		for i, x := range v {
			parts[i] = formatFloat(x, prec)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return fmt.Sprint(v)
	}
}

func textMatrix(b *strings.Builder, m matrix, prec int, indent string) {
	cells := make([]string, len(m.values))
	width := 0
	for i, v := range m.values {
		cells[i] = formatFloat(v, prec)
		width = max(width, len(cells[i]))
	}
	for row := 0; row < m.dim; row++ {
		b.WriteString(indent)
		for col := 0; col < m.dim; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(b, "%*s", width, cells[col*m.dim+row])
		}
		b.WriteByte('\n')
	}
}

func writeYAML(w io.Writer, r report, prec int) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(r, prec)); err != nil {
		return err
	}
	return enc.Close()
}

func yamlNode(v any, prec int) *yaml.Node {
	switch v := v.(type) {
	case report:
		n := &yaml.Node{Kind: yaml.MappingNode}
		for _, f := range v {
			n.Content = append(n.Content, scalar("!!str", f.key), yamlNode(f.value, prec))
		}
		return n
	case []report:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, item := range v {
			n.Content = append(n.Content, yamlNode(item, prec))
		}
		return n
	case matrix:
		return yamlNode(v.values, prec)
	case []float32:
		n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, x := range v {
			n.Content = append(n.Content, yamlFloat(x, prec))
		}
		return n
	case float32:
		return yamlFloat(v, prec)
	case int:
		return scalar("!!int", strconv.Itoa(v))
	case bool:
		return scalar("!!bool", strconv.FormatBool(v))
	default:
		return scalar("!!str", fmt.Sprint(v))
	}
}

func yamlFloat(v float32, prec int) *yaml.Node {
	if math.IsInf(v, 0) {
		if v > 0 {
			return scalar("!!float", ".inf")
		}
		return scalar("!!float", "-.inf")
	}
	return scalar("!!float", formatFloat(v, prec))
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
