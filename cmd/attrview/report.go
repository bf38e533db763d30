package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bgrewell/attr-kit/pkg/attributes"
	"github.com/bgrewell/attr-kit/pkg/consts"
	"github.com/bgrewell/attr-kit/pkg/helpers"
	"gopkg.in/yaml.v3"
)

type report struct {
	Path       string   `json:"path,omitempty" yaml:"path,omitempty"`
	Kind       string   `json:"kind" yaml:"kind"`
	Attributes string   `json:"attributes" yaml:"attributes"`
	Raw        string   `json:"raw" yaml:"raw"`
	Flags      []string `json:"flags" yaml:"flags"`

	word uint32
}

func newReport(path string, s attributes.AttributeSet) report {
	r := report{
		Path:       path,
		Kind:       s.Kind().String(),
		Attributes: s.String(),
		Raw:        fmt.Sprintf("0x%08X", s.Encode()),
		Flags:      []string{},
		word:       s.Encode(),
	}
	for _, a := range s.Attributes() {
		r.Flags = append(r.Flags, a.String())
	}
	return r
}

func (r report) text() string {
	rows := [][2]string{
		{"path", r.Path},
		{"kind", r.Kind},
		{"attributes", r.Attributes},
		{"raw", r.Raw},
		{"binary", fmt.Sprintf("%0*b", consts.ATTR_WORD_BITS, r.word)},
		{"flags", strings.Join(r.Flags, ", ")},
	}

	var sb strings.Builder
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		sb.WriteString(helpers.PadRight(row[0]+":", 12))
		sb.WriteString(row[1])
		sb.WriteByte('\n')
	}
	return sb.String()
}

func render(r report, format string) (string, error) {
	switch format {
	case "text":
		return r.text(), nil
	case "json":
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(b) + "\n", nil
	case "yaml":
		b, err := yaml.Marshal(r)
		if err != nil {
			return "", fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}
