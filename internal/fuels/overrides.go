package fuels

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Override adjusts one row of the fuel table, keyed by fuel code. Zero
// fields leave the row untouched; Hidden removes it from the resolved
// table.
type Override struct {
	Code   string `yaml:"code"`
	Name   string `yaml:"name"`
	Color  []int  `yaml:"color"`
	Hidden bool   `yaml:"hidden"`
}

// overrideFile is the on-disk shape of a fuel override document.
type overrideFile struct {
	Fuels []Override `yaml:"fuels"`
}

// LoadOverrides reads and decodes the YAML override file at path.
func LoadOverrides(path string) ([]Override, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fuel override file: %w", err)
	}
	var doc overrideFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse fuel override file %s: %w", path, err)
	}
	return doc.Fuels, nil
}

// Apply returns a copy of table with every override applied. Overrides may
// rename, recolor, or hide existing rows only; an override naming a code
// absent from the table is an error.
func Apply(table []Fuel, overrides []Override) ([]Fuel, error) {
	out := make([]Fuel, len(table))
	copy(out, table)

	byCode := make(map[string]int, len(out))
	for i, f := range out {
		byCode[f.Code] = i
	}

	hidden := make(map[string]bool)
	for _, o := range overrides {
		i, ok := byCode[o.Code]
		if !ok {
			return nil, fmt.Errorf("fuel override names unknown code %q", o.Code)
		}
		if o.Name != "" {
			out[i].Name = o.Name
		}
		if o.Color != nil {
			c, err := colorFromComponents(o.Color)
			if err != nil {
				return nil, fmt.Errorf("fuel override for %q: %w", o.Code, err)
			}
			out[i].Color = c
		}
		if o.Hidden {
			hidden[o.Code] = true
		}
	}

	if len(hidden) == 0 {
		return out, nil
	}
	visible := make([]Fuel, 0, len(out))
	for _, f := range out {
		if !hidden[f.Code] {
			visible = append(visible, f)
		}
	}
	return visible, nil
}

func colorFromComponents(c []int) (RGB, error) {
	if len(c) != 3 {
		return RGB{}, fmt.Errorf("color must have exactly three components, got %d", len(c))
	}
	for _, v := range c {
		if v < 0 || v > 255 {
			return RGB{}, fmt.Errorf("color component %d is outside 0-255", v)
		}
	}
	return RGB{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2])}, nil
}

// Resolve returns the job-ready fuel table: the packaged defaults with the
// override file at path applied. An empty path returns the defaults as-is.
func Resolve(path string) ([]Fuel, error) {
	table := Default()
	if path == "" {
		return table, nil
	}
	overrides, err := LoadOverrides(path)
	if err != nil {
		return nil, err
	}
	return Apply(table, overrides)
}
