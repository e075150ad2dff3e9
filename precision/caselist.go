package precision

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/glprec/builtins"
	"github.com/gogpu/glprec/expr"
	"github.com/gogpu/glprec/floatfmt"
)

// CaseList is a YAML-described suite. Each entry names a built-in and
// the types and precisions to instantiate it at; Expand builds the
// cross product.
type CaseList struct {
	Name  string     `yaml:"name"`
	Cases []CaseSpec `yaml:"cases" validate:"required,min=1,dive"`
}

// CaseSpec is one entry of a case list. Types use their shading
// language spellings (float, vec3, mat2). Samples of zero takes
// DefaultSamples.
type CaseSpec struct {
	Builtin    string   `yaml:"builtin" validate:"required"`
	Types      []string `yaml:"types" validate:"required,min=1,dive,required"`
	Precisions []string `yaml:"precisions" validate:"required,min=1,dive,oneof=lowp mediump highp"`
	Samples    int      `yaml:"samples" validate:"omitempty,min=1"`
	Seed       int64    `yaml:"seed"`
}

var listValidate = validator.New()

// LoadCaseList reads and validates the case list at path.
func LoadCaseList(path string) (*CaseList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read case list: %w", err)
	}
	list, err := ParseCaseList(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// ParseCaseList parses and validates YAML case list data. Validation
// here is structural; whether a built-in exists at a type is checked
// by Expand, which can name the offending entry.
func ParseCaseList(data []byte) (*CaseList, error) {
	var list CaseList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse case list: %w", err)
	}
	if err := listValidate.Struct(&list); err != nil {
		return nil, fmt.Errorf("invalid case list: %w", err)
	}
	return &list, nil
}

// Expand resolves the list into concrete cases, checking every
// builtin/type pair against the registry.
func (l *CaseList) Expand() ([]*Case, error) {
	var cases []*Case
	for _, spec := range l.Cases {
		for _, tn := range spec.Types {
			t, err := expr.ParseType(tn)
			if err != nil {
				return nil, fmt.Errorf("case %s: %w", spec.Builtin, err)
			}
			if _, ok := builtins.Lookup(spec.Builtin, t); !ok {
				return nil, fmt.Errorf("no built-in %q at %s", spec.Builtin, t)
			}
			for _, pn := range spec.Precisions {
				p, err := floatfmt.ParsePrecision(pn)
				if err != nil {
					return nil, fmt.Errorf("case %s: %w", spec.Builtin, err)
				}
				cases = append(cases, &Case{
					Builtin:   spec.Builtin,
					Type:      t,
					Precision: p,
					Samples:   spec.Samples,
					Seed:      spec.Seed,
				})
			}
		}
	}
	return cases, nil
}
