package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/charmbracelet/huh"
)

// checkinForm pairs a huh form with the typed values it collects, so the
// answers can be turned back into a schema-shaped field map.
type checkinForm struct {
	form    *huh.Form
	schema  domain.Schema
	strings map[string]*string
	bools   map[string]*bool
	multis  map[string]*[]string
}

// buildCheckinForm builds an interactive form from a domain schema, one
// prompt per field in schema order.
func buildCheckinForm(schema domain.Schema) *checkinForm {
	cf := &checkinForm{
		schema:  schema,
		strings: make(map[string]*string),
		bools:   make(map[string]*bool),
		multis:  make(map[string]*[]string),
	}

	fields := make([]huh.Field, 0, len(schema.Fields))
	for _, f := range schema.Fields {
		switch f.Kind {
		case domain.FieldBool:
			v := new(bool)
			cf.bools[f.Key] = v
			fields = append(fields, huh.NewConfirm().
				Title(f.Title).
				Affirmative("Yes").
				Negative("No").
				Value(v))

		case domain.FieldEnum:
			v := new(string)
			cf.strings[f.Key] = v
			options := make([]huh.Option[string], 0, len(f.Options)+1)
			if !f.Required {
				options = append(options, huh.NewOption("(skip)", ""))
			}
			for _, o := range f.Options {
				options = append(options, huh.NewOption(o, o))
			}
			fields = append(fields, huh.NewSelect[string]().
				Title(f.Title).
				Options(options...).
				Value(v))

		case domain.FieldMultiEnum:
			v := new([]string)
			cf.multis[f.Key] = v
			options := make([]huh.Option[string], 0, len(f.Options))
			for _, o := range f.Options {
				options = append(options, huh.NewOption(o, o))
			}
			fields = append(fields, huh.NewMultiSelect[string]().
				Title(f.Title).
				Options(options...).
				Value(v))

		case domain.FieldText:
			v := new(string)
			cf.strings[f.Key] = v
			fields = append(fields, huh.NewText().
				Title(f.Title).
				Lines(3).
				Value(v))

		default: // int and float
			v := new(string)
			cf.strings[f.Key] = v
			fields = append(fields, huh.NewInput().
				Title(f.Title).
				Validate(validateNumber(f)).
				Value(v))
		}
	}

	cf.form = huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(vitalogHuhTheme()).
		WithShowHelp(false)
	return cf
}

// Run shows the form and returns the collected answers as a field map.
// Optional fields left blank are omitted, not zero-filled.
func (cf *checkinForm) Run() (map[string]any, error) {
	if err := cf.form.Run(); err != nil {
		return nil, err
	}

	out := make(map[string]any)
	for _, f := range cf.schema.Fields {
		switch f.Kind {
		case domain.FieldBool:
			out[f.Key] = *cf.bools[f.Key]
		case domain.FieldMultiEnum:
			if v := *cf.multis[f.Key]; len(v) > 0 {
				out[f.Key] = v
			}
		case domain.FieldInt:
			s := strings.TrimSpace(*cf.strings[f.Key])
			if s == "" {
				continue
			}
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", f.Key, err)
			}
			out[f.Key] = n
		case domain.FieldFloat:
			s := strings.TrimSpace(*cf.strings[f.Key])
			if s == "" {
				continue
			}
			n, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", f.Key, err)
			}
			out[f.Key] = n
		default: // enum and text
			if s := strings.TrimSpace(*cf.strings[f.Key]); s != "" {
				out[f.Key] = s
			}
		}
	}
	return out, nil
}

// validateNumber returns a huh validator for int and float fields. Blank
// is accepted for optional fields; int fields also enforce the schema's
// min/max bounds.
func validateNumber(f domain.Field) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			if f.Required {
				return fmt.Errorf("required")
			}
			return nil
		}
		if f.Kind == domain.FieldFloat {
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				return fmt.Errorf("enter a number")
			}
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if f.Max > f.Min && (n < f.Min || n > f.Max) {
			return fmt.Errorf("enter a value between %d and %d", f.Min, f.Max)
		}
		return nil
	}
}
