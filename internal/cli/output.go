package cli

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/xraph/measure/internal/config"
	"github.com/xraph/measure/internal/eval"
	"github.com/xraph/measure/si"
)

// record is the structured form of one result.
type record struct {
	Value     float64      `json:"value"     yaml:"value"`
	Unit      string       `json:"unit"      yaml:"unit"`
	Dimension si.Dimension `json:"dimension" yaml:"dimension"`
	Display   string       `json:"display"   yaml:"display"`
}

func (a *App) record(q eval.Quantity) record {
	return record{
		Value:     q.Magnitude(),
		Unit:      eval.Abbreviation(q),
		Dimension: q.Dimension(),
		Display:   q.Text(a.cfg.Precision),
	}
}

// preferred converts q to the unit configured for its dimension, if any.
func (a *App) preferred(q eval.Quantity) (eval.Quantity, error) {
	abbr, ok := a.cfg.PreferredUnit(q.Dimension())
	if !ok {
		return q, nil
	}
	out, err := eval.Convert(q, abbr)
	if err != nil {
		return nil, fmt.Errorf("preferred unit for %s: %w", q.Dimension(), err)
	}
	return out, nil
}

// printQuantity writes q in the configured output format.
func (a *App) printQuantity(q eval.Quantity) error {
	if a.cfg.Output == config.OutputText {
		_, err := fmt.Fprintln(a.out, q.Text(a.cfg.Precision))
		return err
	}
	return a.encode(a.record(q))
}

// encode writes v as JSON or YAML.
func (a *App) encode(v any) error {
	switch a.cfg.Output {
	case config.OutputJSON:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %q", a.cfg.Output)
}
