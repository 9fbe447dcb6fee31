package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/xraph/measure/internal/config"
	"github.com/xraph/measure/internal/eval"
	"github.com/xraph/measure/si"
)

func (a *App) unitsCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "units [dimension]...",
		Short:     "List supported units",
		ValidArgs: dimensionNames(),
		Args:      cobra.OnlyValidArgs,
		RunE:      a.runUnits,
	}
}

func dimensionNames() []string {
	dims := si.Dimensions()
	names := make([]string, len(dims))
	for i, d := range dims {
		names[i] = d.String()
	}
	return names
}

func (a *App) runUnits(_ *cobra.Command, args []string) error {
	dims := make([]si.Dimension, len(args))
	for i, arg := range args {
		dims[i] = si.Dimension(arg)
	}

	units, err := eval.Units(dims...)
	if err != nil {
		return err
	}
	if a.cfg.Output != config.OutputText {
		return a.encode(units)
	}

	maxLen := 0
	for _, u := range units {
		maxLen = max(maxLen, len(u.Dimension))
	}

	var last si.Dimension
	for _, u := range units {
		dim := ""
		if u.Dimension != last {
			dim = string(u.Dimension)
			last = u.Dimension
		}
		base := ""
		if u.Base {
			base = "  (base)"
		}
		ratio := strconv.FormatFloat(u.Ratio, 'g', -1, 64)
		if _, err := fmt.Fprintf(a.out, "%-*s  %-5s  %s%s\n", maxLen, dim, u.Abbreviation, ratio, base); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) opsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the operations calc accepts",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			sigs := eval.Signatures()
			if a.cfg.Output != config.OutputText {
				return a.encode(sigs)
			}
			for _, s := range sigs {
				if _, err := fmt.Fprintln(a.out, s); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
