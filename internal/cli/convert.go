package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xraph/measure/internal/eval"
)

func (a *App) convertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <quantity> <unit>",
		Short: "Express a quantity in another unit",
		Example: `  measure convert 3km m
  measure convert "90 km/h" m/s
  measure convert -- -40min h`,
		Args: cobra.ExactArgs(2),
		RunE: a.runConvert,
	}
}

func (a *App) runConvert(_ *cobra.Command, args []string) error {
	q, err := eval.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parsing quantity: %w", err)
	}

	out, err := eval.Convert(q, args[1])
	if err != nil {
		return err
	}

	a.logger.Debug("converted",
		"input", q.String(),
		"unit", args[1],
		"base", q.BaseMagnitude(),
		"result", out.String(),
	)
	return a.printQuantity(out)
}
