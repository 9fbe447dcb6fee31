package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xraph/measure/internal/eval"
)

func (a *App) calcCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <quantity> <op> <quantity>",
		Short: "Add, subtract, multiply or divide two quantities",
		Long: `Evaluate one binary operation. + and - need operands of the same
dimension. * and / are defined for:

  length * length   = area
  length * area     = volume
  area * length     = volume
  area / length     = length
  volume / length   = area
  volume / area     = length
  length / time     = velocity
  length / velocity = time
  velocity * time   = length

The result is in the base unit of its dimension unless preferred_units
names another unit for it.`,
		Example: `  measure calc 1km + 500m
  measure calc 2m x 3m
  measure calc 100km / 1h`,
		Args: cobra.ExactArgs(3),
		RunE: a.runCalc,
	}
}

func (a *App) runCalc(_ *cobra.Command, args []string) error {
	lhs, err := eval.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parsing left operand: %w", err)
	}
	op, err := eval.ParseOp(args[1])
	if err != nil {
		return err
	}
	rhs, err := eval.Parse(args[2])
	if err != nil {
		return fmt.Errorf("parsing right operand: %w", err)
	}

	out, err := eval.Apply(lhs, op, rhs)
	if err != nil {
		return err
	}

	a.logger.Debug("evaluated",
		"lhs", lhs.String(),
		"op", string(op),
		"rhs", rhs.String(),
		"result", out.String(),
	)

	out, err = a.preferred(out)
	if err != nil {
		return err
	}
	return a.printQuantity(out)
}
