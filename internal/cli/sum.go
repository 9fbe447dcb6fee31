package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xraph/measure/internal/eval"
)

func (a *App) sumCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "sum <quantity>...",
		Short:   "Add quantities of one dimension",
		Example: `  measure sum 1km 250m 80cm`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    a.runSum,
	}
}

func (a *App) runSum(_ *cobra.Command, args []string) error {
	values := make([]eval.Quantity, 0, len(args))
	for i, arg := range args {
		q, err := eval.Parse(arg)
		if err != nil {
			return fmt.Errorf("parsing quantity %d: %w", i+1, err)
		}
		values = append(values, q)
	}

	total, err := eval.Sum(values...)
	if err != nil {
		return err
	}

	a.logger.Debug("summed", "count", len(values), "result", total.String())

	total, err = a.preferred(total)
	if err != nil {
		return err
	}
	return a.printQuantity(total)
}
