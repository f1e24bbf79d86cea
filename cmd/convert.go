package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Surfer12/microarch-lab-conversions/internal/baseconv"
	"github.com/Surfer12/microarch-lab-conversions/internal/complexity"
)

var convertCmd = &cobra.Command{
	Use:   "convert VALUE SOURCE_BASE TARGET_BASE",
	Short: "Convert a value between bases 2-36",
	Example: `  convlab convert 255 10 16
  convlab convert FF 16 2
  convlab convert 10.5 10 2`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceBase, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("source base must be an integer: %q", args[1])
		}
		targetBase, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("target base must be an integer: %q", args[2])
		}

		conv, err := baseconv.Convert(args[0], sourceBase, targetBase)
		if err != nil {
			return err
		}

		fmt.Printf("%s (base %d) = %s (base %d)\n", args[0], sourceBase, conv.Representation, targetBase)
		fmt.Printf("decimal intermediate: %g\n", conv.Decimal)
		fmt.Printf("complexity: %.2f\n", complexity.Score(sourceBase, targetBase, conv.Decimal))
		return nil
	},
}
