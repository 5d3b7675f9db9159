package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-matpool/mat"
	"github.com/ajroetker/go-matpool/num"
)

func newMultiplyCmd(root *rootOptions) *cobra.Command {
	var (
		a, b       string
		elemType   string
		sequential bool
	)
	cmd := &cobra.Command{
		Use:     "multiply",
		Aliases: []string{"mul"},
		Short:   "Multiply two matrices given as {1 2, 3 4}",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				out string
				err error
			)
			switch elemType {
			case "int64":
				out, err = multiplyText[int64](root, a, b, sequential)
			case "int32":
				out, err = multiplyText[int32](root, a, b, sequential)
			case "uint64":
				out, err = multiplyText[uint64](root, a, b, sequential)
			case "float32":
				out, err = multiplyText[float32](root, a, b, sequential)
			case "float64":
				out, err = multiplyText[float64](root, a, b, sequential)
			default:
				return fmt.Errorf("unsupported --type %q", elemType)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&a, "a", "", "left operand, e.g. \"{1 2 3, 4 5 6}\"")
	flags.StringVar(&b, "b", "", "right operand, e.g. \"{7 8, 9 10, 11 12}\"")
	flags.StringVarP(&elemType, "type", "t", "int64", "element type: int32, int64, uint64, float32, float64")
	flags.BoolVar(&sequential, "sequential", false, "use the single-goroutine triple loop")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")
	return cmd
}

func multiplyText[T num.Number](root *rootOptions, as, bs string, sequential bool) (string, error) {
	a, err := mat.Parse[T](as)
	if err != nil {
		return "", fmt.Errorf("--a: %w", err)
	}
	b, err := mat.Parse[T](bs)
	if err != nil {
		return "", fmt.Errorf("--b: %w", err)
	}

	var c *mat.Matrix[T]
	if sequential {
		c, err = mat.MatMul(a, b)
	} else {
		c, err = mat.Multiply(a, b, mat.WithNumWorkers(root.workers), mat.WithLogger(root.logger))
	}
	if err != nil {
		return "", err
	}
	return c.String(), nil
}
