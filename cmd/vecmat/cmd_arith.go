// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vecmat/matrix"
)

// binaryOp is the shape shared by add, sub and mul.
type binaryOp func(a, b matrix.Matrix) (*matrix.Dense, error)

// binaryCmd builds a command that reads A and B, applies op, and writes OUT.
func binaryCmd(use, short string, op binaryOp) *cobra.Command {
	return &cobra.Command{
		Use:   use + " A B OUT",
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadMatrix(args[0])
			if err != nil {
				return err
			}
			b, err := loadMatrix(args[1])
			if err != nil {
				return err
			}
			res, err := op(a, b)
			if err != nil {
				return err
			}

			return saveMatrix(args[2], res)
		},
	}
}

var (
	addCmd = binaryCmd("add", "Element-wise sum A + B", matrix.Add)
	subCmd = binaryCmd("sub", "Element-wise difference A - B", matrix.Sub)
	mulCmd = binaryCmd("mul", "Product A × B scaled by the X component of B", matrix.Mul)
)

// scaleCmd multiplies every element by a scalar
var scaleCmd = &cobra.Command{
	Use:   "scale A S OUT",
	Short: "Multiply every element of A by the scalar S",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("scalar: %w", err)
		}
		a, err := loadMatrix(args[0])
		if err != nil {
			return err
		}

		return saveMatrix(args[2], a.Scale(s))
	},
}

// cmpCmd prints equality and ordering by total magnitude
var cmpCmd = &cobra.Command{
	Use:   "cmp A B",
	Short: "Compare two matrices: equality and ordering by total magnitude",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadMatrix(args[0])
		if err != nil {
			return err
		}
		b, err := loadMatrix(args[1])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "equal: %t\n", a.Equal(b))
		fmt.Fprintf(out, "less: %t\n", a.Less(b))
		fmt.Fprintf(out, "less_or_equal: %t\n", a.LessOrEqual(b))
		fmt.Fprintf(out, "greater: %t\n", a.Greater(b))
		fmt.Fprintf(out, "greater_or_equal: %t\n", a.GreaterOrEqual(b))
		fmt.Fprintf(out, "compare: %d\n", matrix.Compare(a, b))
		return nil
	},
}
