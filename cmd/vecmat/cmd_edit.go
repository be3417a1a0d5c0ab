// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

var (
	newRows int
	newCols int
	newFill string
)

// newCmd writes a fresh matrix
var newCmd = &cobra.Command{
	Use:   "new FILE",
	Short: "Write a rows×cols matrix of zero (or --fill) vectors",
	Example: `  vecmat new --rows 2 --cols 3 m.bin
  vecmat new --rows 1 --cols 1 --fill "1 2 3" one.bin`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

// setCmd overwrites one element
var setCmd = &cobra.Command{
	Use:   "set FILE ROW COL X Y Z",
	Short: "Overwrite the element at (ROW, COL)",
	Args:  cobra.ExactArgs(6),
	RunE:  runSet,
}

func init() {
	newCmd.Flags().IntVar(&newRows, "rows", 0, "Number of rows (required)")
	newCmd.Flags().IntVar(&newCols, "cols", 0, "Number of columns (required)")
	newCmd.Flags().StringVar(&newFill, "fill", "", `Initial element as "x y z"`)
	_ = newCmd.MarkFlagRequired("rows")
	_ = newCmd.MarkFlagRequired("cols")
}

func runNew(cmd *cobra.Command, args []string) error {
	fill := vector.Zero
	if newFill != "" {
		var err error
		if fill, err = vector.Parse(newFill); err != nil {
			return fmt.Errorf("--fill: %w", err)
		}
	}

	m, err := matrix.NewFilled(newRows, newCols, fill)
	if err != nil {
		return err
	}
	if err := saveMatrix(args[0], m); err != nil {
		return err
	}

	logger.Debug("matrix created", zap.String("file", args[0]), zap.Int("rows", newRows), zap.Int("cols", newCols))
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	row, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("row: %w", err)
	}
	col, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("col: %w", err)
	}
	v, err := vector.Parse(strings.Join(args[3:6], " "))
	if err != nil {
		return err
	}

	m, err := loadMatrix(args[0])
	if err != nil {
		return err
	}
	if err := m.AddItem(row, col, v); err != nil {
		return err
	}

	return saveMatrix(args[0], m)
}
