// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vecmat/matrix"
)

// showCmd prints the text form
var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Print a matrix, one row per line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadMatrix(args[0])
		if err != nil {
			return err
		}

		return matrix.WriteText(cmd.OutOrStdout(), m)
	},
}

// infoCmd prints shape and total magnitude
var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Print the shape and total magnitude of a matrix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadMatrix(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "rows: %d\n", m.Rows())
		fmt.Fprintf(out, "cols: %d\n", m.Cols())
		fmt.Fprintf(out, "magnitude: %g\n", m.TotalMagnitude())
		return nil
	},
}

// exportCmd prints a YAML snapshot
var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Print a matrix as a YAML snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadMatrix(args[0])
		if err != nil {
			return err
		}

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		return enc.Close()
	},
}

// importCmd converts a YAML snapshot into a binary file
var importCmd = &cobra.Command{
	Use:   "import YAML OUT",
	Short: "Convert a YAML snapshot into a binary matrix file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read snapshot: %w", err)
		}

		var m matrix.Dense
		if err := yaml.Unmarshal(data, &m); err != nil {
			return fmt.Errorf("failed to parse snapshot: %w", err)
		}
		if err := saveMatrix(args[1], &m); err != nil {
			return err
		}

		logger.Debug("snapshot imported", zap.String("from", args[0]), zap.String("to", args[1]))
		return nil
	},
}
