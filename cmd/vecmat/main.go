// SPDX-License-Identifier: MIT

// Command vecmat manipulates vector matrices stored in the binary file format.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/vecmat/internal/config"
	"github.com/katalvlaran/vecmat/matrix"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Resolved in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vecmat",
	Short: "vecmat - resizable matrices of 3D vectors",
	Long: `vecmat creates, edits, combines and converts matrices whose elements
are 3-component vectors. Matrices live in binary files: a rows/cols header
followed by three float64 per element in row-major order.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		zc := zap.NewProductionConfig()
		if verbose || cfg.Verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger.Debug("config resolved",
			zap.String("path", configPath),
			zap.String("byte_order", cfg.ByteOrder),
			zap.Bool("mmap", cfg.Mmap))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")

	rootCmd.AddCommand(newCmd, setCmd)
	rootCmd.AddCommand(showCmd, infoCmd, exportCmd, importCmd)
	rootCmd.AddCommand(addCmd, subCmd, mulCmd, scaleCmd, cmpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// fileOptions builds the persistence options from the resolved config.
func fileOptions() ([]matrix.Option, error) {
	order, err := cfg.Order()
	if err != nil {
		return nil, err
	}

	return []matrix.Option{matrix.WithByteOrder(order), matrix.WithLogger(logger)}, nil
}

// loadMatrix reads path with Load, or LoadMapped when the config asks for mmap.
func loadMatrix(path string) (*matrix.Dense, error) {
	opts, err := fileOptions()
	if err != nil {
		return nil, err
	}
	if cfg.Mmap {
		return matrix.LoadMapped(path, opts...)
	}

	return matrix.Load(path, opts...)
}

// saveMatrix writes m to path.
func saveMatrix(path string, m matrix.Matrix) error {
	opts, err := fileOptions()
	if err != nil {
		return err
	}

	return matrix.Save(path, m, opts...)
}
