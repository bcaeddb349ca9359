// Command labgroups reads an enrollment workbook, distributes the students
// into the teaching-group hierarchy and writes one report sheet per room.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lucabaldini/labgroups"
	"github.com/lucabaldini/labgroups/internal/logging"
	"github.com/lucabaldini/labgroups/report"
	"github.com/lucabaldini/labgroups/source"
)

var (
	// Global flags
	inputPath  string
	outputPath string
	configPath string
	verbose    bool
)

// cliConfig is the optional YAML configuration file layout.
type cliConfig struct {
	// Groups configures the group hierarchy.
	Groups labgroups.Config `yaml:"groups"`

	// Workbook configures sheet and column naming for the input workbook.
	// The path is taken from the --input flag.
	Workbook source.XLSXConfig `yaml:"workbook"`
}

var rootCmd = &cobra.Command{
	Use:   "labgroups",
	Short: "Allocate students into balanced lab turn-groups",
	Long: `labgroups reads the student roster from an enrollment workbook, validates
the declared macro-groups against the override list, checks lab-partner
declarations for consistency and distributes everybody into the room/turn
hierarchy, keeping group sizes balanced and declared pairs together.

The result is one workbook with a sheet per room, sorted by turn-group
and surname, ready to hand to the lab instructors.`,
	SilenceUsage: true,
	RunE:         runAllocation,
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "enrollment workbook to read (required)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "assignments.xlsx", "report workbook to write")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "optional YAML configuration file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkFlagRequired("input")
}

func runAllocation(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	cfg.Workbook.Path = inputPath

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewSlog(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	src, err := source.NewXLSX(cfg.Workbook)
	if err != nil {
		return err
	}

	alloc, err := labgroups.NewAllocator(&cfg.Groups, src, src, labgroups.WithLogger(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := alloc.Run(ctx, report.NewXLSX(outputPath)); err != nil {
		return err
	}

	logger.Info("done", "output", outputPath)

	return nil
}

// loadConfig reads the YAML configuration file, or returns the zero value
// when no file was given. Missing fields fall back to defaults downstream.
func loadConfig(path string) (cliConfig, error) {
	var cfg cliConfig
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading configuration %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing configuration %s: %w", path, err)
	}

	return cfg, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
