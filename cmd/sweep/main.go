package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sweepmind/internal/config"
)

var (
	// Global flags
	verbose bool
	cfgPath string
	seed    int64

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sweep",
	Short: "sweepmind - a knowledge-based minesweeper agent",
	Long: `sweepmind plays minesweeper by logical deduction.

Every revealed cell becomes a sentence ("exactly N of these cells are
mines"); the knowledge base saturates its sentences into certain safe/mine
conclusions and derives new sentences by subset inference. The agent probes
proven-safe cells and only guesses when deduction runs dry.

Run 'sweep play' for the interactive board, 'sweep solve' for a single
headless game, or 'sweep simulate' for batch win-rate statistics.`,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, args)
	},
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(cfg.Seed))
}

// persistentPreRunE is assigned in init rather than in the rootCmd literal so
// that its reference to rootCmd does not form an initialization cycle.
func persistentPreRunE(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	zapCfg := zap.NewProductionConfig()
	if verbose || cfg.Logging.Level == "debug" {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	// The play command (and the bare root, which launches it) owns the
	// terminal; keep its logs out of the UI.
	if cmd.Name() == "play" || cmd == rootCmd {
		zapCfg.OutputPaths = []string{"stderr"}
		if !verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
		}
	}
	logger, err = zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentPreRunE = persistentPreRunE

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "RNG seed (0 = seed from the clock)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
