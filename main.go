// quantumlab is a top-down educational adventure: two physicists walk a
// small research wing and settle four toy quantum experiments.
//
// Usage:
//
//	quantumlab            - Start the game
//	quantumlab play       - Start the game (explicit form)
//	quantumlab dump       - Print room layouts and write lab.txt
//
// Global flags:
//
//	--seed <value>    - RNG seed for reproducible runs (0 = time-based)
//	--config <path>   - Path to a custom settings YAML
package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"
	"github.com/spf13/cobra"

	"quantumlab/pkg/game/config"
	"quantumlab/pkg/game/devtools"
	"quantumlab/pkg/game/renderer"
	"quantumlab/pkg/game/state"
)

var (
	flagSeed   int64
	flagConfig string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "quantumlab",
})

var rootCmd = &cobra.Command{
	Use:   "quantumlab",
	Short: "The Quantum Lab - a two-physicist puzzle adventure",
	Long: `The Quantum Lab walks Dr. Vega and Dr. Patel through four rooms,
each built around one quantum idea: superposition, entanglement,
the uncertainty principle and tunneling.

Examples:
  quantumlab
  quantumlab play --seed 42
  quantumlab dump --config ./quantumlab.yaml`,
	RunE: runPlay,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	RunE:  runPlay,
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print room layouts and write a lab.txt debug dump",
	RunE:  runDump,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom settings YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(dumpCmd)
}

func initGettext() {
	gotext.Configure("locales", "en_GB", "quantumlab")
}

// buildGame loads settings, seeds the RNG and assembles a fresh session.
func buildGame() (*state.Game, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting session", "seed", seed, "rooms", 4)

	return state.New(cfg, rand.New(rand.NewSource(seed)))
}

func runPlay(cmd *cobra.Command, args []string) error {
	g, err := buildGame()
	if err != nil {
		return err
	}
	return renderer.Run(g)
}

func runDump(cmd *cobra.Command, args []string) error {
	g, err := buildGame()
	if err != nil {
		return err
	}
	devtools.PrintRooms(g)
	path, err := devtools.DumpRoomsToFile(g)
	if err != nil {
		return err
	}
	logger.Info("wrote lab dump", "path", path)
	return nil
}

func main() {
	initGettext()

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("exiting", "error", err)
	}
}
