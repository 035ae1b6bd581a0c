// tetrisus is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetrisus                 - Title menu
//	tetrisus play            - Play locally
//	tetrisus serve           - Start SSH server for remote play
//	tetrisus scores          - Show the best recorded games
//	tetrisus best            - Print the stored best score
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.tetrisus/scores.db)
//	--config <path>  - Use a custom game config YAML
//	--debug          - Write debug logs to ~/.tetrisus/tetrisus.log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetrisus",
	Short: "Tetrisus - falling blocks in your terminal",
	Long: `Tetrisus is a falling-block puzzle game that runs in your terminal,
locally or over SSH.

Run without a command to open the title menu.

Available commands:
  play     - Play a game
  serve    - Start SSH server for remote play
  scores   - View the best recorded games
  best     - Print the stored best score

Examples:
  tetrisus
  tetrisus play
  tetrisus play --seed 42
  tetrisus serve --ssh :2222 --metrics :2112
  tetrisus scores`,
	Args:         cobra.NoArgs,
	RunE:         runMenu,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetrisus/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug logs to ~/.tetrisus/tetrisus.log")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(bestCmd)
}
