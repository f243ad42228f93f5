// snake is a terminal Snake game. Eat enough food to reveal the flag.
//
// Usage:
//
//	snake                    - Play
//	snake scores             - Show the best finished games
//
// Global flags:
//
//	--config <path>  - Use a specific YAML config instead of the search path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagConfig string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Terminal Snake - eat 10 to win the flag",
	Long: `Snake runs full-screen in your terminal. Steer the snake to the food,
avoid the walls and your own tail, and reach the winning score to reveal the flag.

Controls:
  Arrows/WASD  - Steer
  R            - Restart (after game over or victory)
  Q/Ctrl+C     - Quit

The flag is read from flag.txt next to the binary, then from $CTF_FLAG.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML")

	rootCmd.AddCommand(scoresCmd)
}
