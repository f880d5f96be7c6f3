// Command sokoban-solver reads a Sokoban puzzle from a file, runs the
// search engine, and prints the resulting move string (or an empty line if
// no solution exists). Argument handling, file I/O, and result printing are
// the driver's job; the solving logic lives in internal/search.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Floranaras/Sokoban-solver/internal/puzzle"
	"github.com/Floranaras/Sokoban-solver/internal/search"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		logLevel        string
		openCapacity    int
		visitedCapacity int
	)

	cmd := &cobra.Command{
		Use:   "sokoban-solver <puzzle-file>",
		Short: "Solve a Sokoban puzzle and print the move sequence",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("Usage: sokoban-solver <puzzle_file>")
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(logLevel)
			return run(args[0], search.Options{
				OpenCapacity:    openCapacity,
				VisitedCapacity: visitedCapacity,
			}, logger)
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().IntVar(&openCapacity, "heap-capacity", 0, "initial open-heap capacity (0 = default)")
	cmd.Flags().IntVar(&visitedCapacity, "visited-capacity", 0, "initial visited-set capacity (0 = default)")

	return cmd
}

func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(parsed).With().Timestamp().Logger()
}

// run reads the puzzle file, solves it, and writes the move string (or an
// empty line) to stdout. Exit status is zero whenever the search itself
// completes, whether or not a solution was found, per spec.md §6.
func run(path string, opts search.Options, logger zerolog.Logger) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading puzzle file %q", path)
	}

	p := puzzle.New(string(text))
	if p.Board.Degenerate {
		logger.Debug().Msg("puzzle text was empty or malformed; defaulting player to cell 0")
	}

	logger.Debug().
		Int("width", p.Board.Width).
		Int("height", p.Board.Height).
		Int("boxes", len(p.Board.Boxes)).
		Int("goals", len(p.Board.Goals)).
		Int("dead_cells", p.Dead.PopCount()).
		Int("rooms", len(p.Rooms.GoalCount)).
		Msg("puzzle parsed and precomputed")

	moves, stats := search.Solve(p, opts)

	logger.Debug().
		Int("nodes_generated", stats.NodesGenerated).
		Int("nodes_explored", stats.NodesExplored).
		Int("max_open_set", stats.MaxOpenSetSize).
		Dur("elapsed", stats.Elapsed).
		Bool("solved", moves != "" || (len(p.Board.Boxes) == 0 && len(p.Board.Goals) == 0)).
		Msg("search finished")

	fmt.Println(moves)
	return nil
}
