// Command gridsearch solves grid puzzles with the state-space search engine.
//
//	gridsearch crucible [--part N] <input>
//	gridsearch hill     [--part N] <input>
//	gridsearch beam     [--part N] [--workers N] <input>
//	gridsearch garden   [--part N] [--steps N] <input>
//
// The answer is printed on stdout; progress records go to stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
)

type cli struct {
	Verbose bool `short:"v" help:"Log debug records" env:"GRIDSEARCH_VERBOSE"`

	Crucible crucibleCmd `cmd:"" help:"Least heat loss of a crucible crossing a city"`
	Hill     hillCmd     `cmd:"" help:"Fewest steps up a heightmap"`
	Beam     beamCmd     `cmd:"" help:"Tiles energized by a beam of light"`
	Garden   gardenCmd   `cmd:"" help:"Garden plots reachable in an exact number of steps"`
}

// env is bound to every command's Run method.
type env struct {
	ctx context.Context
	log *slog.Logger
	out io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "gridsearch:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var params cli
	parser, err := kong.New(&params,
		kong.Name("gridsearch"),
		kong.Description("Grid puzzles solved by best-first state-space search."),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if params.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	return kctx.Run(&env{ctx: ctx, log: logger, out: stdout})
}
