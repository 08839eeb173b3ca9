package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/nadlgit/gridsearch/beam"
	"github.com/nadlgit/gridsearch/crucible"
	"github.com/nadlgit/gridsearch/garden"
	"github.com/nadlgit/gridsearch/hill"
)

const (
	gardenStepsPart1 = 64
	gardenStepsPart2 = 26501365
)

// Puzzle holds the arguments shared by every command.
type Puzzle struct {
	Part  int    `short:"p" help:"Puzzle part, 1 or 2" default:"1"`
	Input string `arg:"" type:"existingfile" help:"Puzzle input file"`
}

func (p Puzzle) Validate() error {
	if p.Part != 1 && p.Part != 2 {
		return fmt.Errorf("--part must be 1 or 2, got %d", p.Part)
	}
	return nil
}

// solve runs the part selected on the command line and reports its answer.
func (p Puzzle) solve(e *env, name string, part1, part2 func() (int, error)) error {
	e.log.Debug("solving", "puzzle", name, "part", p.Part, "input", p.Input)
	start := time.Now()

	solver := part1
	if p.Part == 2 {
		solver = part2
	}
	answer, err := solver()
	if err != nil {
		return fmt.Errorf("%s part %d: %w", name, p.Part, err)
	}

	e.log.Info("solved", "puzzle", name, "part", p.Part, "answer", answer, "elapsed", time.Since(start))
	_, err = fmt.Fprintln(e.out, answer)
	return err
}

type crucibleCmd struct {
	Puzzle
}

func (c *crucibleCmd) Run(e *env) error {
	return c.solve(e, "crucible",
		func() (int, error) { return crucible.SolvePart1(c.Input) },
		func() (int, error) { return crucible.SolvePart2(c.Input) },
	)
}

type hillCmd struct {
	Puzzle
}

func (c *hillCmd) Run(e *env) error {
	return c.solve(e, "hill",
		func() (int, error) { return hill.SolvePart1(c.Input) },
		func() (int, error) { return hill.SolvePart2(c.Input) },
	)
}

type beamCmd struct {
	Puzzle
	Workers int `short:"w" help:"Entries traced in parallel (0 = GOMAXPROCS)" default:"0" env:"GRIDSEARCH_WORKERS"`
}

func (c *beamCmd) Run(e *env) error {
	workers := c.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	return c.solve(e, "beam",
		func() (int, error) { return beam.SolvePart1(c.Input) },
		func() (int, error) {
			e.log.Debug("sweeping entries", "workers", workers)
			return beam.SolvePart2(e.ctx, c.Input, workers)
		},
	)
}

type gardenCmd struct {
	Puzzle
	Steps int `short:"s" help:"Exact step count (0 = 64 for part 1, 26501365 for part 2)" default:"0"`
}

func (c *gardenCmd) Run(e *env) error {
	steps := func(fallback int) int {
		if c.Steps > 0 {
			return c.Steps
		}
		return fallback
	}
	return c.solve(e, "garden",
		func() (int, error) { return garden.SolvePart1(c.Input, steps(gardenStepsPart1)) },
		func() (int, error) { return garden.SolvePart2(c.Input, steps(gardenStepsPart2)) },
	)
}
