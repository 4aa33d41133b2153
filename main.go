package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"vsasakiv/lifeframe/display"
	"vsasakiv/lifeframe/frame"
	"vsasakiv/lifeframe/life"
)

// Params holds the command line settings for one run.
type Params struct {
	Threads     int
	ImageWidth  int
	ImageHeight int
	Turns       int
	Seed        int64
	Format      string
	Boundary    string
	Backend     string
	Scale       int
	Live        string
	Dead        string
	NoVis       bool
}

// result is what a run produced before it is put on screen.
type result struct {
	bitmap frame.Bitmap
	alive  int
}

func main() {
	runtime.LockOSThread()

	params, err := parseParams(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Threads:", params.Threads)
	log.Println("Width:", params.ImageWidth)
	log.Println("Height:", params.ImageHeight)
	log.Println("Turns:", params.Turns)

	res, err := run(params)
	if err != nil {
		log.Fatal(err)
	}

	title := fmt.Sprintf("Game of Life - turn %d, %d alive", params.Turns, res.alive)
	if params.NoVis {
		log.Println(title)
		return
	}

	backend, err := display.ByName(params.Backend, params.Scale)
	if err != nil {
		log.Fatal(err)
	}
	if err := backend.Show(res.bitmap, title); err != nil {
		log.Fatal(err)
	}
}

func parseParams(args []string) (Params, error) {
	var params Params
	flags := flag.NewFlagSet("lifeframe", flag.ContinueOnError)

	flags.IntVar(
		&params.Threads,
		"t",
		8,
		"Specify the number of worker threads to use. Defaults to 8.")

	flags.IntVar(
		&params.ImageWidth,
		"w",
		1800,
		"Specify the width of the image. Defaults to 1800.")

	flags.IntVar(
		&params.ImageHeight,
		"h",
		1000,
		"Specify the height of the image. Defaults to 1000.")

	flags.IntVar(
		&params.Turns,
		"turns",
		0,
		"Specify the number of generations to advance before display. Defaults to 0.")

	flags.Int64Var(&params.Seed, "seed", 0, "Random seed, 0 seeds from the clock")
	flags.StringVar(&params.Format, "format", frame.BGR24.Name, "Packed pixel format: bgr24 or bgra32")
	flags.StringVar(&params.Boundary, "boundary", life.Torus.String(), "Edge policy: torus or dead")
	flags.StringVar(&params.Backend, "backend", "ebiten", "Display backend: ebiten or sdl")
	flags.IntVar(&params.Scale, "scale", 1, "Window scale factor")
	flags.StringVar(&params.Live, "live", "#000000", "Colour of live cells")
	flags.StringVar(&params.Dead, "dead", "#ffffff", "Colour of dead cells")

	flags.BoolVar(
		&params.NoVis,
		"noVis",
		false,
		"Disables the window and only logs the result.")

	if err := flags.Parse(args); err != nil {
		return Params{}, err
	}
	return params, nil
}

// run builds the frame, fills it at random, advances the requested number of
// generations and packs the final state.
func run(params Params) (result, error) {
	format, err := frame.ParseFormat(params.Format)
	if err != nil {
		return result{}, err
	}
	boundary, err := life.ParseBoundary(params.Boundary)
	if err != nil {
		return result{}, err
	}
	palette, err := parsePalette(params.Live, params.Dead)
	if err != nil {
		return result{}, err
	}

	f, err := frame.New(params.ImageWidth, params.ImageHeight, format)
	if err != nil {
		return result{}, err
	}
	frame.RandomizeLife(f, params.Seed, params.Threads)

	world := life.Capture(f, frame.DefaultPalette.IsLive)
	world = life.Run(world, params.Turns, boundary, params.Threads)

	policy := world.Policy(palette)
	f.FillCellsParallel(params.Threads, func(int) frame.FillPolicy {
		return policy
	})

	return result{
		bitmap: f.ToPackedBufferParallel(params.Threads),
		alive:  world.AliveCount(),
	}, nil
}

func parsePalette(live, dead string) (frame.Palette, error) {
	var palette frame.Palette
	var err error
	if palette.Live, err = frame.ParseHexColor(live); err != nil {
		return palette, fmt.Errorf("live colour: %w", err)
	}
	if palette.Dead, err = frame.ParseHexColor(dead); err != nil {
		return palette, fmt.Errorf("dead colour: %w", err)
	}
	return palette, nil
}
