package main

import (
	"fmt"
	"log"
	"math"

	"github.com/alecthomas/kong"

	"github.com/jdginn/go-reflector-puzzle/interact"
	"github.com/jdginn/go-reflector-puzzle/puzzle"
	puzzleConfig "github.com/jdginn/go-reflector-puzzle/puzzle/config"
	puzzleExperiment "github.com/jdginn/go-reflector-puzzle/puzzle/experiment"
)

var CLI struct {
	Generate GenerateCmd `cmd:"" help:"Generate a mirror layout for a level"`
	Trace    TraceCmd    `cmd:"" help:"Generate a layout and trace rays at the target"`
	Catalog  CatalogCmd  `cmd:"" help:"Plot the surface-area distribution of the shape catalog"`
}

func loadConfig(path string) (*puzzleConfig.LevelConfig, error) {
	if path == "" {
		return puzzleConfig.Default(), nil
	}
	return puzzleConfig.LoadFromFile(path, puzzleConfig.LoadOptions{
		ValidateImmediately: true,
	})
}

type GenerateCmd struct {
	Config string `name:"config" help:"level config file" optional:""`
	Level  int    `name:"level" default:"1" help:"level number for the difficulty ramp"`
}

func (c GenerateCmd) Run() error {
	config, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	geom := config.Geometry()

	runDir, err := puzzleExperiment.CreateRunDirectory()
	if err != nil {
		return fmt.Errorf("creating run directory: %w", err)
	}
	if c.Config != "" {
		if err := runDir.CopyConfigFile(c.Config); err != nil {
			return fmt.Errorf("copying config file: %w", err)
		}
	}

	catalog := puzzle.BuildCatalog(geom)
	result, err := puzzle.Generate(catalog, geom, config.GenerateParams(c.Level))
	if err != nil {
		return err
	}
	if result.UsedFallback {
		fmt.Println("WARNING: generation exhausted its attempts, using fallback layout")
	}

	if err := puzzle.SaveLayoutToJSON(runDir.GetFilePath("layout.json"), geom, result.Mirrors, nil); err != nil {
		return err
	}

	view := puzzle.View{XSize: 800, YSize: 800}
	if err := view.SavePNG(runDir.GetFilePath("layout.png"), geom, result.Mirrors, nil); err != nil {
		return err
	}
	fmt.Printf("run %s: %d mirrors in %d attempt(s)\n", runDir.ID, len(result.Mirrors), result.Attempts)
	return nil
}

type TraceCmd struct {
	Config      string `name:"config" help:"level config file" optional:""`
	Level       int    `name:"level" default:"1" help:"level number for the difficulty ramp"`
	Shots       int    `name:"shots" default:"72" help:"number of spawn directions to try"`
	Interactive bool   `name:"interactive" help:"browse arrivals in a TUI"`
}

func (c TraceCmd) Run() error {
	config, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	geom := config.Geometry()

	catalog := puzzle.BuildCatalog(geom)
	result, err := puzzle.Generate(catalog, geom, config.GenerateParams(c.Level))
	if err != nil {
		return err
	}

	// Spawn on the inner edge of the wall margin, aimed across the arena.
	spawn := puzzle.V(geom.Arena.Min.X+geom.WallSafeMargin, geom.Arena.Min.Y+geom.WallSafeMargin)
	arrivals := []puzzle.Arrival{}
	for i := 0; i < c.Shots; i++ {
		angle := 2 * math.Pi * float64(i) / float64(c.Shots)
		ray := puzzle.NewRay(spawn, puzzle.V(math.Cos(angle), math.Sin(angle)), config.Ray.Speed)
		arrival := puzzle.Trace(ray, result.Mirrors, geom, config.TraceParams())
		if arrival.Distance != puzzle.INF {
			arrivals = append(arrivals, arrival)
		}
	}
	fmt.Printf("%d/%d shots reached the target\n", len(arrivals), c.Shots)

	view := puzzle.View{XSize: 800, YSize: 800}
	if c.Interactive {
		return interact.Interact(geom, result.Mirrors, arrivals, view)
	}

	if len(arrivals) > 0 {
		if err := view.SavePNG("trace.png", geom, result.Mirrors, &arrivals[0]); err != nil {
			return err
		}
	}
	return puzzle.SaveLayoutToJSON("trace.json", geom, result.Mirrors, arrivals)
}

type CatalogCmd struct {
	Config string `name:"config" help:"level config file" optional:""`
	Out    string `name:"out" default:"catalog.png" help:"output image path"`
}

func (c CatalogCmd) Run() error {
	config, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	catalog := puzzle.BuildCatalog(config.Geometry())
	return puzzle.PlotCatalogAreas(catalog, c.Out, 600, 400)
}

func main() {
	ctx := kong.Parse(&CLI)
	err := ctx.Run()
	if err != nil {
		log.Fatal(err)
	}
}
