// Command dungeon-dump generates a dungeon without a window and prints its
// grid statistics and an ASCII map of the populated cells.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"dungeon/internal/app"
	"dungeon/internal/core"
	"dungeon/internal/dungeon"
	_ "dungeon/internal/gen/diagonal"
	_ "dungeon/internal/gen/room"
)

func main() {
	gen := flag.String("gen", "room", "generator to run")
	seed := flag.Int64("seed", 42, "seed for the generator")
	count := flag.Int("n", 1, "number of dungeons to generate from the same seed")
	statsOnly := flag.Bool("stats-only", false, "skip the ASCII map")
	params := app.KeyValues{}
	flag.Var(params, "set", "generator parameter override in key=value form (repeatable)")
	flag.Parse()

	factory, ok := core.Generators()[*gen]
	if !ok {
		log.Fatalf("unknown generator %q (available: %v)", *gen, generatorNames())
	}

	g := factory(params)
	g.Reset(*seed)
	d := dungeon.New()
	for i := 0; i < *count; i++ {
		g.Generate(d)
		if *count > 1 {
			fmt.Printf("== %s #%d\n", g.Name(), i+1)
		}
		dump(os.Stdout, d, *statsOnly)
	}
}

func dump(w io.Writer, d *dungeon.Dungeon, statsOnly bool) {
	grid := d.Grid()
	lower, upper := grid.Bounds()
	fmt.Fprintf(w, "chunks: %d\n", grid.Len())
	fmt.Fprintf(w, "bounds: %v..%v\n", lower, upper)
	fmt.Fprintf(w, "center: %v\n", grid.FindCenter())

	lo, hi, ok := grid.Extent()
	if !ok {
		fmt.Fprintln(w, "extent: empty")
		return
	}
	fmt.Fprintf(w, "extent: %v..%v\n", lo, hi)
	if statsOnly {
		return
	}
	for _, line := range grid.Raster(lo, hi).Lines() {
		fmt.Fprintln(w, line)
	}
}

func generatorNames() []string {
	names := make([]string, 0, len(core.Generators()))
	for name := range core.Generators() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
