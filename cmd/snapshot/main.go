// Command snapshot renders the demo module headlessly to PNG, one file per
// theme mode.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"geowidgets/internal/module"
	"geowidgets/internal/vector"
)

func main() {
	resDir := flag.String("res", "res", "Directory holding the module SVG resources")
	outDir := flag.String("out", ".", "Directory to write PNG files to")
	ratio := flag.Float64("ratio", 2, "Device pixel ratio")
	modes := flag.Int("modes", 2, "Number of theme modes to render")
	knob := flag.Float64("knob", 5, "Knob value")
	flag.Parse()

	if *ratio <= 0 || *modes <= 0 {
		fmt.Println("Usage: snapshot [-res dir] [-out dir] [-ratio 2] [-modes 2] [-knob 5]")
		os.Exit(1)
	}

	if err := run(*resDir, *outDir, *ratio, *modes, *knob); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(resDir, outDir string, ratio float64, modes int, knob float64) error {
	mod, err := module.Build(vector.NewLibrary(resDir))
	if err != nil {
		return fmt.Errorf("failed to build module: %w", err)
	}
	defer mod.Close()
	mod.State.SetParam(module.ParamKnob, knob)

	fmt.Printf("Module: %.0fx%.0f units, %d widgets, ratio %.2f\n",
		mod.Panel.Size().Width, mod.Panel.Size().Height, len(mod.Composite.Placements), ratio)

	for mode := 0; mode < modes; mode++ {
		mod.SetTheme(mode)
		mod.Composite.Step(ratio)
		img := mod.Composite.Render(ratio)

		path := filepath.Join(outDir, fmt.Sprintf("module-mode%d.png", mode))
		if err := writePNG(path, img); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		b := img.Bounds()
		fmt.Printf("  mode %d: %s (%dx%d pixels)\n", mode, path, b.Dx(), b.Dy())
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
