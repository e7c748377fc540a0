// Package main provides the entry point for the Geo widgets demo.
package main

import (
	"flag"
	"fmt"
	"log"

	"geowidgets/internal/app"
	"geowidgets/internal/module"
	"geowidgets/internal/vector"
	"geowidgets/internal/version"
	"geowidgets/ui/host"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const appTitle = "Geo Widgets"

func main() {
	resDir := flag.String("res", "res", "Directory holding the module SVG resources")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s (%s, built %s)\n", appTitle, version.Version, version.GitCommit, version.BuildTime)
		return
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	lib := vector.NewLibrary(*resDir)
	mod, err := module.Build(lib)
	if err != nil {
		log.Fatalf("Failed to build module from %s: %v", *resDir, err)
	}

	a := fyneapp.New()
	a.Settings().SetTheme(&host.RackTheme{})
	win := a.NewWindow(appTitle)

	modes, params := mod.State.Names()
	log.Printf("Module modes %v, params %v", modes, params)
	mod.State.On(app.EventModeChanged, func(ev app.Event) {
		if v, ok := mod.State.Mode(ev.Name).Int(); ok {
			log.Printf("Mode %s set to %d", ev.Name, v)
		} else {
			log.Printf("Mode %s cleared", ev.Name)
		}
	})

	view := host.NewModuleView(mod.Composite)
	view.Follow(mod.State)
	view.Start()

	theme := 0
	themeButton := widget.NewButton("Dark panel", nil)
	themeButton.OnTapped = func() {
		theme = 1 - theme
		mod.SetTheme(theme)
		if theme == 0 {
			themeButton.SetText("Dark panel")
		} else {
			themeButton.SetText("Light panel")
		}
	}

	knobParam := mod.State.Param(module.ParamKnob)
	knobSlider := widget.NewSlider(knobParam.MinValue(), knobParam.MaxValue())
	knobSlider.Step = 0.01
	knobSlider.SetValue(knobParam.Value())
	knobSlider.OnChanged = func(v float64) {
		mod.State.SetParam(module.ParamKnob, v)
	}

	toggle := widget.NewCheck("Switch", func(on bool) {
		v := 0.0
		if on {
			v = 1
		}
		mod.State.SetParam(module.ParamSwitch, v)
	})

	expansion := widget.NewCheck("Expansion divider", func(on bool) {
		if on {
			mod.State.SetMode(module.ModeExpand, 15)
		} else {
			mod.State.ClearMode(module.ModeExpand)
		}
	})

	controls := container.NewVBox(themeButton, widget.NewLabel("Knob"), knobSlider, toggle, expansion)
	win.SetContent(container.NewBorder(nil, nil, container.NewCenter(view), nil, controls))
	win.Resize(fyne.NewSize(360, 420))
	win.SetOnClosed(func() {
		view.Stop()
		mod.Close()
	})
	win.ShowAndRun()
}
