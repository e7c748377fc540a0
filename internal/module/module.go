// Package module assembles a complete demo module, a panel with screws,
// jacks, a switch and a knob, from a directory of SVG resources.
package module

import (
	"fmt"

	"geowidgets/internal/app"
	"geowidgets/internal/render"
	"geowidgets/internal/vector"
	"geowidgets/internal/widget"
	"geowidgets/pkg/colorutil"
	"geowidgets/pkg/geometry"
)

// Names of the state values the module binds to.
const (
	ModeTheme   = "theme"
	ModeExpand  = "expansion"
	ParamKnob   = "knob"
	ParamSwitch = "switch"
)

// Resources lists the SVG files the module loads, relative to the library
// root. Per-mode lists are indexed by theme mode.
var Resources = struct {
	Panels   []string
	Screw    string
	ScrewAlt string
	Jacks    []string
	Switch   []string
	Knobs    []string
	KnobGlow string
}{
	Panels:   []string{"panel-light.svg", "panel-dark.svg"},
	Screw:    "screw-silver.svg",
	ScrewAlt: "screw-black.svg",
	Jacks:    []string{"jack-light.svg", "jack-dark.svg"},
	Switch:   []string{"switch-light-0.svg", "switch-light-1.svg", "switch-dark-0.svg", "switch-dark-1.svg"},
	Knobs:    []string{"knob-light.svg", "knob-dark.svg"},
	KnobGlow: "knob-glow.svg",
}

// Module is an assembled module ready to be stepped and rendered.
type Module struct {
	State     *app.State
	Composite *render.Composite

	Panel  *widget.Panel
	Screws []*widget.Screw
	Jacks  []*widget.Port
	Switch *widget.Switch
	Knob   *widget.Knob

	lib    *vector.Library
	loaded []*vector.Image
}

// Build loads the resources from lib and lays out the module. The theme
// mode starts at 0. Close releases the resources.
func Build(lib *vector.Library) (mod *Module, err error) {
	state := app.NewState()
	theme := state.Mode(ModeTheme)
	knobParam := state.AddParam(ParamKnob, app.NewParam(0, 10, 5))
	switchParam := state.AddParam(ParamSwitch, app.NewParam(0, 1, 0))

	m := &Module{State: state, lib: lib}
	defer func() {
		if err != nil {
			m.Close()
		}
	}()
	load := func(path string) (*vector.Image, error) {
		img, err := lib.Load(path)
		if err != nil {
			return nil, fmt.Errorf("module resources: %w", err)
		}
		m.loaded = append(m.loaded, img)
		return img, nil
	}

	m.Panel = widget.NewPanel()
	for _, path := range Resources.Panels {
		img, err := load(path)
		if err != nil {
			return nil, err
		}
		m.Panel.AddPanel(img)
	}
	m.Panel.BindMode(theme)
	m.Panel.SetExpansion(state.Mode(ModeExpand))

	size := m.Panel.Size()
	m.Composite = render.NewComposite(size, colorutil.PanelBackground)
	m.Composite.Add(m.Panel, geometry.Point2D{})

	screwBase, err := load(Resources.Screw)
	if err != nil {
		return nil, err
	}
	screwAlt, err := load(Resources.ScrewAlt)
	if err != nil {
		return nil, err
	}
	corners := []geometry.Point2D{
		{X: 0, Y: 0},
		{X: size.Width - widget.ScrewSize.Width, Y: 0},
		{X: 0, Y: size.Height - widget.ScrewSize.Height},
		{X: size.Width - widget.ScrewSize.Width, Y: size.Height - widget.ScrewSize.Height},
	}
	for _, at := range corners {
		s := widget.NewScrew()
		s.SetBaseImage(screwBase)
		s.AddAlternateImage(screwAlt)
		s.BindMode(theme)
		m.Screws = append(m.Screws, s)
		m.Composite.Add(s, at)
	}

	knob := widget.NewKnob()
	for _, path := range Resources.Knobs {
		img, err := load(path)
		if err != nil {
			return nil, err
		}
		knob.AddFrameSet(img)
	}
	glow, err := load(Resources.KnobGlow)
	if err != nil {
		return nil, err
	}
	knob.AddEffectOverlay(glow)
	knob.BindMode(theme)
	knob.BindValue(knobParam)
	m.Knob = knob
	m.Composite.Add(knob, centered(size.Width, 60, knob.Size()))

	sw := widget.NewSwitch()
	for _, path := range Resources.Switch {
		img, err := load(path)
		if err != nil {
			return nil, err
		}
		sw.AddFrameSet(img)
	}
	sw.BindMode(theme)
	sw.BindValue(switchParam)
	m.Switch = sw
	m.Composite.Add(sw, centered(size.Width, 160, sw.Size()))

	for _, y := range []float64{240, 300} {
		jack := widget.NewPort()
		for _, path := range Resources.Jacks {
			img, err := load(path)
			if err != nil {
				return nil, err
			}
			jack.AddFrame(img)
		}
		jack.BindMode(theme)
		m.Jacks = append(m.Jacks, jack)
		m.Composite.Add(jack, centered(size.Width, y, jack.Size()))
	}

	theme.Set(0)
	return m, nil
}

// Close releases every image reference Build took from the library. It is
// safe to call more than once.
func (m *Module) Close() {
	for _, img := range m.loaded {
		m.lib.Release(img)
	}
	m.loaded = nil
}

// SetTheme switches every widget's mode on the next frame.
func (m *Module) SetTheme(mode int) {
	m.State.SetMode(ModeTheme, mode)
}

func centered(width, y float64, s geometry.Size) geometry.Point2D {
	return geometry.NewPoint2D((width-s.Width)/2, y)
}
