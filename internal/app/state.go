// Package app owns the values the widgets observe: named mode cells, knob
// parameters, and the event listeners notified when they change.
package app

import (
	"math"
	"sort"
	"sync"
)

// Cell is an externally owned integer such as a panel theme mode. It starts
// unset; widgets bound to an unset cell keep their default visual.
type Cell struct {
	mu    sync.RWMutex
	value int
	set   bool
}

// Int returns the value and whether it has been set.
func (c *Cell) Int() (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value, c.set
}

// Set stores v.
func (c *Cell) Set(v int) {
	c.mu.Lock()
	c.value = v
	c.set = true
	c.mu.Unlock()
}

// Unset clears the value.
func (c *Cell) Unset() {
	c.mu.Lock()
	c.set = false
	c.mu.Unlock()
}

// Param is a knob or switch value with its declared domain. Either bound
// may be infinite for an endless control.
type Param struct {
	mu       sync.RWMutex
	value    float64
	minValue float64
	maxValue float64
}

// NewParam returns a parameter over [minValue, maxValue] holding value.
func NewParam(minValue, maxValue, value float64) *Param {
	return &Param{value: value, minValue: minValue, maxValue: maxValue}
}

// NewEndlessParam returns an unbounded parameter.
func NewEndlessParam(value float64) *Param {
	return NewParam(math.Inf(-1), math.Inf(1), value)
}

func (p *Param) Value() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

func (p *Param) MinValue() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.minValue
}

func (p *Param) MaxValue() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.maxValue
}

// Set stores v, clamped to the domain.
func (p *Param) Set(v float64) {
	p.mu.Lock()
	p.value = math.Max(p.minValue, math.Min(p.maxValue, v))
	p.mu.Unlock()
}

// EventType identifies different application events.
type EventType int

const (
	EventModeChanged EventType = iota
	EventParamChanged
)

// Event carries the name of the value that changed.
type Event struct {
	Name string
}

// EventListener is called when an event occurs.
type EventListener func(ev Event)

// State holds the mode cells and parameters of one module.
type State struct {
	mu     sync.RWMutex
	modes  map[string]*Cell
	params map[string]*Param

	// Event listeners
	listeners map[EventType][]EventListener
}

// NewState creates an empty state.
func NewState() *State {
	return &State{
		modes:     make(map[string]*Cell),
		params:    make(map[string]*Param),
		listeners: make(map[EventType][]EventListener),
	}
}

// Mode returns the named mode cell, creating it unset.
func (s *State) Mode(name string) *Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.modes[name]
	if !ok {
		c = &Cell{}
		s.modes[name] = c
	}
	return c
}

// SetMode stores v in the named cell and emits EventModeChanged.
func (s *State) SetMode(name string, v int) {
	s.Mode(name).Set(v)
	s.Emit(EventModeChanged, Event{Name: name})
}

// ClearMode unsets the named cell and emits EventModeChanged.
func (s *State) ClearMode(name string) {
	s.Mode(name).Unset()
	s.Emit(EventModeChanged, Event{Name: name})
}

// Param returns the named parameter, or nil.
func (s *State) Param(name string) *Param {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params[name]
}

// AddParam registers p under name, replacing any previous one.
func (s *State) AddParam(name string, p *Param) *Param {
	s.mu.Lock()
	s.params[name] = p
	s.mu.Unlock()
	return p
}

// SetParam stores v in the named parameter and emits EventParamChanged.
// Unknown names are ignored.
func (s *State) SetParam(name string, v float64) {
	p := s.Param(name)
	if p == nil {
		return
	}
	p.Set(v)
	s.Emit(EventParamChanged, Event{Name: name})
}

// Names returns the registered mode and parameter names, sorted.
func (s *State) Names() (modes, params []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for name := range s.modes {
		modes = append(modes, name)
	}
	for name := range s.params {
		params = append(params, name)
	}
	sort.Strings(modes)
	sort.Strings(params)
	return modes, params
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, ev Event) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(ev)
	}
}
