package ui

import (
	"fmt"

	"github.com/five82/kiosk/internal/assets"
	"github.com/five82/kiosk/internal/config"
)

// Visual is what a button shows in one interaction state.
type Visual struct {
	Image   *assets.Image
	Opacity float64
	// Background fills the icon cells; empty is transparent.
	Background string
}

// buttonState selects a visual.
type buttonState int

const (
	stateNormal buttonState = iota
	stateHover
	statePressed
)

// Button is a corner button. Its name is the page alias it opens; the status
// presenters recognize the Battery and WiFi buttons by the same name.
type Button struct {
	Name   string
	zoneID string

	normal  Visual
	hover   Visual
	pressed Visual
}

func newButton(b config.Button, zoneID string, img *assets.Image) *Button {
	v := Visual{Image: img, Opacity: 1}
	return &Button{Name: b.Name, zoneID: zoneID, normal: v, hover: v, pressed: v}
}

// SetImages replaces the three state visuals. Name and zone are untouched.
func (b *Button) SetImages(normal, hover, pressed Visual) {
	b.normal = normal
	b.hover = hover
	b.pressed = pressed
}

// Visual returns the visual for a state.
func (b *Button) Visual(s buttonState) Visual {
	switch s {
	case stateHover:
		return b.hover
	case statePressed:
		return b.pressed
	default:
		return b.normal
	}
}

// Bar is one row of corner buttons: index 0 sits left, index 1 right.
type Bar struct {
	Buttons []*Button
}

func newBar(name string, buttons []config.Button, load func(string) *assets.Image) *Bar {
	bar := &Bar{}
	for i, b := range buttons {
		bar.Buttons = append(bar.Buttons, newButton(b, fmt.Sprintf("bar:%s:%d", name, i), load(b.Icon)))
	}
	return bar
}

// named calls fn for every button in the bars with the given name.
func named(name string, fn func(*Button), bars ...*Bar) {
	for _, bar := range bars {
		if bar == nil {
			continue
		}
		for _, b := range bar.Buttons {
			if b.Name == name {
				fn(b)
			}
		}
	}
}
