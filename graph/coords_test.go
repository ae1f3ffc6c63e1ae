package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenToLogical(t *testing.T) {
	v := Viewport{X: 100, Y: 50, Zoom: 2}

	got := ScreenToLogical(Position{X: 300, Y: 250}, v)
	assert.Equal(t, Position{X: 100, Y: 100}, got)
}

func TestLogicalToScreenRoundTrip(t *testing.T) {
	viewports := []Viewport{
		{},
		{X: -400, Y: 120, Zoom: 0.5},
		{X: 33, Y: -7, Zoom: 1.75},
	}
	points := []Position{{}, {X: 250, Y: -80}, {X: -1, Y: 1}}

	for _, v := range viewports {
		for _, p := range points {
			got := ScreenToLogical(LogicalToScreen(p, v), v)
			assert.InDelta(t, p.X, got.X, 1e-9)
			assert.InDelta(t, p.Y, got.Y, 1e-9)
		}
	}
}

func TestViewport_ZeroZoomIsIdentityScale(t *testing.T) {
	v := Viewport{X: 10, Y: 10}
	got := ScreenToLogical(Position{X: 20, Y: 30}, v)
	assert.Equal(t, Position{X: 10, Y: 20}, got)
}

func TestViewport_LogicalCenter(t *testing.T) {
	v := Viewport{X: 0, Y: 0, Zoom: 2}
	center := v.LogicalCenter(1920, 1080)
	assert.Equal(t, Position{X: 480, Y: 270}, center)
}

func TestDerivedNodePosition(t *testing.T) {
	source := Node{Position: Position{X: 100, Y: 40}, Width: 250}
	got := DerivedNodePosition(source)
	assert.Equal(t, Position{X: 100 + 250 + DerivedNodeGap, Y: 40}, got)
}

func TestDerivedNodePosition_UnmeasuredWidth(t *testing.T) {
	source := Node{Position: Position{X: 0, Y: 0}}
	got := DerivedNodePosition(source)
	// Unmeasured nodes fall back to the default width.
	assert.Equal(t, Position{X: 300 + DerivedNodeGap, Y: 0}, got)
}
