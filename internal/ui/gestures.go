package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
)

// String returns the gesture name
func (g GestureType) String() string {
	switch g {
	case GestureSwipeLeft:
		return "SwipeLeft"
	case GestureSwipeRight:
		return "SwipeRight"
	case GestureSwipeUp:
		return "SwipeUp"
	case GestureSwipeDown:
		return "SwipeDown"
	default:
		return "None"
	}
}

// Gesture thresholds constants
const (
	DefaultSwipeThreshold float32 = 50.0
)

// ClassifySwipe turns a drag of (dx, dy) into a swipe along its dominant
// axis. Drags shorter than threshold on that axis are GestureNone.
func ClassifySwipe(dx, dy, threshold float32) GestureType {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if absDx < threshold {
			return GestureNone
		}
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}

	if absDy < threshold {
		return GestureNone
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// SwipeArea wraps content and reports swipes made by dragging across it.
// Taps still reach the wrapped widgets.
type SwipeArea struct {
	widget.BaseWidget

	content   fyne.CanvasObject
	onGesture func(GestureType)
	threshold float32

	dx, dy float32
}

// NewSwipeArea creates a swipe area around content
func NewSwipeArea(content fyne.CanvasObject, onGesture func(GestureType)) *SwipeArea {
	s := &SwipeArea{
		content:   content,
		onGesture: onGesture,
		threshold: DefaultSwipeThreshold,
	}
	s.ExtendBaseWidget(s)
	return s
}

// Dragged accumulates drag movement
func (s *SwipeArea) Dragged(event *fyne.DragEvent) {
	s.dx += event.Dragged.DX
	s.dy += event.Dragged.DY
}

// DragEnd classifies the finished drag
func (s *SwipeArea) DragEnd() {
	gesture := ClassifySwipe(s.dx, s.dy, s.threshold)
	s.dx, s.dy = 0, 0

	if gesture != GestureNone && s.onGesture != nil {
		s.onGesture(gesture)
	}
}

// CreateRenderer creates the widget renderer
func (s *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}
