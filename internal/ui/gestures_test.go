package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

func TestClassifySwipe(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float32
		want   GestureType
	}{
		{"right", 80, 10, GestureSwipeRight},
		{"left", -80, -10, GestureSwipeLeft},
		{"down", 5, 90, GestureSwipeDown},
		{"up", -5, -90, GestureSwipeUp},
		{"short horizontal", 20, 0, GestureNone},
		{"short vertical", 0, -20, GestureNone},
		{"no movement", 0, 0, GestureNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySwipe(tt.dx, tt.dy, DefaultSwipeThreshold))
		})
	}
}

func TestSwipeAreaReportsGesture(t *testing.T) {
	test.NewApp()

	var got []GestureType
	area := NewSwipeArea(widget.NewLabel("header"), func(g GestureType) {
		got = append(got, g)
	})

	area.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: 30}})
	area.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: 40, DY: 5}})
	area.DragEnd()

	// A short drag afterwards starts from zero and reports nothing
	area.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: 10}})
	area.DragEnd()

	assert.Equal(t, []GestureType{GestureSwipeRight}, got)
}
