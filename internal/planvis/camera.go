// Package planvis renders a single coverage plan over its work surface: the
// occupancy grid, obstacle outlines, and the planned waypoint polyline.
// It reuses the pan/zoom camera and low-level clip.Path drawing primitives
// from the teacher project's MAPF visualizer, adapted for one static plan
// instead of a live multi-robot timeline.
package planvis

import (
	"gioui.org/io/pointer"
)

// Camera manages the view transform (pan and zoom) between world meters and
// screen pixels.
type Camera struct {
	OffsetX float32
	OffsetY float32
	Zoom    float32

	dragging bool
	lastX    float32
	lastY    float32
}

// NewCamera creates a camera offset 40px from the screen origin with a
// modest default zoom, since
// plans are authored in meters rather than the MAPF grid's pixel units.
func NewCamera() *Camera {
	return &Camera{OffsetX: 40, OffsetY: 40, Zoom: 400}
}

// Reset restores the default view.
func (c *Camera) Reset() {
	c.OffsetX = 40
	c.OffsetY = 40
	c.Zoom = 400
}

// WorldToScreen converts world meters to screen pixels.
func (c *Camera) WorldToScreen(worldX, worldY float64) (screenX, screenY float32) {
	screenX = float32(worldX)*c.Zoom + c.OffsetX
	screenY = float32(worldY)*c.Zoom + c.OffsetY
	return
}

// ScreenToWorld converts screen pixels to world meters.
func (c *Camera) ScreenToWorld(screenX, screenY float32) (worldX, worldY float64) {
	worldX = float64((screenX - c.OffsetX) / c.Zoom)
	worldY = float64((screenY - c.OffsetY) / c.Zoom)
	return
}

// HandleEvent processes a pointer event for panning and scroll-to-zoom.
func (c *Camera) HandleEvent(ev pointer.Event) {
	switch ev.Kind {
	case pointer.Press:
		c.dragging = ev.Buttons.Contain(pointer.ButtonSecondary) || ev.Buttons.Contain(pointer.ButtonTertiary)
		c.lastX, c.lastY = ev.Position.X, ev.Position.Y

	case pointer.Drag:
		if c.dragging {
			c.OffsetX += ev.Position.X - c.lastX
			c.OffsetY += ev.Position.Y - c.lastY
		}
		c.lastX, c.lastY = ev.Position.X, ev.Position.Y

	case pointer.Release:
		c.dragging = false

	case pointer.Scroll:
		if ev.Scroll.Y == 0 {
			return
		}
		worldX, worldY := c.ScreenToWorld(ev.Position.X, ev.Position.Y)

		factor := float32(1.1)
		if ev.Scroll.Y > 0 {
			c.Zoom /= factor
		} else {
			c.Zoom *= factor
		}
		if c.Zoom < 10 {
			c.Zoom = 10
		}
		if c.Zoom > 4000 {
			c.Zoom = 4000
		}

		newX, newY := c.WorldToScreen(worldX, worldY)
		c.OffsetX += ev.Position.X - newX
		c.OffsetY += ev.Position.Y - newY
	}
}

// FitBounds sizes and centers the camera to fit a world-space rectangle
// within the given screen dimensions, leaving margin pixels on each side.
func (c *Camera) FitBounds(minX, minY, maxX, maxY float64, screenWidth, screenHeight, margin float32) {
	worldW := maxX - minX
	worldH := maxY - minY
	if worldW <= 0 || worldH <= 0 {
		return
	}

	availW := screenWidth - 2*margin
	availH := screenHeight - 2*margin

	zoomX := availW / float32(worldW)
	zoomY := availH / float32(worldH)
	c.Zoom = zoomX
	if zoomY < zoomX {
		c.Zoom = zoomY
	}
	if c.Zoom < 10 {
		c.Zoom = 10
	}
	if c.Zoom > 4000 {
		c.Zoom = 4000
	}

	centerX := (minX + maxX) / 2
	centerY := (minY + maxY) / 2
	c.OffsetX = screenWidth/2 - float32(centerX)*c.Zoom
	c.OffsetY = screenHeight/2 - float32(centerY)*c.Zoom
}
