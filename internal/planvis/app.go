package planvis

import (
	"image"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/op/clip"

	"github.com/wallrobotics/wallplan/internal/core"
)

// App drives a single window showing one plan.
type App struct {
	view *View
}

// NewApp creates a viewer application for plan over surface.
func NewApp(surface core.WorkSurface, plan *core.Plan) *App {
	return &App{view: NewView(surface, plan)}
}

// Run starts the event loop, returning when the window is closed.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
			event.Op(gtx.Ops, tag)
			area.Pop()

			for {
				ev, ok := gtx.Event(pointer.Filter{Target: tag, Kinds: pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll})
				if !ok {
					break
				}
				if pe, ok := ev.(pointer.Event); ok {
					a.view.camera.HandleEvent(pe)
				}
			}

			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press && ke.Name == "R" {
					a.view.camera.Reset()
					a.view.fitted = false
				}
			}

			a.view.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}
