package display

import (
	"fmt"

	"github.com/halloran/envnode/internal/logic"
)

// Row positions of the three status lines, in pixels.
const (
	rowMode  = 0
	rowTemp  = 10
	rowLight = 20
)

// placeholder is shown for a channel that was unavailable this cycle.
const placeholder = "--"

// Presenter composes the status frame: mode, temperature, light condition.
type Presenter struct {
	disp           Display
	lightThreshold uint16
}

// NewPresenter creates a presenter over the given display.
func NewPresenter(disp Display, lightThreshold uint16) *Presenter {
	return &Presenter{
		disp:           disp,
		lightThreshold: lightThreshold,
	}
}

// Render draws one full status frame: clear, three lines, flush.
// A nil channel renders its placeholder.
func (p *Presenter) Render(mode logic.Mode, temp *int, light *uint16) error {
	p.disp.Clear()
	p.disp.DrawText(fmt.Sprintf("Mode: %s", mode), 0, rowMode)

	if temp == nil {
		p.disp.DrawText("Temp: -- C", 0, rowTemp)
	} else {
		p.disp.DrawText(fmt.Sprintf("Temp: %d C", *temp), 0, rowTemp)
	}

	if light == nil {
		p.disp.DrawText("Light: "+placeholder, 0, rowLight)
	} else {
		cond := logic.ClassifyLight(*light, p.lightThreshold)
		p.disp.DrawText(fmt.Sprintf("Light: %s", cond), 0, rowLight)
	}

	return p.disp.Flush()
}

// RenderNotice replaces the frame with a single notice line, e.g. when the
// command stream becomes unavailable.
func (p *Presenter) RenderNotice(text string) error {
	p.disp.Clear()
	p.disp.DrawText(text, 0, rowMode)
	return p.disp.Flush()
}
