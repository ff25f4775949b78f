package gesture

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gmath"
)

// Pointer polls the primary pointer of ebiten. A touch takes precedence over
// the mouse. Must be polled from within the Update of the game.
type Pointer struct {
	// ToWorld transforms screen coordinates into the coordinate space of
	// the view.
	ToWorld ebiten.GeoM

	touchIds []ebiten.TouchID

	touching bool
	touchId  ebiten.TouchID
}

// Poll returns the current pointer position and whether it is pressed.
func (p *Pointer) Poll() (gmath.Vec, bool) {
	if p.touching {
		return p.pollTouch()
	}

	// re-use touchId buffer
	p.touchIds = inpututil.AppendJustPressedTouchIDs(p.touchIds[:0])
	for _, touchId := range p.touchIds {
		p.touching = true
		p.touchId = touchId
		return p.pollTouch()
	}

	mouseX, mouseY := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return transformCursor(p.ToWorld, mouseX, mouseY), pressed
}

func (p *Pointer) pollTouch() (gmath.Vec, bool) {
	if inpututil.IsTouchJustReleased(p.touchId) || !p.touchActive() {
		p.touching = false

		touchX, touchY := inpututil.TouchPositionInPreviousTick(p.touchId)
		return transformCursor(p.ToWorld, touchX, touchY), false
	}

	touchX, touchY := ebiten.TouchPosition(p.touchId)
	return transformCursor(p.ToWorld, touchX, touchY), true
}

func (p *Pointer) touchActive() bool {
	p.touchIds = ebiten.AppendTouchIDs(p.touchIds[:0])
	for _, touchId := range p.touchIds {
		if touchId == p.touchId {
			return true
		}
	}

	return false
}

func transformCursor(tr ebiten.GeoM, x, y int) gmath.Vec {
	wx, wy := tr.Apply(float64(x), float64(y))
	return gmath.Vec{X: wx, Y: wy}
}
