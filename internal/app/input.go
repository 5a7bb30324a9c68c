//go:build ebiten

package app

import (
	"lifegrid/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyEvents = []struct {
	keys []ebiten.Key
	kind sim.EventKind
}{
	{[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyEnter, ebiten.KeyQ}, sim.EventQuit},
	{[]ebiten.Key{ebiten.KeySpace}, sim.EventTogglePause},
	{[]ebiten.Key{ebiten.KeyN}, sim.EventStepOnce},
	{[]ebiten.Key{ebiten.KeyS}, sim.EventSave},
	{[]ebiten.Key{ebiten.KeyC}, sim.EventClear},
}

// ebitenInput turns this frame's key and mouse presses into events.
type ebitenInput struct{}

// Poll implements sim.InputSource. It never blocks: inpututil reports only
// what happened since the previous frame.
func (ebitenInput) Poll() []sim.Event {
	var evs []sim.Event
	for _, ke := range keyEvents {
		for _, k := range ke.keys {
			if inpututil.IsKeyJustPressed(k) {
				evs = append(evs, sim.Event{Kind: ke.kind})
				break
			}
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		evs = append(evs, sim.Click(x, y))
	}
	return evs
}
