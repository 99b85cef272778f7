//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var polledKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyNumpadEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyBackspace, KeyBackspace},
	{ebiten.KeyDelete, KeyDelete},
}

func (h *hostHAL) poll() {
	for _, r := range ebiten.AppendInputChars(nil) {
		h.kbd.push(KeyEvent{Press: true, Rune: r})
	}

	for _, pk := range polledKeys {
		if inpututil.IsKeyJustPressed(pk.key) {
			h.kbd.push(KeyEvent{Code: pk.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(pk.key) {
			h.kbd.push(KeyEvent{Code: pk.code, Press: false})
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		h.ptr.push(Tap{X: x, Y: y})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		h.ptr.push(Tap{X: x, Y: y})
	}
}
