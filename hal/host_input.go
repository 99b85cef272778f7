package hal

const inputQueueLen = 64

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, inputQueueLen)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// push queues ev, dropping it when the consumer is behind.
func (k *hostKeyboard) push(ev KeyEvent) bool {
	select {
	case k.ch <- ev:
		return true
	default:
		return false
	}
}

type hostPointer struct {
	ch chan Tap
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan Tap, inputQueueLen)}
}

func (p *hostPointer) Taps() <-chan Tap { return p.ch }

func (p *hostPointer) push(t Tap) bool {
	select {
	case p.ch <- t:
		return true
	default:
		return false
	}
}

// scriptEvent converts a scripted character to a key event. '\n' and '\r' become Enter,
// '\b' Backspace and 0x1b Escape.
func scriptEvent(r rune) KeyEvent {
	switch r {
	case '\n', '\r':
		return KeyEvent{Code: KeyEnter, Press: true}
	case '\b':
		return KeyEvent{Code: KeyBackspace, Press: true}
	case 0x1b:
		return KeyEvent{Code: KeyEscape, Press: true}
	}
	return KeyEvent{Press: true, Rune: r}
}
