//go:build !cgo

package hal

func (h *hostHAL) poll() {}
