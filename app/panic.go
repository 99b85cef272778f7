package app

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"calcpad/hal"
)

// ErrPanic is returned by the step function after it recovered from a panic.
var ErrPanic = errors.New("panic")

// guard runs step, turning a panic into ErrPanic after logging the value and stack.
func guard(l hal.Logger, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if l != nil {
				l.WriteLineString(fmt.Sprintf("calcpad panic: %v", v))
				for _, line := range strings.Split(string(debug.Stack()), "\n") {
					if line == "" {
						continue
					}
					l.WriteLineString(line)
				}
			}
			err = fmt.Errorf("%w: %v", ErrPanic, v)
		}()
		return step()
	}
}
