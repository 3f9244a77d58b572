package petro

import "fmt"

// InvalidRangeError rejects a depth window before any computation:
// from >= to, or the window misses every available curve.
type InvalidRangeError struct {
	From, To float64
	Reason   string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid depth range %.2f-%.2f: %s", e.From, e.To, e.Reason)
}

// ValidationError rejects an out-of-physical-bounds calculation parameter.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}
