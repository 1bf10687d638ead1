// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package garr

import "fmt"

// LengthError reports an element count mismatch at a conversion boundary.
// It is the only error type this package defines; match it with
// [errors.As].
//
// Contract violations on cursor objects (writing past the end of a
// [Builder], taking from a drained [Consumer], completing an unfilled
// builder) are not reported as errors. They panic.
type LengthError struct {
	// Got is the element count observed at the boundary. A source that
	// yields more elements than the destination holds is abandoned at the
	// first excess element, so Got reports Want+1 then, not the full count.
	Got int
	// Want is the element count required by the destination layout.
	Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("garr: length mismatch: got %d elements, want %d", e.Got, e.Want)
}
