package selection

import (
	"errors"
)

// ErrInsufficientCapability indicates that no model candidate, including the
// built-in fallback list, fits the resolved memory budget. If returned in
// conjunction with an HTTP request, it should be paired with a 422 response
// status.
var ErrInsufficientCapability = errors.New("insufficient VRAM/memory")
