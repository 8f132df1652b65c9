package panels

import (
	"fmt"
	"regexp"
	"sync/atomic"
)

// headerSeq backs generated header ids. It only ever increments and is
// never reset while the process lives.
var headerSeq atomic.Uint64

var generatedIDPattern = regexp.MustCompile(`^panel(-\d+|_\d+_header)$`)

// IsGeneratedID reports whether id has the shape of a container or header
// id that panels assign themselves. Explicit ids must not take that shape.
func IsGeneratedID(id string) bool {
	return generatedIDPattern.MatchString(id)
}

func nextHeaderID() string {
	return fmt.Sprintf("panel_%d_header", headerSeq.Add(1))
}
