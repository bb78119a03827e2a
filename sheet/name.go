package sheet

import (
	"fmt"
	"time"
)

// stubbed in tests
var timeNow = time.Now

// FileName derives the output file name for one chunk. With a prefix the
// name is stable across runs, so a rerun overwrites. Without one, a UTC
// timestamp with microsecond precision plus the chunk number is used;
// the chunk number keeps chunks of a single run from colliding on the
// same clock instant.
func FileName(prefix string, chunkNumber int) string {
	if prefix != "" {
		return fmt.Sprintf("%s-%02d.png", prefix, chunkNumber)
	}
	stamp := timeNow().UTC().Format("2006-01-02T15:04:05.000000")
	return fmt.Sprintf("spritesheet_%s-%02d.png", stamp, chunkNumber)
}
