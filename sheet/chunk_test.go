package sheet

import (
	"testing"

	"badc0de.net/pkg/spritesheet/ttesting"
)

func TestSplitPreservesOrder(t *testing.T) {
	frames := ttesting.SolidFrames(7, 4, 4)

	chunks := Split(frames, 3)
	ttesting.AssertEqualInt(t, "chunk count", len(chunks), 3)
	ttesting.AssertEqualInt(t, "chunk 1 size", len(chunks[0].Frames), 3)
	ttesting.AssertEqualInt(t, "chunk 2 size", len(chunks[1].Frames), 3)
	ttesting.AssertEqualInt(t, "chunk 3 size", len(chunks[2].Frames), 1)

	// Concatenating the chunks must reproduce the input exactly.
	i := 0
	for _, c := range chunks {
		for _, f := range c.Frames {
			if f != frames[i] {
				t.Fatalf("frame %d out of order", i)
			}
			i++
		}
	}
	ttesting.AssertEqualInt(t, "total frames", i, len(frames))
}

func TestSplitNumbersChunksFromOne(t *testing.T) {
	chunks := Split(ttesting.SolidFrames(5, 4, 4), 2)
	for i, c := range chunks {
		ttesting.AssertEqualInt(t, "chunk number", c.Number, i+1)
	}
}

func TestSplitUnsetChunkSize(t *testing.T) {
	frames := ttesting.SolidFrames(9, 4, 4)

	chunks := Split(frames, 0)
	ttesting.AssertEqualInt(t, "chunk count", len(chunks), 1)
	ttesting.AssertEqualInt(t, "chunk size", len(chunks[0].Frames), 9)
}

func TestSplitExactMultiple(t *testing.T) {
	chunks := Split(ttesting.SolidFrames(6, 4, 4), 3)
	ttesting.AssertEqualInt(t, "chunk count", len(chunks), 2)
	ttesting.AssertEqualInt(t, "last chunk size", len(chunks[1].Frames), 3)
}

func TestSplitEmptyInput(t *testing.T) {
	if chunks := Split(nil, 3); len(chunks) != 0 {
		t.Errorf("got %d chunks; want none", len(chunks))
	}
}
