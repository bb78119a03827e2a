package sheet

import "image"

// A Chunk is a consecutive run of source frames destined for one output
// sheet. Number is 1-based among all chunks of a run.
type Chunk struct {
	Number int
	Frames []image.Image
}

// Split partitions frames into chunks of at most chunkSize frames each,
// preserving input order; the final chunk may be smaller. chunkSize 0 is
// treated as "all frames in a single chunk". Empty input yields no
// chunks.
func Split(frames []image.Image, chunkSize int) []Chunk {
	if len(frames) == 0 {
		return nil
	}
	if chunkSize <= 0 {
		chunkSize = len(frames)
	}

	var chunks []Chunk
	for i := 0; i < len(frames); i += chunkSize {
		end := i + chunkSize
		if end > len(frames) {
			end = len(frames)
		}
		chunks = append(chunks, Chunk{
			Number: len(chunks) + 1,
			Frames: frames[i:end],
		})
	}
	return chunks
}
