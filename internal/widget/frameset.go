package widget

import (
	"errors"
	"fmt"

	"geowidgets/internal/vector"
)

// ErrFrameOutOfRange is returned when a mode selects a frame that was never
// registered. Frame counts must cover the largest mode the publisher sets.
var ErrFrameOutOfRange = errors.New("frame index out of range")

// FrameSet is an ordered, append-only list of images indexed by variant.
type FrameSet struct {
	frames []*vector.Image
}

// Append adds img and returns the new length.
func (fs *FrameSet) Append(img *vector.Image) int {
	fs.frames = append(fs.frames, img)
	return len(fs.frames)
}

// Len returns the number of registered frames.
func (fs *FrameSet) Len() int { return len(fs.frames) }

// At returns frame i.
func (fs *FrameSet) At(i int) (*vector.Image, error) {
	if i < 0 || i >= len(fs.frames) {
		return nil, fmt.Errorf("frame %d of %d: %w", i, len(fs.frames), ErrFrameOutOfRange)
	}
	return fs.frames[i], nil
}
