package widget

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObserverAppliesOncePerChange(t *testing.T) {
	src := &cell{}
	o := NewModeObserver()
	o.Bind(src)

	var applied []int
	apply := func(m int) error {
		applied = append(applied, m)
		return nil
	}

	assert.False(t, o.Observe(apply), "unset value is ignored")
	assert.Equal(t, UnsetMode, o.Cached())

	src.Set(0)
	assert.True(t, o.Observe(apply), "first mode always applies, even 0")
	for i := 0; i < 10; i++ {
		assert.False(t, o.Observe(apply))
	}
	src.Set(1)
	assert.True(t, o.Observe(apply))
	assert.False(t, o.Observe(apply))

	assert.Equal(t, []int{0, 1}, applied)
	assert.Equal(t, 1, o.Cached())
}

func TestObserverUnboundNeverApplies(t *testing.T) {
	o := NewModeObserver()
	assert.False(t, o.Bound())
	assert.False(t, o.Observe(func(int) error {
		t.Fatal("apply called on unbound observer")
		return nil
	}))
}

func TestObserverRecordsFailedMode(t *testing.T) {
	src := &cell{}
	src.Set(7)
	o := NewModeObserver()
	o.Bind(IntFunc(src.Int))

	calls := 0
	fail := func(int) error {
		calls++
		return ErrFrameOutOfRange
	}
	assert.False(t, o.Observe(fail))
	assert.False(t, o.Observe(fail))
	assert.Equal(t, 1, calls, "a bad mode is reported once")
	assert.Equal(t, 7, o.Cached())

	// Leaving the bad mode applies the next one normally.
	src.Set(0)
	applied := -1
	assert.True(t, o.Observe(func(m int) error {
		applied = m
		return nil
	}))
	assert.Equal(t, 0, applied)
	assert.Equal(t, 0, o.Cached())
}

func TestInvalidation(t *testing.T) {
	var inv Invalidation
	n := changes(&inv)
	inv.OnChange(nil)

	assert.False(t, inv.IsDirty())
	inv.MarkDirty()
	assert.True(t, inv.IsDirty())
	assert.Equal(t, 1, *n)
	inv.ClearDirty()
	assert.False(t, inv.IsDirty())
}

func TestOversampleHint(t *testing.T) {
	b := newBase(ScrewSize)
	assert.Equal(t, 2.0, b.Oversample(1.0))
	assert.Equal(t, 2.0, b.Oversample(1.0000001))
	assert.Equal(t, 1.0, b.Oversample(2.0))
}

func TestFrameSetBounds(t *testing.T) {
	var fs FrameSet
	a := svg(t, "a", 10, 10)
	assert.Equal(t, 1, fs.Append(a))

	got, err := fs.At(0)
	assert.NoError(t, err)
	assert.Same(t, a, got)

	_, err = fs.At(1)
	assert.True(t, errors.Is(err, ErrFrameOutOfRange))
	_, err = fs.At(-1)
	assert.ErrorIs(t, err, ErrFrameOutOfRange)
}
