package source

import "context"

// sampleFrame is a status line captured from a real controller. Used
// when no device is attached (config `source: fixture`) so the full
// decode and presentation path stays exercisable on a dev machine.
const sampleFrame = "dr\tV1.31\t35\t12\t1\t1\t1\t235\t175\t245\t759\t650\t25\t90\t189.5\t190.03\t1.1435\t217.29\t778\t91725\t0\t-7\t7.9\t525\t368\t358\t240\t1\t12010023021000023\t759\t6\r\n"

// FixtureSource replays the canned sample frame on every poll.
type FixtureSource struct{}

// NewFixtureSource returns a source that never touches hardware.
func NewFixtureSource() *FixtureSource {
	return &FixtureSource{}
}

// ReadFrame returns a fresh copy of the sample frame so callers may
// slice it up without aliasing each other.
func (s *FixtureSource) ReadFrame(ctx context.Context) ([]byte, error) {
	return []byte(sampleFrame), nil
}
