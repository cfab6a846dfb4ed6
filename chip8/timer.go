package chip8

import "time"

// TimerFrequency is the rate in Hz at which the delay and sound timers count down.
const TimerFrequency = 60

// Timers holds the delay and sound timers. They count down at TimerFrequency
// independent of how many instructions are executed.
type Timers struct {
	Delay byte
	Sound byte

	// accumulated is the elapsed time multiplied by TimerFrequency that did not yet
	// add up to a full timer interval.
	accumulated time.Duration
}

// Tick advances the timers by the elapsed real time and returns the number of
// whole timer intervals that passed. Each non-zero timer is decremented once per
// interval, saturating at zero. The remainder carries over to the next call.
func (t *Timers) Tick(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}

	// only the sub second part is scaled, elapsed * TimerFrequency can overflow
	intervals := int(elapsed/time.Second) * TimerFrequency
	t.accumulated += elapsed % time.Second * TimerFrequency
	intervals += int(t.accumulated / time.Second)
	t.accumulated %= time.Second

	t.Delay = countDown(t.Delay, intervals)
	t.Sound = countDown(t.Sound, intervals)
	return intervals
}

// SoundActive returns whether the sound timer is non-zero, the tone signal for frontends.
func (t *Timers) SoundActive() bool {
	return t.Sound > 0
}

func countDown(value byte, intervals int) byte {
	if intervals <= 0 {
		return value
	}
	if intervals >= int(value) {
		return 0
	}
	return value - byte(intervals)
}
