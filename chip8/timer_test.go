package chip8

import (
	"math"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestTimersTick(t *testing.T) {
	tests := []struct {
		name      string
		delay     byte
		sound     byte
		elapsed   []time.Duration
		intervals int
		wantDelay byte
		wantSound byte
	}{
		{
			name:      "one second",
			delay:     100,
			sound:     70,
			elapsed:   []time.Duration{time.Second},
			intervals: 60,
			wantDelay: 40,
			wantSound: 10,
		},
		{
			name:      "saturates at zero",
			delay:     5,
			sound:     0,
			elapsed:   []time.Duration{time.Second},
			intervals: 60,
			wantDelay: 0,
			wantSound: 0,
		},
		{
			name:      "remainder carries over",
			delay:     10,
			sound:     10,
			elapsed:   []time.Duration{10 * time.Millisecond, 10 * time.Millisecond},
			intervals: 1,
			wantDelay: 9,
			wantSound: 9,
		},
		{
			name:      "negative elapsed is ignored",
			delay:     10,
			sound:     10,
			elapsed:   []time.Duration{-time.Second},
			intervals: 0,
			wantDelay: 10,
			wantSound: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timers := Timers{Delay: tt.delay, Sound: tt.sound}
			intervals := 0
			for _, elapsed := range tt.elapsed {
				intervals += timers.Tick(elapsed)
			}
			assert.Equal(t, tt.intervals, intervals)
			assert.Equal(t, tt.wantDelay, timers.Delay)
			assert.Equal(t, tt.wantSound, timers.Sound)
		})
	}
}

func TestTimersMonotonic(t *testing.T) {
	timers := Timers{Delay: 3, Sound: 1}
	previous := timers.Delay

	for range 200 {
		timers.Tick(7 * time.Millisecond)
		assert.True(t, timers.Delay <= previous)
		previous = timers.Delay
	}
	assert.Equal(t, byte(0), timers.Delay)
	assert.False(t, timers.SoundActive())

	timers.Tick(time.Hour)
	assert.Equal(t, byte(0), timers.Delay)

	for _, elapsed := range []time.Duration{math.MaxInt64, math.MaxInt64 / TimerFrequency, 307445734478492526} {
		timers.Tick(elapsed)
		assert.Equal(t, byte(0), timers.Delay)
		assert.Equal(t, byte(0), timers.Sound)
	}
}

func TestTimersLongElapsed(t *testing.T) {
	timers := Timers{Delay: 10, Sound: 10}
	intervals := timers.Tick(307445734478492526)
	assert.True(t, intervals > 0)
	assert.Equal(t, byte(0), timers.Delay)
	assert.Equal(t, byte(0), timers.Sound)

	// the sub second remainder still carries over
	timers = Timers{Delay: 10}
	assert.Equal(t, 60, timers.Tick(time.Second+10*time.Millisecond))
	assert.Equal(t, 1, timers.Tick(10*time.Millisecond))
	assert.Equal(t, byte(0), timers.Delay)
}

func TestTimersFrameTicks(t *testing.T) {
	timers := Timers{Delay: 60}
	total := 0
	for frame := range time.Duration(60) {
		elapsed := time.Second*(frame+1)/60 - time.Second*frame/60
		total += timers.Tick(elapsed)
	}
	assert.Equal(t, 60, total)
	assert.Equal(t, byte(0), timers.Delay)
}
