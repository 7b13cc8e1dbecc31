package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSecondsRounds(t *testing.T) {
	assert.Equal(t, 100*time.Millisecond, Seconds(0.1))
	assert.Equal(t, 16666667*time.Nanosecond, Seconds(1.0/60))
	assert.Equal(t, time.Duration(0), Seconds(0))
}

func TestRepeatingTimerFiresOncePerPeriod(t *testing.T) {
	for _, dt := range []float64{0.1, 0.25, 0.5, 1.0} {
		timer := NewRepeatingTimer(time.Second)
		ticksPerPeriod := int(1.0/dt + 0.5)
		fired := 0
		for tick := 1; tick <= ticksPerPeriod*5; tick++ {
			n := timer.Tick(dt)
			if n > 0 {
				fired += n
				assert.Equal(t, 0, tick%ticksPerPeriod, "dt=%v fired on tick %d", dt, tick)
				assert.True(t, timer.JustFinished())
			} else {
				assert.False(t, timer.JustFinished())
			}
		}
		assert.Equal(t, 5, fired, "dt=%v", dt)
		assert.Equal(t, time.Second, timer.Remaining)
	}
}

func TestRepeatingTimerCarriesRemainder(t *testing.T) {
	timer := NewRepeatingTimer(time.Second)

	assert.Equal(t, 0, timer.Tick(0.75))
	assert.Equal(t, 1, timer.Tick(0.5))
	assert.Equal(t, 750*time.Millisecond, timer.Remaining)
}

func TestRepeatingTimerCountsSkippedPeriods(t *testing.T) {
	timer := NewRepeatingTimer(time.Second)

	assert.Equal(t, 3, timer.Tick(3.2))
	assert.Equal(t, 3, timer.TimesFinished())
	assert.Equal(t, 800*time.Millisecond, timer.Remaining)

	assert.Equal(t, 0, timer.Tick(0.1))
	assert.Equal(t, 0, timer.TimesFinished())
}

func TestRepeatingTimerZeroPeriodNeverFires(t *testing.T) {
	timer := &RepeatingTimer{}
	assert.Equal(t, 0, timer.Tick(1))
	assert.False(t, timer.JustFinished())
}

func TestLifetime(t *testing.T) {
	l := NewLifetime(10 * time.Second)
	for i := 0; i < 99; i++ {
		assert.False(t, l.Tick(0.1))
	}
	assert.True(t, l.Tick(0.1))
}
