package sound

import (
	"math"
	"testing"
	"time"

	"pixel-wall/internal/wall"
)

func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream never ended")
	return nil
}

func TestClickLengthAndFade(t *testing.T) {
	s, err := Click(wall.Primary, 0)
	if err != nil {
		t.Fatal(err)
	}
	samples := drain(t, s)
	want := sampleRate.N(clickDuration)
	if len(samples) != want {
		t.Fatalf("click has %d samples, expected %d", len(samples), want)
	}

	peak := 0.0
	for _, smp := range samples[:len(samples)/4] {
		peak = math.Max(peak, math.Abs(smp[0]))
	}
	if peak < 0.5 {
		t.Fatalf("start of click too quiet: %f", peak)
	}
	if tail := math.Abs(samples[len(samples)-1][0]); tail > 0.01 {
		t.Fatalf("click should fade to silence, last sample %f", tail)
	}
}

func TestToneRejectsBadFrequency(t *testing.T) {
	if _, err := tone(sampleRate, float64(sampleRate), time.Millisecond, 0); err == nil {
		t.Fatal("a tone at the sample rate cannot be represented and should fail")
	}
}

func TestSilentVolume(t *testing.T) {
	s, err := Click(wall.Secondary, -20)
	if err != nil {
		t.Fatal(err)
	}
	for _, smp := range drain(t, s) {
		if smp[0] != 0 || smp[1] != 0 {
			t.Fatal("silent click produced sound")
		}
	}
}
