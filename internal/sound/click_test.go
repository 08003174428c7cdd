package sound

import (
	"math"
	"testing"
)

func TestClickToneStream(t *testing.T) {
	c := newClickTone()
	buf := make([][2]float64, 512)

	total := 0
	for {
		n, ok := c.Stream(buf)
		for i := 0; i < n; i++ {
			l, r := buf[i][0], buf[i][1]
			if l != r {
				t.Fatalf("sample %d: click is not mono: %v vs %v", total+i, l, r)
			}
			if math.Abs(l) > 1 {
				t.Fatalf("sample %d: amplitude %v out of [-1, 1]", total+i, l)
			}
			if math.IsNaN(l) {
				t.Fatalf("sample %d: NaN sample", total+i)
			}
		}
		total += n
		if !ok {
			break
		}
	}

	want := sampleRate.N(clickLength)
	if total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}

	// Drained streamer stays drained.
	if n, ok := c.Stream(buf); n != 0 || ok {
		t.Errorf("drained streamer returned n=%d ok=%v", n, ok)
	}
}

func TestClickToneDecays(t *testing.T) {
	c := newClickTone()
	buf := make([][2]float64, c.total)
	c.Stream(buf)

	peakEarly, peakLate := 0.0, 0.0
	half := len(buf) / 2
	for i, s := range buf {
		a := math.Abs(s[0])
		if i < half && a > peakEarly {
			peakEarly = a
		}
		if i >= half && a > peakLate {
			peakLate = a
		}
	}
	if peakLate >= peakEarly {
		t.Errorf("burst does not decay: early peak %v, late peak %v", peakEarly, peakLate)
	}
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	p.Click() // must not panic
	if !p.Muted() {
		t.Error("nil player reports unmuted")
	}
	if !p.ToggleMute() {
		t.Error("nil player ToggleMute reported unmuted")
	}
}

func TestToggleMute(t *testing.T) {
	p := &Player{}
	if p.Muted() {
		t.Fatal("fresh player is muted")
	}
	if !p.ToggleMute() {
		t.Error("first toggle did not mute")
	}
	if p.ToggleMute() {
		t.Error("second toggle did not unmute")
	}
}
