package feedback

import (
	"encoding/binary"
	"testing"
	"time"
)

func TestSynthesizeWAV(t *testing.T) {
	const rate = 44100
	wav := SynthesizeWAV(Tone{Freq: 440, Duration: 100 * time.Millisecond, Volume: 0.5}, rate)

	if string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" || string(wav[36:40]) != "data" {
		t.Fatalf("bad header % x", wav[:44])
	}
	dataLen := binary.LittleEndian.Uint32(wav[40:44])
	if want := uint32(4410 * 4); dataLen != want {
		t.Fatalf("expected %d data bytes, got %d", want, dataLen)
	}
	if len(wav) != 44+int(dataLen) {
		t.Fatalf("expected %d bytes, got %d", 44+dataLen, len(wav))
	}
	if got := binary.LittleEndian.Uint32(wav[24:28]); got != rate {
		t.Fatalf("expected sample rate %d, got %d", rate, got)
	}
}

func TestEveryCueHasATone(t *testing.T) {
	for c := CueStart; c <= CueHitObstacle; c++ {
		if _, ok := Tones[c]; !ok {
			t.Fatalf("cue %v has no tone", c)
		}
	}
}
