package feedback

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"
)

// Tone is a short synthesized beep; a second frequency makes it a two-note
// chirp.
type Tone struct {
	Freq     float64
	Freq2    float64
	Duration time.Duration
	Volume   float64
}

// Tones is the default sound for every cue.
var Tones = map[Cue]Tone{
	CueStart:       {Freq: 660, Freq2: 990, Duration: 250 * time.Millisecond, Volume: 0.4},
	CueSuccess:     {Freq: 880, Duration: 90 * time.Millisecond, Volume: 0.35},
	CueFailure:     {Freq: 220, Duration: 220 * time.Millisecond, Volume: 0.45},
	CueFinish:      {Freq: 523, Freq2: 784, Duration: 600 * time.Millisecond, Volume: 0.4},
	CueHitTree:     {Freq: 110, Duration: 180 * time.Millisecond, Volume: 0.6},
	CueHitBorder:   {Freq: 150, Duration: 160 * time.Millisecond, Volume: 0.5},
	CueHitSnow:     {Freq: 330, Freq2: 260, Duration: 140 * time.Millisecond, Volume: 0.4},
	CueHitObstacle: {Freq: 180, Duration: 150 * time.Millisecond, Volume: 0.5},
}

// SynthesizeWAV renders t as a 16-bit stereo PCM RIFF file.
func SynthesizeWAV(t Tone, sampleRate int) []byte {
	n := int(t.Duration.Seconds() * float64(sampleRate))
	if n < 0 {
		n = 0
	}
	const channels, bytesPerSample = 2, 2
	dataLen := n * channels * bytesPerSample

	var buf bytes.Buffer
	buf.Grow(44 + dataLen)
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*channels*bytesPerSample))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(channels*bytesPerSample))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(8*bytesPerSample))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(dataLen))

	vol := math.Max(0, math.Min(t.Volume, 1))
	phase := 0.0
	for i := 0; i < n; i++ {
		freq := t.Freq
		if t.Freq2 > 0 && i >= n/2 {
			freq = t.Freq2
		}
		phase += 2 * math.Pi * freq / float64(sampleRate)
		// linear fade out avoids a click at the end
		env := 1 - float64(i)/float64(n)
		s := int16(math.Sin(phase) * env * vol * math.MaxInt16)
		_ = binary.Write(&buf, binary.LittleEndian, s)
		_ = binary.Write(&buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}
