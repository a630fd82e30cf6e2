package main

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/slalom/feedback"
)

const sampleRate = 44100

// audio.NewContext may only be called once per process.
var audioContext *audio.Context

type soundBank struct {
	players map[feedback.Cue]*audio.Player
}

func newSoundBank() *soundBank {
	if audioContext == nil {
		audioContext = audio.NewContext(sampleRate)
	}

	b := &soundBank{players: make(map[feedback.Cue]*audio.Player, len(feedback.Tones))}
	for cue, tone := range feedback.Tones {
		stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(feedback.SynthesizeWAV(tone, sampleRate)))
		if err != nil {
			log.Printf("audio: decode %s: %v", cue, err)
			continue
		}
		player, err := audioContext.NewPlayer(stream)
		if err != nil {
			log.Printf("audio: player %s: %v", cue, err)
			continue
		}
		b.players[cue] = player
	}
	return b
}

// Play restarts the cue's tone. Unknown cues are silent.
func (b *soundBank) Play(cue feedback.Cue) {
	player, ok := b.players[cue]
	if !ok {
		return
	}
	if err := player.Rewind(); err != nil {
		log.Printf("audio: rewind %s: %v", cue, err)
		return
	}
	player.Play()
}

func (b *soundBank) Close() {
	for _, p := range b.players {
		_ = p.Close()
	}
}
