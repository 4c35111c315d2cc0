package main

import (
	"log"
	"time"

	"github.com/decker502/catpong/pkg/components"
	"github.com/decker502/catpong/pkg/config"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// tone 一个合成音效：频率（Hz）和时长
type tone struct {
	freq     int
	duration time.Duration
}

// tones 每个音效ID对应的合成音
var tones = map[string]tone{
	config.SoundLaunch:   {freq: 440, duration: 60 * time.Millisecond},
	config.SoundBounce:   {freq: 330, duration: 40 * time.Millisecond},
	config.SoundSmash:    {freq: 880, duration: 50 * time.Millisecond},
	config.SoundScore:    {freq: 660, duration: 150 * time.Millisecond},
	config.SoundGameOver: {freq: 220, duration: 400 * time.Millisecond},
}

// beeper 终端版音效播放器
// 扬声器初始化失败时静默运行
type beeper struct {
	ready   bool
	enabled bool
}

func newBeeper(enabled bool) *beeper {
	b := &beeper{enabled: enabled}
	if !enabled {
		return b
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// 非致命错误，没有声音也能玩
		log.Printf("[Term] Audio initialization failed: %v", err)
		return b
	}
	b.ready = true
	return b
}

// playEvents 播放一帧事件对应的音效，返回播放的数量
func (b *beeper) playEvents(events components.FrameEvents) int {
	if !b.ready || !b.enabled {
		return 0
	}

	played := 0
	for _, id := range config.SoundsForEvents(events) {
		t, ok := tones[id]
		if !ok {
			continue
		}
		sine, err := generators.SineTone(sampleRate, float64(t.freq))
		if err != nil {
			log.Printf("[Term] Failed to create tone for %s: %v", id, err)
			continue
		}
		speaker.Play(beep.Take(sampleRate.N(t.duration), sine))
		played++
	}
	return played
}

func (b *beeper) close() {
	if b.ready {
		speaker.Close()
	}
}
