package game

import (
	"testing"

	"github.com/decker502/catpong/pkg/components"
	"github.com/decker502/catpong/pkg/config"
)

func TestAudioManagerSoundDisabled(t *testing.T) {
	sm := NewSettingsManager(nil)
	sm.SetSoundEnabled(false)
	am := NewAudioManager(NewResourceManager(nil), sm)

	if am.SoundEnabled() {
		t.Error("SoundEnabled should follow settings")
	}
	if am.PlaySound(config.SoundSmash) {
		t.Error("PlaySound should fail when sound is disabled")
	}
	if am.Played() != 0 {
		t.Errorf("Played = %d, want 0", am.Played())
	}
}

func TestAudioManagerMissingSound(t *testing.T) {
	am := NewAudioManager(NewResourceManager(nil), nil)

	if !am.SoundEnabled() {
		t.Error("sound should default to enabled without a settings manager")
	}
	if am.PlaySound("SOUND_UNKNOWN") {
		t.Error("PlaySound should fail for a sound that was never loaded")
	}

	events := components.NewFrameEvents()
	events.Launched = true
	events.Smash = components.PlayerIndex
	if played := am.PlayFrameEvents(events); played != 0 {
		t.Errorf("PlayFrameEvents played %d sounds without loaded players", played)
	}
}

func TestAudioManagerNilResourceManager(t *testing.T) {
	am := NewAudioManager(nil, nil)
	if am.PlaySound(config.SoundScore) {
		t.Error("PlaySound should fail without a resource manager")
	}
}
