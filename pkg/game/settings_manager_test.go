package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdata 在临时目录中创建 gdata 管理器
func newTestGdata(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: "catpong_test",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.ShowHitboxes {
		t.Error("ShowHitboxes: got true, want false")
	}
}

// TestSettingsManagerDegradedMode gdata 为 nil 时只在内存中工作
func TestSettingsManagerDegradedMode(t *testing.T) {
	sm := NewSettingsManager(nil)

	if got := sm.GetSettings(); *got != *DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", *got)
	}
	if sm.ToggleSound() {
		t.Error("ToggleSound should turn sound off")
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save in degraded mode: %v", err)
	}
	if err := sm.Load(); err != nil {
		t.Errorf("Load in degraded mode: %v", err)
	}
	if !sm.GetSettings().SoundEnabled {
		t.Error("Load in degraded mode should restore defaults")
	}
}

// TestSettingsSaveAndLoad 保存后新的管理器能读回相同的设置
func TestSettingsSaveAndLoad(t *testing.T) {
	gdataManager := newTestGdata(t)

	sm := NewSettingsManager(gdataManager)
	sm.SetSoundVolume(0.25)
	sm.ToggleSound()
	sm.SetFullscreen(true)
	sm.ToggleHitboxes()

	if err := sm.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded := NewSettingsManager(gdataManager)
	got := reloaded.GetSettings()
	want := GameSettings{SoundVolume: 0.25, SoundEnabled: false, Fullscreen: true, ShowHitboxes: true}
	if *got != want {
		t.Errorf("reloaded settings = %+v, want %+v", *got, want)
	}
}

// TestSettingsLoadCorrupt 数据损坏时返回错误并使用默认值
func TestSettingsLoadCorrupt(t *testing.T) {
	gdataManager := newTestGdata(t)
	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [unclosed")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	sm := NewSettingsManager(gdataManager)
	if err := sm.Load(); err == nil {
		t.Error("Expected error for corrupt settings")
	}
	if *sm.GetSettings() != *DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", *sm.GetSettings())
	}
}

// TestSettingsLoadPartial 缺少的字段保持默认，越界音量被限制
func TestSettingsLoadPartial(t *testing.T) {
	gdataManager := newTestGdata(t)
	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: 3.5\n")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	settings := NewSettingsManager(gdataManager).GetSettings()
	if settings.SoundVolume != 1.0 {
		t.Errorf("SoundVolume = %v, want clamped 1.0", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled should keep its default")
	}
}

func TestClampVolume(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.5, 1},
	}
	for _, tt := range tests {
		if got := clampVolume(tt.in); got != tt.want {
			t.Errorf("clampVolume(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
