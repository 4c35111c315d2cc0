package game

import (
	"log"

	"github.com/decker502/catpong/pkg/components"
	"github.com/decker502/catpong/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 通过资源ID播放音效，并应用 SettingsManager 中的开关和音量
type AudioManager struct {
	resourceManager *ResourceManager // 资源管理器（用于查找已加载的播放器）
	settingsManager *SettingsManager // 设置管理器，可为 nil
	played          int              // 已播放的音效数（调试用）
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例，音效需已通过 LoadResourceGroup 加载
//   - sm: SettingsManager 实例（可为 nil，此时总是以默认音量播放）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
	}
}

// PlaySound 播放音效，单次播放
//
// 参数：
//   - soundID: 音效资源ID（如 config.SoundSmash）
//
// 返回：
//   - bool: 是否成功播放（音效关闭或未加载时返回 false）
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.SoundEnabled() {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	am.played++
	return true
}

// PlayFrameEvents 播放一帧模拟事件对应的音效
//
// 返回：
//   - int: 实际播放的音效数
func (am *AudioManager) PlayFrameEvents(events components.FrameEvents) int {
	played := 0
	for _, id := range config.SoundsForEvents(events) {
		if am.PlaySound(id) {
			played++
		}
	}
	return played
}

// SoundEnabled 返回音效是否开启
func (am *AudioManager) SoundEnabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

// Played 返回已播放的音效总数
func (am *AudioManager) Played() int {
	return am.played
}

func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if am.resourceManager == nil {
		return nil
	}
	player := am.resourceManager.GetSoundByID(soundID)
	if player == nil {
		log.Printf("[AudioManager] Warning: Sound not loaded: %s", soundID)
	}
	return player
}

func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager == nil {
		return DefaultSettings().SoundVolume
	}
	return am.settingsManager.GetSettings().SoundVolume
}
