package config

import (
	"fmt"
	"os"
	"path"

	"github.com/decker502/catpong/pkg/components"
	"gopkg.in/yaml.v3"
)

// ResourceConfig 资源配置（assets/config/resources.yaml）
//
// 结构:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  match:
//	    images: [...]
//	    sounds: [...]
//	clips:
//	  idle: IMAGE_CAT_IDLE
//	  moving: IMAGE_CAT_MOVING
//	  attacking: IMAGE_CAT_ATTACKING
//	  ball: IMAGE_BALL
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // 配置文件版本
	BasePath string                   `yaml:"base_path"` // 所有资源的根目录（如 "assets"）
	Groups   map[string]ResourceGroup `yaml:"groups"`    // 资源分组
	Clips    map[string]string        `yaml:"clips"`     // 动画片段名 -> 图片资源ID
}

// ResourceGroup 一组可以一起加载的资源
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
}

// ImageResource 图片资源定义
//
// 精灵图为横向排列的等宽帧：
//   - Cols: 帧数，省略（0）时视为单帧图片
//   - Speed: 每前进一帧需要的 tick 数，省略（0）时为 1
//
// 示例:
//
//	- id: IMAGE_CAT_IDLE
//	  path: images/cat_idle.png
//	  cols: 4
//	  speed: 10
type ImageResource struct {
	ID    string `yaml:"id"`
	Path  string `yaml:"path"`
	Cols  int    `yaml:"cols,omitempty"`
	Speed int    `yaml:"speed,omitempty"`
}

// SoundResource 音效资源定义
type SoundResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// 动画片段名称
const (
	ClipIdle      = "idle"
	ClipMoving    = "moving"
	ClipAttacking = "attacking"
	ClipBall      = "ball"
)

// RequiredClips 游戏运行必须定义的动画片段
var RequiredClips = []string{ClipIdle, ClipMoving, ClipAttacking, ClipBall}

// LoadResourceConfig 从文件系统加载资源配置
//
// 参数:
//   - configPath: 配置文件路径（如 "assets/config/resources.yaml"）
//
// 返回:
//   - *ResourceConfig: 已通过校验的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadResourceConfig(configPath string) (*ResourceConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource config: %w", err)
	}
	return ParseResourceConfig(data)
}

// ParseResourceConfig 解析并校验 YAML 格式的资源配置
// 嵌入资源（embed.FS）读取出字节后调用此函数
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resource config: %w", err)
	}

	return &cfg, nil
}

// Validate 校验配置
//
// 检查:
//   - 资源ID唯一且路径非空
//   - 帧数 cols 和速度 speed 不能为负（0 表示使用默认值 1）
//   - 所有必需的动画片段都已定义，并且引用了存在的图片
//
// 帧数 >= 1 的约束在这里保证，模拟代码不再检查除零
func (c *ResourceConfig) Validate() error {
	ids := make(map[string]bool)

	for groupName, group := range c.Groups {
		for _, img := range group.Images {
			if img.ID == "" {
				return fmt.Errorf("group '%s': image with empty id", groupName)
			}
			if ids[img.ID] {
				return fmt.Errorf("group '%s': duplicate resource id '%s'", groupName, img.ID)
			}
			ids[img.ID] = true

			if img.Path == "" {
				return fmt.Errorf("image '%s': empty path", img.ID)
			}
			if img.Cols < 0 {
				return fmt.Errorf("image '%s': cols must be >= 1, got %d", img.ID, img.Cols)
			}
			if img.Speed < 0 {
				return fmt.Errorf("image '%s': speed must be >= 1, got %d", img.ID, img.Speed)
			}
		}

		for _, snd := range group.Sounds {
			if snd.ID == "" {
				return fmt.Errorf("group '%s': sound with empty id", groupName)
			}
			if ids[snd.ID] {
				return fmt.Errorf("group '%s': duplicate resource id '%s'", groupName, snd.ID)
			}
			ids[snd.ID] = true

			if snd.Path == "" {
				return fmt.Errorf("sound '%s': empty path", snd.ID)
			}
		}
	}

	for _, name := range RequiredClips {
		imageID, ok := c.Clips[name]
		if !ok {
			return fmt.Errorf("missing clip '%s'", name)
		}
		if _, found := c.FindImage(imageID); !found {
			return fmt.Errorf("clip '%s' references unknown image '%s'", name, imageID)
		}
	}

	return nil
}

// FindImage 按ID查找图片资源
func (c *ResourceConfig) FindImage(id string) (ImageResource, bool) {
	for _, group := range c.Groups {
		for _, img := range group.Images {
			if img.ID == id {
				return img, true
			}
		}
	}
	return ImageResource{}, false
}

// ImagePath 返回图片资源的完整路径（base_path + path）
func (c *ResourceConfig) ImagePath(id string) (string, bool) {
	img, ok := c.FindImage(id)
	if !ok {
		return "", false
	}
	return path.Join(c.BasePath, img.Path), true
}

// SoundPaths 返回所有音效的 资源ID -> 完整路径 映射
func (c *ResourceConfig) SoundPaths() map[string]string {
	paths := make(map[string]string)
	for _, group := range c.Groups {
		for _, snd := range group.Sounds {
			paths[snd.ID] = path.Join(c.BasePath, snd.Path)
		}
	}
	return paths
}

// TextureSizeFunc 返回图片资源的像素尺寸
// 桌面端从已解码的纹理读取，终端驱动只解析 PNG 头
type TextureSizeFunc func(imageID string) (width, height int, err error)

// BuildClips 根据配置构建猫咪的三个动画片段和球的片段
//
// 参数:
//   - cfg: 已校验的资源配置
//   - size: 纹理尺寸查询函数
//
// 返回:
//   - *components.ClipSet: 猫咪动画片段
//   - *components.Animation: 球的片段
//   - error: 纹理尺寸无法获取或与帧数不匹配时返回错误
func BuildClips(cfg *ResourceConfig, size TextureSizeFunc) (*components.ClipSet, *components.Animation, error) {
	build := func(name string) (*components.Animation, error) {
		img, ok := cfg.FindImage(cfg.Clips[name])
		if !ok {
			return nil, fmt.Errorf("clip '%s' references unknown image '%s'", name, cfg.Clips[name])
		}

		width, height, err := size(img.ID)
		if err != nil {
			return nil, fmt.Errorf("clip '%s': %w", name, err)
		}

		frames := img.Cols
		if frames == 0 {
			frames = 1
		}
		speed := img.Speed
		if speed == 0 {
			speed = 1
		}
		if width < frames || height <= 0 {
			return nil, fmt.Errorf("clip '%s': texture %dx%d too small for %d frames", name, width, height, frames)
		}

		return &components.Animation{
			Name:          name,
			ImageID:       img.ID,
			FrameCount:    frames,
			Speed:         speed,
			TextureWidth:  width,
			TextureHeight: height,
		}, nil
	}

	clips := &components.ClipSet{}
	var err error
	if clips.Idle, err = build(ClipIdle); err != nil {
		return nil, nil, err
	}
	if clips.Moving, err = build(ClipMoving); err != nil {
		return nil, nil, err
	}
	if clips.Attacking, err = build(ClipAttacking); err != nil {
		return nil, nil, err
	}

	ball, err := build(ClipBall)
	if err != nil {
		return nil, nil, err
	}

	return clips, ball, nil
}

// 音效资源ID
const (
	SoundLaunch   = "SOUND_LAUNCH"
	SoundBounce   = "SOUND_BOUNCE"
	SoundSmash    = "SOUND_SMASH"
	SoundScore    = "SOUND_SCORE"
	SoundGameOver = "SOUND_GAMEOVER"
)

// SoundsForEvents 返回一帧事件对应的音效ID，按播放顺序排列
// 比赛结束时不再播放得分音效
func SoundsForEvents(events components.FrameEvents) []string {
	var ids []string
	if events.Launched {
		ids = append(ids, SoundLaunch)
	}
	if events.Bounced {
		ids = append(ids, SoundBounce)
	}
	if events.Smash != components.NoActor {
		ids = append(ids, SoundSmash)
	}
	switch {
	case events.GameOver:
		ids = append(ids, SoundGameOver)
	case events.Score != components.NoActor:
		ids = append(ids, SoundScore)
	}
	return ids
}
