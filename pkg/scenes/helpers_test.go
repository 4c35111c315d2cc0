package scenes

import (
	"github.com/decker502/catpong/pkg/components"
	"github.com/decker502/catpong/pkg/game"
	"github.com/decker502/catpong/pkg/utils"
)

// newTestShared 不需要窗口和资源文件的场景依赖
func newTestShared(keys utils.KeySource) *Shared {
	clip := func(name string) *components.Animation {
		return &components.Animation{Name: name, ImageID: "IMAGE_" + name, FrameCount: 4, Speed: 6, TextureWidth: 64, TextureHeight: 16}
	}
	return &Shared{
		SceneManager:    game.NewSceneManager(),
		SettingsManager: game.NewSettingsManager(nil),
		Clips: &components.ClipSet{
			Idle:      clip("idle"),
			Moving:    clip("moving"),
			Attacking: clip("attacking"),
		},
		BallClip: &components.Animation{Name: "ball", ImageID: "IMAGE_ball", FrameCount: 1, Speed: 1, TextureWidth: 8, TextureHeight: 8},
		Rand:     utils.NewRand(1),
		Keys:     keys,
	}
}
