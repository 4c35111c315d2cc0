package main

import (
	"fmt"

	"github.com/decker502/catpong/pkg/components"
	"github.com/decker502/catpong/pkg/config"
	"github.com/decker502/catpong/pkg/embedded"
)

const resourceConfigPath = "assets/config/resources.yaml"

// loadClips 读取资源配置并构建动画片段
// 终端版不需要纹理本身，只解析 PNG 头获取尺寸
func loadClips() (*components.ClipSet, *components.Animation, error) {
	data, err := embedded.ReadFile(resourceConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", resourceConfigPath, err)
	}
	cfg, err := config.ParseResourceConfig(data)
	if err != nil {
		return nil, nil, err
	}
	return config.BuildClips(cfg, config.ImageHeaderSize(cfg, embedded.ReadFile))
}
