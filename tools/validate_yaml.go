//go:build ignore

// 校验资源配置：YAML 格式、资源ID、动画片段引用，以及所有文件是否存在
//
// 用法（在项目根目录执行）：
//
//	go run tools/validate_yaml.go [assets/config/resources.yaml]
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/decker502/catpong/pkg/config"
)

func main() {
	configPath := "assets/config/resources.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.LoadResourceConfig(configPath)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ YAML 格式正确（version %s）\n", cfg.Version)

	missing := 0
	check := func(kind, id, path string) {
		if _, err := os.Stat(path); err != nil {
			fmt.Printf("❌ %s %s: 文件不存在 %s\n", kind, id, path)
			missing++
		}
	}

	images := 0
	for _, group := range cfg.Groups {
		for _, img := range group.Images {
			path, _ := cfg.ImagePath(img.ID)
			check("图片", img.ID, path)
			images++
		}
	}

	sounds := cfg.SoundPaths()
	ids := make([]string, 0, len(sounds))
	for id := range sounds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		check("音效", id, sounds[id])
	}

	fmt.Printf("✅ 图片 %d 个，音效 %d 个，动画片段 %d 个\n", images, len(sounds), len(cfg.Clips))

	clips, ball, err := config.BuildClips(cfg, config.ImageHeaderSize(cfg, os.ReadFile))
	if err != nil {
		fmt.Printf("❌ 动画片段构建失败: %v\n", err)
		os.Exit(1)
	}
	for _, clip := range []struct {
		name string
		w, h float64
		n    int
	}{
		{config.ClipIdle, clips.Idle.FrameWidth(), clips.Idle.FrameHeight(), clips.Idle.FrameCount},
		{config.ClipMoving, clips.Moving.FrameWidth(), clips.Moving.FrameHeight(), clips.Moving.FrameCount},
		{config.ClipAttacking, clips.Attacking.FrameWidth(), clips.Attacking.FrameHeight(), clips.Attacking.FrameCount},
		{config.ClipBall, ball.FrameWidth(), ball.FrameHeight(), ball.FrameCount},
	} {
		fmt.Printf("   %-10s %d 帧，每帧 %.0fx%.0f\n", clip.name, clip.n, clip.w, clip.h)
	}

	if missing > 0 {
		fmt.Printf("❌ 有 %d 个资源文件缺失\n", missing)
		os.Exit(1)
	}
	fmt.Printf("✅ 所有资源文件都存在\n")
}
