package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/catpong/pkg/app"
	"github.com/decker502/catpong/pkg/config"
	"github.com/decker502/catpong/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	seed      = flag.Uint64("seed", 0, "随机种子（0 表示使用当前时间）")
	skipTitle = flag.Bool("skip-title", false, "跳过标题画面，直接开始比赛")
)

func main() {
	flag.Parse()

	// assetsFS 在 embed.go 中声明
	embedded.Init(assetsFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		Seed:      *seed,
		SkipTitle: *skipTitle,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		fmt.Fprintf(os.Stderr, "游戏异常退出: %v\n", err)
		os.Exit(1)
	}
}
