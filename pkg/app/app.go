// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/catpong/pkg/config"
	"github.com/decker502/catpong/pkg/game"
	"github.com/decker502/catpong/pkg/scenes"
	"github.com/decker502/catpong/pkg/systems"
	"github.com/decker502/catpong/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Seed 随机种子，0 表示使用当前时间
	Seed uint64
	// SkipTitle 跳过标题画面，直接开始比赛
	SkipTitle bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 任何资源加载失败都会直接返回错误，游戏不会在缺少资源的情况下启动。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	ebiten.SetTPS(config.TicksPerSecond)

	// 设置持久化失败不影响游戏，降级为内存设置
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage directory check failed: %v", err)
	}
	gdataManager, err := gdata.Open(gdata.Config{AppName: "catpong"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}
	settingsManager := game.NewSettingsManager(gdataManager)

	audioContext := audio.NewContext(48000)
	resourceManager := game.NewResourceManager(audioContext)

	if err := resourceManager.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	if err := resourceManager.LoadResourceGroup("match"); err != nil {
		return nil, fmt.Errorf("资源加载失败: %w", err)
	}

	clips, ballClip, err := resourceManager.LoadClips()
	if err != nil {
		return nil, fmt.Errorf("动画片段构建失败: %w", err)
	}
	log.Printf("[App] Clips loaded: idle=%d moving=%d attacking=%d frames",
		clips.Idle.FrameCount, clips.Moving.FrameCount, clips.Attacking.FrameCount)

	scoreFace, err := resourceManager.LoadFontFromBytes("goregular", goregular.TTF, config.HUDFontSize)
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}
	bannerFace, err := resourceManager.LoadFontFromBytes("goregular", goregular.TTF, config.BannerFontSize)
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}
	hintFace, err := resourceManager.LoadFontFromBytes("goregular", goregular.TTF, config.HintFontSize)
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[App] Random seed: %d", seed)

	sceneManager := game.NewSceneManager()
	shared := &scenes.Shared{
		ResourceManager: resourceManager,
		SceneManager:    sceneManager,
		SettingsManager: settingsManager,
		AudioManager:    game.NewAudioManager(resourceManager, settingsManager),
		Clips:           clips,
		BallClip:        ballClip,
		Renderer:        systems.NewRenderSystem(resourceManager, scoreFace, bannerFace, hintFace),
		TitleFace:       bannerFace,
		HintFace:        hintFace,
		Rand:            utils.NewRand(seed),
		Keys:            utils.NewEbitenKeySource(),
		Hotkeys:         scenes.PollEbitenHotkeys,
	}

	if cfg.SkipTitle {
		log.Printf("[App] SkipTitle enabled, starting match")
		sceneManager.SwitchTo(scenes.NewGameScene(shared))
	} else {
		sceneManager.SwitchTo(scenes.NewTitleScene(shared))
	}

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（固定每秒 60 次），每次推进一帧模拟
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏，并记住选择
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(1.0 / config.TicksPerSecond)
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)

	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	a.settingsManager.SetFullscreen(fullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save settings: %v", err)
	}
	log.Printf("[App] Fullscreen: %v", fullscreen)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色，像素画使用最近邻缩放保持清晰
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸（即球场尺寸）
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
