// catpong-term 在终端里运行 cat pong
//
// 使用与桌面端完全相同的比赛模拟（systems.MatchSystem），只替换输入、渲染和音效：
//   - 输入：tcell 按键事件，终端没有"松开"事件，用按键重复模拟持续按住
//   - 渲染：把 800x400 的球场按比例投影到终端字符格
//   - 音效：beep 合成的短促正弦音，不依赖 WAV 文件
//
// 用法：
//
//	go run ./cmd/catpong-term [-root .] [-seed 42] [-mute] [-verbose]
//
// 按键：W/S 或方向键移动，空格击球，P 暂停，M 静音，Q/Esc 退出
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/catpong/pkg/components"
	"github.com/decker502/catpong/pkg/config"
	"github.com/decker502/catpong/pkg/embedded"
	"github.com/decker502/catpong/pkg/systems"
	"github.com/decker502/catpong/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

var (
	root    = flag.String("root", ".", "项目根目录（包含 assets/）")
	seed    = flag.Uint64("seed", 0, "随机种子（0 表示使用当前时间）")
	mute    = flag.Bool("mute", false, "关闭音效")
	verbose = flag.Bool("verbose", false, "把调试日志写入 catpong-term.log")
)

// frameInterval 模拟步进间隔（约 60 TPS）
const frameInterval = time.Second / config.TicksPerSecond

// TermGame 终端版游戏
type TermGame struct {
	screen tcell.Screen
	match  *systems.MatchSystem
	keys   *heldKeys
	beeper *beeper

	paused bool
	frames int
}

func main() {
	flag.Parse()

	if *verbose {
		logFile, err := os.Create("catpong-term.log")
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法创建日志文件: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	embedded.Init(os.DirFS(*root))

	clips, ballClip, err := loadClips()
	if err != nil {
		fmt.Fprintf(os.Stderr, "资源加载失败: %v\n", err)
		os.Exit(1)
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	log.Printf("[Term] Random seed: %d", s)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "终端初始化失败: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "终端初始化失败: %v\n", err)
		os.Exit(1)
	}

	g := &TermGame{
		screen: screen,
		match:  systems.NewMatchSystem(clips, ballClip, utils.NewRand(s)),
		keys:   newHeldKeys(),
		beeper: newBeeper(!*mute),
	}
	defer g.cleanup()

	g.run()
}

// run 主循环：一个 goroutine 读取终端事件，主循环按固定间隔推进模拟
func (g *TermGame) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				// screen.Fini() 之后 PollEvent 返回 nil
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			g.step()
			g.draw()
		}
	}
}

// handleEvent 处理一个终端事件，返回 false 表示退出
func (g *TermGame) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'p', 'P':
				g.paused = !g.paused
				log.Printf("[Term] Paused: %v", g.paused)
				return true
			case 'm', 'M':
				g.beeper.enabled = !g.beeper.enabled
				log.Printf("[Term] Sound enabled: %v", g.beeper.enabled)
				return true
			}
		}
		if action, ok := actionForKey(ev.Key(), ev.Rune()); ok {
			g.keys.press(action)
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// step 推进一帧模拟
func (g *TermGame) step() {
	if g.paused {
		return
	}

	events := g.match.RunFrame(g.keys)
	g.keys.advance()
	g.frames++

	if events.Any() {
		g.beeper.playEvents(events)
	}
	if events.Score != components.NoActor {
		state := g.match.State()
		log.Printf("[Term] Frame %d: %s scored, %d - %d", g.frames, events.Score, state.Scores[0], state.Scores[1])
	}
}

func (g *TermGame) draw() {
	g.screen.Clear()
	width, height := g.screen.Size()
	for _, c := range projectMatch(g.match.State(), width, height) {
		g.screen.SetContent(c.X, c.Y, c.Rune, nil, c.Style)
	}
	if g.paused {
		drawCenteredString(g.screen, height/2, "PAUSED", tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}
	g.screen.Show()
}

func (g *TermGame) cleanup() {
	g.beeper.close()
	g.screen.Fini()
}
