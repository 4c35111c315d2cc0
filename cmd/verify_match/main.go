// verify_match 无界面对局验证工具
//
// 让脚本控制器同时操控两只猫咪，连续模拟多局比赛，每帧检查比赛状态的不变量，
// 结束后输出统计。任何不变量被破坏时以非零状态退出。
//
// 用法：
//
//	go run ./cmd/verify_match [-games 20] [-frames 200000] [-seed 1] [-verbose]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/catpong/pkg/components"
	"github.com/decker502/catpong/pkg/config"
	"github.com/decker502/catpong/pkg/embedded"
	"github.com/decker502/catpong/pkg/systems"
	"github.com/decker502/catpong/pkg/utils"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	seed    = flag.Uint64("seed", 1, "随机种子")
	games   = flag.Int("games", 20, "要完成的比赛局数")
	frames  = flag.Int("frames", 200000, "最多模拟的帧数")
	root    = flag.String("root", ".", "项目根目录（包含 assets/）")
)

// Stats 模拟统计
type Stats struct {
	Frames    int
	Games     int
	Launches  int
	Bounces   int
	Smashes   [components.ActorCount]int
	Points    [components.ActorCount]int
	Wins      [components.ActorCount]int
	Refreshes int
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	embedded.Init(os.DirFS(*root))
	clips, ballClip, err := loadClips()
	if err != nil {
		fmt.Fprintf(os.Stderr, "资源加载失败: %v\n", err)
		os.Exit(1)
	}

	stats, err := simulate(clips, ballClip, *seed, *games, *frames)
	printStats(stats)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 验证失败: %v\n", err)
		os.Exit(1)
	}
	if stats.Games < *games {
		fmt.Fprintf(os.Stderr, "❌ %d 帧内只完成了 %d/%d 局\n", stats.Frames, stats.Games, *games)
		os.Exit(1)
	}
	fmt.Println("✅ 验证通过")
}

// simulate 运行对局直到完成 wantGames 局或达到 maxFrames 帧
// 比赛结束后下一帧自动确认重新开局
func simulate(clips *components.ClipSet, ballClip *components.Animation, seed uint64, wantGames, maxFrames int) (Stats, error) {
	var stats Stats

	match := systems.NewMatchSystem(clips, ballClip, utils.NewRand(seed))
	match.SetPlayerAutopilot(systems.NewOpponentSystem(utils.NewRand(seed + 1)))

	idle := utils.KeyState{}
	confirm := utils.KeyState{utils.ActionConfirm: true}

	for stats.Frames < maxFrames && stats.Games < wantGames {
		keys := idle
		if match.State().GameOver {
			keys = confirm
		}

		events := match.RunFrame(keys)
		stats.Frames++
		stats.record(events, match.State())

		if err := checkInvariants(match.State()); err != nil {
			return stats, fmt.Errorf("frame %d: %w", stats.Frames, err)
		}
	}

	stats.Refreshes = match.Opponent().Refreshes()
	return stats, nil
}

func (s *Stats) record(events components.FrameEvents, state *components.MatchState) {
	if events.Launched {
		s.Launches++
	}
	if events.Bounced {
		s.Bounces++
	}
	if events.Smash != components.NoActor {
		s.Smashes[events.Smash]++
	}
	if events.Score != components.NoActor {
		s.Points[events.Score]++
	}
	if events.GameOver {
		s.Games++
		s.Wins[state.Winner]++
		log.Printf("[Verify] Game %d: %s wins %d:%d", s.Games, state.Winner, state.Scores[0], state.Scores[1])
	}
}

// checkInvariants 检查一帧结束后的比赛状态
func checkInvariants(state *components.MatchState) error {
	for i, score := range state.Scores {
		if score < 0 || score > config.WinScore {
			return fmt.Errorf("score[%d] = %d out of range", i, score)
		}
	}

	reached := state.Scores[0] >= config.WinScore || state.Scores[1] >= config.WinScore
	if state.GameOver != reached {
		return fmt.Errorf("game over = %v but scores are %d:%d", state.GameOver, state.Scores[0], state.Scores[1])
	}
	if state.GameOver && state.Scores[state.Winner] < config.WinScore {
		return fmt.Errorf("winner %s has only %d points", state.Winner, state.Scores[state.Winner])
	}
	if state.ScoreDelta != 0 {
		return fmt.Errorf("score delta %d not settled", state.ScoreDelta)
	}

	for i := range state.Cats {
		cat := &state.Cats[i]
		if !cat.State.Valid() {
			return fmt.Errorf("cat %d in invalid state %d", i, cat.State)
		}
		r := systems.CatRect(cat)
		if r.Top() < -cat.Speed || r.Bottom() > config.FieldHeight+cat.Speed {
			return fmt.Errorf("cat %d left the field: y=%.1f", i, cat.Y)
		}
		if cat.CurrentFrame < 0 || cat.CurrentFrame >= cat.Animation.FrameCount {
			return fmt.Errorf("cat %d frame %d out of range for clip %s", i, cat.CurrentFrame, cat.Animation.Name)
		}
		if cat.State == components.CatAttacking && cat.AttackElapsed > cat.AttackCooldown {
			return fmt.Errorf("cat %d attack lasted %d frames", i, cat.AttackElapsed)
		}
	}

	ball := &state.Ball
	if !ball.Launched() {
		centerX, centerY := config.FieldCenter()
		if ball.X != centerX || ball.Y != centerY || ball.VX != 0 || ball.VY != 0 {
			return fmt.Errorf("waiting ball not at rest in the center: (%.1f, %.1f) v=(%.2f, %.2f)", ball.X, ball.Y, ball.VX, ball.VY)
		}
	}
	if ball.Contact != components.NoActor && ball.Contact != components.PlayerIndex && ball.Contact != components.OpponentIndex {
		return fmt.Errorf("ball contact %d is not a cat", ball.Contact)
	}

	return nil
}

func printStats(s Stats) {
	fmt.Println("=== cat pong 对局验证 ===")
	fmt.Printf("帧数:     %d\n", s.Frames)
	fmt.Printf("完成局数: %d（玩家 %d 胜，对手 %d 胜）\n", s.Games, s.Wins[components.PlayerIndex], s.Wins[components.OpponentIndex])
	fmt.Printf("得分:     玩家 %d，对手 %d\n", s.Points[components.PlayerIndex], s.Points[components.OpponentIndex])
	fmt.Printf("发球:     %d\n", s.Launches)
	fmt.Printf("反弹:     %d\n", s.Bounces)
	fmt.Printf("击球:     玩家 %d，对手 %d\n", s.Smashes[components.PlayerIndex], s.Smashes[components.OpponentIndex])
	fmt.Printf("体力恢复: %d 次\n", s.Refreshes)
}

// loadClips 从资源配置构建动画片段，只解析 PNG 头
func loadClips() (*components.ClipSet, *components.Animation, error) {
	data, err := embedded.ReadFile("assets/config/resources.yaml")
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.ParseResourceConfig(data)
	if err != nil {
		return nil, nil, err
	}
	return config.BuildClips(cfg, config.ImageHeaderSize(cfg, embedded.ReadFile))
}
