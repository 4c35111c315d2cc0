package main

import (
	"fmt"

	"github.com/decker502/catpong/pkg/components"
	"github.com/decker502/catpong/pkg/config"
	"github.com/decker502/catpong/pkg/systems"
	"github.com/decker502/catpong/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// hudRows 顶部比分栏占用的行数
const hudRows = 1

// Cell 一个待绘制的字符格
type Cell struct {
	X, Y  int
	Rune  rune
	Style tcell.Style
}

var (
	styleLine     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleScore    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBall     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleOpponent = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleBanner   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// project 把球场坐标投影到字符格
// 第 0 行留给比分，球场占据其余行
func project(x, y float64, cols, rows int) (col, row int) {
	fieldRows := rows - hudRows
	col = int(x / config.FieldWidth * float64(cols))
	row = int(y/config.FieldHeight*float64(fieldRows)) + hudRows
	return clampInt(col, 0, cols-1), clampInt(row, hudRows, rows-1)
}

// projectRect 返回矩形覆盖的字符格范围（闭区间），至少一格
func projectRect(r utils.Rect, cols, rows int) (left, top, right, bottom int) {
	left, top = project(r.Left(), r.Top(), cols, rows)
	right, bottom = project(r.Right(), r.Bottom(), cols, rows)
	// Right/Bottom 是开区间端点
	if right > left {
		right--
	}
	if bottom > top {
		bottom--
	}
	return left, top, right, bottom
}

// catRune 按状态选择猫咪的字符
func catRune(cat *components.Cat) rune {
	switch cat.State {
	case components.CatMovingUp:
		return '▲'
	case components.CatMovingDown:
		return '▼'
	case components.CatAttacking:
		if cat.Facing < 0 {
			return '◀'
		}
		return '▶'
	default:
		return '█'
	}
}

// projectMatch 把比赛状态转换为待绘制的字符格
//
// 参数：
//   - state: 比赛状态（只读）
//   - cols, rows: 终端尺寸
//
// 绘制顺序：中线、猫咪、球、比分、结束横幅，后绘制的覆盖先绘制的
func projectMatch(state *components.MatchState, cols, rows int) []Cell {
	if cols <= 0 || rows <= hudRows {
		return nil
	}

	var cells []Cell

	centerX, _ := config.FieldCenter()
	midCol, _ := project(centerX, 0, cols, rows)
	for row := hudRows; row < rows; row += 2 {
		cells = append(cells, Cell{X: midCol, Y: row, Rune: '┊', Style: styleLine})
	}

	for i := range state.Cats {
		cat := &state.Cats[i]
		style := stylePlayer
		if components.ActorIndex(i) == components.OpponentIndex {
			style = styleOpponent
		}
		left, top, right, bottom := projectRect(systems.CatRect(cat), cols, rows)
		ch := catRune(cat)
		for y := top; y <= bottom; y++ {
			for x := left; x <= right; x++ {
				cells = append(cells, Cell{X: x, Y: y, Rune: ch, Style: style})
			}
		}
	}

	ballCol, ballRow := project(state.Ball.X, state.Ball.Y, cols, rows)
	cells = append(cells, Cell{X: ballCol, Y: ballRow, Rune: 'o', Style: styleBall})

	score := fmt.Sprintf("%d   %d", state.Scores[components.PlayerIndex], state.Scores[components.OpponentIndex])
	cells = append(cells, centeredString(cols, 0, score, styleScore)...)

	if state.GameOver {
		banner, hint := systems.GameOverText(state.Winner, false)
		middle := hudRows + (rows-hudRows)/2
		cells = append(cells, centeredString(cols, middle-1, banner, styleBanner)...)
		cells = append(cells, centeredString(cols, middle+1, hint, styleScore)...)
	}

	return cells
}

// centeredString 返回水平居中的一行文字
func centeredString(cols, row int, s string, style tcell.Style) []Cell {
	runes := []rune(s)
	start := (cols - len(runes)) / 2
	cells := make([]Cell, 0, len(runes))
	for i, r := range runes {
		x := start + i
		if x < 0 || x >= cols {
			continue
		}
		cells = append(cells, Cell{X: x, Y: row, Rune: r, Style: style})
	}
	return cells
}

func drawCenteredString(screen tcell.Screen, row int, s string, style tcell.Style) {
	cols, _ := screen.Size()
	for _, c := range centeredString(cols, row, s, style) {
		screen.SetContent(c.X, c.Y, c.Rune, nil, c.Style)
	}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
