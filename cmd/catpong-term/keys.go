package main

import (
	"github.com/decker502/catpong/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// holdFrames 最后一次按键事件之后仍视为"按住"的帧数
// 终端按键重复间隔通常为 30~50ms，这里取约 150ms
const holdFrames = 9

// heldKeys 用按键重复事件模拟持续按住状态，实现 utils.KeySource
//
// 终端只报告按下（和自动重复），不报告松开。
// 一个动作在最后一次事件后的 holdFrames 帧内视为按住；
// 确认动作只在收到事件的那一帧有效，避免一次按键触发多次重开。
type heldKeys struct {
	frame    int
	lastSeen map[utils.Action]int
	pressed  map[utils.Action]bool
}

func newHeldKeys() *heldKeys {
	return &heldKeys{
		lastSeen: make(map[utils.Action]int),
		pressed:  make(map[utils.Action]bool),
	}
}

// press 记录一次按键事件
// 攻击键同时触发确认（比赛结束后重新开局）
func (k *heldKeys) press(action utils.Action) {
	k.lastSeen[action] = k.frame
	k.pressed[action] = true
	if action == utils.ActionAttack {
		k.pressed[utils.ActionConfirm] = true
	}
}

// advance 一帧结束，清除本帧的"刚按下"记录
func (k *heldKeys) advance() {
	k.frame++
	clear(k.pressed)
}

// IsHeld 实现 utils.KeySource
func (k *heldKeys) IsHeld(action utils.Action) bool {
	if action == utils.ActionConfirm {
		return k.pressed[action]
	}
	last, ok := k.lastSeen[action]
	if !ok {
		return false
	}
	return k.frame-last <= holdFrames
}

// actionForKey 把终端按键映射为逻辑动作
//
// 按键映射：
//   - 向上：W / K / ↑
//   - 向下：S / J / ↓
//   - 攻击：空格
//   - 确认：回车
func actionForKey(key tcell.Key, r rune) (utils.Action, bool) {
	switch key {
	case tcell.KeyUp:
		return utils.ActionUp, true
	case tcell.KeyDown:
		return utils.ActionDown, true
	case tcell.KeyEnter:
		return utils.ActionConfirm, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W', 'k', 'K':
			return utils.ActionUp, true
		case 's', 'S', 'j', 'J':
			return utils.ActionDown, true
		case ' ':
			return utils.ActionAttack, true
		}
	}
	return 0, false
}
