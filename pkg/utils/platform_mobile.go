//go:build mobile

package utils

// IsMobile 移动端构建时恒为 true
// 标题和结束画面据此显示"点击"提示，输入改为触摸分区
func IsMobile() bool {
	return true
}
