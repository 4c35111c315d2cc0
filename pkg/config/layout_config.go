package config

// 布局配置常量
// 本文件定义了窗口和球场的尺寸，所有坐标均为逻辑像素（左上角为原点，Y轴向下）

const (
	// GameWindowWidth 是游戏逻辑屏幕宽度
	GameWindowWidth = 800

	// GameWindowHeight 是游戏逻辑屏幕高度
	GameWindowHeight = 400

	// WindowTitle 窗口标题
	WindowTitle = "cat pong"

	// FieldWidth 是球场宽度（与逻辑屏幕相同）
	FieldWidth = float64(GameWindowWidth)

	// FieldHeight 是球场高度（与逻辑屏幕相同）
	FieldHeight = float64(GameWindowHeight)
)

// FieldCenter 返回球场中心坐标
// 发球（Place）时球会被放置在这里
func FieldCenter() (x, y float64) {
	return FieldWidth / 2, FieldHeight / 2
}

// HUD 布局
const (
	// ScoreTextY 比分文字的Y坐标（文字顶部）
	ScoreTextY = 16.0

	// ScoreTextOffsetX 比分文字相对于中线的水平偏移
	ScoreTextOffsetX = 60.0

	// HUDFontSize 比分字体大小
	HUDFontSize = 32.0

	// BannerFontSize 结束横幅字体大小
	BannerFontSize = 48.0

	// HintFontSize 提示文字字体大小
	HintFontSize = 18.0
)
