package config

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
)

// ImageHeaderSize 返回只解析图片文件头来获取尺寸的 TextureSizeFunc
// 终端驱动和无界面验证工具不创建 GPU 纹理，用它代替 ResourceManager.TextureSize
//
// 参数:
//   - cfg: 资源配置
//   - readFile: 按完整路径（base_path + path）读取文件，通常为 embedded.ReadFile
func ImageHeaderSize(cfg *ResourceConfig, readFile func(path string) ([]byte, error)) TextureSizeFunc {
	return func(imageID string) (int, int, error) {
		path, ok := cfg.ImagePath(imageID)
		if !ok {
			return 0, 0, fmt.Errorf("unknown image '%s'", imageID)
		}
		data, err := readFile(path)
		if err != nil {
			return 0, 0, err
		}
		header, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return 0, 0, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		return header.Width, header.Height, nil
	}
}
