//go:build !android

package utils

// EnsureStorageDir 桌面端由 gdata 自己创建存储目录，这里什么都不做
func EnsureStorageDir() error {
	return nil
}

// GetStoragePath 桌面端返回空字符串，路径由 gdata 决定
func GetStoragePath() string {
	return ""
}
