//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 确保 Android 上设置文件的目录存在并可写
// gdata 在 Android 上把数据写到 /data/data/{package}/ 下，但不会创建子目录，
// 必须在 gdata.Open 之前调用
func EnsureStorageDir() error {
	dir := GetStoragePath()
	if dir == "" {
		return fmt.Errorf("failed to detect Android package name")
	}

	settingsDir := filepath.Join(dir, "catpong")
	if err := os.MkdirAll(settingsDir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory %s: %w", settingsDir, err)
	}

	probe := filepath.Join(settingsDir, ".write_test")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("settings directory %s is not writable: %w", settingsDir, err)
	}
	os.Remove(probe)

	return nil
}

// GetStoragePath 返回应用私有存储目录，无法识别包名时返回空字符串
// 包名从 /proc/self/cmdline 读取（以 NUL 结尾）
func GetStoragePath() string {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}

	pkg := make([]byte, 0, len(data))
	for _, ch := range data {
		if ch == 0 || ch == '\n' {
			continue
		}
		pkg = append(pkg, ch)
	}
	if len(pkg) == 0 {
		return ""
	}
	return filepath.Join("/data/data", string(pkg))
}
