//go:build !mobile

// stub.go - 普通构建时的占位文件
//
// 移动端入口（mobile.go、embed.go）只在 -tags mobile 时编译，
// 这里保证 ./mobile 在桌面构建和 go vet ./... 时仍是合法的包。
package mobile

// Dummy 空导出函数，与 mobile.go 中的同名函数对应
func Dummy() {}
