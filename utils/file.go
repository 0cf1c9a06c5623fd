package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, os.ModePerm)
}

// 生成目录下的唯一临时文件路径，pattern须含一个%s占位
func GetUniqTmpPath(dir, pattern string) string {
	return filepath.Join(dir, fmt.Sprintf(pattern, uuid.NewString()))
}
