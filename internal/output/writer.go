// Package output 写出生成的代码文件
package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"
)

// Writer 把内容写到目录中，内容没有变化时不重写文件
type Writer struct {
	Dir string
}

// NewWriter 创建输出目录
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("创建输出目录失败: %w", err)
	}
	return &Writer{Dir: dir}, nil
}

// Write 写入 Dir 下的 name 文件，返回文件是否发生了变化
func (w *Writer) Write(name string, content []byte) (bool, error) {
	path := filepath.Join(w.Dir, name)
	old, err := os.ReadFile(path)
	switch {
	case err == nil:
		if xxh3.Hash(old) == xxh3.Hash(content) && len(old) == len(content) {
			log.WithField("file", path).Debugln("内容未变化，跳过")
			return false, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return false, fmt.Errorf("读取文件失败: %w", err)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return false, fmt.Errorf("保存文件失败: %w", err)
	}
	log.WithField("file", path).Infoln("已生成")
	return true, nil
}
