// Package render 把解析出的表结构生成为目标语言的类定义
package render

import (
	"fmt"
	"sort"

	"github.com/huoxue1/sql2class/internal/sqlparse"
)

// Renderer 目标语言生成器
type Renderer interface {
	// Name 语言名，命令行 --lang 的取值
	Name() string
	// Ext 输出文件扩展名
	Ext() string
	Render(tables []sqlparse.TableDefinition, opts Options) (string, error)
}

var renderers = map[string]Renderer{
	"csharp": &csharp{},
	"go":     &golang{},
}

// Get 按名字取生成器
func Get(name string) (Renderer, error) {
	r, ok := renderers[name]
	if !ok {
		return nil, fmt.Errorf("不支持的语言 %q，可选: %v", name, Names())
	}
	return r, nil
}

// Names 所有支持的语言
func Names() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
