// Package config 生成配置的加载
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/huoxue1/sql2class/internal/render"
)

// Config 生成配置，命令行参数会覆盖文件中的值
type Config struct {
	// Lang 目标语言
	Lang string `json:"lang"`
	// Output 输出目录，为空时输出到标准输出
	Output string `json:"output"`
	// Workers 同时处理的输入文件数
	Workers int            `json:"workers"`
	Options render.Options `json:"options"`
}

// Default 默认配置
func Default() *Config {
	return &Config{
		Lang:    "csharp",
		Workers: runtime.NumCPU(),
		Options: render.DefaultOptions(),
	}
}

// LoadConfig 从配置文件加载配置，path 为空时返回默认配置
func LoadConfig(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 验证配置
func (c *Config) Validate() error {
	if _, err := render.Get(c.Lang); err != nil {
		return err
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	return c.Options.Validate()
}
