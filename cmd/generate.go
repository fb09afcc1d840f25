package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/huoxue1/sql2class/internal/config"
	"github.com/huoxue1/sql2class/internal/output"
	"github.com/huoxue1/sql2class/internal/render"
	"github.com/huoxue1/sql2class/internal/sqlparse"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewGenerateCmd generate 子命令
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [file.sql ...]",
		Short: "把 SQL 脚本转换为类定义，没有文件参数时读取标准输入",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cmd.Context(), cfg, args, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	addRenderFlags(cmd)
	cmd.Flags().Int("workers", 0, "同时处理的文件数，默认 CPU 核数")
	return cmd
}

type job struct {
	input  string
	output string
	result string
}

func runGenerate(ctx context.Context, cfg *config.Config, files []string, stdin io.Reader, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	renderer, err := render.Get(cfg.Lang)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		files = []string{"-"}
	}

	var writer *output.Writer
	if cfg.Output != "" {
		if writer, err = output.NewWriter(cfg.Output); err != nil {
			return err
		}
	}

	jobs := make([]*job, len(files))
	outputs := make(map[string]string, len(files))
	for i, file := range files {
		name := outputName(file, renderer.Ext())
		if prev, ok := outputs[name]; ok && writer != nil {
			return fmt.Errorf("输入 %s 和 %s 会生成同名文件 %s", prev, file, name)
		}
		outputs[name] = file
		jobs[i] = &job{input: file, output: name}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := readInput(j.input, stdin)
			if err != nil {
				return err
			}
			tables := sqlparse.Parse(string(data))
			log.WithFields(log.Fields{"input": j.input, "tables": len(tables)}).Infoln("解析完成")
			if j.result, err = renderer.Render(tables, cfg.Options); err != nil {
				return fmt.Errorf("%s: %w", j.input, err)
			}
			if writer != nil {
				_, err = writer.Write(j.output, []byte(j.result))
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if writer == nil {
		for _, j := range jobs {
			if _, err := fmt.Fprintln(stdout, j.result); err != nil {
				return err
			}
		}
	}
	log.Infoln("数据生成成功")
	return nil
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("读取标准输入失败: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("读取文件失败: %w", err)
	}
	return data, nil
}

// outputName users.sql -> users.cs
func outputName(input, ext string) string {
	if input == "-" {
		return "stdin" + ext
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}
