package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/huoxue1/sql2class/internal/config"
	"github.com/huoxue1/sql2class/internal/render"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd 构建根命令，注册持久化参数与子命令
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sql2class",
		Short:         "根据 CREATE TABLE 脚本生成类定义",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogging(cmd)
		},
	}

	rootCmd.PersistentFlags().String("log-level", "info", "日志级别 (panic, fatal, error, warn, info, debug, trace)")
	rootCmd.PersistentFlags().String("config", "", "配置文件路径")

	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewFetchCmd())
	return rootCmd
}

// Execute 执行命令，出错时以非零状态退出
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Errorln(err.Error())
		os.Exit(1)
	}
}

func initLogging(cmd *cobra.Command) error {
	level, _ := cmd.Root().PersistentFlags().GetString("log-level")
	// 环境变量优先
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("日志级别非法: %w", err)
	}
	log.SetLevel(lvl)
	log.Debugln("日志级别设置为: " + lvl.String())
	return nil
}

// addRenderFlags 注册生成相关的参数
func addRenderFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("lang", "csharp", fmt.Sprintf("目标语言 %v", render.Names()))
	f.StringP("output", "o", "", "输出目录，为空时输出到标准输出")
	f.Bool("namespace", false, "生成 namespace")
	f.String("namespace-name", "SampleNamespace", "namespace 名称")
	f.Bool("annotations", false, "生成表名注解")
	f.Int("getter", 0, "getter 访问级别 0=无 1=public 2=protected 3=internal 4=protected internal 5=private 6=private protected")
	f.Int("setter", 0, "setter 访问级别，取值同 getter")
	f.Bool("nullable", false, "可空字段使用可空类型")
	f.Bool("remove-underscores", false, "去掉字段名中的下划线")
	f.Int("casing", 0, "字段名大小写 0=不变 1=首字母大写 2=每段首字母大写")
	f.String("package", "model", "生成 Go 代码时的包名")
}

// loadConfig 读取配置文件，再用命令行中显式设置的参数覆盖
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	o := &cfg.Options
	if f.Changed("lang") {
		cfg.Lang, _ = f.GetString("lang")
	}
	if f.Changed("output") {
		cfg.Output, _ = f.GetString("output")
	}
	if f.Changed("namespace") {
		o.AddNamespace, _ = f.GetBool("namespace")
	}
	if f.Changed("namespace-name") {
		o.Namespace, _ = f.GetString("namespace-name")
	}
	if f.Changed("annotations") {
		o.AddAnnotations, _ = f.GetBool("annotations")
	}
	if f.Changed("getter") {
		v, _ := f.GetInt("getter")
		o.Getter = render.Access(v)
	}
	if f.Changed("setter") {
		v, _ := f.GetInt("setter")
		o.Setter = render.Access(v)
	}
	if f.Changed("nullable") {
		o.IncludeNullableTypes, _ = f.GetBool("nullable")
	}
	if f.Changed("remove-underscores") {
		o.RemoveUnderscores, _ = f.GetBool("remove-underscores")
	}
	if f.Changed("casing") {
		v, _ := f.GetInt("casing")
		o.Casing = render.Casing(v)
	}
	if f.Changed("package") {
		o.Package, _ = f.GetString("package")
	}
	if f.Lookup("workers") != nil && f.Changed("workers") {
		cfg.Workers, _ = f.GetInt("workers")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
