// Package source 从数据库中导出 CREATE TABLE 脚本
package source

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Driver 一种数据库的导出方式
type Driver interface {
	// Name 命令行 --driver 的取值
	Name() string
	// SQLDriver database/sql 注册的驱动名
	SQLDriver() string
	// Tables 当前库中的所有表
	Tables(ctx context.Context, db *sql.DB) ([]string, error)
	// CreateStatement 单个表的 CREATE TABLE 语句
	CreateStatement(ctx context.Context, db *sql.DB, table string) (string, error)
}

var drivers = map[string]Driver{
	"mysql":    &mysql{},
	"sqlite":   &sqlite{},
	"postgres": &postgres{},
}

// Get 按名字取驱动
func Get(name string) (Driver, error) {
	d, ok := drivers[name]
	if !ok {
		return nil, fmt.Errorf("不支持的数据库 %q，可选: %v", name, Names())
	}
	return d, nil
}

// Names 所有支持的数据库
func Names() []string {
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fetch 连接数据库并导出所有表的 CREATE TABLE 语句
func Fetch(ctx context.Context, driverName, dsn string) (string, error) {
	d, err := Get(driverName)
	if err != nil {
		return "", err
	}
	log.Infoln("开始连接数据库 " + d.Name())
	db, err := sql.Open(d.SQLDriver(), dsn)
	if err != nil {
		return "", fmt.Errorf("连接数据库失败: %w", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return "", fmt.Errorf("数据库ping出现错误: %w", err)
	}
	return Dump(ctx, d, db)
}

// Dump 用已有连接导出所有表，语句之间以分号和空行分隔
func Dump(ctx context.Context, d Driver, db *sql.DB) (string, error) {
	tables, err := d.Tables(ctx, db)
	if err != nil {
		return "", fmt.Errorf("获取数据库表错误: %w", err)
	}
	statements := make([]string, 0, len(tables))
	for _, table := range tables {
		stmt, err := d.CreateStatement(ctx, db, table)
		if err != nil {
			return "", fmt.Errorf("导出表 %s 失败: %w", table, err)
		}
		log.WithField("table", table).Debugln("导出表结构")
		statements = append(statements, strings.TrimRight(strings.TrimSpace(stmt), ";")+";")
	}
	return strings.Join(statements, "\n\n"), nil
}

// queryStrings 执行只返回一列字符串的查询
func queryStrings(ctx context.Context, db *sql.DB, query string, args ...interface{}) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
