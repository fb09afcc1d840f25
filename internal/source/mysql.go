package source

import (
	"context"
	"database/sql"
	"strings"

	_ "github.com/go-sql-driver/mysql"
)

type mysql struct {
}

func (m *mysql) Name() string {
	return "mysql"
}

func (m *mysql) SQLDriver() string {
	return "mysql"
}

func (m *mysql) Tables(ctx context.Context, db *sql.DB) ([]string, error) {
	sqlStr := `select TABLE_NAME from information_schema.TABLES
			where TABLE_SCHEMA = database() and TABLE_TYPE = 'BASE TABLE' order by TABLE_NAME`
	return queryStrings(ctx, db, sqlStr)
}

// CreateStatement SHOW CREATE TABLE 返回表名和建表语句两列
func (m *mysql) CreateStatement(ctx context.Context, db *sql.DB, table string) (string, error) {
	var name, stmt string
	err := db.QueryRowContext(ctx, "SHOW CREATE TABLE "+quoteMySQL(table)).Scan(&name, &stmt)
	if err != nil {
		return "", err
	}
	return stmt, nil
}

func quoteMySQL(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
