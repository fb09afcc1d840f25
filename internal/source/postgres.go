package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type postgres struct {
}

func (p *postgres) Name() string {
	return "postgres"
}

// SQLDriver pgx 的 database/sql 适配器注册的名字
func (p *postgres) SQLDriver() string {
	return "pgx"
}

func (p *postgres) Tables(ctx context.Context, db *sql.DB) ([]string, error) {
	sqlStr := `select table_name from information_schema.tables
			where table_schema = current_schema() and table_type = 'BASE TABLE' order by table_name`
	return queryStrings(ctx, db, sqlStr)
}

type pgColumn struct {
	name      string
	dataType  string
	length    sql.NullInt64
	precision sql.NullInt64
	scale     sql.NullInt64
	nullable  string
}

// CreateStatement postgres 没有 SHOW CREATE TABLE，从 information_schema 拼出建表语句
func (p *postgres) CreateStatement(ctx context.Context, db *sql.DB, table string) (string, error) {
	var schema string
	if err := db.QueryRowContext(ctx, "select current_schema()").Scan(&schema); err != nil {
		return "", err
	}

	sqlStr := `SELECT column_name, data_type, character_maximum_length, numeric_precision, numeric_scale, is_nullable
			FROM information_schema.columns
			WHERE table_schema = $1 AND table_name = $2
			ORDER BY ordinal_position`
	rows, err := db.QueryContext(ctx, sqlStr, schema, table)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	var columns []pgColumn
	for rows.Next() {
		var c pgColumn
		if err := rows.Scan(&c.name, &c.dataType, &c.length, &c.precision, &c.scale, &c.nullable); err != nil {
			return "", err
		}
		columns = append(columns, c)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	keys, err := queryStrings(ctx, db, `SELECT kcu.column_name
			FROM information_schema.table_constraints tc
			JOIN information_schema.key_column_usage kcu
				ON tc.constraint_name = kcu.constraint_name AND tc.table_schema = kcu.table_schema
			WHERE tc.constraint_type = 'PRIMARY KEY' AND tc.table_schema = $1 AND tc.table_name = $2
			ORDER BY kcu.ordinal_position`, schema, table)
	if err != nil {
		return "", err
	}
	return buildCreateTable(schema+"."+table, columns, keys), nil
}

func buildCreateTable(name string, columns []pgColumn, keys []string) string {
	lines := make([]string, 0, len(columns)+1)
	for _, c := range columns {
		line := "  " + c.name + " " + c.columnType()
		if c.nullable == "NO" {
			line += " NOT NULL"
		}
		lines = append(lines, line)
	}
	if len(keys) > 0 {
		lines = append(lines, "  PRIMARY KEY ("+strings.Join(keys, ", ")+")")
	}
	return "CREATE TABLE " + name + " (\n" + strings.Join(lines, ",\n") + "\n)"
}

func (c pgColumn) columnType() string {
	switch {
	case c.length.Valid:
		return fmt.Sprintf("%s(%d)", c.dataType, c.length.Int64)
	case c.dataType == "numeric" && c.precision.Valid && c.scale.Valid:
		return fmt.Sprintf("numeric(%d,%d)", c.precision.Int64, c.scale.Int64)
	}
	return c.dataType
}
