package source

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"
)

type sqlite struct {
}

func (s *sqlite) Name() string {
	return "sqlite"
}

func (s *sqlite) SQLDriver() string {
	return "sqlite"
}

func (s *sqlite) Tables(ctx context.Context, db *sql.DB) ([]string, error) {
	return queryStrings(ctx, db,
		"select tbl_name from sqlite_master where type='table' and name != 'sqlite_sequence' and name not like 'sqlite_%' order by rowid")
}

// CreateStatement sqlite 原样保存了建表语句
func (s *sqlite) CreateStatement(ctx context.Context, db *sql.DB, table string) (string, error) {
	var stmt string
	err := db.QueryRowContext(ctx, `select sql from sqlite_master where type='table' and tbl_name=?`, table).Scan(&stmt)
	if err != nil {
		return "", err
	}
	return stmt, nil
}
