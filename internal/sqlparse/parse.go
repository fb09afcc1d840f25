// Package sqlparse 把 CREATE TABLE 脚本解析成表结构。
//
// 解析分为四步：Sanitize 清理输入，ExtractTables 找出每个表，
// SplitFields 切分字段列表，ParseField 解析单个字段。Parse 把它们串起来。
// 所有函数都没有共享状态，可以并发调用。
package sqlparse

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// Parse 解析整个 SQL 脚本，按出现顺序返回所有表
func Parse(sql string) []TableDefinition {
	raws := ExtractTables(Sanitize(sql))
	tables := make([]TableDefinition, 0, len(raws))
	for _, raw := range raws {
		tables = append(tables, assemble(raw))
	}
	return tables
}

func assemble(raw RawTable) TableDefinition {
	table := TableDefinition{Name: raw.Name}
	var keys []string
	for _, fragment := range SplitFields(raw.FieldsSQL) {
		result := ParseField(fragment)
		if !result.OK() {
			log.WithFields(log.Fields{
				"table":    raw.Name,
				"fragment": fragment,
				"reason":   result.Reason,
			}).Debugln("跳过字段")
			keys = append(keys, result.Columns...)
			continue
		}
		table.Fields = append(table.Fields, result.Field)
	}
	for _, key := range keys {
		for i := range table.Fields {
			if strings.EqualFold(table.Fields[i].Name, key) {
				table.Fields[i].PrimaryKey = true
			}
		}
	}
	return table
}
