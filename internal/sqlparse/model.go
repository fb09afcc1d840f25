package sqlparse

import "strings"

// TableDefinition 一个 CREATE TABLE 块解析后的结果
type TableDefinition struct {
	// Name 可能带 schema 前缀，例如 public.orders
	Name   string
	Fields []FieldDefinition
}

// ClassName 去掉 schema 前缀后的表名
func (t TableDefinition) ClassName() string {
	if i := strings.LastIndex(t.Name, "."); i >= 0 {
		return t.Name[i+1:]
	}
	return t.Name
}

// PrimaryKeys 返回主键字段
func (t TableDefinition) PrimaryKeys() []FieldDefinition {
	var keys []FieldDefinition
	for _, f := range t.Fields {
		if f.PrimaryKey {
			keys = append(keys, f)
		}
	}
	return keys
}

// FieldDefinition 表中的一个字段
type FieldDefinition struct {
	Name string
	// DataType 原样保留的类型文本，如 VARCHAR(255)；为空表示没有类型
	DataType string
	// BaseType 去掉括号参数的类型，如 VARCHAR
	BaseType string
	// Args 括号中的长度/精度参数，如 ["10", "2"]
	Args          []string
	IsNullable    bool
	PrimaryKey    bool
	AutoIncrement bool
}

// HasType 字段是否带有类型
func (f FieldDefinition) HasType() bool {
	return f.DataType != ""
}

// RawTable 表提取阶段的输出，字段部分尚未解析
type RawTable struct {
	Name      string
	FieldsSQL string
}
