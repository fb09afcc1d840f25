package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/huoxue1/sql2class/internal/sqlparse"
)

type golang struct{}

func (g *golang) Name() string {
	return "go"
}

func (g *golang) Ext() string {
	return ".go"
}

// Render 生成 Go 结构体，字段名总是导出的驼峰形式，Casing 和 RemoveUnderscores 不生效
func (g *golang) Render(tables []sqlparse.TableDefinition, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	pkg := opts.Package
	if pkg == "" {
		pkg = DefaultOptions().Package
	}

	f := jen.NewFile(pkg)
	f.HeaderComment("generate by sql2class")
	for i, name := range typeNames(tables) {
		generateStruct(f, name, tables[i], opts)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", fmt.Errorf("生成 Go 代码失败: %w", err)
	}
	return buf.String(), nil
}

// generateStruct
/* @Description: 根据table生成一个结构体
*  @param f
*  @param typeName
*  @param table
*  @param opts
 */
func generateStruct(f *jen.File, typeName string, table sqlparse.TableDefinition, opts Options) {
	var fields []jen.Code
	for _, field := range table.Fields {
		fields = append(fields, jen.Comment(fmt.Sprintf("column_name:%v, column_type:%v", field.Name, field.DataType)))
		stmt := jen.Id(Case2Camel(field.Name))
		if opts.IncludeNullableTypes && field.IsNullable && field.HasType() {
			stmt = stmt.Op("*")
		}
		fields = append(fields, ConvertType(stmt, field).Tag(map[string]string{
			"json": field.Name,
			"db":   field.Name,
		}))
	}

	f.Comment(typeName + " " + table.Name)
	f.Type().Id(typeName).Struct(fields...)

	if opts.AddAnnotations {
		f.Comment("TableName 表名")
		f.Func().Params(jen.Id(typeName)).Id("TableName").Params().String().Block(
			jen.Return(jen.Lit(table.Name)),
		)
	}
}

// typeNames 结构体名默认去掉 schema，不同 schema 下的同名表保留 schema 前缀
func typeNames(tables []sqlparse.TableDefinition) []string {
	count := make(map[string]int, len(tables))
	for _, table := range tables {
		count[Case2Camel(table.ClassName())]++
	}
	names := make([]string, len(tables))
	for i, table := range tables {
		names[i] = Case2Camel(table.ClassName())
		if count[names[i]] > 1 {
			names[i] = Case2Camel(table.Name)
		}
	}
	return names
}

// ConvertType 把 SQL 类型转换为 Go 类型
func ConvertType(statement *jen.Statement, field sqlparse.FieldDefinition) *jen.Statement {
	if !field.HasType() {
		return statement.Interface()
	}
	if strings.EqualFold(field.DataType, "tinyint(1)") {
		return statement.Bool()
	}
	switch strings.ToLower(field.BaseType) {
	case "varchar", "char", "tinytext", "longtext", "mediumtext", "text", "nvarchar", "nchar",
		"character", "character varying", "char varying", "citext", "uuid", "enum", "json", "jsonb":
		return statement.String()
	case "bool", "boolean", "bit":
		return statement.Bool()
	case "tinyint", "int", "smallint", "mediumint", "integer", "int2", "int4", "serial", "serial4", "smallserial":
		return statement.Int()
	case "bigint", "int8", "bigserial", "serial8":
		return statement.Int64()
	case "float", "double", "decimal", "numeric", "real", "double precision", "float4", "float8", "money":
		return statement.Float64()
	case "tinyblob", "blob", "mediumblob", "longblob", "bytea", "binary", "varbinary":
		return statement.Op("[]").Byte()
	case "date", "time", "year", "datetime", "timestamp", "timestamptz",
		"timestamp with time zone", "timestamp without time zone", "time with time zone", "time without time zone":
		return statement.Qual("time", "Time")
	default:
		return statement.String()
	}
}
