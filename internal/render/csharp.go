package render

import (
	"strings"

	"github.com/huoxue1/sql2class/internal/sqlparse"
)

const indent = "    "

type csharp struct{}

func (c *csharp) Name() string {
	return "csharp"
}

func (c *csharp) Ext() string {
	return ".cs"
}

// Render 生成 C# POCO
func (c *csharp) Render(tables []sqlparse.TableDefinition, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	namespace := opts.Namespace
	if namespace == "" {
		namespace = DefaultOptions().Namespace
	}

	var b strings.Builder
	for i, table := range tables {
		spaces := ""
		if opts.AddNamespace {
			b.WriteString("namespace " + namespace + "\n{\n")
			spaces += indent
		}
		if opts.AddAnnotations {
			b.WriteString(spaces + "[Table(\"" + table.Name + "\")]\n")
		}
		b.WriteString(spaces + "public class " + capitalizeFirst(table.ClassName()) + "\n" + spaces + "{\n")
		spaces += indent

		accessors := csharpAccessors(opts)
		for _, field := range table.Fields {
			b.WriteString(spaces + "public " + csharpType(field, opts) + " " + FieldName(field.Name, opts))
			if accessors == "" {
				b.WriteString(";\n")
			} else {
				b.WriteString(accessors + "\n")
			}
		}

		if opts.AddNamespace {
			b.WriteString(indent + "}\n}")
		} else {
			b.WriteString("}")
		}
		if i < len(tables)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String(), nil
}

// csharpAccessors { public get; private set; }
func csharpAccessors(opts Options) string {
	if opts.Getter == AccessNone && opts.Setter == AccessNone {
		return ""
	}
	s := " { "
	if opts.Getter != AccessNone {
		s += opts.Getter.modifier() + "get; "
	}
	if opts.Setter != AccessNone {
		s += opts.Setter.modifier() + "set; "
	}
	return s + "}"
}

// 可以加 ? 的值类型
var csharpValueTypes = map[string]bool{
	"int":      true,
	"long":     true,
	"short":    true,
	"byte":     true,
	"bool":     true,
	"Decimal":  true,
	"double":   true,
	"DateTime": true,
	"TimeSpan": true,
	"Guid":     true,
}

func csharpType(field sqlparse.FieldDefinition, opts Options) string {
	t := csharpBaseType(field)
	if opts.IncludeNullableTypes && field.IsNullable && csharpValueTypes[t] {
		t += "?"
	}
	return t
}

func csharpBaseType(field sqlparse.FieldDefinition) string {
	if !field.HasType() {
		return "object"
	}
	dataType := strings.ToLower(field.DataType)
	base := strings.ToLower(field.BaseType)
	switch {
	case dataType == "tinyint(1)", base == "bool", base == "boolean", base == "bit":
		return "bool"
	case base == "bigint", base == "int8", base == "bigserial", base == "serial8":
		return "long"
	case base == "smallint", base == "int2", base == "smallserial":
		return "short"
	case base == "tinyint":
		return "byte"
	case base == "interval":
		return "TimeSpan"
	case strings.HasPrefix(base, "serial"), strings.HasPrefix(base, "int"), base == "mediumint":
		return "int"
	case strings.HasPrefix(base, "varchar"), strings.HasPrefix(base, "nvarchar"),
		strings.HasPrefix(base, "character"), strings.HasPrefix(base, "char"),
		strings.HasPrefix(base, "nchar"), strings.HasPrefix(base, "national"),
		strings.HasSuffix(base, "text"), base == "citext":
		return "string"
	case strings.HasPrefix(base, "numeric"), base == "decimal", base == "money":
		return "Decimal"
	case base == "float", base == "double", base == "real", base == "double precision",
		base == "float4", base == "float8":
		return "double"
	case strings.HasPrefix(base, "timestamp"), strings.HasPrefix(base, "date"):
		return "DateTime"
	case strings.HasPrefix(base, "time"):
		return "TimeSpan"
	case base == "uuid", base == "uniqueidentifier":
		return "Guid"
	case base == "bytea", strings.HasSuffix(base, "blob"), strings.HasSuffix(base, "binary"):
		return "byte[]"
	}
	return "object"
}
