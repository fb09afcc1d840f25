package render

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// capitalizeFirst 首字母大写，其余不变
func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// FieldName 按选项转换字段名
func FieldName(name string, opts Options) string {
	switch opts.Casing {
	case CasingFirst:
		name = capitalizeFirst(name)
	case CasingSegments:
		pieces := strings.Split(name, "_")
		for i, p := range pieces {
			pieces[i] = capitalizeFirst(p)
		}
		name = strings.Join(pieces, "_")
	}
	if opts.RemoveUnderscores {
		name = strings.ReplaceAll(name, "_", "")
	}
	return name
}

// Case2Camel user_name -> UserName
func Case2Camel(name string) string {
	name = strings.ReplaceAll(name, ".", "_")
	var b strings.Builder
	for _, p := range strings.Split(name, "_") {
		b.WriteString(capitalizeFirst(p))
	}
	out := b.String()
	if out == "" {
		return "X"
	}
	if r, _ := utf8.DecodeRuneInString(out); unicode.IsDigit(r) {
		out = "X" + out
	}
	return out
}
