package sqlparse

import "strings"

// SplitFields 按最外层的逗号切分字段列表，括号内的逗号（如 numeric(10,2)）不参与切分
func SplitFields(raw string) []string {
	var (
		fragments []string
		current   strings.Builder
		depth     int
	)
	flush := func() {
		if f := strings.TrimSpace(current.String()); f != "" {
			fragments = append(fragments, f)
		}
		current.Reset()
	}
	for _, r := range raw {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				flush()
				continue
			}
		}
		current.WriteRune(r)
	}
	flush()
	return fragments
}

// splitArgs 拆出类型括号中的参数：VARCHAR(255) -> VARCHAR, [255]；
// timestamp(3) with time zone -> timestamp with time zone, [3]
func splitArgs(dataType string) (string, []string) {
	var (
		base  strings.Builder
		inner strings.Builder
		depth int
		seen  bool
	)
	for _, r := range dataType {
		switch {
		case r == '(':
			depth++
			if depth == 1 {
				continue
			}
		case r == ')' && depth > 0:
			depth--
			if depth == 0 {
				seen = true
				continue
			}
		}
		switch {
		case depth == 0:
			base.WriteRune(r)
		case !seen:
			inner.WriteRune(r)
		}
	}
	if inner.Len() == 0 {
		return strings.Join(strings.Fields(base.String()), " "), nil
	}
	return strings.Join(strings.Fields(base.String()), " "), SplitFields(inner.String())
}
