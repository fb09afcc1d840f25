package sqlparse

import (
	"strings"
	"unicode"
)

// ResultKind 字段片段的解析结果类别
type ResultKind int

const (
	Parsed ResultKind = iota
	Skipped
)

// SkipReason 片段没有产生字段的原因
type SkipReason int

const (
	SkipNone SkipReason = iota
	SkipConstraint
	SkipEmpty
	SkipMalformed
)

func (r SkipReason) String() string {
	switch r {
	case SkipNone:
		return "none"
	case SkipConstraint:
		return "constraint"
	case SkipEmpty:
		return "empty"
	case SkipMalformed:
		return "malformed"
	}
	return "unknown"
}

// FieldResult ParseField 的返回值
type FieldResult struct {
	Kind   ResultKind
	Field  FieldDefinition
	Reason SkipReason
	// Columns 表级 PRIMARY KEY 约束引用的字段
	Columns []string
}

// OK 片段是否解析成了字段
func (r FieldResult) OK() bool {
	return r.Kind == Parsed
}

// 由多个单词组成的类型
var multiWordTypes = [][]string{
	{"character", "varying"},
	{"char", "varying"},
	{"national", "character", "varying"},
	{"national", "character"},
	{"double", "precision"},
	{"bit", "varying"},
	{"timestamp", "with", "time", "zone"},
	{"timestamp", "without", "time", "zone"},
	{"time", "with", "time", "zone"},
	{"time", "without", "time", "zone"},
}

var serialTypes = map[string]bool{
	"SERIAL":      true,
	"SERIAL4":     true,
	"SERIAL8":     true,
	"BIGSERIAL":   true,
	"SMALLSERIAL": true,
}

// ParseField 解析一个字段片段。表级约束和空片段返回 Skipped，不会返回错误。
func ParseField(fragment string) FieldResult {
	words := tokenize(fragment)
	if len(words) == 0 {
		return FieldResult{Kind: Skipped, Reason: SkipEmpty}
	}
	if isConstraint(words) {
		return FieldResult{Kind: Skipped, Reason: SkipConstraint, Columns: primaryKeyColumns(words)}
	}
	name := words[0]
	if strings.ContainsAny(name, "()") {
		return FieldResult{Kind: Skipped, Reason: SkipMalformed}
	}

	field := FieldDefinition{Name: name, IsNullable: true}
	rest := words[1:]
	if n := typeWords(rest); n > 0 {
		field.DataType = strings.ReplaceAll(strings.Join(rest[:n], " "), " (", "(")
		field.BaseType, field.Args = splitArgs(field.DataType)
	}

	for i, w := range rest {
		upper := strings.ToUpper(baseWord(w))
		next := ""
		if i+1 < len(rest) {
			next = strings.ToUpper(baseWord(rest[i+1]))
		}
		switch {
		case upper == "NOT" && next == "NULL":
			field.IsNullable = false
		case upper == "PRIMARY" && next == "KEY":
			field.PrimaryKey = true
		case upper == "AUTO_INCREMENT", upper == "AUTOINCREMENT", upper == "IDENTITY":
			field.AutoIncrement = true
		}
	}
	if serialTypes[strings.ToUpper(field.BaseType)] {
		field.AutoIncrement = true
	}
	return FieldResult{Kind: Parsed, Field: field}
}

// 字段约束关键字，出现在类型位置时说明字段没有写类型
var columnKeywords = map[string]bool{
	"NOT":            true,
	"NULL":           true,
	"PRIMARY":        true,
	"DEFAULT":        true,
	"UNIQUE":         true,
	"REFERENCES":     true,
	"CHECK":          true,
	"CONSTRAINT":     true,
	"COLLATE":        true,
	"COMMENT":        true,
	"GENERATED":      true,
	"IDENTITY":       true,
	"AUTO_INCREMENT": true,
	"AUTOINCREMENT":  true,
}

// typeWords 返回类型占用的单词数，0 表示没有类型
func typeWords(words []string) int {
	if len(words) == 0 || columnKeywords[strings.ToUpper(baseWord(words[0]))] {
		return 0
	}
	n := 1
	for _, seq := range multiWordTypes {
		if matchWords(words, seq) {
			n = len(seq)
			break
		}
	}
	// VARCHAR (255)
	if n < len(words) && strings.HasPrefix(words[n], "(") && !strings.Contains(words[n-1], "(") {
		n++
	}
	return n
}

func matchWords(words, seq []string) bool {
	if len(words) < len(seq) {
		return false
	}
	for i, s := range seq {
		w := words[i]
		// 括号参数只能出现在第一个或最后一个单词上
		if i > 0 && i < len(seq)-1 && strings.Contains(w, "(") {
			return false
		}
		if !strings.EqualFold(baseWord(w), s) {
			return false
		}
	}
	return true
}

func isConstraint(words []string) bool {
	first := strings.ToUpper(baseWord(words[0]))
	second := ""
	if len(words) > 1 {
		second = strings.ToUpper(baseWord(words[1]))
	}
	switch first {
	case "CONSTRAINT", "CHECK":
		return true
	case "PRIMARY", "FOREIGN":
		return second == "KEY"
	case "UNIQUE", "KEY", "INDEX", "FULLTEXT", "SPATIAL":
		// 以上单词也可能是字段名，只有后面跟着字段列表时才算约束
		if strings.Contains(words[0], "(") {
			return true
		}
		if len(words) > 1 && (strings.HasPrefix(words[1], "(") || second == "KEY" || second == "INDEX") {
			return true
		}
		return len(words) > 2 && strings.HasPrefix(words[2], "(")
	}
	return false
}

// primaryKeyColumns 取出 PRIMARY KEY (a, b) 中的字段名
func primaryKeyColumns(words []string) []string {
	for i := 0; i+1 < len(words); i++ {
		if !strings.EqualFold(words[i], "PRIMARY") || !strings.EqualFold(baseWord(words[i+1]), "KEY") {
			continue
		}
		list := words[i+1]
		if !strings.Contains(list, "(") && i+2 < len(words) {
			list = words[i+2]
		}
		if _, cols := splitArgs(list); len(cols) > 0 {
			return cols
		}
	}
	return nil
}

// tokenize 以括号外的空白切分单词，括号内容保留在单词中
func tokenize(fragment string) []string {
	var (
		words []string
		word  strings.Builder
		depth int
	)
	for _, r := range fragment {
		switch {
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case unicode.IsSpace(r) && depth == 0:
			if word.Len() > 0 {
				words = append(words, word.String())
				word.Reset()
			}
			continue
		}
		word.WriteRune(r)
	}
	if word.Len() > 0 {
		words = append(words, word.String())
	}
	return words
}

// baseWord 去掉单词中括号及其后的部分
func baseWord(w string) string {
	if i := strings.IndexByte(w, '('); i >= 0 {
		return w[:i]
	}
	return w
}
