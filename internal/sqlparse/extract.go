package sqlparse

import "strings"

type scanState int

const (
	stateOutside scanState = iota
	stateInTable
	stateInFieldLength
)

func (s scanState) String() string {
	switch s {
	case stateOutside:
		return "OUTSIDE"
	case stateInTable:
		return "IN_TABLE"
	case stateInFieldLength:
		return "IN_FIELD_LENGTH"
	}
	return "UNKNOWN"
}

// tableScanner 逐字符扫描 SQL，识别 CREATE TABLE 块
type tableScanner struct {
	state scanState
	depth int

	word       strings.Builder
	afterTable bool
	name       string
	// capture 为 false 时只跳过括号内容，例如 INSERT ... VALUES (...)
	capture bool
	fields  strings.Builder

	tables []RawTable
}

// ExtractTables 从清理后的 SQL 中提取每个表的名字和未解析的字段部分，按出现顺序返回。
// 末尾未闭合的表会被丢弃。
func ExtractTables(sql string) []RawTable {
	s := &tableScanner{}
	for _, r := range sql {
		s.step(r)
	}
	return s.tables
}

func (s *tableScanner) step(r rune) {
	switch s.state {
	case stateOutside:
		s.outside(r)
	case stateInTable, stateInFieldLength:
		s.inside(r)
	}
}

func (s *tableScanner) outside(r rune) {
	switch {
	case r == '(':
		s.completeWord()
		s.state = stateInTable
		s.depth = 1
		s.capture = s.name != ""
		s.fields.Reset()
	case r == ')':
		// 多余的右括号，忽略
		s.completeWord()
	case r == ' ' || r == '\t' || r == '\n':
		s.completeWord()
	default:
		s.word.WriteRune(r)
	}
}

func (s *tableScanner) inside(r rune) {
	switch r {
	case '(':
		s.depth++
		s.state = stateInFieldLength
	case ')':
		s.depth--
		if s.depth == 0 {
			s.closeTable()
			return
		}
		if s.depth == 1 {
			s.state = stateInTable
		}
	}
	s.fields.WriteRune(r)
}

func (s *tableScanner) closeTable() {
	if s.capture {
		s.tables = append(s.tables, RawTable{Name: s.name, FieldsSQL: s.fields.String()})
	}
	s.state = stateOutside
	s.depth = 0
	s.capture = false
	s.name = ""
	s.afterTable = false
	s.fields.Reset()
}

// completeWord 结束当前单词；TABLE 之后的第一个单词（跳过 IF NOT EXISTS 和 ONLY）就是表名。
// 表名后面必须紧跟左括号，中间再出现单词说明不是建表语句。
func (s *tableScanner) completeWord() {
	word := s.word.String()
	s.word.Reset()
	if word == "" {
		return
	}
	upper := strings.ToUpper(word)
	if s.afterTable {
		switch upper {
		case "IF", "NOT", "EXISTS", "ONLY":
			return
		}
		s.name = word
		s.afterTable = false
		return
	}
	if upper == "TABLE" {
		s.afterTable = true
		s.name = ""
		return
	}
	s.name = ""
}
