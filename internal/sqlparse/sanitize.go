package sqlparse

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Sanitize 清理输入的 SQL：去掉注释、非法字符，并把所有行合并为一行。
// 对已清理过的文本再次调用不会改变结果。
func Sanitize(raw string) string {
	lines := strings.Split(lineBreaks.Replace(raw), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if i := commentStart(line); i >= 0 {
			line = line[:i]
		}
		words := strings.Fields(strings.Map(keepRune, foldAccents(line)))
		if len(words) == 0 {
			continue
		}
		kept = append(kept, strings.Join(words, " "))
	}
	return strings.Join(kept, " ")
}

// commentStart 返回引号外第一个 -- 的位置，没有时返回 -1
func commentStart(line string) int {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"' || c == '`':
			quote = c
		case c == '-' && i+1 < len(line) && line[i+1] == '-':
			return i
		}
	}
	return -1
}

func keepRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return r
	case r == '_', r == '(', r == ')', r == ',', r == '.':
		return r
	case unicode.IsSpace(r):
		return ' '
	}
	return -1
}

// foldAccents é -> e，其余非 ASCII 字符交给 keepRune 丢弃
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
