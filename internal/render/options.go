package render

import "fmt"

// Access getter/setter 的访问级别，取值与页面下拉框一致
type Access int

const (
	AccessNone Access = iota
	AccessPublic
	AccessProtected
	AccessInternal
	AccessProtectedInternal
	AccessPrivate
	AccessPrivateProtected
)

// internal 是默认访问级别，所以不需要写出来
var accessModifiers = [...]string{
	AccessNone:              "",
	AccessPublic:            "public ",
	AccessProtected:         "protected ",
	AccessInternal:          "",
	AccessProtectedInternal: "protected internal ",
	AccessPrivate:           "private ",
	AccessPrivateProtected:  "private protected ",
}

func (a Access) valid() bool {
	return a >= AccessNone && int(a) < len(accessModifiers)
}

func (a Access) modifier() string {
	if !a.valid() {
		return ""
	}
	return accessModifiers[a]
}

// Casing 字段名大小写方式
type Casing int

const (
	CasingNone Casing = iota
	// CasingFirst 只大写首字母
	CasingFirst
	// CasingSegments 按下划线分段后每段首字母大写
	CasingSegments
)

// Options 控制生成代码的样式
type Options struct {
	AddNamespace         bool   `json:"add_namespace"`
	Namespace            string `json:"namespace"`
	AddAnnotations       bool   `json:"add_annotations"`
	Getter               Access `json:"getter"`
	Setter               Access `json:"setter"`
	IncludeNullableTypes bool   `json:"include_nullable_types"`
	RemoveUnderscores    bool   `json:"remove_underscores"`
	Casing               Casing `json:"casing"`
	// Package 生成 Go 代码时的包名
	Package string `json:"package"`
}

// DefaultOptions 页面的默认选项
func DefaultOptions() Options {
	return Options{
		Namespace: "SampleNamespace",
		Package:   "model",
	}
}

// Validate 检查枚举取值是否合法
func (o Options) Validate() error {
	if !o.Getter.valid() {
		return fmt.Errorf("getter 取值非法: %d", o.Getter)
	}
	if !o.Setter.valid() {
		return fmt.Errorf("setter 取值非法: %d", o.Setter)
	}
	if o.Casing < CasingNone || o.Casing > CasingSegments {
		return fmt.Errorf("casing 取值非法: %d", o.Casing)
	}
	return nil
}
