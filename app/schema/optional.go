package schema

import "encoding/json"

// Optional 区分 JSON 中字段的三种状态：未出现、显式 null、有值
type Optional[T any] struct {
	Present bool
	Value   *T
}

// UnmarshalJSON 只要字段出现在请求体中就会被调用，包括 null
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// Some 构造一个有值的 Optional
func Some[T any](v T) Optional[T] {
	return Optional[T]{Present: true, Value: &v}
}

// Null 构造一个显式为 null 的 Optional
func Null[T any]() Optional[T] {
	return Optional[T]{Present: true}
}

// assign 字段出现时覆盖目标，null 清空目标
func assign[T any](dst **T, o Optional[T]) {
	if !o.Present {
		return
	}
	if o.Value == nil {
		*dst = nil
		return
	}
	v := *o.Value
	*dst = &v
}

func isBlank(o Optional[string]) bool {
	return o.Value == nil || *o.Value == ""
}
