package model

import (
	"encoding/json"
	"math"
)

// Fields 松散类型的命名字段集合，通常来自 JSON 解码后的 map
type Fields map[string]interface{}

// StringPtr 取字符串字段，缺失或类型不符时返回 nil；空串原样保留
func (f Fields) StringPtr(key string) *string {
	s, ok := f[key].(string)
	if !ok {
		return nil
	}
	return &s
}

// Int64 取整数字段，兼容各类 Go 整数、JSON 解码出的 float64 与 json.Number
func (f Fields) Int64(key string) (int64, bool) {
	switch v := f[key].(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return uint64ToInt64(uint64(v))
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return uint64ToInt64(v)
	case float64:
		// float64(math.MaxInt64) 即 2^63，已越界
		if v != math.Trunc(v) || v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, false
		}
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	default:
		return 0, false
	}
}

func uint64ToInt64(v uint64) (int64, bool) {
	if v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}
