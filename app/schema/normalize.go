package schema

import "golang.org/x/text/unicode/norm"

// Normalize 将文本统一为 NFC 形式，保证组合字符与预组合字符检索一致
func Normalize(s string) string {
	return norm.NFC.String(s)
}

func normalizeOptional(o Optional[string]) Optional[string] {
	if o.Value == nil {
		return o
	}
	return Some(Normalize(*o.Value))
}
