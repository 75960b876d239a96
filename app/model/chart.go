package model

// ChartData 分组统计结果，只读，不落库
type ChartData struct {
	Name  *string
	Value int64
}
