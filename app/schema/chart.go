package schema

import "tour-insight/app/model"

// ChartRecord 图表数据，只包含 name 和 value
type ChartRecord struct {
	Name  *string `json:"name"`
	Value int64   `json:"value"`
}

func DumpChart(rows []model.ChartData) []ChartRecord {
	records := make([]ChartRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, ChartRecord{Name: r.Name, Value: r.Value})
	}
	return records
}
