package service

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortByName 按名称升序排序（区域感知、稳定）
func sortByName[T any](items []T, name func(T) string) {
	c := collate.New(language.Und)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(name(items[i]), name(items[j])) < 0
	})
}

// parseTimestamp 解析时间戳，无法解析时返回零值
func parseTimestamp(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
