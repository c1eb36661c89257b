package usecase

import (
	"slices"
	"strings"
	"time"

	"medical-tracker/internal/domain/entity"
)

// defaultRecentLimit applies when a recent query asks for n <= 0
const defaultRecentLimit = 5

func keep[T any](records []T, match func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, record := range records {
		if match(record) {
			out = append(out, record)
		}
	}
	return out
}

// sortByFilter orders records in place according to filter.Sort. An empty
// or unknown sort leaves storage order untouched.
func sortByFilter[T any](records []T, filter entity.ListFilter, date func(T) time.Time, name func(T) string) {
	field, desc, ok := filter.SortOrder()
	if !ok {
		return
	}

	slices.SortStableFunc(records, func(a, b T) int {
		var c int
		switch field {
		case entity.SortByDate:
			c = date(a).Compare(date(b))
		case entity.SortByName:
			c = strings.Compare(strings.ToLower(name(a)), strings.ToLower(name(b)))
		}
		if desc {
			return -c
		}
		return c
	})
}

// mostRecent sorts newest first and keeps at most n records.
func mostRecent[T any](records []T, n int, date func(T) time.Time) []T {
	if n <= 0 {
		n = defaultRecentLimit
	}

	slices.SortStableFunc(records, func(a, b T) int {
		return date(b).Compare(date(a))
	})
	if len(records) > n {
		records = records[:n]
	}
	return records
}
