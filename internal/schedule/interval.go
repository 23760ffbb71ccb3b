package schedule

import (
	"sort"
	"time"

	"github.com/bagdasarian/crew-scheduler/internal/domain"
)

// Interval - полуоткрытый интервал времени [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps сообщает, пересекаются ли полуоткрытые интервалы [aStart, aEnd) и [bStart, bEnd).
// Касание границ (aEnd == bStart) пересечением НЕ считается - это общая политика всей системы.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FindOverlapping возвращает все назначения того же ресурса, чьи интервалы
// пересекаются с [start, end), в исходном порядке. excludeID позволяет исключить
// назначение из проверки (валидация редактирования против самого себя).
func FindOverlapping(resourceID string, start, end time.Time, assignments []domain.Assignment, excludeID string) []domain.Assignment {
	var overlapping []domain.Assignment
	for _, a := range assignments {
		if a.ResourceID != resourceID {
			continue
		}
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		if Overlaps(a.Start, a.End, start, end) {
			overlapping = append(overlapping, a)
		}
	}
	return overlapping
}

// MergeIntervals сортирует интервалы по началу и склеивает смежные и
// пересекающиеся (next.Start <= current.End) в максимальные отрезки.
// Исходный срез не изменяется.
func MergeIntervals(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sorted := append([]Interval(nil), intervals...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []Interval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !iv.Start.After(last.End) {
			if iv.End.After(last.End) {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
