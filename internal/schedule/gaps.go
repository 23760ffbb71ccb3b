package schedule

import (
	"github.com/bagdasarian/crew-scheduler/internal/domain"
)

// FindLeaderGaps вычисляет для одной команды периоды внутри окна просмотра,
// когда участники есть, а тимлида нет.
//
// Границы периодов привязаны к реальному покрытию команды (минимальный старт
// и максимальный конец всех её назначений), а не к произвольному окну
// просмотра. Команда без участников в окне предупреждений не дает.
func FindLeaderGaps(teamID string, assignments []domain.Assignment, view Interval) []domain.LeaderGap {
	var members []domain.Assignment
	for _, a := range assignments {
		if a.TeamID == teamID {
			members = append(members, a)
		}
	}

	inView := false
	for _, m := range members {
		if Overlaps(m.Start, m.End, view.Start, view.End) {
			inView = true
			break
		}
	}
	if !inView {
		return nil
	}

	// Общий отрезок покрытия по ВСЕМ назначениям команды, обрезанный до окна.
	span := Interval{Start: members[0].Start, End: members[0].End}
	for _, m := range members[1:] {
		if m.Start.Before(span.Start) {
			span.Start = m.Start
		}
		if m.End.After(span.End) {
			span.End = m.End
		}
	}
	if view.Start.After(span.Start) {
		span.Start = view.Start
	}
	if view.End.Before(span.End) {
		span.End = view.End
	}
	if !span.Start.Before(span.End) {
		return nil
	}

	var leaders []Interval
	for _, m := range members {
		if m.IsTeamLeader {
			leaders = append(leaders, Interval{Start: m.Start, End: m.End})
		}
	}

	// Совсем без тимлида - весь отрезок покрытия одним пробелом.
	if len(leaders) == 0 {
		return []domain.LeaderGap{{TeamID: teamID, Start: span.Start, End: span.End}}
	}

	merged := MergeIntervals(leaders)

	var gaps []domain.LeaderGap
	cursor := span.Start
	for _, iv := range merged {
		if iv.Start.After(cursor) && cursor.Before(span.End) {
			gapEnd := iv.Start
			if gapEnd.After(span.End) {
				gapEnd = span.End
			}
			if cursor.Before(gapEnd) {
				gaps = append(gaps, domain.LeaderGap{TeamID: teamID, Start: cursor, End: gapEnd})
			}
		}
		if iv.End.After(cursor) {
			cursor = iv.End
		}
	}
	if cursor.Before(span.End) {
		gaps = append(gaps, domain.LeaderGap{TeamID: teamID, Start: cursor, End: span.End})
	}

	return gaps
}
