package dateutil

import (
	"fmt"
	"time"

	"github.com/trailpoint/backend/internal/entity"
)

func GetCurrentValueByRange(r entity.UserAggregateRange) (string, error) {
	return GetValueByRange(time.Now(), r)
}

func GetPreviousValueByRange(r entity.UserAggregateRange) (string, error) {
	var t time.Time
	switch r {
	case entity.UserAggregateRangeWeek:
		t = time.Now().AddDate(0, 0, -7)
	case entity.UserAggregateRangeMonth:
		t = time.Now().AddDate(0, -1, 0)
	case entity.UserAggregateRangeTotal:
		t = time.Now()
	}

	return GetValueByRange(t, r)
}

func GetValueByRange(t time.Time, r entity.UserAggregateRange) (string, error) {
	var val string
	switch r {
	case entity.UserAggregateRangeWeek:
		year, week := t.ISOWeek()
		val = fmt.Sprintf("%d/%d", week, year)

	case entity.UserAggregateRangeMonth:
		val = fmt.Sprintf("%d/%d", t.Month(), t.Year())

	case entity.UserAggregateRangeTotal:
		val = "0/0"

	default:
		return "", fmt.Errorf("leaderboard range must be week, month, or total, but got %s", r)
	}

	return val, nil
}
