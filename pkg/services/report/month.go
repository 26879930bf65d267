package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/tienda-tools/informe/pkg/models/domain"
)

// ErrInvalidMonth is returned when a month parameter is not YYYY-MM.
var ErrInvalidMonth = errors.New("invalid month format, expected YYYY-MM")

const monthLayout = "2006-01"

// MonthRange resolves a YYYY-MM string into the half-open interval
// [start, end) covering that calendar month. December rolls over into
// January of the next year.
func MonthRange(mes string) (time.Time, time.Time, error) {
	start, err := time.Parse(monthLayout, mes)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonth, mes)
	}
	end := start.AddDate(0, 1, 0)
	return start, end, nil
}

// Weeks partitions [start, end) into consecutive 7-day buckets starting at
// start. The last bucket is never clipped at the month boundary: weekly
// figures from different aggregators are joined by index, so every month must
// produce the same fixed-stride windows.
func Weeks(start, end time.Time) []domain.WeekBucket {
	var buckets []domain.WeekBucket
	for cur := start; cur.Before(end); cur = cur.AddDate(0, 0, 7) {
		buckets = append(buckets, domain.WeekBucket{
			Start: cur,
			End:   cur.AddDate(0, 0, 6),
		})
	}
	return buckets
}
