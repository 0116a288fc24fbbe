package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// genericLayouts are tried in order before the heuristic splitter kicks in.
// They cover ISO-8601 and the unambiguous formats exports commonly use.
var genericLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02 Jan 2006",
}

var heuristicSeparators = strings.NewReplacer(".", "-", "/", "-")

// ParseWhen converts one raw cell value into an instant. It is total: any
// input that cannot be understood yields the zero time, never an error.
//
// Ambiguous numeric dates default to DD-MM-YYYY. That heuristic can misread
// US-style dates ("03-04-2024" is April 3rd here) and is kept on purpose for
// compatibility with existing exports.
func ParseWhen(v any) time.Time {
	switch t := v.(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return t
	case *time.Time:
		if t == nil {
			return time.Time{}
		}
		return *t
	}

	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "" || strings.Trim(s, "-") == "" || strings.EqualFold(s, "null") {
		return time.Time{}
	}

	for _, layout := range genericLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return parseHeuristic(s)
}

// parseHeuristic handles "DD-MM-YYYY" and "YYYY-MM-DD" with `.` or `/` as
// alternative separators and an optional trailing "HH:MM:SS" time part.
func parseHeuristic(s string) time.Time {
	s = heuristicSeparators.Replace(s)
	datePart, timePart, _ := strings.Cut(s, " ")

	parts := strings.Split(datePart, "-")
	if len(parts) != 3 {
		return time.Time{}
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}
		}
		nums[i] = n
	}

	var year, month, day int
	if len(parts[0]) == 4 {
		year, month, day = nums[0], nums[1], nums[2]
	} else {
		day, month, year = nums[0], nums[1], nums[2]
	}

	hour, minute, second := parseClock(timePart)

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
}

// parseClock reads "HH", "HH:MM" or "HH:MM:SS"; missing components are zero.
func parseClock(s string) (hour, minute, second int) {
	if strings.TrimSpace(s) == "" {
		return 0, 0, 0
	}
	fields := strings.Split(strings.TrimSpace(s), ":")
	out := [3]int{}
	for i := 0; i < len(fields) && i < 3; i++ {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			break
		}
		out[i] = n
	}
	return out[0], out[1], out[2]
}
