package repository

import (
	"errors"
	"strconv"
	"time"
)

var ErrRecordAlreadyExists = errors.New("record already exists")

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
