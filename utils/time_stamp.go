package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// CtimeLayout is the classic C ctime(3) rendering, e.g. "Thu Jan  1 00:00:01 1970".
const CtimeLayout = time.ANSIC

// MillisToTime converts an epoch-milliseconds text value (as stored in the
// instrument file) to a local time.Time. Fractional milliseconds are kept.
func MillisToTime(millis string) (time.Time, error) {
	ms, err := strconv.ParseFloat(strings.TrimSpace(millis), 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse milliTime %q: %w", millis, err)
	}
	sec, frac := math.Modf(ms / 1000.0)
	return time.Unix(int64(sec), int64(frac*1e9)).Local(), nil
}

// Ctime renders an epoch-milliseconds text value as local ctime text.
func Ctime(millis string) (string, error) {
	t, err := MillisToTime(millis)
	if err != nil {
		return "", err
	}
	return t.Format(CtimeLayout), nil
}
