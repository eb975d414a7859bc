package lockwatch

import (
	"os"
	"strconv"
	"time"
)

// ParseDuration is time.ParseDuration with an extra "d" unit meaning days,
// where a day is 24h. Day values may be fractional, signed, and mixed with
// the standard units in any order ("1m2d30s").
func ParseDuration(s string) (time.Duration, error) {
	var inNumber bool
	var numStart int
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == 'd' {
			daysStr := s[numStart:i]
			days, err := strconv.ParseFloat(daysStr, 64)
			if err != nil {
				return 0, err
			}
			hours := days * 24.0
			hoursStr := strconv.FormatFloat(hours, 'f', -1, 64)
			s = s[:numStart] + hoursStr + "h" + s[i+1:]
			i--
			continue
		}
		if !inNumber {
			numStart = i
		}
		inNumber = (ch >= '0' && ch <= '9') || ch == '.' || ch == '-' || ch == '+'
	}
	return time.ParseDuration(s)
}

// coarseDuration formats d in the coarsest non-zero unit among seconds,
// milliseconds, microseconds and nanoseconds.
func coarseDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
	case d >= time.Millisecond:
		return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
	case d >= time.Microsecond:
		return strconv.FormatInt(int64(d/time.Microsecond), 10) + "us"
	default:
		return strconv.FormatInt(d.Nanoseconds(), 10) + "ns"
	}
}

// GetDurationEnvOrDefault reads key from the environment and parses it with
// ParseDuration. Unset or invalid values fall back to def; an invalid value
// is warned about once per process.
func GetDurationEnvOrDefault(key string, def time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	d, err := ParseDuration(val)
	if err != nil {
		WarnOncef("%s=%q is not a valid duration, using %v", key, val, def)
		return def
	}
	return d
}
