package vault

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/starbounty/vault/errors"
)

// UnixTime is a point in time in whole seconds since the epoch. It is the
// representation of unlock times, and it cannot predate the epoch. The
// whole uint64 range is valid. Values past MaxTime never expire.
type UnixTime uint64

// MaxTime is the latest time that Time and String represent exactly,
// 9999-12-31T23:59:59Z.
const MaxTime UnixTime = 253402300799

// AsUnixTime truncates t to seconds. Times before the epoch become zero.
func AsUnixTime(t time.Time) UnixTime {
	return clampUnix(t.Unix())
}

func clampUnix(secs int64) UnixTime {
	if secs < 0 {
		return 0
	}
	return UnixTime(secs)
}

// Time returns t as a UTC time.Time. Times past MaxTime saturate at
// MaxTime.
func (t UnixTime) Time() time.Time {
	if t > MaxTime {
		t = MaxTime
	}
	return time.Unix(int64(t), 0).UTC()
}

func (t UnixTime) IsZero() bool {
	return t == 0
}

// Add shifts t by d truncated to seconds, like time.Time.Add. Results
// are clamped to the uint64 range.
func (t UnixTime) Add(d time.Duration) UnixTime {
	secs := int64(d / time.Second)
	if secs < 0 {
		if UnixTime(-secs) > t {
			return 0
		}
		return t - UnixTime(-secs)
	}
	if sum := t + UnixTime(secs); sum >= t {
		return sum
	}
	return math.MaxUint64
}

// String returns RFC 3339 up to MaxTime and plain seconds beyond.
func (t UnixTime) String() string {
	if t > MaxTime {
		return strconv.FormatUint(uint64(t), 10)
	}
	return t.Time().Format(time.RFC3339)
}

// UnmarshalJSON accepts either a number of seconds or an RFC 3339 string.
// Genesis files usually carry the latter.
func (t *UnixTime) UnmarshalJSON(raw []byte) error {
	var u uint64
	if err := json.Unmarshal(raw, &u); err == nil {
		*t = UnixTime(u)
		return nil
	}
	var secs int64
	if err := json.Unmarshal(raw, &secs); err != nil {
		var ts time.Time
		if err := json.Unmarshal(raw, &ts); err != nil {
			return errors.Wrapf(errors.ErrInvalidInput, "time %s", raw)
		}
		secs = ts.Unix()
	}
	if secs < 0 {
		return errors.Wrapf(errors.ErrInvalidInput, "time %s before epoch", raw)
	}
	*t = UnixTime(secs)
	return nil
}
