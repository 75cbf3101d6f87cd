package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FlexTime is an instant that tolerates the three wire shapes the player app
// has historically produced: an epoch number, an ISO-like string, or a
// seconds/nanoseconds pair. It marshals back out as RFC3339.
type FlexTime struct {
	time.Time
}

func NewFlexTime(t time.Time) FlexTime {
	return FlexTime{Time: t}
}

var flexLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		t.Time = time.Time{}
		return nil
	}

	// seconds/nanoseconds pair
	if strings.HasPrefix(s, "{") {
		var pair struct {
			Seconds     int64 `json:"seconds"`
			Nanoseconds int64 `json:"nanoseconds"`
		}
		if err := json.Unmarshal(data, &pair); err != nil {
			return err
		}
		t.Time = time.Unix(pair.Seconds, pair.Nanoseconds)
		return nil
	}

	// epoch number; values past the year ~33658 as seconds are milliseconds
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n > 1_000_000_000_000 {
			t.Time = time.UnixMilli(n)
		} else {
			t.Time = time.Unix(n, 0)
		}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("unsupported time value %s", s)
	}
	for _, layout := range flexLayouts {
		if parsed, err := time.Parse(layout, str); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported time value %q", str)
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// GormDataType stores FlexTime as a plain timestamp column.
func (FlexTime) GormDataType() string {
	return "time"
}

// Clock renders the instant as a local hour:minute string.
func (t FlexTime) Clock() string {
	if t.Time.IsZero() {
		return ""
	}
	return t.Time.Local().Format("15:04")
}

func (t FlexTime) Value() (driver.Value, error) {
	if t.Time.IsZero() {
		return nil, nil
	}
	return t.Time.UTC(), nil
}

func (t *FlexTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
	case time.Time:
		t.Time = v
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case int64:
		t.Time = time.Unix(v, 0)
	default:
		return fmt.Errorf("cannot scan %T into FlexTime", src)
	}
	return nil
}

func (t *FlexTime) scanString(s string) error {
	for _, layout := range flexLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("cannot scan %q into FlexTime", s)
}
