package kernel

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/jjdevbiz/miller/internal/mlrval"
)

func Systime() mlrval.Mlrval {
	return mlrval.FromFloat(float64(time.Now().UnixNano()) / 1e9)
}

// Sec2Gmt and Sec2GmtDate format via github.com/ncruces/go-strftime rather
// than hand-writing a strftime-compatible layout translator on top of
// time.Format.
func Sec2Gmt(x mlrval.Mlrval) mlrval.Mlrval {
	v, ok := x.Float64()
	if !ok {
		return mlrval.FromError("non-numeric argument")
	}
	t := secondsToTime(v)
	return mlrval.FromString(strftime.Format("%Y-%m-%dT%H:%M:%SZ", t))
}

func Sec2GmtDate(x mlrval.Mlrval) mlrval.Mlrval {
	v, ok := x.Float64()
	if !ok {
		return mlrval.FromError("non-numeric argument")
	}
	t := secondsToTime(v)
	return mlrval.FromString(strftime.Format("%Y-%m-%d", t))
}

func Gmt2Sec(s mlrval.Mlrval) mlrval.Mlrval {
	t, err := time.Parse("2006-01-02T15:04:05Z", s.StringValue())
	if err != nil {
		return mlrval.FromError(err.Error())
	}
	return mlrval.FromInt(t.Unix())
}

// Strftime formats x (seconds since epoch) per a strftime-style format
// string using the directly-imported strftime formatter.
func Strftime(x, format mlrval.Mlrval) mlrval.Mlrval {
	v, ok := x.Float64()
	if !ok {
		return mlrval.FromError("non-numeric argument")
	}
	t := secondsToTime(v)
	return mlrval.FromString(strftime.Format(format.StringValue(), t))
}

// Strptime parses s per a strftime-style format into seconds since the
// epoch. go-strftime formats but does not parse, so this translates the
// small set of directives Miller scripts actually use into a Go reference
// layout and defers to time.Parse.
func Strptime(s, format mlrval.Mlrval) mlrval.Mlrval {
	layout := strftimeToGoLayout(format.StringValue())
	t, err := time.Parse(layout, s.StringValue())
	if err != nil {
		return mlrval.FromError(err.Error())
	}
	return mlrval.FromFloat(float64(t.Unix()) + float64(t.Nanosecond())/1e9)
}

var strftimeDirectives = map[byte]string{
	'Y': "2006",
	'm': "01",
	'd': "02",
	'H': "15",
	'M': "04",
	'S': "05",
	'Z': "Z0700",
	'z': "-0700",
	'j': "002",
	'y': "06",
	'b': "Jan",
	'B': "January",
	'p': "PM",
}

func strftimeToGoLayout(format string) string {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] == '%' && i+1 < len(format) {
			if layout, ok := strftimeDirectives[format[i+1]]; ok {
				b.WriteString(layout)
				i++
				continue
			}
		}
		b.WriteByte(format[i])
	}
	return b.String()
}

func secondsToTime(v float64) time.Time {
	sec := int64(math.Floor(v))
	nsec := int64((v - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).UTC()
}

// Dhms2Fsec/Dhms2Sec/Fsec2Dhms/Fsec2Hms/Hms2Fsec/Hms2Sec/Sec2Dhms/Sec2Hms
// convert between a signed seconds count and Miller's "1d2h3m4.5s" /
// "02:03:04" duration string forms.

func Dhms2Fsec(s mlrval.Mlrval) mlrval.Mlrval {
	v, err := parseDhms(s.StringValue())
	if err != nil {
		return mlrval.FromError(err.Error())
	}
	return mlrval.FromFloat(v)
}

func Dhms2Sec(s mlrval.Mlrval) mlrval.Mlrval {
	v, err := parseDhms(s.StringValue())
	if err != nil {
		return mlrval.FromError(err.Error())
	}
	return mlrval.FromInt(int64(v))
}

func parseDhms(s string) (float64, error) {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	total := 0.0
	num := strings.Builder{}
	for _, r := range s {
		switch r {
		case 'd', 'h', 'm', 's':
			if num.Len() == 0 {
				return 0, fmt.Errorf("malformed dhms string")
			}
			v, err := strconv.ParseFloat(num.String(), 64)
			if err != nil {
				return 0, err
			}
			switch r {
			case 'd':
				total += v * 86400
			case 'h':
				total += v * 3600
			case 'm':
				total += v * 60
			case 's':
				total += v
			}
			num.Reset()
		default:
			num.WriteRune(r)
		}
	}
	if neg {
		total = -total
	}
	return total, nil
}

func Fsec2Dhms(x mlrval.Mlrval) mlrval.Mlrval {
	v, ok := x.Float64()
	if !ok {
		return mlrval.FromError("non-numeric argument")
	}
	return mlrval.FromString(formatDhms(v, true))
}

func Sec2Dhms(x mlrval.Mlrval) mlrval.Mlrval {
	v, ok := x.Int64()
	if !ok {
		return mlrval.FromError("non-numeric argument")
	}
	return mlrval.FromString(formatDhms(float64(v), false))
}

func formatDhms(v float64, withFrac bool) string {
	neg := v < 0
	if neg {
		v = -v
	}
	days := int64(v) / 86400
	rem := v - float64(days*86400)
	hours := int64(rem) / 3600
	rem -= float64(hours * 3600)
	mins := int64(rem) / 60
	rem -= float64(mins * 60)
	secs := rem

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	switch {
	case days > 0:
		fmt.Fprintf(&b, "%dd%02dh%02dm", days, hours, mins)
	case hours > 0:
		fmt.Fprintf(&b, "%dh%02dm", hours, mins)
	case mins > 0:
		fmt.Fprintf(&b, "%dm", mins)
	}
	if withFrac {
		fmt.Fprintf(&b, "%09.6fs", secs)
	} else {
		fmt.Fprintf(&b, "%02ds", int64(secs))
	}
	return b.String()
}

func Hms2Fsec(s mlrval.Mlrval) mlrval.Mlrval {
	v, err := parseHms(s.StringValue())
	if err != nil {
		return mlrval.FromError(err.Error())
	}
	return mlrval.FromFloat(v)
}

func Hms2Sec(s mlrval.Mlrval) mlrval.Mlrval {
	v, err := parseHms(s.StringValue())
	if err != nil {
		return mlrval.FromError(err.Error())
	}
	return mlrval.FromInt(int64(v))
}

func parseHms(s string) (float64, error) {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("malformed hms string %q", s)
	}
	h, err1 := strconv.ParseFloat(parts[0], 64)
	m, err2 := strconv.ParseFloat(parts[1], 64)
	sec, err3 := strconv.ParseFloat(parts[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, fmt.Errorf("malformed hms string %q", s)
	}
	total := h*3600 + m*60 + sec
	if neg {
		total = -total
	}
	return total, nil
}

func Fsec2Hms(x mlrval.Mlrval) mlrval.Mlrval {
	v, ok := x.Float64()
	if !ok {
		return mlrval.FromError("non-numeric argument")
	}
	return mlrval.FromString(formatHms(v, true))
}

func Sec2Hms(x mlrval.Mlrval) mlrval.Mlrval {
	v, ok := x.Int64()
	if !ok {
		return mlrval.FromError("non-numeric argument")
	}
	return mlrval.FromString(formatHms(float64(v), false))
}

func formatHms(v float64, withFrac bool) string {
	neg := v < 0
	if neg {
		v = -v
	}
	hours := int64(v) / 3600
	rem := v - float64(hours*3600)
	mins := int64(rem) / 60
	rem -= float64(mins * 60)
	secs := rem

	sign := ""
	if neg {
		sign = "-"
	}
	if withFrac {
		return fmt.Sprintf("%s%02d:%02d:%09.6f", sign, hours, mins, secs)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, mins, int64(secs))
}
