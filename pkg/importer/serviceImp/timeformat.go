package serviceImp

import (
	"fmt"
	"strings"
)

const defaultLayout = "2006-01-02 15:04:05"

// strptime directive -> Go reference layout fragment
var strptimeTokens = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'H': "15",
	'M': "04",
	'S': "05",
	'%': "%",
}

// timeLayout accepts either a strptime-style format such as
// "%Y-%m-%d %H:%M:%S" or a Go reference layout, and returns a Go layout.
func timeLayout(format string) (string, error) {
	if format == "" {
		return defaultLayout, nil
	}
	if !strings.Contains(format, "%") {
		return format, nil
	}
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			b.WriteByte(format[i])
			continue
		}
		i++
		if i >= len(format) {
			return "", fmt.Errorf("trailing %% in timestamp format %q", format)
		}
		frag, ok := strptimeTokens[format[i]]
		if !ok {
			return "", fmt.Errorf("unsupported timestamp directive %%%c", format[i])
		}
		b.WriteString(frag)
	}
	return b.String(), nil
}
