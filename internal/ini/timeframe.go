package ini

import (
	"fmt"
	"strings"
)

var timeframes = map[string]struct{}{
	"M1": {}, "M2": {}, "M3": {}, "M4": {}, "M5": {}, "M6": {}, "M10": {}, "M12": {}, "M15": {},
	"M20": {}, "M30": {}, "H1": {}, "H2": {}, "H3": {}, "H4": {}, "H6": {}, "H8": {}, "H12": {},
	"D1": {}, "W1": {}, "MN1": {},
}

// InvalidTimeframeError is returned for a period the terminal does not know.
type InvalidTimeframeError struct {
	Value string
}

func (e *InvalidTimeframeError) Error() string {
	return fmt.Sprintf("invalid timeframe: %s", e.Value)
}

// Timeframe upper-cases tf and checks it against the terminal's chart periods.
func Timeframe(tf string) (string, error) {
	upper := strings.ToUpper(tf)
	if _, ok := timeframes[upper]; !ok {
		return "", &InvalidTimeframeError{Value: upper}
	}
	return upper, nil
}
