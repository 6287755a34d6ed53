package common

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"cfbPickem/models"
	"cfbPickem/models/external"
)

// ErrorSink persists error records.
type ErrorSink interface {
	RecordError(ctx context.Context, entry models.ErrorLog) error
}

// SendError logs err and stores it as an ErrorLog row when a sink is present.
func SendError(ctx context.Context, sink ErrorSink, source string, err error) {
	if err == nil {
		return
	}
	log.Printf("%s: %v", source, err)
	if sink == nil {
		return
	}
	errLog := models.ErrorLog{
		Source:  source,
		Message: fmt.Sprintf("%v", err),
	}
	if localErr := sink.RecordError(context.WithoutCancel(ctx), errLog); localErr != nil {
		log.Printf("Error recording error log: %v", localErr)
	}
}

// FormatSpread renders a spread value the way providers do: "-7.5", "+3", "0".
func FormatSpread(spread float64) string {
	response := ""

	if spread == float64(int(spread)) {
		response = strconv.Itoa(int(spread))
	} else {
		response = strconv.FormatFloat(spread, 'f', -1, 64)
	}

	if spread > 0 {
		return fmt.Sprintf("+%s", response)
	}
	return response
}

// NormalizeName lowercases, trims and collapses internal whitespace so names
// from different sources compare equal.
func NormalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func Contains[T comparable](s []T, e T) bool {
	for _, v := range s {
		if v == e {
			return true
		}
	}
	return false
}

// ContainsName reports whether name matches any entry after normalization.
func ContainsName(names []string, name string) bool {
	n := NormalizeName(name)
	if n == "" {
		return false
	}
	for _, v := range names {
		if NormalizeName(v) == n {
			return true
		}
	}
	return false
}

// PickLine chooses the quote to use for a game: the primary provider, then the
// secondary provider, then the first quote offered. Provider names compare
// case-insensitively. Returns nil when there are no quotes.
func PickLine(lines []external.CFBD_Line, primary, secondary string) *external.CFBD_Line {
	if len(lines) == 0 {
		return nil
	}
	for _, provider := range []string{primary, secondary} {
		if provider == "" {
			continue
		}
		for i := range lines {
			if strings.EqualFold(strings.TrimSpace(lines[i].Provider), provider) {
				return &lines[i]
			}
		}
	}
	return &lines[0]
}
