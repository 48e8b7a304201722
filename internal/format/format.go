package format

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// Currency renders an amount as Indonesian rupiah without fraction
// digits, e.g. 150000 -> "Rp 150.000". Fractions are rounded half away
// from zero, matching the POS receipts.
func Currency(amount float64) string {
	n := int64(math.Round(amount))
	if n < 0 {
		return printer.Sprintf("-Rp %d", -n)
	}
	return printer.Sprintf("Rp %d", n)
}

// Indonesian short month names, indexed by time.Month.
var shortMonths = [...]string{
	"", "Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// Date renders "02 Jan 2006"; the zero time renders as "-".
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%02d %s %d", t.Day(), shortMonths[t.Month()], t.Year())
}

// DateTime renders "02 Jan 2006, 15.04" (id-ID uses a dot as the clock
// separator); the zero time renders as "-".
func DateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf(
		"%02d %s %d, %02d.%02d",
		t.Day(), shortMonths[t.Month()], t.Year(), t.Hour(), t.Minute(),
	)
}
