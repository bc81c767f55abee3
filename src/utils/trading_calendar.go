package utils

import (
	"log"
	"strings"
	"time"

	"github.com/scmhub/calendar"
)

// TradingCalendar answers "is this market open right now" for a symbol's
// exchange, using scmhub/calendar with a simple Mon-Fri fallback.
type TradingCalendar struct {
	Calendar *calendar.Calendar
	Fallback bool
	Timezone *time.Location
}

// -----------------------------------------------------------------------------

// GetCalendar maps a symbol suffix to a MIC code (ISO 10383) and loads the
// matching exchange calendar. Symbols without a suffix default to NYSE, which
// also fits the simulator's synthetic US-style tickers.
func GetCalendar(symbol string) *TradingCalendar {
	mic := "xnys" // Default US NYSE
	switch {
	case strings.HasSuffix(symbol, ".L"):
		mic = "xlon"
	case strings.HasSuffix(symbol, ".PA"):
		mic = "xpar"
	case strings.HasSuffix(symbol, ".DE"):
		mic = "xfra"
	case strings.HasSuffix(symbol, ".MI"):
		mic = "xmil"
	case strings.HasSuffix(symbol, ".MC"):
		mic = "xmad"
	case strings.HasSuffix(symbol, ".SW"):
		mic = "xswx"
	case strings.HasSuffix(symbol, ".TO"):
		mic = "xtse"
	case strings.HasSuffix(symbol, ".T"):
		mic = "xtks"
	case strings.HasSuffix(symbol, ".HK"):
		mic = "xhkg"
	case strings.HasSuffix(symbol, ".AX"):
		mic = "xasx"
	}

	cal := calendar.GetCalendar(mic)
	if cal == nil {
		// Fallback to xnys if not found
		cal = calendar.GetCalendar("xnys")
	}

	if cal == nil {
		log.Printf("WARNING: Failed to load calendar for MIC '%s' and fallback 'xnys'. Using simple fallback (Mon-Fri 09:30-16:00 NY).", mic)
		nyLoc, _ := time.LoadLocation("America/New_York")
		if nyLoc == nil {
			nyLoc = time.UTC // Worst case
		}
		return &TradingCalendar{Fallback: true, Timezone: nyLoc}
	}

	return &TradingCalendar{Calendar: cal, Fallback: false, Timezone: cal.Loc}
}

// -----------------------------------------------------------------------------

func (tc *TradingCalendar) IsTradingDay(date time.Time) bool {
	if tc.Timezone != nil {
		date = date.In(tc.Timezone)
	}

	if tc.Fallback {
		weekday := date.Weekday()
		return weekday != time.Saturday && weekday != time.Sunday
	}
	return tc.Calendar.IsBusinessDay(date)
}

// -----------------------------------------------------------------------------

// IsOpenOnMinute checks if the market is open at a specific minute.
func (tc *TradingCalendar) IsOpenOnMinute(t time.Time) bool {
	if tc.Timezone != nil {
		t = t.In(tc.Timezone)
	}

	if tc.Fallback {
		if !tc.IsTradingDay(t) {
			return false
		}

		hour := t.Hour()
		minute := t.Minute()

		// 9:30 - 16:00 NY Time
		return (hour > 9 || (hour == 9 && minute >= 30)) && hour < 16
	}

	return tc.Calendar.IsOpen(t)
}
