package datetime

import (
	"time"

	"github.com/shabbyrobe/go-prim/calendar"
)

// Zone answers the UTC offset questions the formatter and parser ask about
// Local and Unspecified values. Offsets are whole minutes.
type Zone interface {
	// OffsetAtUTC returns the offset in effect at a UTC instant.
	OffsetAtUTC(utcTicks int64) time.Duration

	// OffsetAtLocal returns the offset for a local wall clock reading.
	// Ambiguous and skipped readings resolve however the implementation
	// chooses.
	OffsetAtLocal(localTicks int64) time.Duration

	NowUTC() int64
}

// SystemZone reads offsets from a *time.Location, time.Local if nil.
type SystemZone struct {
	Location *time.Location
}

var _ Zone = SystemZone{}

func (z SystemZone) loc() *time.Location {
	if z.Location == nil {
		return time.Local
	}
	return z.Location
}

func (z SystemZone) OffsetAtUTC(utcTicks int64) time.Duration {
	sec, nsec := calendar.ToUnix(utcTicks)
	_, off := time.Unix(sec, nsec).In(z.loc()).Zone()
	return wholeMinutes(off)
}

func (z SystemZone) OffsetAtLocal(localTicks int64) time.Duration {
	y, mo, d := calendar.Date(localTicks)
	h, mi, s := calendar.Clock(localTicks)
	ns := int(localTicks%calendar.TicksPerSecond) * 100
	_, off := time.Date(y, time.Month(mo), d, h, mi, s, ns, z.loc()).Zone()
	return wholeMinutes(off)
}

func (z SystemZone) NowUTC() int64 {
	now := time.Now()
	return calendar.FromUnix(now.Unix(), int64(now.Nanosecond()))
}

// Historical local mean time offsets carry seconds; they are truncated.
func wholeMinutes(sec int) time.Duration {
	return time.Duration(sec/60) * time.Minute
}

// FixedZone has the same offset at every instant.
type FixedZone time.Duration

var _ Zone = FixedZone(0)

func (z FixedZone) OffsetAtUTC(int64) time.Duration   { return time.Duration(z) }
func (z FixedZone) OffsetAtLocal(int64) time.Duration { return time.Duration(z) }
func (z FixedZone) NowUTC() int64                     { return SystemZone{}.NowUTC() }

func zoneOrSystem(z Zone) Zone {
	if z == nil {
		return SystemZone{}
	}
	return z
}
