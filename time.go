/*------------------------------------------------------------------------------
* time.go : GNSS time systems and conversions
*
* notes  : GPS time is carried as (week number, time of week). conversions
*          between civil date, MJD, UTC, GLONASS and GPS time all pass
*          through MJD. leap seconds come from the embedded table unless
*          broadcast UTC parameters are supplied
*-----------------------------------------------------------------------------*/
package gnsscore

import "math"

/* GPS time: week number and seconds into the week */
type GpsTime struct {
	Tow float64 /* seconds since the GPS start of week */
	Wn  int16   /* GPS week number */
}

/* directed time range split into whole weeks and seconds. keeps full double
   resolution over intervals where a plain double of seconds would not */
type GpsTimeDuration struct {
	Seconds float64
	Weeks   int16
}

/* GLONASS epoch per ICD 5.1: four-year cycle number, day in cycle, time of day */
type GloTime struct {
	Nt uint16  /* day within the four-year interval [1,1461] */
	N4 uint8   /* four-year interval number from 1996 */
	H  uint8   /* hours [0,24] */
	M  uint8   /* minutes [0,59] */
	S  float64 /* seconds [0,60) or [60,61) in a leap second */
}

/* broadcast GPS-UTC correction parameters */
type UtcParams struct {
	A0    float64 /* modulo 1 s offset from GPS to UTC (s) */
	A1    float64 /* drift of the offset (s/s) */
	A2    float64 /* drift rate correction (s/s^2) */
	Tot   GpsTime /* reference time of the parameters */
	TLse  GpsTime /* time of the leap second event */
	DtLs  int8    /* GPS-UTC delta before the event (s) */
	DtLsf int8    /* GPS-UTC delta after the event (s) */
}

/* broken-down UTC time */
type UtcTime struct {
	Year       uint16  /* four digit year */
	YearDay    uint16  /* day of year (1-366) */
	Month      uint8   /* month (1-12) */
	MonthDay   uint8   /* day of month (1-31) */
	WeekDay    uint8   /* day of week (1-7), 1=Monday */
	Hour       uint8   /* hour (0-23) */
	Minute     uint8   /* minute (0-59) */
	SecondInt  uint8   /* integer seconds (0-60) */
	SecondFrac float64 /* fractional seconds [0,1) */
}

var GPS_TIME_UNKNOWN = GpsTime{TOW_UNKNOWN, WN_UNKNOWN}

/* start times of UTC leap second events in GPS time {wn, tow, gps-utc}.
   the event lasts one second from the start time; the new offset applies
   after it. regenerate when IERS announces a new leap second */
var utcLeaps = [][3]int32{
	{77, 259200, 1},    /* 01-07-1981 */
	{129, 345601, 2},   /* 01-07-1982 */
	{181, 432002, 3},   /* 01-07-1983 */
	{286, 86403, 4},    /* 01-07-1985 */
	{416, 432004, 5},   /* 01-01-1988 */
	{521, 86405, 6},    /* 01-01-1990 */
	{573, 172806, 7},   /* 01-01-1991 */
	{651, 259207, 8},   /* 01-07-1992 */
	{703, 345608, 9},   /* 01-07-1993 */
	{755, 432009, 10},  /* 01-07-1994 */
	{834, 86410, 11},   /* 01-01-1996 */
	{912, 172811, 12},  /* 01-07-1997 */
	{990, 432012, 13},  /* 01-01-1999 */
	{1356, 13, 14},     /* 01-01-2006 */
	{1512, 345614, 15}, /* 01-01-2009 */
	{1695, 15, 16},     /* 01-07-2012 */
	{1851, 259216, 17}, /* 01-07-2015 */
	{1930, 17, 18},     /* 01-01-2017 */
}

/* GPS and UNIX times when the leap second table expires (28-06-2026) */
var GpsTimeUtcLeapsExpiry = GpsTime{Wn: 2425, Tow: 18}

const UnixTimeUtcLeapsExpiry int64 = 1782604800

/* gps time validity -----------------------------------------------------------
* args   : *GpsTime t  I  gps time
* return : true if tow is finite and in [0,604800) and wn is non-negative
*-----------------------------------------------------------------------------*/
func GpsTimeValid(t *GpsTime) bool {
	return !math.IsNaN(t.Tow) && !math.IsInf(t.Tow, 0) &&
		t.Tow >= 0 && t.Tow < SECS_WEEK && t.Wn >= 0
}

/* unix time validity: after the gps week reference */
func UnixTimeValid(t int64) bool {
	return t >= 0 && t > int64(GPS_WEEK_REFERENCE)*SECS_WEEK+GPS_EPOCH_UNIX
}

/* gps time validity within the current week cycle -------------------------------*/
func GpsCurrentTimeValid(t *GpsTime) bool {
	return GpsTimeValid(t) && t.Wn >= GPS_WEEK_REFERENCE && t.Wn < GPS_MAX_WEEK
}

/* normalize gps time -----------------------------------------------------------
* wrap tow into [0,604800) adjusting the week number. an unknown week number
* is left untouched and only tow is wrapped
*-----------------------------------------------------------------------------*/
func NormalizeGpsTime(t *GpsTime) {
	if t.Wn == WN_UNKNOWN {
		for t.Tow < 0 {
			t.Tow += SECS_WEEK
		}
		for t.Tow >= SECS_WEEK {
			t.Tow -= SECS_WEEK
		}
		return
	}
	UnsafeNormalizeGpsTime(t)
}

/* normalize without guarding the week number. used for times before the gps
   epoch or with bounded error already established by the caller */
func UnsafeNormalizeGpsTime(t *GpsTime) {
	for t.Tow < 0 {
		t.Tow += SECS_WEEK
		t.Wn--
	}
	for t.Tow >= SECS_WEEK {
		t.Tow -= SECS_WEEK
		t.Wn++
	}
}

/* normalize a week/seconds duration so that |seconds| < 604800 and the
   seconds share the sign of the week count ---------------------------------------*/
func NormalizeGpsTimeDuration(dt *GpsTimeDuration) {
	for dt.Seconds >= SECS_WEEK {
		dt.Seconds -= SECS_WEEK
		dt.Weeks++
	}
	for dt.Seconds <= -SECS_WEEK {
		dt.Seconds += SECS_WEEK
		dt.Weeks--
	}
	if dt.Seconds < 0 && dt.Weeks > 0 {
		dt.Seconds += SECS_WEEK
		dt.Weeks--
	} else if dt.Seconds > 0 && dt.Weeks < 0 {
		dt.Seconds -= SECS_WEEK
		dt.Weeks++
	}
}

/* time difference in seconds between two gps times ------------------------------
* if either week number is unknown the times are assumed to lie within half a
* week of each other
*-----------------------------------------------------------------------------*/
func GpsDiffTime(end, beginning *GpsTime) float64 {
	dt := end.Tow - beginning.Tow
	if end.Wn == WN_UNKNOWN || beginning.Wn == WN_UNKNOWN {
		if dt > SECS_WEEK/2 {
			dt -= SECS_WEEK
		}
		if dt < -SECS_WEEK/2 {
			dt += SECS_WEEK
		}
	} else {
		dt += float64(end.Wn-beginning.Wn) * SECS_WEEK
	}
	return dt
}

/* full resolution time difference as weeks plus seconds -------------------------*/
func GpsDiffTimeWeekSecond(end, beginning *GpsTime, dt *GpsTimeDuration) bool {
	if !GpsTimeValid(end) || !GpsTimeValid(beginning) {
		return false
	}
	dt.Seconds = end.Tow - beginning.Tow
	dt.Weeks = end.Wn - beginning.Wn
	NormalizeGpsTimeDuration(dt)
	return true
}

/* add seconds to a gps time in place ---------------------------------------------*/
func AddSecs(t *GpsTime, secs float64) {
	t.Tow += secs
	UnsafeNormalizeGpsTime(t)
}

/* t within [bgn,end] ---------------------------------------------------------------*/
func GpsTimeInRange(bgn, end, t *GpsTime) bool {
	sinceBgn := GpsDiffTime(t, bgn)
	if sinceBgn < 0 {
		return false
	}
	return sinceBgn <= GpsDiffTime(end, bgn)
}

/* fill the unknown week number of t from ref, assuming the two times are within
   half a week of each other */
func GpsTimeMatchWeeks(t *GpsTime, ref *GpsTime) {
	if ref.Wn == WN_UNKNOWN {
		return
	}
	t.Wn = ref.Wn
	dt := t.Tow - ref.Tow
	if dt > SECS_WEEK/2 {
		t.Wn--
	} else if dt < -SECS_WEEK/2 {
		t.Wn++
	}
}

/* adjust a 10-bit broadcast week number to the current week cycle ------------------
* args   : uint16 wnRaw  I  truncated week number (modulo 1024)
*          uint16 wnRef  I  reference week from the past
* return : absolute week number counted from 1980, valid for roughly 20
*          years past the reference
*-----------------------------------------------------------------------------*/
func GpsAdjustWeekCycle(wnRaw, wnRef uint16) uint16 {
	if wnRaw >= wnRef {
		return wnRaw
	}
	return wnRaw + 1024*((wnRef+1023-wnRaw)/1024)
}

/* adjust an 8-bit broadcast week number to the current week cycle ------------------*/
func GpsAdjustWeekCycle256(wnRaw, wnRef uint16) uint16 {
	if wnRaw >= wnRef {
		return wnRaw
	}
	return wnRaw + 256*((wnRef+255-wnRaw)/256)
}

/* leap year predicate ---------------------------------------------------------------*/
func IsLeapYear(year int32) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

/* days in a month -------------------------------------------------------------------*/
func DaysInMonth(year uint16, month uint8) uint8 {
	var daysInMonth = [13]uint8{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if month == 2 && IsLeapYear(int32(year)) {
		return 29
	}
	return daysInMonth[month]
}

/* gps to utc offset at a gps time ------------------------------------------------
* args   : *GpsTime   t  I  gps time
*          *UtcParams p  I  broadcast utc parameters (nil to use the table)
* return : gps-utc offset (s)
*-----------------------------------------------------------------------------*/
func GetGpsUtcOffset(t *GpsTime, p *UtcParams) float64 {
	if p != nil && p.TLse.Wn > 0 {
		dt := GpsDiffTime(t, &p.Tot)
		dtUtc := p.A0 + p.A1*dt + p.A2*dt*dt

		/* the new offset takes effect one second after the start of a
		 * positive leap second event */
		if GpsDiffTime(t, &p.TLse) >= 1.0 {
			dtUtc += float64(p.DtLsf)
		} else {
			dtUtc += float64(p.DtLs)
		}
		return dtUtc
	}

	for i := len(utcLeaps) - 1; i >= 0; i-- {
		tLeap := GpsTime{Wn: int16(utcLeaps[i][0]), Tow: float64(utcLeaps[i][1])}
		if GpsDiffTime(t, &tLeap) >= 1.0 {
			return float64(utcLeaps[i][2])
		}
	}
	return 0.0 /* before the first known leap second */
}

/* utc to gps offset at a utc time carried in (wn,tow) form --------------------------*/
func GetUtcGpsOffset(utcTime *GpsTime, p *UtcParams) float64 {
	if p != nil && p.TLse.Wn > 0 {
		dt := GpsDiffTime(utcTime, &p.Tot) + float64(p.DtLs)
		dtUtc := p.A0 + p.A1*dt + p.A2*dt*dt

		if GpsDiffTime(utcTime, &p.TLse) >= -float64(p.DtLs)-dtUtc {
			dtUtc += float64(p.DtLsf)
		} else {
			dtUtc += float64(p.DtLs)
		}
		return -dtUtc
	}

	for i := len(utcLeaps) - 1; i >= 0; i-- {
		tLeap := GpsTime{Wn: int16(utcLeaps[i][0]), Tow: float64(utcLeaps[i][1])}
		if GpsDiffTime(utcTime, &tLeap) >= -float64(utcLeaps[i][2])+1 {
			return -float64(utcLeaps[i][2])
		}
	}
	return 0.0
}

/* true while a (positive) leap second event is ongoing -------------------------------*/
func IsLeapSecondEvent(t *GpsTime, p *UtcParams) bool {
	if p != nil && p.TLse.Wn > 0 {
		dt := GpsDiffTime(t, &p.TLse)
		return dt >= 0.0 && dt < 1.0
	}
	for i := len(utcLeaps) - 1; i >= 0; i-- {
		tLeap := GpsTime{Wn: int16(utcLeaps[i][0]), Tow: float64(utcLeaps[i][1])}
		dt := GpsDiffTime(t, &tLeap)
		if dt > 1.0 {
			return false
		}
		if dt >= 0.0 && dt < 1.0 {
			return true
		}
	}
	return false
}

/* break a (wn,tow) stamp into civil components without leap second handling ----------
* notes  : see http://www.ngs.noaa.gov/gps-toolbox/bwr-c.txt
*-----------------------------------------------------------------------------*/
func MakeUtcTime(t *GpsTime, u *UtcTime) {
	tUtc := math.Mod(t.Tow, SECS_DAY)

	secondInt := uint32(math.Floor(tUtc))
	u.SecondFrac = math.Mod(tUtc, 1.0)
	u.Hour = uint8(secondInt / SECS_HOUR)
	secondInt -= uint32(u.Hour) * SECS_HOUR
	u.Minute = uint8(secondInt / SECS_MINUTE)
	secondInt -= uint32(u.Minute) * SECS_MINUTE
	u.SecondInt = uint8(secondInt)

	/* days since 1 Jan 1601 via the gps epoch MJD */
	modifiedJulianDays := int32(MJD_JAN_6_1980) + int32(t.Wn)*7 +
		int32(math.Floor(t.Tow/SECS_DAY))
	daysSince1601 := uint32(modifiedJulianDays - MJD_JAN_1_1601)

	num400Years := daysSince1601 / FOUR_HUNDRED_YEARS_DAYS
	daysLeft := daysSince1601 - num400Years*FOUR_HUNDRED_YEARS_DAYS
	num100Years := daysLeft/HUNDRED_YEARS_DAYS - daysLeft/(FOUR_HUNDRED_YEARS_DAYS-1)
	daysLeft -= num100Years * HUNDRED_YEARS_DAYS
	num4Years := daysLeft / FOUR_YEARS_DAYS
	daysLeft -= num4Years * FOUR_YEARS_DAYS
	numNonLeapYears := daysLeft/YEAR_DAYS - daysLeft/(FOUR_YEARS_DAYS-1)

	u.Year = uint16(1601 + num400Years*400 + num100Years*100 + num4Years*4 +
		numNonLeapYears)
	u.YearDay = uint16(daysLeft - numNonLeapYears*YEAR_DAYS + 1)

	leapYear := 0
	if IsLeapYear(int32(u.Year)) {
		leapYear = 1
	}

	/* cumulative days in the year after each month, common then leap year */
	var daysAfterMonth = [2][13]uint16{
		{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365},
		{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366},
	}

	monthGuess := uint8(float64(u.YearDay) * 0.032)
	monthCorrection := uint8(0)
	if int32(u.YearDay)-int32(daysAfterMonth[leapYear][monthGuess+1]) > 0 {
		monthCorrection = 1
	}
	u.Month = monthGuess + monthCorrection + 1
	u.MonthDay = uint8(u.YearDay - daysAfterMonth[leapYear][monthGuess+monthCorrection])

	/* 1 Jan 1601 was a Monday */
	u.WeekDay = uint8(daysSince1601%7 + 1)
}

/* gps time to broken-down utc --------------------------------------------------------
* args   : *GpsTime   t  I  gps time
*          *UtcTime   u  O  utc time
*          *UtcParams p  I  broadcast utc parameters (nil to use the table)
*-----------------------------------------------------------------------------*/
func Gps2Utc(t *GpsTime, u *UtcTime, p *UtcParams) {
	dtUtc := GetGpsUtcOffset(t, p)
	isLse := IsLeapSecondEvent(t, p)

	towUtc := t.Tow - dtUtc
	if isLse {
		/* ongoing positive leap second: we are at 23:59:60.xxx. take one
		 * second out for the civil breakdown and put it back after */
		towUtc -= 1
	}
	tU := GpsTime{Wn: t.Wn, Tow: towUtc}
	NormalizeGpsTime(&tU)

	MakeUtcTime(&tU, u)

	if isLse {
		u.SecondInt++
	}
}

/* broken-down utc to gps time ----------------------------------------------------------
* args   : *UtcTime   u   I  utc time, SecondInt may be 60 during a leap
*          *GpsTime   t   O  gps time
*          *UtcParams p   I  broadcast utc parameters (nil to use the table)
*-----------------------------------------------------------------------------*/
func Utc2Gps(u *UtcTime, t *GpsTime, p *UtcParams) {
	uu := *u
	isLse := uu.SecondInt >= 60
	if isLse {
		/* 23:59:60.xxx maps into the leap second event, convert the civil
		 * part as 23:59:59 and put the second back afterwards */
		uu.SecondInt = 59
	}

	/* utc time stamped in the (wn,tow) frame */
	utcDays := UtcTime2Mjd(&uu) - MJD_JAN_6_1980
	tU := GpsTime{Wn: int16(utcDays / 7)}
	tU.Tow = (utcDays - float64(tU.Wn)*7) * SECS_DAY
	NormalizeGpsTime(&tU)

	*t = tU
	AddSecs(t, -GetUtcGpsOffset(&tU, p))
	if isLse {
		AddSecs(t, 1.0)
	}
}

/* gps time to unix time, adjusting by the leap second table ----------------------------*/
func Gps2UnixTime(t *GpsTime) int64 {
	u := GPS_EPOCH_UNIX - int64(GetGpsUtcOffset(t, nil))
	u += SECS_WEEK * int64(t.Wn)
	u += int64(t.Tow)
	return u
}

/* unix time to gps time, both taken in the gps time scale (no leap seconds) ------------*/
func UnixTime2Gps(tUnix int64) GpsTime {
	var t GpsTime
	t.Wn = int16((tUnix - GPS_EPOCH_UNIX) / SECS_WEEK)
	t.Tow = float64(tUnix - GPS_EPOCH_UNIX - SECS_WEEK*int64(t.Wn))
	return t
}

/* gps time to day of year (days since Jan 1st) ------------------------------------------*/
func Gps2Doy(t *GpsTime) uint16 {
	var u UtcTime
	Gps2Utc(t, &u, nil)
	return u.YearDay - 1
}

/* GLONASS time to gps time ----------------------------------------------------------------
* args   : *GloTime   gloT      I  GLONASS epoch (N4, NT, h, m, s)
*          *UtcParams utcParams I  broadcast utc parameters (optional)
* return : gps time, GPS_TIME_UNKNOWN if the epoch is out of range
* notes  : reference GLONASS ICD edition 5.1 2008
*-----------------------------------------------------------------------------*/
func Glo2Gps(gloT *GloTime, utcParams *UtcParams) GpsTime {
	var yearOfCycle uint8
	var dayOfYear uint16

	if gloT.N4 < GLO_N4_MIN || gloT.N4 > GLO_N4_MAX {
		return GPS_TIME_UNKNOWN
	}

	switch {
	case gloT.Nt < GLO_NT_0_FLOOR:
		return GPS_TIME_UNKNOWN
	case gloT.Nt <= GLO_NT_0_CEILING:
		yearOfCycle = 1
		dayOfYear = gloT.Nt
	case gloT.Nt <= GLO_NT_1_CEILING:
		yearOfCycle = 2
		dayOfYear = gloT.Nt - LEAP_YEAR_DAYS
	case gloT.Nt <= GLO_NT_2_CEILING:
		yearOfCycle = 3
		dayOfYear = gloT.Nt - LEAP_YEAR_DAYS - YEAR_DAYS
	case gloT.Nt <= GLO_NT_3_CEILING:
		yearOfCycle = 4
		dayOfYear = gloT.Nt - LEAP_YEAR_DAYS - YEAR_DAYS*2
	default:
		return GPS_TIME_UNKNOWN
	}

	gloYear := uint32(GLO_EPOCH_YEAR) + 4*uint32(gloT.N4-1) + uint32(yearOfCycle-1)

	/* days since the gps epoch */
	daysGpsEpoch := int64(YEAR_1980_GPS_DAYS) + int64(dayOfYear) - 1
	for y := uint32(GPS_EPOCH_YEAR) + 1; y < gloYear; y++ {
		if IsLeapYear(int32(y)) {
			daysGpsEpoch += LEAP_YEAR_DAYS
		} else {
			daysGpsEpoch += YEAR_DAYS
		}
	}

	sec := gloT.S
	isLeapSecond := sec >= 60
	if isLeapSecond {
		sec -= 1.0
	}

	/* time stamp in UTC, in (wn,tow) form */
	var gpsT GpsTime
	gpsT.Wn = int16(daysGpsEpoch / 7)
	gpsT.Tow = float64(daysGpsEpoch%7)*SECS_DAY +
		float64(int(gloT.H)-UTC_SU_OFFSET)*SECS_HOUR +
		float64(gloT.M)*SECS_MINUTE + sec
	NormalizeGpsTime(&gpsT)

	dUtc := GetUtcGpsOffset(&gpsT, utcParams)

	/* a leap second during this week shifts the day boundary */
	weekStart := GpsTime{Wn: gpsT.Wn, Tow: 0.0}
	if GetUtcGpsOffset(&weekStart, utcParams) < dUtc-1 {
		gpsT.Tow += 1
	}
	if isLeapSecond {
		gpsT.Tow += 1
	}

	gpsT.Tow -= dUtc
	NormalizeGpsTime(&gpsT)
	return gpsT
}

/* gps time to GLONASS time ------------------------------------------------------------------*/
func Gps2Glo(gpsT *GpsTime, utcParams *UtcParams) GloTime {
	var gloT GloTime

	var u UtcTime
	Gps2Utc(gpsT, &u, utcParams)

	u.Hour += UTC_SU_OFFSET

	/* the Moscow offset may roll the day, month or year over */
	if u.Hour >= 24 {
		u.MonthDay++
		u.WeekDay++
		u.YearDay++
		u.Hour -= 24
		if u.WeekDay > 7 {
			u.WeekDay = 1
		}
		if u.MonthDay > DaysInMonth(u.Year, u.Month) {
			u.Month++
			u.MonthDay = 1
			if u.Month > 12 {
				u.Year++
				u.Month = 1
				u.YearDay = 1
			}
		}
	}

	gloT.N4 = uint8((u.Year-GLO_EPOCH_YEAR)/4) + 1
	gloT.Nt = u.YearDay
	for y := GLO_EPOCH_YEAR + (uint16(gloT.N4)-1)*4; y < u.Year; y++ {
		if IsLeapYear(int32(y)) {
			gloT.Nt += LEAP_YEAR_DAYS
		} else {
			gloT.Nt += YEAR_DAYS
		}
	}

	gloT.H = u.Hour
	gloT.M = u.Minute
	gloT.S = float64(u.SecondInt) + u.SecondFrac
	return gloT
}

/* civil date to MJD --------------------------------------------------------------------------
* notes  : valid for Gregorian dates from 17-Nov-1858, inaccurate by up to a
*          second on the day of a leap second
*-----------------------------------------------------------------------------*/
func Date2Mjd(year, month, day, hour, min int32, sec float64) float64 {
	fullDays := 367*year - 7*(year+(month+9)/12)/4 -
		3*((year+(month-9)/7)/100+1)/4 +
		275*month/9 + day + 1721028 - 2400000
	fracDays := float64(hour)/24 + float64(min)/(24*60) + sec/SECS_DAY
	return float64(fullDays) + fracDays
}

/* MJD to civil date ----------------------------------------------------------------------------
* notes  : Gregorian calendar, adapted from Fliegel/van Flandern ACM 11/#10
*-----------------------------------------------------------------------------*/
func Mjd2Date(mjd float64) (year, month, day, hour, min int32, sec float64) {
	j := int32(mjd) + 2400001 + 68569
	c := 4 * j / 146097
	j = j - (146097*c+3)/4
	y := 4000 * (j + 1) / 1461001
	j = j - 1461*y/4 + 31
	m := 80 * j / 2447
	day = j - 2447*m/80
	j = m / 11
	month = m + 2 - 12*j
	year = 100*(c-49) + y + j

	fracPart := mjd - math.Floor(mjd)
	hour = int32(fracPart * 24)
	min = int32((fracPart - float64(hour)/24) * 24 * 60)
	sec = (fracPart - float64(hour)/24 - float64(min)/24/60) * SECS_DAY
	return year, month, day, hour, min, sec
}

/* MJD to broken-down utc -------------------------------------------------------------------------*/
func Mjd2UtcTime(mjd float64) UtcTime {
	var ret UtcTime
	utcDays := mjd - MJD_JAN_6_1980
	var utcTime GpsTime
	utcTime.Wn = int16(utcDays / 7)
	utcTime.Tow = (utcDays - float64(utcTime.Wn)*7) * SECS_DAY
	MakeUtcTime(&utcTime, &ret)
	return ret
}

/* broken-down utc to MJD ----------------------------------------------------------------------------*/
func UtcTime2Mjd(u *UtcTime) float64 {
	secs := float64(u.SecondInt) + u.SecondFrac
	return Date2Mjd(int32(u.Year), int32(u.Month), int32(u.MonthDay),
		int32(u.Hour), int32(u.Minute), secs)
}

/* civil date to broken-down utc ------------------------------------------------------------------------*/
func Date2UtcTime(year, month, day, hour, min int32, sec float64) UtcTime {
	return Mjd2UtcTime(Date2Mjd(year, month, day, hour, min, sec))
}

/* broken-down utc to civil date ---------------------------------------------------------------------------*/
func UtcTime2Date(u *UtcTime) (year, month, day, hour, min int32, sec float64) {
	return int32(u.Year), int32(u.Month), int32(u.MonthDay), int32(u.Hour),
		int32(u.Minute), float64(u.SecondInt) + u.SecondFrac
}

/* MJD to gps time -------------------------------------------------------------------------------------------*/
func Mjd2Gps(mjd float64) GpsTime {
	utcDays := mjd - MJD_JAN_6_1980
	var utcTime GpsTime
	utcTime.Wn = int16(utcDays / 7)
	utcTime.Tow = (utcDays - float64(utcTime.Wn)*7) * SECS_DAY
	leapSecs := GetUtcGpsOffset(&utcTime, nil)
	gpsTime := utcTime
	AddSecs(&gpsTime, -leapSecs)
	return gpsTime
}

/* gps time to MJD ----------------------------------------------------------------------------------------------*/
func Gps2Mjd(gpsTime *GpsTime) float64 {
	var utcTime UtcTime
	Gps2Utc(gpsTime, &utcTime, nil)
	return UtcTime2Mjd(&utcTime)
}

/* civil date to gps time -------------------------------------------------------------------------------------------*/
func Date2Gps(year, month, day, hour, min int32, sec float64) GpsTime {
	return Mjd2Gps(Date2Mjd(year, month, day, hour, min, sec))
}

/* gps time to civil date ----------------------------------------------------------------------------------------------*/
func Gps2Date(gpsTime *GpsTime) (year, month, day, hour, min int32, sec float64) {
	var utcTime UtcTime
	Gps2Utc(gpsTime, &utcTime, nil)
	return UtcTime2Date(&utcTime)
}

/* Greenwich mean sidereal time from utc -----------------------------------------------------------
* args   : UtcTime u       I  utc time
*          float64 ut1Utc  I  UT1-UTC (s)
* return : gmst (rad, 0 <= gmst < 2*pi)
*-----------------------------------------------------------------------------*/
func Utc2Gmst(u UtcTime, ut1Utc float64) float64 {
	tut0Mjd := UtcTime2Mjd(&u)
	tut0Mjd += ut1Utc / SECS_DAY
	tut2000Mjd := Date2Mjd(2000, 1, 1, 12, 0, 0.0)
	year, month, day, hour, min, sec := Mjd2Date(tut0Mjd)
	tut0Mjd = Date2Mjd(year, month, day, 0, 0, 0.0)
	ut := float64(hour)*SECS_HOUR + float64(min)*SECS_MINUTE + sec
	t1 := (tut0Mjd - tut2000Mjd) / 36525.0
	t2 := t1 * t1
	t3 := t2 * t1
	gmst0 := 24110.54841 + 8640184.812866*t1 + 0.093104*t2 - 6.2e-6*t3
	gmst := gmst0 + 1.002737909350795*ut

	return math.Mod(gmst, SECS_DAY) * PI / (SECS_DAY / 2)
}

/* decode utc parameters from GPS LNAV subframe 4 page 18 --------------------------------------------
* args   : []uint32   words I  subframe words 3..10 (30 bits each, parity removed)
*          *UtcParams u     O  decoded parameters
* return : status (true:ok,false:wrong page or invalid DN)
* notes  : IS-GPS-200H section 20.3.3.5.1.6. fills the full week numbers from
*          the current week cycle and sets TLse to the exact start of the
*          leap second event
*-----------------------------------------------------------------------------*/
func DecodeUtcParameters(words []uint32, u *UtcParams) bool {
	return DecodeUtcParametersWithWnRef(words, u, GPS_WEEK_REFERENCE)
}

func DecodeUtcParametersWithWnRef(words []uint32, u *UtcParams, wnRef uint16) bool {
	if len(words) < 8 {
		return false
	}
	*u = UtcParams{}

	/* word 3 bits 1-2: data ID, bits 3-8: SV ID */
	dataID := uint8(words[3-3] >> (30 - 2) & 0x3)
	svID := uint8(words[3-3] >> (30 - 8) & 0x3F)

	if dataID != GPS_LNAV_ALM_DATA_ID_BLOCK_II || svID != GPS_LNAV_ALM_SVID_UTC {
		return false
	}

	/* word 6 bits 1-24: A1 */
	u.A1 = float64(int32(words[6-3]>>(30-24)&0xFFFFFF)<<8>>8) * P2_50
	/* word 7 bits 1-24 and word 8 bits 1-8: A0 */
	u.A0 = float64(int32((words[7-3]>>(30-24)&0xFFFFFF)<<8|
		words[8-3]>>(30-8)&0xFF)) * P2_30
	/* word 8 bits 9-16: tot */
	tot := uint8(words[8-3] >> (30 - 16) & 0xFF)
	u.Tot.Tow = float64(tot) * 4096
	/* word 8 bits 17-24: WNt */
	wnT := uint16(words[8-3] >> (30 - 24) & 0xFF)
	u.Tot.Wn = int16(GpsAdjustWeekCycle256(wnT, wnRef))
	/* word 9 bits 1-8: dt_ls */
	u.DtLs = int8(words[9-3] >> (30 - 8) & 0xFF)
	/* word 9 bits 9-16: WN_lsf */
	wnLsf := uint16(words[9-3] >> (30 - 16) & 0xFF)
	u.TLse.Wn = int16(GpsAdjustWeekCycle256(wnLsf, wnRef))
	/* word 9 bits 17-24: DN */
	dn := uint8(words[9-3] >> (30 - 24) & 0xFF)
	if dn < 1 || dn > 7 {
		return false
	}
	u.TLse.Tow = float64(dn) * SECS_DAY
	NormalizeGpsTime(&u.TLse)
	/* word 10 bits 1-8: dt_lsf */
	u.DtLsf = int8(words[10-3] >> (30 - 8) & 0xFF)

	/* TLse points at the midnight near the event. add the current leap
	 * second and the polynomial correction to land on its exact start */
	u.TLse.Tow += float64(u.DtLs) + u.A0 + u.A1*GpsDiffTime(&u.TLse, &u.Tot)
	NormalizeGpsTime(&u.TLse)

	return true
}

/* round a gps time to the nearest solution epoch --------------------------------------------------*/
func RoundToEpoch(t *GpsTime, solnFreq float64) GpsTime {
	rounded := GpsTime{Wn: t.Wn, Tow: math.Round(t.Tow*solnFreq) / solnFreq}
	NormalizeGpsTime(&rounded)
	return rounded
}

/* floor a gps time to the last solution epoch ------------------------------------------------------*/
func FloorToEpoch(t *GpsTime, solnFreq float64) GpsTime {
	floored := GpsTime{Wn: t.Wn, Tow: math.Floor(t.Tow*solnFreq) / solnFreq}
	NormalizeGpsTime(&floored)
	return floored
}
