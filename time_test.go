/*------------------------------------------------------------------------------
* gnsscore unit test driver : GPS/GLONASS/UTC time handling
*-----------------------------------------------------------------------------*/

package gnsscore_test

import (
	"math"
	"testing"
	"time"

	"gnsscore"

	"github.com/stretchr/testify/assert"
)

const timeTol = 1e-10

func Test_gpsdifftime(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		a, b gnsscore.GpsTime
		dt   float64
	}{
		{gnsscore.GpsTime{Tow: 567890.0, Wn: 1234}, gnsscore.GpsTime{Tow: 567890.0, Wn: 1234}, 0},
		{gnsscore.GpsTime{Tow: 567890.0, Wn: 1234}, gnsscore.GpsTime{Tow: 0.0, Wn: 1234}, 567890},
		{gnsscore.GpsTime{Tow: 567890.0, Wn: gnsscore.WN_UNKNOWN}, gnsscore.GpsTime{Tow: 0.0, Wn: 1234}, -36910},
		{gnsscore.GpsTime{Tow: 222222.0, Wn: 2222}, gnsscore.GpsTime{Tow: 2222.0, Wn: gnsscore.WN_UNKNOWN}, 220000},
		{gnsscore.GpsTime{Tow: 444444.0, Wn: gnsscore.WN_UNKNOWN}, gnsscore.GpsTime{Tow: 2222.0, Wn: gnsscore.WN_UNKNOWN}, -162578},
		{gnsscore.GpsTime{Tow: 604578.0, Wn: 1000}, gnsscore.GpsTime{Tow: 222.222, Wn: 1001}, -444.222},
		{gnsscore.GpsTime{Tow: 604578.0, Wn: 1001}, gnsscore.GpsTime{Tow: 222.222, Wn: 1000}, 1209155.778},
		{gnsscore.GpsTime{Tow: 0, Wn: 5120}, gnsscore.GpsTime{Tow: 0, Wn: 1024}, 2477260800},
	}
	for i, tc := range testCases {
		assert.InDelta(tc.dt, gnsscore.GpsDiffTime(&tc.a, &tc.b), timeTol,
			"case %d", i)
	}
}

func Test_gpsdifftime_week_second(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		end, beginning gnsscore.GpsTime
		dt             gnsscore.GpsTimeDuration
		success        bool
	}{
		{gnsscore.GpsTime{Tow: 567890.0, Wn: 1234}, gnsscore.GpsTime{Tow: 567890.0, Wn: 1234},
			gnsscore.GpsTimeDuration{Seconds: 0, Weeks: 0}, true},
		{gnsscore.GpsTime{Tow: 567890.0, Wn: 1234}, gnsscore.GpsTime{Tow: 0.0, Wn: 1234},
			gnsscore.GpsTimeDuration{Seconds: 567890, Weeks: 0}, true},
		{gnsscore.GpsTime{Tow: 567890.0, Wn: gnsscore.WN_UNKNOWN}, gnsscore.GpsTime{Tow: 0.0, Wn: 1234},
			gnsscore.GpsTimeDuration{}, false},
		{gnsscore.GpsTime{Tow: 222222.0, Wn: 2222}, gnsscore.GpsTime{Tow: 2222.0, Wn: gnsscore.WN_UNKNOWN},
			gnsscore.GpsTimeDuration{}, false},
		{gnsscore.GpsTime{Tow: 444444.0, Wn: gnsscore.WN_UNKNOWN}, gnsscore.GpsTime{Tow: 2222.0, Wn: gnsscore.WN_UNKNOWN},
			gnsscore.GpsTimeDuration{}, false},
		{gnsscore.GpsTime{Tow: 604578.0, Wn: 1000}, gnsscore.GpsTime{Tow: 222.222, Wn: 1001},
			gnsscore.GpsTimeDuration{Seconds: -444.222, Weeks: 0}, true},
		{gnsscore.GpsTime{Tow: 222.222, Wn: 1001}, gnsscore.GpsTime{Tow: 604578.0, Wn: 1000},
			gnsscore.GpsTimeDuration{Seconds: 444.222, Weeks: 0}, true},
		{gnsscore.GpsTime{Tow: 604578.0, Wn: 1001}, gnsscore.GpsTime{Tow: 222.222, Wn: 1000},
			gnsscore.GpsTimeDuration{Seconds: 604355.778, Weeks: 1}, true},
		{gnsscore.GpsTime{Tow: 0, Wn: 5120}, gnsscore.GpsTime{Tow: 0, Wn: 1024},
			gnsscore.GpsTimeDuration{Seconds: 0, Weeks: 4096}, true},
	}
	for i, tc := range testCases {
		var dt gnsscore.GpsTimeDuration
		success := gnsscore.GpsDiffTimeWeekSecond(&tc.end, &tc.beginning, &dt)
		assert.Equal(tc.success, success, "case %d", i)
		if !tc.success {
			continue
		}
		absdiff := math.Abs(dt.Seconds-tc.dt.Seconds) +
			math.Abs(float64(dt.Weeks-tc.dt.Weeks))*gnsscore.SECS_WEEK
		assert.Less(absdiff, timeTol, "case %d", i)
	}
}

/* the split week/second difference keeps resolution a plain double loses */
func Test_long_gps_time_diff(t *testing.T) {
	assert := assert.New(t)

	t2 := gnsscore.GpsTime{Tow: 0, Wn: 2345}
	t1 := gnsscore.GpsTime{Tow: 1.2345678, Wn: 0}
	correct := gnsscore.GpsTimeDuration{Seconds: 604798.7654322, Weeks: 2344}

	dt := gnsscore.GpsTimeDuration{Seconds: gnsscore.GpsDiffTime(&t2, &t1)}
	gnsscore.NormalizeGpsTimeDuration(&dt)
	assert.InDelta(correct.Seconds, dt.Seconds, 1e-2)
	assert.Greater(math.Abs(dt.Seconds-correct.Seconds), 1e-9)

	assert.True(gnsscore.GpsDiffTimeWeekSecond(&t2, &t1, &dt))
	assert.Equal(correct.Weeks, dt.Weeks)
	assert.InDelta(correct.Seconds, dt.Seconds, 1e-12)
}

func Test_normalize_gps_time(t *testing.T) {
	assert := assert.New(t)

	testCases := []gnsscore.GpsTime{
		{Tow: 0, Wn: 1234},
		{Tow: 3 * gnsscore.SECS_DAY, Wn: 1234},
		{Tow: gnsscore.SECS_WEEK + gnsscore.SECS_DAY, Wn: 1234},
		{Tow: -gnsscore.SECS_DAY, Wn: 1234},
		{Tow: gnsscore.SECS_DAY, Wn: gnsscore.WN_UNKNOWN},
		{Tow: gnsscore.SECS_WEEK + 1, Wn: gnsscore.WN_UNKNOWN},
	}
	for i, tc := range testCases {
		tOriginal := float64(tc.Wn)*gnsscore.SECS_WEEK + tc.Tow
		wnBefore := tc.Wn
		gnsscore.NormalizeGpsTime(&tc)
		assert.True(tc.Tow >= 0 && tc.Tow < gnsscore.SECS_WEEK, "case %d", i)
		if wnBefore != gnsscore.WN_UNKNOWN {
			tNormalized := float64(tc.Wn)*gnsscore.SECS_WEEK + tc.Tow
			assert.InDelta(tOriginal, tNormalized, timeTol, "case %d", i)
		} else {
			/* normalization must not touch an unknown week number */
			assert.Equal(int16(gnsscore.WN_UNKNOWN), tc.Wn, "case %d", i)
		}
	}
}

func Test_normalize_gps_time_duration(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		in, out gnsscore.GpsTimeDuration
	}{
		{gnsscore.GpsTimeDuration{Seconds: 0, Weeks: 1234},
			gnsscore.GpsTimeDuration{Seconds: 0, Weeks: 1234}},
		{gnsscore.GpsTimeDuration{Seconds: 3 * gnsscore.SECS_DAY, Weeks: 1234},
			gnsscore.GpsTimeDuration{Seconds: 3 * gnsscore.SECS_DAY, Weeks: 1234}},
		{gnsscore.GpsTimeDuration{Seconds: gnsscore.SECS_WEEK + gnsscore.SECS_DAY, Weeks: 1234},
			gnsscore.GpsTimeDuration{Seconds: gnsscore.SECS_DAY, Weeks: 1235}},
		{gnsscore.GpsTimeDuration{Seconds: -gnsscore.SECS_DAY, Weeks: 1234},
			gnsscore.GpsTimeDuration{Seconds: gnsscore.SECS_WEEK - gnsscore.SECS_DAY, Weeks: 1233}},
		{gnsscore.GpsTimeDuration{Seconds: 0, Weeks: -1234},
			gnsscore.GpsTimeDuration{Seconds: 0, Weeks: -1234}},
		{gnsscore.GpsTimeDuration{Seconds: -3 * gnsscore.SECS_DAY, Weeks: -1234},
			gnsscore.GpsTimeDuration{Seconds: -3 * gnsscore.SECS_DAY, Weeks: -1234}},
		{gnsscore.GpsTimeDuration{Seconds: -(gnsscore.SECS_WEEK + gnsscore.SECS_DAY), Weeks: -1234},
			gnsscore.GpsTimeDuration{Seconds: -gnsscore.SECS_DAY, Weeks: -1235}},
		{gnsscore.GpsTimeDuration{Seconds: gnsscore.SECS_DAY, Weeks: -1234},
			gnsscore.GpsTimeDuration{Seconds: -(gnsscore.SECS_WEEK - gnsscore.SECS_DAY), Weeks: -1233}},
		{gnsscore.GpsTimeDuration{Seconds: 1e-9, Weeks: 1234},
			gnsscore.GpsTimeDuration{Seconds: 1e-9, Weeks: 1234}},
	}
	for i, tc := range testCases {
		gnsscore.NormalizeGpsTimeDuration(&tc.in)
		assert.Equal(tc.out.Weeks, tc.in.Weeks, "case %d", i)
		assert.InDelta(tc.out.Seconds, tc.in.Seconds, timeTol, "case %d", i)
	}
}

/* sweep MakeUtcTime against the standard library civil time breakdown */
func gmtimeSweep(t *testing.T, start, end, step int64) {
	assert := assert.New(t)

	for tGps := start; tGps < end; tGps += step {
		date := time.Unix(tGps+gnsscore.GPS_EPOCH_UNIX, 0).UTC()

		gt := gnsscore.GpsTime{
			Wn:  int16(tGps / gnsscore.SECS_WEEK),
			Tow: float64(tGps % gnsscore.SECS_WEEK),
		}
		var u gnsscore.UtcTime
		gnsscore.MakeUtcTime(&gt, &u)

		if !assert.EqualValues(date.Year(), u.Year, "time %v", date) {
			return
		}
		assert.EqualValues(int(date.Month()), u.Month, "time %v", date)
		assert.EqualValues(date.YearDay(), u.YearDay, "time %v", date)
		assert.EqualValues(date.Day(), u.MonthDay, "time %v", date)
		assert.EqualValues(int(date.Weekday()), u.WeekDay%7, "time %v", date)
		assert.EqualValues(date.Hour(), u.Hour, "time %v", date)
		assert.EqualValues(date.Minute(), u.Minute, "time %v", date)
		assert.EqualValues(date.Second(), u.SecondInt, "time %v", date)
		assert.Equal(0.0, u.SecondFrac, "time %v", date)
	}
}

func Test_gps2utc_time(t *testing.T) {
	/* Jan 6 1980 in 1 s increments */
	gmtimeSweep(t, 0, gnsscore.SECS_DAY+1, 1)
}

func Test_gps2utc_date(t *testing.T) {
	/* 1980 to 2048 with (1 day + 1 s) increments */
	gmtimeSweep(t, 0, 68*365*gnsscore.SECS_DAY, gnsscore.SECS_DAY+1)
}

func Test_gps_time_match_weeks(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		t, ref, ret gnsscore.GpsTime
	}{
		{gnsscore.GpsTime{Tow: 0.0, Wn: gnsscore.WN_UNKNOWN}, gnsscore.GpsTime{Tow: 0.0, Wn: 1234},
			gnsscore.GpsTime{Tow: 0.0, Wn: 1234}},
		{gnsscore.GpsTime{Tow: gnsscore.SECS_WEEK - 1, Wn: gnsscore.WN_UNKNOWN}, gnsscore.GpsTime{Tow: 0.0, Wn: 1234},
			gnsscore.GpsTime{Tow: gnsscore.SECS_WEEK - 1, Wn: 1233}},
		{gnsscore.GpsTime{Tow: 0.0, Wn: gnsscore.WN_UNKNOWN}, gnsscore.GpsTime{Tow: gnsscore.SECS_WEEK - 1, Wn: 1234},
			gnsscore.GpsTime{Tow: 0.0, Wn: 1235}},
		{gnsscore.GpsTime{Tow: gnsscore.SECS_WEEK - 1, Wn: gnsscore.WN_UNKNOWN}, gnsscore.GpsTime{Tow: gnsscore.SECS_WEEK - 1, Wn: 1234},
			gnsscore.GpsTime{Tow: gnsscore.SECS_WEEK - 1, Wn: 1234}},
		{gnsscore.GpsTime{Tow: 2 * gnsscore.SECS_DAY, Wn: gnsscore.WN_UNKNOWN}, gnsscore.GpsTime{Tow: 5 * gnsscore.SECS_DAY, Wn: 1234},
			gnsscore.GpsTime{Tow: 2 * gnsscore.SECS_DAY, Wn: 1234}},
		{gnsscore.GpsTime{Tow: 5 * gnsscore.SECS_DAY, Wn: gnsscore.WN_UNKNOWN}, gnsscore.GpsTime{Tow: 2 * gnsscore.SECS_DAY, Wn: 1234},
			gnsscore.GpsTime{Tow: 5 * gnsscore.SECS_DAY, Wn: 1234}},
		{gnsscore.GpsTime{Tow: 0.0, Wn: gnsscore.WN_UNKNOWN}, gnsscore.GpsTime{Tow: gnsscore.SECS_WEEK / 2, Wn: 1234},
			gnsscore.GpsTime{Tow: 0.0, Wn: 1234}},
		{gnsscore.GpsTime{Tow: gnsscore.SECS_WEEK / 2, Wn: gnsscore.WN_UNKNOWN}, gnsscore.GpsTime{Tow: 0.0, Wn: 1234},
			gnsscore.GpsTime{Tow: gnsscore.SECS_WEEK / 2, Wn: 1234}},
		{gnsscore.GpsTime{Tow: gnsscore.SECS_WEEK/2 + 1, Wn: gnsscore.WN_UNKNOWN}, gnsscore.GpsTime{Tow: 0.0, Wn: 1234},
			gnsscore.GpsTime{Tow: gnsscore.SECS_WEEK/2 + 1, Wn: 1233}},
		{gnsscore.GpsTime{Tow: 0.0, Wn: gnsscore.WN_UNKNOWN}, gnsscore.GpsTime{Tow: gnsscore.SECS_WEEK/2 + 1, Wn: 1234},
			gnsscore.GpsTime{Tow: 0.0, Wn: 1235}},
		{gnsscore.GpsTime{Tow: gnsscore.SECS_DAY, Wn: gnsscore.WN_UNKNOWN}, gnsscore.GpsTime{Tow: 2 * gnsscore.SECS_DAY, Wn: gnsscore.WN_UNKNOWN},
			gnsscore.GpsTime{Tow: gnsscore.SECS_DAY, Wn: gnsscore.WN_UNKNOWN}},
		{gnsscore.GpsTime{Tow: gnsscore.SECS_DAY, Wn: gnsscore.WN_UNKNOWN}, gnsscore.GpsTime{Tow: 6 * gnsscore.SECS_DAY, Wn: gnsscore.WN_UNKNOWN},
			gnsscore.GpsTime{Tow: gnsscore.SECS_DAY, Wn: gnsscore.WN_UNKNOWN}},
	}
	for i, tc := range testCases {
		gnsscore.GpsTimeMatchWeeks(&tc.t, &tc.ref)
		assert.Equal(tc.ret.Wn, tc.t.Wn, "case %d", i)
		assert.Equal(tc.ret.Tow, tc.t.Tow, "case %d", i)
	}
}

func Test_gps_adjust_week_cycle(t *testing.T) {
	assert := assert.New(t)

	const wnRef = gnsscore.GPS_WEEK_REFERENCE
	testCases := []struct {
		wnRaw, ret uint16
	}{
		{0, 2048},
		{1023, 2047},
		{wnRef % 1024, wnRef},
		{wnRef%1024 + 1, wnRef + 1},
		{wnRef%1024 - 1, wnRef + 1023},
		{wnRef, wnRef},
		{wnRef + 1, wnRef + 1},
	}
	for i, tc := range testCases {
		assert.Equal(tc.ret, gnsscore.GpsAdjustWeekCycle(tc.wnRaw, wnRef),
			"case %d", i)
	}
}

func Test_is_leap_year(t *testing.T) {
	assert := assert.New(t)

	for _, year := range []int32{1904, 1908, 1952, 1980, 1984, 1988,
		1992, 1996, 2000, 2004, 2008, 2012, 2016, 2020} {
		assert.True(gnsscore.IsLeapYear(year), "year %d", year)
	}
	/* divisible by 100 but not 400, or not divisible by 4 */
	for _, year := range []int32{1900, 2100, 1901, 1981, 1999, 2001,
		2018, 2019} {
		assert.False(gnsscore.IsLeapYear(year), "year %d", year)
	}
}

func Test_glo2gps(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		glot gnsscore.GloTime
		ret  gnsscore.GpsTime
	}{
		{gnsscore.GloTime{Nt: 0, N4: 4, H: 12, M: 12, S: 12}, gnsscore.GPS_TIME_UNKNOWN},
		{gnsscore.GloTime{Nt: 1462, N4: 4, H: 12, M: 12, S: 12}, gnsscore.GPS_TIME_UNKNOWN},
		{gnsscore.GloTime{Nt: 1461, N4: 0, H: 12, M: 12, S: 12}, gnsscore.GPS_TIME_UNKNOWN},
		{gnsscore.GloTime{Nt: 1461, N4: 32, H: 12, M: 12, S: 12}, gnsscore.GPS_TIME_UNKNOWN},
		/* GLO time 29th Dec 2000 01:00:00 */
		{gnsscore.GloTime{Nt: 364, N4: 2, H: 1, M: 0, S: 0}, gnsscore.GpsTime{Wn: 1094, Tow: 424813}},
		/* GLO time 30th Dec 2000 01:00:00 */
		{gnsscore.GloTime{Nt: 365, N4: 2, H: 1, M: 0, S: 0}, gnsscore.GpsTime{Wn: 1094, Tow: 511213}},
		/* GLO time 31st Dec 2000 02:00:00 */
		{gnsscore.GloTime{Nt: 366, N4: 2, H: 2, M: 0, S: 0}, gnsscore.GpsTime{Wn: 1094, Tow: 601213}},
		/* GLO time 1st Jan 2001 02:00:00 */
		{gnsscore.GloTime{Nt: 367, N4: 2, H: 2, M: 0, S: 0}, gnsscore.GpsTime{Wn: 1095, Tow: 82813}},
		/* GLO time 2nd Jan 2001 02:00:00 */
		{gnsscore.GloTime{Nt: 368, N4: 2, H: 2, M: 0, S: 0}, gnsscore.GpsTime{Wn: 1095, Tow: 169213}},
		/* GLO time 31st Dec 2009 12:12:12 */
		{gnsscore.GloTime{Nt: 731, N4: 4, H: 12, M: 12, S: 12}, gnsscore.GpsTime{Wn: 1564, Tow: 378747}},
		/* GLO time 31st Dec 2010 12:12:12 */
		{gnsscore.GloTime{Nt: 1096, N4: 4, H: 12, M: 12, S: 12}, gnsscore.GpsTime{Wn: 1616, Tow: 465147}},
		/* GLO time 31st Dec 2011 12:12:12 */
		{gnsscore.GloTime{Nt: 1461, N4: 4, H: 12, M: 12, S: 12}, gnsscore.GpsTime{Wn: 1668, Tow: 551547}},
		/* around the 1st Jan 2017 leap second */
		{gnsscore.GloTime{Nt: 367, N4: 6, H: 2, M: 59, S: 59}, gnsscore.GpsTime{Wn: 1930, Tow: 16}},
		{gnsscore.GloTime{Nt: 367, N4: 6, H: 2, M: 59, S: 59.5}, gnsscore.GpsTime{Wn: 1930, Tow: 16.5}},
		{gnsscore.GloTime{Nt: 367, N4: 6, H: 2, M: 59, S: 60}, gnsscore.GpsTime{Wn: 1930, Tow: 17}},
		{gnsscore.GloTime{Nt: 367, N4: 6, H: 2, M: 59, S: 60.5}, gnsscore.GpsTime{Wn: 1930, Tow: 17.5}},
		{gnsscore.GloTime{Nt: 367, N4: 6, H: 3, M: 0, S: 0}, gnsscore.GpsTime{Wn: 1930, Tow: 18}},
		{gnsscore.GloTime{Nt: 367, N4: 6, H: 3, M: 0, S: 1}, gnsscore.GpsTime{Wn: 1930, Tow: 19}},
		{gnsscore.GloTime{Nt: 367, N4: 6, H: 3, M: 0, S: 2}, gnsscore.GpsTime{Wn: 1930, Tow: 20}},
		{gnsscore.GloTime{Nt: 367, N4: 6, H: 3, M: 1, S: 0}, gnsscore.GpsTime{Wn: 1930, Tow: 78}},
	}
	for i, tc := range testCases {
		ret := gnsscore.Glo2Gps(&tc.glot, nil)
		assert.Equal(tc.ret.Wn, ret.Wn, "case %d", i)
		assert.InDelta(tc.ret.Tow, ret.Tow, timeTol, "case %d", i)
		if !gnsscore.GpsTimeValid(&ret) {
			continue
		}
		/* convert back to GLO time */
		glo := gnsscore.Gps2Glo(&ret, nil)
		assert.Equal(tc.glot.N4, glo.N4, "case %d", i)
		assert.Equal(tc.glot.Nt, glo.Nt, "case %d", i)
		assert.Equal(tc.glot.H, glo.H, "case %d", i)
		assert.Equal(tc.glot.M, glo.M, "case %d", i)
		assert.InDelta(tc.glot.S, glo.S, 1e-5, "case %d", i)
	}
}

func Test_utc_offset(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		t     gnsscore.GpsTime
		dUtc  float64
		isLse bool
	}{
		/* July 1 1981 */
		{gnsscore.GpsTime{Wn: 77, Tow: 259199.0}, 0.0, false},
		{gnsscore.GpsTime{Wn: 77, Tow: 259199.5}, 0.0, false},
		{gnsscore.GpsTime{Wn: 77, Tow: 259200.0}, 0.0, true},
		{gnsscore.GpsTime{Wn: 77, Tow: 259200.5}, 0.0, true},
		{gnsscore.GpsTime{Wn: 77, Tow: 259201.0}, 1.0, false},
		{gnsscore.GpsTime{Wn: 77, Tow: 259202.0}, 1.0, false},
		/* Jan 1 2017 */
		{gnsscore.GpsTime{Wn: 1930, Tow: 16.0}, 17.0, false},
		{gnsscore.GpsTime{Wn: 1930, Tow: 16.5}, 17.0, false},
		{gnsscore.GpsTime{Wn: 1930, Tow: 17.0}, 17.0, true},
		{gnsscore.GpsTime{Wn: 1930, Tow: 17.5}, 17.0, true},
		{gnsscore.GpsTime{Wn: 1930, Tow: 18.0}, 18.0, false},
		{gnsscore.GpsTime{Wn: 1930, Tow: 18.5}, 18.0, false},
		{gnsscore.GpsTime{Wn: 1930, Tow: 19.0}, 18.0, false},
	}
	for i, tc := range testCases {
		dUtc := gnsscore.GetGpsUtcOffset(&tc.t, nil)
		isLse := gnsscore.IsLeapSecondEvent(&tc.t, nil)
		assert.Equal(tc.dUtc, dUtc, "case %d", i)
		assert.Equal(tc.isLse, isLse, "case %d", i)

		/* the offset from the resulting UTC time back to GPS time matches,
		   except during the event when the UTC time is ambiguous */
		if !isLse {
			utcTime := gnsscore.GpsTime{Wn: tc.t.Wn, Tow: tc.t.Tow - dUtc}
			assert.Equal(-tc.dUtc, gnsscore.GetUtcGpsOffset(&utcTime, nil),
				"case %d", i)
		}
	}
}

/* a fictional leap second on 1st Jan 2020, with polynomial corrections that
   shift the time of effectivity */
var utcParamsNegOffset = gnsscore.UtcParams{
	A0:    -0.125,
	Tot:   gnsscore.GpsTime{Wn: 2080, Tow: 0},
	TLse:  gnsscore.GpsTime{Wn: 2086, Tow: 259218.0 - 0.125},
	DtLs:  18,
	DtLsf: 19,
}
var utcParamsPosOffset = gnsscore.UtcParams{
	A0:    +0.125,
	Tot:   gnsscore.GpsTime{Wn: 2080, Tow: 0},
	TLse:  gnsscore.GpsTime{Wn: 2086, Tow: 259218.0 + 0.125},
	DtLs:  18,
	DtLsf: 19,
}
var utcParamsPosTrend = gnsscore.UtcParams{
	A1:    1e-12,
	Tot:   gnsscore.GpsTime{Wn: 2080, Tow: 0},
	TLse:  gnsscore.GpsTime{Wn: 2086, Tow: 259218.0 + 1e-12*(6*gnsscore.SECS_WEEK+259218.0)},
	DtLs:  18,
	DtLsf: 19,
}
var utcParamsNegTrend = gnsscore.UtcParams{
	A1:    -1e-12,
	Tot:   gnsscore.GpsTime{Wn: 2080, Tow: 0},
	TLse:  gnsscore.GpsTime{Wn: 2086, Tow: 259218.0 - 1e-12*(6*gnsscore.SECS_WEEK+259218.0)},
	DtLs:  18,
	DtLsf: 19,
}

func Test_utc_params(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		t     gnsscore.GpsTime
		dUtc  float64
		isLse bool
		p     *gnsscore.UtcParams
	}{
		/* constant negative UTC offset */
		{gnsscore.GpsTime{Wn: 2086, Tow: 259217.0 - 0.125}, 18.0 - 0.125, false, &utcParamsNegOffset},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259217.5 - 0.125}, 18.0 - 0.125, false, &utcParamsNegOffset},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259218.0 - 0.125}, 18.0 - 0.125, true, &utcParamsNegOffset},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259218.5 - 0.125}, 18.0 - 0.125, true, &utcParamsNegOffset},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259219.0 - 0.125}, 19.0 - 0.125, false, &utcParamsNegOffset},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259219.5 - 0.125}, 19.0 - 0.125, false, &utcParamsNegOffset},
		/* constant positive UTC offset */
		{gnsscore.GpsTime{Wn: 2086, Tow: 259217.0 + 0.125}, 18.0 + 0.125, false, &utcParamsPosOffset},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259217.5 + 0.125}, 18.0 + 0.125, false, &utcParamsPosOffset},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259218.0 + 0.125}, 18.0 + 0.125, true, &utcParamsPosOffset},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259218.5 + 0.125}, 18.0 + 0.125, true, &utcParamsPosOffset},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259219.0 + 0.125}, 19.0 + 0.125, false, &utcParamsPosOffset},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259219.5 + 0.125}, 19.0 + 0.125, false, &utcParamsPosOffset},
		/* positive UTC linear correction */
		{gnsscore.GpsTime{Wn: 2086, Tow: 259217.0}, 18.0, false, &utcParamsPosTrend},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259217.5}, 18.0, false, &utcParamsPosTrend},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259218.0001}, 18.0, true, &utcParamsPosTrend},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259218.5}, 18.0, true, &utcParamsPosTrend},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259219.0001}, 19.0, false, &utcParamsPosTrend},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259219.5}, 19.0, false, &utcParamsPosTrend},
		/* negative UTC linear correction */
		{gnsscore.GpsTime{Wn: 2086, Tow: 259217.0}, 18.0, false, &utcParamsNegTrend},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259217.5}, 18.0, false, &utcParamsNegTrend},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259218.0}, 18.0, true, &utcParamsNegTrend},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259218.5}, 18.0, true, &utcParamsNegTrend},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259219.0}, 19.0, false, &utcParamsNegTrend},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259219.5}, 19.0, false, &utcParamsNegTrend},
	}
	for i, tc := range testCases {
		isLse := gnsscore.IsLeapSecondEvent(&tc.t, tc.p)
		assert.Equal(tc.isLse, isLse, "case %d", i)

		/* the linear a1*(t-tot) trend contributes a few microseconds */
		dUtc := gnsscore.GetGpsUtcOffset(&tc.t, tc.p)
		assert.InDelta(tc.dUtc, dUtc, 1e-5, "case %d", i)

		if !isLse {
			utcTime := gnsscore.GpsTime{Wn: tc.t.Wn, Tow: tc.t.Tow - dUtc}
			assert.InDelta(-tc.dUtc, gnsscore.GetUtcGpsOffset(&utcTime, tc.p),
				1e-5, "case %d", i)
		}

		/* conversion to GLO and back with the UTC parameters */
		gloTime := gnsscore.Gps2Glo(&tc.t, tc.p)
		converted := gnsscore.Glo2Gps(&gloTime, tc.p)
		assert.Less(math.Abs(gnsscore.GpsDiffTime(&tc.t, &converted)), 0.2,
			"case %d", i)
	}
}

func Test_gps2utc(t *testing.T) {
	assert := assert.New(t)

	testCases := []struct {
		t gnsscore.GpsTime
		u gnsscore.UtcTime
		p *gnsscore.UtcParams
	}{
		/* July 1 1981 */
		{gnsscore.GpsTime{Wn: 77, Tow: 259199.0},
			gnsscore.UtcTime{Year: 1981, Month: 6, MonthDay: 30, Hour: 23, Minute: 59, SecondInt: 59}, nil},
		{gnsscore.GpsTime{Wn: 77, Tow: 259199.5},
			gnsscore.UtcTime{Year: 1981, Month: 6, MonthDay: 30, Hour: 23, Minute: 59, SecondInt: 59, SecondFrac: 0.5}, nil},
		{gnsscore.GpsTime{Wn: 77, Tow: 259200.0},
			gnsscore.UtcTime{Year: 1981, Month: 6, MonthDay: 30, Hour: 23, Minute: 59, SecondInt: 60}, nil},
		{gnsscore.GpsTime{Wn: 77, Tow: 259200.5},
			gnsscore.UtcTime{Year: 1981, Month: 6, MonthDay: 30, Hour: 23, Minute: 59, SecondInt: 60, SecondFrac: 0.5}, nil},
		{gnsscore.GpsTime{Wn: 77, Tow: 259201.0},
			gnsscore.UtcTime{Year: 1981, Month: 7, MonthDay: 1}, nil},
		/* Jan 1 2017 */
		{gnsscore.GpsTime{Wn: 1930, Tow: 16.0},
			gnsscore.UtcTime{Year: 2016, Month: 12, MonthDay: 31, Hour: 23, Minute: 59, SecondInt: 59}, nil},
		{gnsscore.GpsTime{Wn: 1930, Tow: 16.5},
			gnsscore.UtcTime{Year: 2016, Month: 12, MonthDay: 31, Hour: 23, Minute: 59, SecondInt: 59, SecondFrac: 0.5}, nil},
		{gnsscore.GpsTime{Wn: 1930, Tow: 17.0},
			gnsscore.UtcTime{Year: 2016, Month: 12, MonthDay: 31, Hour: 23, Minute: 59, SecondInt: 60}, nil},
		{gnsscore.GpsTime{Wn: 1930, Tow: 17.5},
			gnsscore.UtcTime{Year: 2016, Month: 12, MonthDay: 31, Hour: 23, Minute: 59, SecondInt: 60, SecondFrac: 0.5}, nil},
		{gnsscore.GpsTime{Wn: 1930, Tow: 18.0},
			gnsscore.UtcTime{Year: 2017, Month: 1, MonthDay: 1}, nil},
		/* Jan 8 2017 */
		{gnsscore.GpsTime{Wn: 1931, Tow: 17.0},
			gnsscore.UtcTime{Year: 2017, Month: 1, MonthDay: 7, Hour: 23, Minute: 59, SecondInt: 59}, nil},
		{gnsscore.GpsTime{Wn: 1931, Tow: 17.5},
			gnsscore.UtcTime{Year: 2017, Month: 1, MonthDay: 7, Hour: 23, Minute: 59, SecondInt: 59, SecondFrac: 0.5}, nil},
		{gnsscore.GpsTime{Wn: 1931, Tow: 18 - 6e-11},
			gnsscore.UtcTime{Year: 2017, Month: 1, MonthDay: 7, Hour: 23, Minute: 59, SecondInt: 59, SecondFrac: 1 - 6e-11}, nil},
		{gnsscore.GpsTime{Wn: 1931, Tow: 18 - 5e-11},
			gnsscore.UtcTime{Year: 2017, Month: 1, MonthDay: 8}, nil},
		{gnsscore.GpsTime{Wn: 1931, Tow: 18.0},
			gnsscore.UtcTime{Year: 2017, Month: 1, MonthDay: 8}, nil},
		/* fictional Jan 1 2020 leap second, constant negative offset */
		{gnsscore.GpsTime{Wn: 2086, Tow: 259217.0 - 0.125},
			gnsscore.UtcTime{Year: 2019, Month: 12, MonthDay: 31, Hour: 23, Minute: 59, SecondInt: 59}, &utcParamsNegOffset},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259217.5 - 0.125},
			gnsscore.UtcTime{Year: 2019, Month: 12, MonthDay: 31, Hour: 23, Minute: 59, SecondInt: 59, SecondFrac: 0.5}, &utcParamsNegOffset},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259218.0 - 0.125},
			gnsscore.UtcTime{Year: 2019, Month: 12, MonthDay: 31, Hour: 23, Minute: 59, SecondInt: 60}, &utcParamsNegOffset},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259218.5 - 0.125},
			gnsscore.UtcTime{Year: 2019, Month: 12, MonthDay: 31, Hour: 23, Minute: 59, SecondInt: 60, SecondFrac: 0.5}, &utcParamsNegOffset},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259219.0 - 0.125},
			gnsscore.UtcTime{Year: 2020, Month: 1, MonthDay: 1}, &utcParamsNegOffset},
		/* constant positive offset */
		{gnsscore.GpsTime{Wn: 2086, Tow: 259217.0 + 0.125},
			gnsscore.UtcTime{Year: 2019, Month: 12, MonthDay: 31, Hour: 23, Minute: 59, SecondInt: 59}, &utcParamsPosOffset},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259217.5 + 0.125},
			gnsscore.UtcTime{Year: 2019, Month: 12, MonthDay: 31, Hour: 23, Minute: 59, SecondInt: 59, SecondFrac: 0.5}, &utcParamsPosOffset},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259218.0 + 0.125},
			gnsscore.UtcTime{Year: 2019, Month: 12, MonthDay: 31, Hour: 23, Minute: 59, SecondInt: 60}, &utcParamsPosOffset},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259218.5 + 0.125},
			gnsscore.UtcTime{Year: 2019, Month: 12, MonthDay: 31, Hour: 23, Minute: 59, SecondInt: 60, SecondFrac: 0.5}, &utcParamsPosOffset},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259219.0 + 0.125},
			gnsscore.UtcTime{Year: 2020, Month: 1, MonthDay: 1}, &utcParamsPosOffset},
		/* positive UTC linear correction */
		{gnsscore.GpsTime{Wn: 2086, Tow: 259217.0},
			gnsscore.UtcTime{Year: 2019, Month: 12, MonthDay: 31, Hour: 23, Minute: 59, SecondInt: 59}, &utcParamsPosTrend},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259217.5},
			gnsscore.UtcTime{Year: 2019, Month: 12, MonthDay: 31, Hour: 23, Minute: 59, SecondInt: 59, SecondFrac: 0.5}, &utcParamsPosTrend},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259218.0},
			gnsscore.UtcTime{Year: 2019, Month: 12, MonthDay: 31, Hour: 23, Minute: 59, SecondInt: 60}, &utcParamsPosTrend},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259218.5},
			gnsscore.UtcTime{Year: 2019, Month: 12, MonthDay: 31, Hour: 23, Minute: 59, SecondInt: 60, SecondFrac: 0.5}, &utcParamsPosTrend},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259219.00001},
			gnsscore.UtcTime{Year: 2020, Month: 1, MonthDay: 1}, &utcParamsPosTrend},
		/* negative UTC linear correction */
		{gnsscore.GpsTime{Wn: 2086, Tow: 259217.0},
			gnsscore.UtcTime{Year: 2019, Month: 12, MonthDay: 31, Hour: 23, Minute: 59, SecondInt: 59}, &utcParamsNegTrend},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259217.5},
			gnsscore.UtcTime{Year: 2019, Month: 12, MonthDay: 31, Hour: 23, Minute: 59, SecondInt: 59, SecondFrac: 0.5}, &utcParamsNegTrend},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259218.0},
			gnsscore.UtcTime{Year: 2019, Month: 12, MonthDay: 31, Hour: 23, Minute: 59, SecondInt: 60}, &utcParamsNegTrend},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259218.5},
			gnsscore.UtcTime{Year: 2019, Month: 12, MonthDay: 31, Hour: 23, Minute: 59, SecondInt: 60, SecondFrac: 0.5}, &utcParamsNegTrend},
		{gnsscore.GpsTime{Wn: 2086, Tow: 259219.0},
			gnsscore.UtcTime{Year: 2020, Month: 1, MonthDay: 1}, &utcParamsNegTrend},
	}
	for i, tc := range testCases {
		var u gnsscore.UtcTime
		gnsscore.Gps2Utc(&tc.t, &u, tc.p)

		assert.Equal(tc.u.Year, u.Year, "case %d", i)
		assert.Equal(tc.u.Month, u.Month, "case %d", i)
		assert.Equal(tc.u.MonthDay, u.MonthDay, "case %d", i)
		assert.Equal(tc.u.Hour, u.Hour, "case %d", i)
		assert.Equal(tc.u.Minute, u.Minute, "case %d", i)
		assert.InDelta(float64(tc.u.SecondInt)+tc.u.SecondFrac,
			float64(u.SecondInt)+u.SecondFrac, 1e-5, "case %d", i)
		assert.Less(u.SecondFrac, 1.0, "case %d", i)

		/* and back */
		var converted gnsscore.GpsTime
		gnsscore.Utc2Gps(&u, &converted, tc.p)
		assert.Equal(tc.t.Wn, converted.Wn, "case %d", i)
		assert.InDelta(tc.t.Tow, converted.Tow, 1e-5, "case %d", i)
	}
}

func Test_time_conversions(t *testing.T) {
	assert := assert.New(t)

	testCases := []gnsscore.GpsTime{
		{Tow: 567890.0, Wn: 1234},
		{Tow: 567890.5, Wn: 1234},
		{Tow: 0.0, Wn: 1234},
		{Tow: 604578.0, Wn: 1000},
		{Tow: 222.222, Wn: 1001},
		{Tow: 604578.0, Wn: 1001},
		{Tow: 222.222, Wn: 1939},
		{Tow: 16, Wn: 1930},
		{Tow: 18, Wn: 1930}, /* around the Jan 2017 leap second */
	}
	const tol = 1e-5
	for i, tc := range testCases {
		/* gps -> mjd -> gps */
		mjd := gnsscore.Gps2Mjd(&tc)
		ret := gnsscore.Mjd2Gps(mjd)
		assert.InDelta(0.0, gnsscore.GpsDiffTime(&tc, &ret), tol, "case %d", i)

		/* mjd -> date -> mjd */
		year, month, day, hour, min, sec := gnsscore.Mjd2Date(mjd)
		assert.InDelta(mjd, gnsscore.Date2Mjd(year, month, day, hour, min, sec),
			1e-6, "case %d", i)

		/* mjd -> utc -> mjd */
		utc := gnsscore.Mjd2UtcTime(mjd)
		assert.InDelta(mjd, gnsscore.UtcTime2Mjd(&utc),
			1e-6, "case %d", i)

		/* gps -> date -> gps */
		year, month, day, hour, min, sec = gnsscore.Gps2Date(&tc)
		ret = gnsscore.Date2Gps(year, month, day, hour, min, sec)
		assert.InDelta(0.0, gnsscore.GpsDiffTime(&tc, &ret), tol, "case %d", i)

		/* utc -> date -> utc */
		year, month, day, hour, min, sec = gnsscore.UtcTime2Date(&utc)
		utc = gnsscore.Date2UtcTime(year, month, day, hour, min, sec)
		assert.InDelta(mjd, gnsscore.UtcTime2Mjd(&utc),
			1e-6, "case %d", i)
	}
}

func Test_round_to_epoch(t *testing.T) {
	assert := assert.New(t)

	const solnFreq = 10.0
	testCases := []gnsscore.GpsTime{
		{Tow: 567890.01, Wn: 1234},
		{Tow: 567890.0501, Wn: 1234},
		{Tow: 604800.06, Wn: 1234},
	}
	expectations := []gnsscore.GpsTime{
		{Tow: 567890.00, Wn: 1234},
		{Tow: 567890.10, Wn: 1234},
		{Tow: 0.1, Wn: 1235},
	}
	for i := range testCases {
		rounded := gnsscore.RoundToEpoch(&testCases[i], solnFreq)
		assert.InDelta(0.0, gnsscore.GpsDiffTime(&rounded, &expectations[i]),
			1e-6, "case %d", i)
	}
}

func Test_floor_to_epoch(t *testing.T) {
	assert := assert.New(t)

	const solnFreq = 10.0
	testCases := []gnsscore.GpsTime{
		{Tow: 567890.01, Wn: 1234},
		{Tow: 567890.0501, Wn: 1234},
		{Tow: 604800.06, Wn: 1234},
	}
	expectations := []gnsscore.GpsTime{
		{Tow: 567890.00, Wn: 1234},
		{Tow: 567890.00, Wn: 1234},
		{Tow: 0.0, Wn: 1235},
	}
	for i := range testCases {
		floored := gnsscore.FloorToEpoch(&testCases[i], solnFreq)
		assert.InDelta(0.0, gnsscore.GpsDiffTime(&floored, &expectations[i]),
			1e-6, "case %d", i)
	}
}

func Test_leap_second_table_expiry(t *testing.T) {
	assert := assert.New(t)

	/* the expiry stamps must agree with each other across time scales */
	unix := gnsscore.Gps2UnixTime(&gnsscore.GpsTimeUtcLeapsExpiry)
	assert.Equal(gnsscore.UnixTimeUtcLeapsExpiry, unix)
}
