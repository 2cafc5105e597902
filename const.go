/*------------------------------------------------------------------------------
* const.go : physical constants, scale factors and ICD tables
*
* references :
*     [1] IS-GPS-200M, Navstar GPS Space Segment/Navigation User Interfaces,
*         May 2021
*     [2] European GNSS (Galileo) Open Service Signal In Space Interface
*         Control Document, Issue 2.0, January 2021
*     [3] China Satellite Navigation Office, BeiDou navigation satellite system
*         signal in space interface control document, open service signal B1I
*         (version 3.0), February 2019
*     [4] Global Navigation Satellite System GLONASS Interface Control Document
*         L1, L2, Edition 5.1, 2008
*     [5] RTCM Standard 10403.2, Differential GNSS Services - version 3,
*         February 1, 2013
*-----------------------------------------------------------------------------*/
package gnsscore

const (
	PI      = 3.1415926535897932  /* pi */
	D2R     = PI / 180.0          /* deg to rad */
	R2D     = 180.0 / PI          /* rad to deg */
	CLIGHT  = 299792458.0         /* speed of light (m/s) */
	SC2RAD  = 3.1415926535898     /* semi-circle to radian (IS-GPS-200) */
	AU      = 149597870691.0      /* 1 AU (m) */
	AS2R    = D2R / 3600.0        /* arc sec to radian */
	OMGE    = 7.2921151467e-5     /* earth angular velocity (IS-GPS) (rad/s) */
	RE_WGS84 = 6378137.0          /* earth semimajor axis (WGS84) (m) */
	FE_WGS84 = 1.0 / 298.257223563 /* earth flattening (WGS84) */
)

const (
	MU_GPS = 3.9860050e14     /* gravitational constant ref [1] */
	MU_GLO = 3.9860044e14     /* gravitational constant ref [4] */
	MU_GAL = 3.986004418e14   /* earth gravitational constant ref [2] */
	MU_BDS = 3.986004418e14   /* earth gravitational constant ref [3] */

	J2_GLO = 1.0826257e-3 /* 2nd zonal harmonic of geopot ref [4] */

	OMGE_GLO = 7.292115e-5     /* earth angular velocity (rad/s) ref [4] */
	OMGE_GAL = 7.2921151467e-5 /* earth angular velocity (rad/s) ref [2] */
	OMGE_BDS = 7.292115e-5     /* earth angular velocity (rad/s) ref [3] */

	RE_GLO = 6378136.0 /* radius of earth (m) ref [4] */
)

/* power-of-two scale factors applied to broadcast fields */
const (
	P2_5  = 0.03125                /* 2^-5 */
	P2_6  = 0.015625               /* 2^-6 */
	P2_11 = 4.882812500000000e-04  /* 2^-11 */
	P2_15 = 3.051757812500000e-05  /* 2^-15 */
	P2_17 = 7.629394531250000e-06  /* 2^-17 */
	P2_19 = 1.907348632812500e-06  /* 2^-19 */
	P2_20 = 9.536743164062500e-07  /* 2^-20 */
	P2_21 = 4.768371582031250e-07  /* 2^-21 */
	P2_23 = 1.192092895507810e-07  /* 2^-23 */
	P2_24 = 5.960464477539063e-08  /* 2^-24 */
	P2_27 = 7.450580596923828e-09  /* 2^-27 */
	P2_29 = 1.862645149230957e-09  /* 2^-29 */
	P2_30 = 9.313225746154785e-10  /* 2^-30 */
	P2_31 = 4.656612873077393e-10  /* 2^-31 */
	P2_32 = 2.328306436538696e-10  /* 2^-32 */
	P2_33 = 1.164153218269348e-10  /* 2^-33 */
	P2_34 = 5.820766091346740e-11  /* 2^-34 */
	P2_35 = 2.910383045673370e-11  /* 2^-35 */
	P2_38 = 3.637978807091710e-12  /* 2^-38 */
	P2_39 = 1.818989403545856e-12  /* 2^-39 */
	P2_40 = 9.094947017729280e-13  /* 2^-40 */
	P2_43 = 1.136868377216160e-13  /* 2^-43 */
	P2_46 = 1.421085471520200e-14  /* 2^-46 */
	P2_48 = 3.552713678800501e-15  /* 2^-48 */
	P2_50 = 8.881784197001252e-16  /* 2^-50 */
	P2_55 = 2.775557561562891e-17  /* 2^-55 */
	P2_59 = 1.734723475976807e-18  /* 2^-59 */
	P2_66 = 1.355252715606881e-20  /* 2^-66 */
)

/* time constants */
const (
	SECS_MINUTE = 60
	SECS_HOUR   = 3600
	SECS_DAY    = 86400
	SECS_WEEK   = 604800

	WEEK_DAYS = 7

	YEAR_DAYS      = 365 /* days in a common year */
	LEAP_YEAR_DAYS = YEAR_DAYS + 1
	YEAR_DAYS_AVG  = 365.25 /* Julian average, seasonal models */

	FOUR_YEARS_DAYS         = 3*YEAR_DAYS + LEAP_YEAR_DAYS
	HUNDRED_YEARS_DAYS      = 24*FOUR_YEARS_DAYS + 4*YEAR_DAYS
	FOUR_HUNDRED_YEARS_DAYS = 3*HUNDRED_YEARS_DAYS + 25*FOUR_YEARS_DAYS

	WN_UNKNOWN  = -1 /* GPS week unknown sentinel */
	TOW_UNKNOWN = -1 /* GPS tow unknown sentinel */

	/* GPS-GLO timescale offset: Moscow decree time is UTC+3h */
	UTC_SU_OFFSET = 3 /* (hours) */

	MJD_JAN_6_1980 = 44244 /* MJD of the GPS epoch */
	MJD_JAN_1_1601 = -94187 /* MJD of 1601-01-01, start of a 400 year cycle */

	GPS_EPOCH_UNIX = 315964800 /* unix timestamp of 1980-01-06 00:00:00 UTC */
	GPS_EPOCH_YEAR = 1980
	/* days into (leap) year 1980 of the GPS epoch Jan 6th */
	YEAR_1980_GPS_DAYS = 361

	GPS_WEEK_CYCLE = 1024 /* 10-bit broadcast week rollover period */

	/* reference week for resolving truncated broadcast week numbers, and the
	   last week the reference can disambiguate */
	GPS_WEEK_REFERENCE = 1876
	GPS_MAX_WEEK       = 2899

	/* GLONASS four-year cycle: day number ranges per year of cycle */
	GLO_NT_0_FLOOR   = 1
	GLO_NT_0_CEILING = LEAP_YEAR_DAYS
	GLO_NT_1_CEILING = GLO_NT_0_CEILING + YEAR_DAYS
	GLO_NT_2_CEILING = GLO_NT_1_CEILING + YEAR_DAYS
	GLO_NT_3_CEILING = GLO_NT_2_CEILING + YEAR_DAYS

	GLO_N4_MIN = 1
	GLO_N4_MAX = 31 /* rolls over 1st Jan 2120 */

	GLO_EPOCH_YEAR = 1996 /* start of GLONASS time, 1st Jan 1996 */
	GLO_EPOCH_WN   = 834  /* GLONASS epoch in GPS time (31-12-1995 21:00:10) */
	GLO_EPOCH_TOW  = 75610.0

	/* GPS LNAV subframe 4/5 page identifiers, IS-GPS-200 20.3.3.5.1 */
	GPS_LNAV_ALM_DATA_ID_BLOCK_II = 1
	GPS_LNAV_ALM_SVID_UTC         = 56
	GPS_LNAV_ALM_SVID_IONO        = 56
	GPS_LNAV_ALM_SVID_WEEK        = 51
	GPS_LNAV_ALM_SVID_HEALTH_4    = 63
	GPS_LNAV_ALM_SVID_HEALTH_5    = 51
	GPS_LNAV_ALM_MIN_PRN          = 1
	GPS_LNAV_ALM_MAX_PRN          = 32

	/* BDT epoch offset from GPS: Jan 1 2006, and BDT=GPST-14s */
	BDS_WEEK_TO_GPS_WEEK = 1356
	BDS_SECOND_TO_GPS_SECOND = 14

	/* GST week 0 is GPS week 1024 */
	GAL_WEEK_TO_GPS_WEEK = 1024
)

/* fit intervals and decoder limits */
const (
	MAX_ITER_KEPLER  = 10    /* max iterations of Kepler's equation */
	RTOL_KEPLER      = 1e-13 /* convergence tolerance of Kepler eq */
	TSTEP_GLO        = 60.0  /* GLONASS RK4 integration step (s) */
	MAX_ITER_LLH     = 10    /* max iterations of Bowring's method */

	GPS_FIT_INTERVAL_DEFAULT = 4 * SECS_HOUR
	GAL_FIT_INTERVAL_DEFAULT = 4 * SECS_HOUR
	BDS_FIT_INTERVAL_DEFAULT = 3 * SECS_HOUR
	GLO_FIT_INTERVAL_DEFAULT = 30 * SECS_MINUTE

	INVALID_URA_VALUE  = -1.0   /* URA out of broadcast range */
	URA_VALID_MAX      = 6144.0 /* largest representable URA (m) */
)

/* carrier frequencies (Hz) */
const (
	FREQ_GPS_L1 = 1.57542e9
	FREQ_GPS_L2 = 1.22760e9
	FREQ_GPS_L5 = 1.17645e9

	FREQ_GLO_L1 = 1.60200e9 /* FCN 0 */
	FREQ_GLO_L2 = 1.24600e9 /* FCN 0 */
	DFRQ_GLO_L1 = 0.56250e6 /* per FCN step */
	DFRQ_GLO_L2 = 0.43750e6 /* per FCN step */

	FREQ_GAL_E1  = 1.57542e9
	FREQ_GAL_E5A = 1.17645e9
	FREQ_GAL_E5B = 1.20714e9
	FREQ_GAL_E6  = 1.27875e9
	FREQ_GAL_E5X = 1.191795e9 /* AltBOC */

	FREQ_BDS_B1  = 1.561098e9
	FREQ_BDS_B2  = 1.20714e9
	FREQ_BDS_B3  = 1.26852e9
	FREQ_BDS_B1C = 1.57542e9
	FREQ_BDS_B2A = 1.17645e9

	FREQ_QZS_L1 = 1.57542e9
	FREQ_QZS_L2 = 1.22760e9
	FREQ_QZS_L5 = 1.17645e9

	FREQ_SBAS_L1 = 1.57542e9
	FREQ_SBAS_L5 = 1.17645e9
)
