/*------------------------------------------------------------------------------
* shm.go : satellite health monitoring
*
* reference :
*     [1] IS-GPS-200H, Navstar GPS Space Segment/Navigation User Interfaces,
*         section 20.3.3.3.1.4 SV Health and Table 20-VIII
*-----------------------------------------------------------------------------*/
package gnsscore

// ShmState is the tri-state health of a single signal component.
type ShmState int

const (
	SHM_STATE_UNKNOWN ShmState = iota
	SHM_STATE_HEALTHY
	SHM_STATE_UNHEALTHY
)

// NAV data health indications carried in the 3 MSBs of the 8-bit health word
const (
	NAV_DHI_OK           = 0
	NAV_DHI_PARITY       = 1
	NAV_DHI_TLM_HOW      = 2
	NAV_DHI_ZCOUNT       = 3
	NAV_DHI_SUB123       = 4
	NAV_DHI_SUB45        = 5
	NAV_DHI_UPLOAD_BAD   = 6
	NAV_DHI_DATA_PROBLEM = 7
)

// Signal component health codes from IS-GPS-200H Table 20-VIII
// (5 LSBs of the health word)
const (
	shmAllSignalsOk = iota
	shmAllSignalsWeak
	shmAllSignalsDead
	shmAllSignalsNoData
	shmL1PSignalWeak
	shmL1PSignalDead
	shmL1PSignalNoData
	shmL2PSignalWeak
	shmL2PSignalDead
	shmL2PSignalNoData
	shmL1CSignalWeak
	shmL1CSignalDead
	shmL1CSignalNoData
	shmL2CSignalWeak
	shmL2CSignalDead
	shmL2CSignalNoData
	shmL1L2PSignalWeak
	shmL1L2PSignalDead
	shmL1L2PSignalNoData
	shmL1L2CSignalWeak
	shmL1L2CSignalDead
	shmL1L2CSignalNoData
	shmL1SignalWeak
	shmL1SignalDead
	shmL1SignalNoData
	shmL2SignalWeak
	shmL2SignalDead
	shmL2SignalNoData
	shmSvTemporarilyOut
	shmSvWillBeTemporarilyOut
	shmOnlyUraValid
	shmMultipleProblems
)

/* ShmGpsDecodeShiEphemeris ----------------------------------------------------
* extract the 6-bit ephemeris health indicator from subframe 1 word 3
* args   : uint32 sf1w3      I   word 3 of subframe 1 (30 LSBs)
* return : 6-bit health indicator
*-----------------------------------------------------------------------------*/
func ShmGpsDecodeShiEphemeris(sf1w3 uint32) uint8 {
	return uint8((sf1w3 >> 8) & 0x3F)
}

// gpsNavDataHealthSummary checks the one-bit NAV data health summary in the
// MSB of the 6-bit health word. Zero means all NAV data are OK.
func gpsNavDataHealthSummary(healthBits uint8) bool {
	return (healthBits>>5)&0x1 == 0
}

func check6bitHealth(healthBits uint8, code Code) ShmState {
	if (code == CODE_GPS_L1CA || code == CODE_AUX_GPS || code == CODE_GPS_L1P) &&
		!gpsNavDataHealthSummary(healthBits) {
		return SHM_STATE_UNHEALTHY
	}

	b := healthBits & 0x1F

	switch b {
	case shmAllSignalsWeak, shmAllSignalsDead, shmAllSignalsNoData,
		shmSvTemporarilyOut, shmSvWillBeTemporarilyOut,
		shmOnlyUraValid, shmMultipleProblems:
		return SHM_STATE_UNHEALTHY
	}

	switch code {
	case CODE_GPS_L1CA, CODE_AUX_GPS:
		switch b {
		case shmL1CSignalWeak, shmL1CSignalDead, shmL1CSignalNoData,
			shmL1L2CSignalWeak, shmL1L2CSignalDead, shmL1L2CSignalNoData,
			shmL1SignalWeak, shmL1SignalDead, shmL1SignalNoData:
			return SHM_STATE_UNHEALTHY
		}
		return SHM_STATE_HEALTHY
	case CODE_GPS_L2CM, CODE_GPS_L2CL, CODE_GPS_L2CX:
		switch b {
		case shmL2CSignalWeak, shmL2CSignalDead, shmL2CSignalNoData,
			shmL1L2CSignalWeak, shmL1L2CSignalDead, shmL1L2CSignalNoData,
			shmL2SignalWeak, shmL2SignalDead, shmL2SignalNoData:
			return SHM_STATE_UNHEALTHY
		}
		return SHM_STATE_HEALTHY
	case CODE_GPS_L1P:
		switch b {
		case shmL1PSignalWeak, shmL1PSignalDead, shmL1PSignalNoData,
			shmL1L2PSignalWeak, shmL1L2PSignalDead, shmL1L2PSignalNoData,
			shmL1SignalWeak, shmL1SignalDead, shmL1SignalNoData:
			return SHM_STATE_UNHEALTHY
		}
		return SHM_STATE_HEALTHY
	case CODE_GPS_L2P:
		switch b {
		case shmL2PSignalWeak, shmL2PSignalDead, shmL2PSignalNoData,
			shmL1L2PSignalWeak, shmL1L2PSignalDead, shmL1L2PSignalNoData,
			shmL2SignalWeak, shmL2SignalDead, shmL2SignalNoData:
			return SHM_STATE_UNHEALTHY
		}
		return SHM_STATE_HEALTHY
	case CODE_GPS_L5I, CODE_GPS_L5Q, CODE_GPS_L5X:
		/* health status for L5 is carried in CNAV, not decoded here */
		return SHM_STATE_HEALTHY
	default:
		Trace(2, "check6bitHealth: unsupported code %d\n", code)
		return SHM_STATE_UNKNOWN
	}
}

/* Check6bitHealthWord ---------------------------------------------------------
* check the 6-bit health word of subframe 1 word 3 for the given signal
* args   : uint8 healthBits  I   6-bit SV health word
*          Code  code        I   signal to analyze
* return : false if the signal is known unhealthy, true otherwise
*-----------------------------------------------------------------------------*/
func Check6bitHealthWord(healthBits uint8, code Code) bool {
	return check6bitHealth(healthBits, code) != SHM_STATE_UNHEALTHY
}

/* Check8bitHealthWord ---------------------------------------------------------
* check the almanac 8-bit health word: 3 MSBs are the NAV data health
* indication (Table 20-VII), 5 LSBs the signal component status
* args   : uint8 healthBits  I   8-bit SV health word
*          Code  code        I   signal to analyze
* return : true if the signal is usable
*-----------------------------------------------------------------------------*/
func Check8bitHealthWord(healthBits uint8, code Code) bool {
	if !CheckNavDhi(healthBits, 0) {
		return false
	}
	return Check6bitHealthWord(healthBits, code)
}

/* CheckAlmaPage25HealthWord ---------------------------------------------------
* check the per-SV health words of almanac subframes 4/5 page 25. "6 ones"
* marks the SV and its data unusable
* args   : uint8 healthBits  I   6-bit SV health word
*          Code  code        I   signal to analyze
* return : true if the signal is usable
*-----------------------------------------------------------------------------*/
func CheckAlmaPage25HealthWord(healthBits uint8, code Code) bool {
	if gpsNavDataHealthSummary(healthBits) && healthBits&0x1F == shmMultipleProblems {
		return false
	}
	return Check6bitHealthWord(healthBits, code)
}

/* CheckNavDhi -----------------------------------------------------------------
* check the 3-bit NAV data health indication of an 8-bit health word
* args   : uint8 health8bits    I   8-bit health word
*          uint8 disabledErrors I   bit mask of DHI codes to ignore
* return : true if no unmasked error is indicated
*-----------------------------------------------------------------------------*/
func CheckNavDhi(health8bits, disabledErrors uint8) bool {
	navDhi := (health8bits >> 5) & 0x7
	if navDhi == NAV_DHI_OK {
		return true
	}
	if disabledErrors&(1<<navDhi) != 0 {
		return true
	}
	return false
}
