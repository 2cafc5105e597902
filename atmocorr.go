/*------------------------------------------------------------------------------
* atmocorr.go : apply ionosphere and troposphere corrections to measurements
*-----------------------------------------------------------------------------*/
package gnsscore

/* finite difference step for the correction time derivatives (s) */
const atmoCorrDiffStep = 1.0

/* azimuth and elevation of the satellite t seconds in the past */
func prevSatAzEl(meas *NavigationMeasurement, t float64, posEcef []float64) (az, el float64) {
	var satPos0 [3]float64
	for j := 0; j < 3; j++ {
		satPos0[j] = meas.SatPos[j] - t*meas.SatVel[j]
	}
	return Ecef2AzEl(satPos0[:], posEcef)
}

/* correct measurements for ionospheric delay ---------------------------------------
* args   : []float64              posEcef    I    receiver position in ecef (m)
*          *IonoParams            ionoParams I    Klobuchar parameters (nil: no-op)
*          []NavigationMeasurement navMeas   I/O  measurements to correct
* notes  : the Klobuchar output is an L1 delay; each signal is scaled by the
*          square of its frequency ratio. doppler corrections carry the
*          opposite sign of the pseudorange correction
*-----------------------------------------------------------------------------*/
func CorrectIono(posEcef []float64, ionoParams *IonoParams, navMeas []NavigationMeasurement) {
	if ionoParams == nil {
		return
	}

	var posLlh [3]float64
	Ecef2Llh(posEcef, posLlh[:])

	for i := range navMeas {
		m := &navMeas[i]
		carrierFreq := SidToCarrFreq(m.Sid)

		az, el := Ecef2AzEl(m.SatPos[:], posEcef)
		az0, el0 := prevSatAzEl(m, atmoCorrDiffStep, posEcef)

		ionoCorrection := CalcIonosphere(&m.Tot, posLlh[0], posLlh[1], az, el, ionoParams)

		/* finite difference estimate of the correction rate */
		ionoCorrectionDelta := (ionoCorrection -
			CalcIonosphere(&m.Tot, posLlh[0], posLlh[1], az0, el0, ionoParams)) /
			atmoCorrDiffStep

		/* scale from the L1 Klobuchar delay to this signal */
		scale := (FREQ_GPS_L1 / carrierFreq) * (FREQ_GPS_L1 / carrierFreq)
		ionoCorrection *= scale
		ionoCorrectionDelta *= scale

		m.RawPseudorange -= ionoCorrection
		m.RawCarrierPhase -= ionoCorrection * (carrierFreq / CLIGHT)
		m.RawMeasuredDoppler += ionoCorrectionDelta * (carrierFreq / CLIGHT)
		m.RawComputedDoppler += ionoCorrectionDelta * (carrierFreq / CLIGHT)
		Trace(4, "atmocorr: %d iono %10.5f\n", i, ionoCorrection)
	}
}

/* correct measurements for tropospheric delay -----------------------------------------
* args   : []float64               posEcef I    receiver position in ecef (m)
*          []NavigationMeasurement navMeas I/O  measurements to correct
* notes  : ellipsoidal height is used in place of orthometric height
*-----------------------------------------------------------------------------*/
func CorrectTropo(posEcef []float64, navMeas []NavigationMeasurement) {
	var posLlh [3]float64
	Ecef2Llh(posEcef, posLlh[:])

	for i := range navMeas {
		m := &navMeas[i]
		carrierFreq := SidToCarrFreq(m.Sid)

		_, el := Ecef2AzEl(m.SatPos[:], posEcef)
		_, el0 := prevSatAzEl(m, atmoCorrDiffStep, posEcef)

		doy := float64(Gps2Doy(&m.Tot))

		tropoCorrection := CalcTroposphereDoy(doy, posLlh[0], posLlh[2], el)
		tropoCorrectionDelta := (tropoCorrection -
			CalcTroposphereDoy(doy, posLlh[0], posLlh[2], el0)) /
			atmoCorrDiffStep

		m.RawPseudorange -= tropoCorrection
		/* carrier phase sign follows the receiver's phase convention */
		m.RawCarrierPhase += tropoCorrection * (carrierFreq / CLIGHT)
		m.RawMeasuredDoppler += tropoCorrectionDelta * (carrierFreq / CLIGHT)
		m.RawComputedDoppler += tropoCorrectionDelta * (carrierFreq / CLIGHT)
		Trace(4, "atmocorr: %d tropo %10.5f\n", i, tropoCorrection)
	}
}
