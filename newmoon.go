package koyomi

import (
	"math"

	"github.com/ispahanproject/koyomi/jdn"
)

//NewMoon returns the Julian Ephemeris Date of the new moon with lunation
//index k, counted in synodic months from the new moon of January 2000
//(k=0). Negative k selects moons before the epoch.
//
//This is the Meeus approximation: a quadratic base estimate in
//T = k/1236.85 refined with five periodic correction terms in the solar
//mean anomaly M, the lunar mean anomaly Mp and the lunar argument of
//latitude F. No ΔT correction is applied; at this precision the result is
//interchangeable with a Julian Date.
func NewMoon(k int) float64 {
	kf := float64(k)
	t := kf / 1236.85

	jde := 2451550.09765 + 29.530588853*kf + 0.0001337*t*t

	m := deg2rad(2.5534 + 29.10535669*kf)
	mp := deg2rad(201.5643 + 385.81693528*kf)
	f := deg2rad(160.7108 + 390.67050274*kf)

	jde += -0.40720 * math.Sin(mp)
	jde += 0.17241 * math.Sin(m)
	jde += 0.01608 * math.Sin(2*mp)
	jde += 0.01039 * math.Sin(2*f)
	jde += 0.00739 * math.Sin(mp-m)

	return jde
}

//NewMoonDate returns the civil calendar date on which the new moon with
//lunation index k falls at the given UTC offset. Lunar month boundaries
//are defined by local calendar dates, not UTC instants, so the almanac
//always brackets dates through this function.
func NewMoonDate(k int, utcOffsetHours float64) (year, month, day int) {
	return jdn.CivilFromJD(NewMoon(k), utcOffsetHours)
}

//Julian day number of the local civil date of new moon k
func newMoonDayNumber(k int, utcOffsetHours float64) int {
	return jdn.DayNumber(NewMoon(k) + utcOffsetHours/24)
}
