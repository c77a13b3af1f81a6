package koyomi

import (
	"math"
	"time"
)

//Fixed obliquity of the ecliptic in degrees, accurate to arc-minute level
//within a few centuries of J2000
const obliquity = 23.4397

//Julian Date of the J2000.0 epoch (2000-01-01T12:00:00Z)
const j2000 = 2451545.0

//Altitude of the solar center at rise and set in degrees, accounting for
//atmospheric refraction and the solar radius
const riseSetAltitude = -0.8333

//Solar mean anomaly in degrees for d days since J2000
func solarMeanAnomaly(d float64) float64 {
	return normDeg(357.5291 + 0.98560028*d)
}

//Equation of center in degrees for mean anomaly m in degrees
func equationOfCenter(m float64) float64 {
	mr := deg2rad(m)
	return 1.9148*math.Sin(mr) + 0.0200*math.Sin(2*mr) + 0.0003*math.Sin(3*mr)
}

//Ecliptic longitude in degrees from mean anomaly and equation of center.
//102.9372 is the argument of perihelion of the Earth.
func eclipticLongitude(m, c float64) float64 {
	return normDeg(m + c + 180 + 102.9372)
}

//SolarEclipticLongitude returns the apparent ecliptic longitude of the sun
//in degrees [0, 360) for a given Julian Date.
func SolarEclipticLongitude(jd float64) float64 {
	m := solarMeanAnomaly(jd - j2000)
	return eclipticLongitude(m, equationOfCenter(m))
}

//SolarDeclination returns the declination of the sun in degrees for a given
//Julian Date.
func SolarDeclination(jd float64) float64 {
	lambda := SolarEclipticLongitude(jd)
	return rad2deg(math.Asin(math.Sin(deg2rad(lambda)) * math.Sin(deg2rad(obliquity))))
}

//SunTimes holds the sunrise and sunset instants for one solar day.
//Both times are UTC, truncated to the minute, and may fall on a different
//calendar day than the civil date of the query; correcting for that is
//left to the caller.
type SunTimes struct {
	Rise time.Time
	Set  time.Time
}

//SunriseSunset computes sunrise and sunset for the solar day nearest to the
//given instant at the given position. Latitude and longitude are decimal
//degrees, longitude east positive.
//Returns nil when the sun does not cross the horizon at all (polar day or
//polar night). The result is always symmetric: both times or neither.
func SunriseSunset(t time.Time, latDeg, lonDeg float64) *SunTimes {
	jd := ToJulianDate(t)

	//Day number since J2000, shifted to the mean solar day at this longitude
	n := math.Round(jd - j2000 + 0.0009)
	jstar := n - lonDeg/360

	m := solarMeanAnomaly(jstar)
	c := equationOfCenter(m)
	lambda := eclipticLongitude(m, c)

	//Solar transit, corrected by the equation of time terms
	jtransit := j2000 + jstar + 0.0053*math.Sin(deg2rad(m)) - 0.0069*math.Sin(2*deg2rad(lambda))

	sinDecl := math.Sin(deg2rad(lambda)) * math.Sin(deg2rad(obliquity))
	cosDecl := math.Cos(math.Asin(sinDecl))

	latRad := deg2rad(latDeg)
	cosH := (math.Sin(deg2rad(riseSetAltitude)) - math.Sin(latRad)*sinDecl) /
		(math.Cos(latRad) * cosDecl)

	//No real solution for the hour angle: continuous day or night.
	//This is a defined outcome, not an error.
	if cosH < -1 || cosH > 1 {
		return nil
	}

	h := rad2deg(math.Acos(cosH))
	rise := TimeFromJulianDate(jtransit - h/360).Truncate(time.Minute)
	set := TimeFromJulianDate(jtransit + h/360).Truncate(time.Minute)

	return &SunTimes{Rise: rise, Set: set}
}
