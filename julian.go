//package koyomi provides the astronomical almanac calculations behind the
//traditional Japanese calendar: Julian Dates, solar position, lunar age and
//phase, sunrise/sunset times and the six-day Rokuyo cycle.
//All functions are pure, all inputs are UTC-based timestamps.
package koyomi

import (
	"math"
	"time"
)

//Julian Date of the Unix epoch (1970-01-01T00:00:00Z)
const unixEpochJD = 2440587.5

const secondsPerDay = 86400

//ToJulianDate converts an instant to a Julian Date, the continuous day
//count used by all other calculations. The fractional part encodes the
//time of day, with the day boundary at noon UTC.
func ToJulianDate(t time.Time) float64 {
	secs := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return secs/secondsPerDay + unixEpochJD
}

//TimeFromJulianDate is the inverse of ToJulianDate, rounded to the
//nearest second.
func TimeFromJulianDate(j float64) time.Time {
	secs := (j - unixEpochJD) * secondsPerDay
	return time.Unix(int64(math.Round(secs)), 0).UTC()
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}

func rad2deg(r float64) float64 {
	return r * 180 / math.Pi
}

//Wraps an angle in degrees to [0, 360)
func normDeg(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
