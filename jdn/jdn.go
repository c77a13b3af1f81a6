//Package jdn converts between civil calendar dates and Julian day numbers.
//The integer day math comes from github.com/carlosjhr64/jd; this package
//adds the fractional-day and UTC-offset handling the almanac needs when it
//compares lunar events by local calendar date.
package jdn

import (
	"math"

	"github.com/carlosjhr64/jd"
)

// DayNumber returns the Julian day number of the civil day containing the
// Julian Date j. Julian Dates begin at noon, civil days at midnight, hence
// the half-day shift.
func DayNumber(j float64) int {
	return int(math.Floor(j + 0.5))
}

// CivilFromJD converts a Julian Date to the year, month and day of the
// civil calendar date it falls on at the given UTC offset in hours.
func CivilFromJD(j, utcOffsetHours float64) (int, int, int) {
	return jd.J2YMD(DayNumber(j + utcOffsetHours/24))
}

// NumberFromCivil returns the Julian day number of a civil calendar date.
func NumberFromCivil(year, month, day int) int {
	return jd.YMD2J(year, month, day)
}
