package koyomi

import (
	"fmt"
	"math"
	"time"

	"github.com/ispahanproject/koyomi/jdn"
)

var (
	ErrLunationSearch = fmt.Errorf("Lunation bracket search did not converge") //Returned when the new-moon search exceeds its iteration ceiling, which indicates an epoch or estimate defect
)

//Hard ceiling on bracket search steps. The initial estimate is off by at
//most one or two lunations for any normal calendar date, so hitting the
//ceiling means the estimate or the epoch is broken.
const maxLunationSteps = 12

//Asia/Tokyo, the calendar the Rokuyo cycle is defined in
var jstZone = time.FixedZone("Asia/Tokyo", 9*60*60)

const jstOffsetHours = 9

//LunarDate is a date of the traditional lunisolar calendar: the month
//number in [1,12] and the 1-indexed day since the new moon that began it.
type LunarDate struct {
	Month int
	Day   int
}

//RokuyoDay is one entry of the six-day ceremonial cycle.
type RokuyoDay struct {
	Index       int
	Name        string
	Roman       string
	Description string
}

//The cycle order is fixed by tradition and is a lookup, not a
//computation: the index jumps by 2 across a lunar month boundary.
var rokuyoTable = [6]RokuyoDay{
	{0, "大安", "Taian", "The most auspicious day, favorable from morning to night"},
	{1, "赤口", "Shakku", "An unlucky day, except for the hour around noon"},
	{2, "先勝", "Sensho", "Luck in the morning, bad luck in the afternoon"},
	{3, "友引", "Tomobiki", "A good day, though funerals are avoided"},
	{4, "先負", "Senbu", "Bad luck in the morning, luck in the afternoon"},
	{5, "仏滅", "Butsumetsu", "The least auspicious day of the cycle"},
}

//LunarDateAt resolves the lunisolar calendar date of the civil day
//containing t at the given UTC offset.
//
//The day t falls on is bracketed between two consecutive new moons by
//local calendar date, the lunar day counts from the bracketing new moon,
//and the month counts from the lunar new year: the lunation immediately
//preceding the first new moon after the solar term usui. When the current
//lunation precedes this year's usui the previous year's anchor applies.
func LunarDateAt(t time.Time, utcOffsetHours float64) (LunarDate, error) {
	local := t.UTC().Add(time.Duration(utcOffsetHours * float64(time.Hour)))
	year, month, day := local.Date()
	today := jdn.NumberFromCivil(year, int(month), day)

	k, err := bracketLunation(year, int(month), today, utcOffsetHours)
	if err != nil {
		return LunarDate{}, err
	}

	lunarDay := today - newMoonDayNumber(k, utcOffsetHours) + 1

	nyK, err := newYearLunation(year, utcOffsetHours)
	if err != nil {
		return LunarDate{}, err
	}
	lunarMonth := k - nyK + 1
	if lunarMonth < 1 || lunarMonth > 12 {
		//Computed against the wrong year's anchor: the date precedes this
		//year's usui, so the lunation belongs to the previous lunar year
		nyK, err = newYearLunation(year-1, utcOffsetHours)
		if err != nil {
			return LunarDate{}, err
		}
		lunarMonth = k - nyK + 1
	}
	//Defensive clamp, should be unreachable with a correct anchor
	if lunarMonth < 1 {
		lunarMonth = 1
	}
	if lunarMonth > 12 {
		lunarMonth = 12
	}

	return LunarDate{Month: lunarMonth, Day: lunarDay}, nil
}

//Rokuyo returns the six-day cycle entry for the JST calendar date of the
//given instant.
func Rokuyo(t time.Time) (RokuyoDay, error) {
	ld, err := LunarDateAt(t, jstOffsetHours)
	if err != nil {
		return RokuyoDay{}, err
	}
	return rokuyoTable[(ld.Month+ld.Day)%6], nil
}

//Finds k such that the local date of new moon k is on or before today and
//the local date of new moon k+1 is after it. Starts from an estimate that
//is correct to within a lunation or two and walks until the bracket holds.
func bracketLunation(year, month, today int, utcOffsetHours float64) (int, error) {
	yf := float64(year) + float64(month-1)/12
	k := int(math.Floor((yf-2000)*12.3685)) + 1

	for i := 0; newMoonDayNumber(k, utcOffsetHours) > today; i++ {
		if i == maxLunationSteps {
			return 0, ErrLunationSearch
		}
		k--
	}
	for i := 0; newMoonDayNumber(k+1, utcOffsetHours) <= today; i++ {
		if i == maxLunationSteps {
			return 0, ErrLunationSearch
		}
		k++
	}
	return k, nil
}

//Returns the lunation index of the lunar new year of the given civil
//year: the one immediately preceding the first new moon strictly after
//usui of that year.
func newYearLunation(year int, utcOffsetHours float64) (int, error) {
	usui := solarTerms[usuiIndex]
	usuiDay := jdn.NumberFromCivil(year, int(usui.Month), usui.Day)

	k, err := bracketLunation(year, int(usui.Month), usuiDay, utcOffsetHours)
	if err != nil {
		return 0, err
	}
	//bracketLunation put new moon k on or before usui; the first new moon
	//after usui is k+1, so k itself starts month 1
	return k, nil
}
