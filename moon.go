package koyomi

import (
	"math"
	"time"
)

//SynodicMonth is the mean period between successive new moons in days
const SynodicMonth = 29.53058868

//Julian Date of the reference new moon (2000-01-06T18:14:00Z)
const newMoonReferenceJD = 2451550.26

//MoonPhase describes the state of the lunar cycle at one instant.
//Age is days since new moon in [0, SynodicMonth), Fraction is Age divided
//by the synodic period, Index selects the phase bucket in [0, 8].
type MoonPhase struct {
	Age      float64
	Fraction float64
	Index    int
	Name     string
	Emoji    string
}

//The phase name table has nine entries on purpose: the cycle is divided
//into eight buckets by rounding, so a date at the very end of the cycle
//lands on index 8, which must render identically to the new moon at
//index 0.
var phaseNames = [9]string{
	"新月",
	"三日月",
	"上弦の月",
	"十三夜月",
	"満月",
	"寝待月",
	"下弦の月",
	"有明月",
	"新月",
}

var phaseEmoji = [9]string{"🌑", "🌒", "🌓", "🌔", "🌕", "🌖", "🌗", "🌘", "🌑"}

//Phase returns the lunar age and phase for the given instant.
//The function is total: any instant yields a valid phase.
func Phase(t time.Time) MoonPhase {
	days := ToJulianDate(t) - newMoonReferenceJD
	frac := math.Mod(days/SynodicMonth, 1)
	if frac < 0 {
		frac++
	}
	idx := int(math.Round(frac*8)) % 9
	return MoonPhase{
		Age:      frac * SynodicMonth,
		Fraction: frac,
		Index:    idx,
		Name:     phaseNames[idx],
		Emoji:    phaseEmoji[idx],
	}
}

//Poetic day names of the traditional calendar, one per day of the lunar
//month, indexed by rounded lunar age
var lunarDayNames = [30]string{
	"新月",
	"繊月",
	"三日月",
	"黄昏月",
	"五日月",
	"六日月",
	"七日月",
	"八日月",
	"九日月",
	"十日夜",
	"十日余りの月",
	"十二日月",
	"十三夜月",
	"小望月",
	"満月",
	"十六夜",
	"立待月",
	"居待月",
	"寝待月",
	"更待月",
	"二十日余りの月",
	"二十二日月",
	"二十三夜月",
	"真夜中の月",
	"有明月",
	"二十六夜",
	"二十七日月",
	"二十八日月",
	"二十九日月",
	"三十日月",
}

//LunarDayName returns the poetic name for a lunar age in days, as shown on
//traditional calendars. Ages outside one synodic month wrap around.
func LunarDayName(age float64) string {
	i := int(math.Round(age)) % len(lunarDayNames)
	if i < 0 {
		i += len(lunarDayNames)
	}
	return lunarDayNames[i]
}
