package koyomi

import "time"

//SolarTerm is one of the 24 traditional East Asian solar terms (sekki).
//Month and Day give the approximate civil date the term begins on.
//
//The civil dates are fixed approximations of the true solar-longitude
//crossings, which shift by a day or two from year to year. The almanac
//uses the table as-is; in particular the lunar new year anchor reads
//usui (rain water) from here rather than computing the true crossing.
type SolarTerm struct {
	Name  string
	Roman string
	Month time.Month
	Day   int
}

var solarTerms = [24]SolarTerm{
	{"小寒", "Shokan", time.January, 5},
	{"大寒", "Daikan", time.January, 20},
	{"立春", "Risshun", time.February, 4},
	{"雨水", "Usui", time.February, 19},
	{"啓蟄", "Keichitsu", time.March, 5},
	{"春分", "Shunbun", time.March, 20},
	{"清明", "Seimei", time.April, 4},
	{"穀雨", "Kokuu", time.April, 20},
	{"立夏", "Rikka", time.May, 5},
	{"小満", "Shoman", time.May, 21},
	{"芒種", "Boshu", time.June, 5},
	{"夏至", "Geshi", time.June, 21},
	{"小暑", "Shosho", time.July, 7},
	{"大暑", "Taisho", time.July, 22},
	{"立秋", "Risshu", time.August, 7},
	{"処暑", "Shosho", time.August, 23},
	{"白露", "Hakuro", time.September, 7},
	{"秋分", "Shubun", time.September, 23},
	{"寒露", "Kanro", time.October, 8},
	{"霜降", "Soko", time.October, 23},
	{"立冬", "Ritto", time.November, 7},
	{"小雪", "Shosetsu", time.November, 22},
	{"大雪", "Taisetsu", time.December, 7},
	{"冬至", "Toji", time.December, 21},
}

//Index of usui in solarTerms, the anchor term for lunar new year
const usuiIndex = 3

//SolarTerms returns the 24 solar terms in calendar order starting from
//shokan in early January.
func SolarTerms() []SolarTerm {
	terms := make([]SolarTerm, len(solarTerms))
	copy(terms[:], solarTerms[:])
	return terms
}

//CurrentSolarTerm returns the solar term in effect on the JST calendar
//date of the given instant, i.e. the latest term whose begin date is not
//after it.
func CurrentSolarTerm(t time.Time) SolarTerm {
	_, m, d := t.In(jstZone).Date()

	//Before shokan begins the previous year's toji is still in effect
	current := solarTerms[len(solarTerms)-1]
	for _, term := range solarTerms {
		if m < term.Month || (m == term.Month && d < term.Day) {
			break
		}
		current = term
	}
	return current
}
