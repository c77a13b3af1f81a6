package koyomi

import (
	"fmt"
	"math"
	"testing"
)

func TestNewMoonEpoch(t *testing.T) {
	//The k=0 new moon fell on 2000-01-06 18:14 UTC, JD 2451550.2597
	have := NewMoon(0)
	if math.Abs(have-2451550.2597) > 0.01 {
		t.Errorf("Want JDE near 2451550.2597 for k=0, have %f", have)
	}
}

func TestNewMoonSpacing(t *testing.T) {
	//Consecutive new moons are one synodic month apart; the true interval
	//oscillates around the mean by up to about half a day
	for k := -600; k < 600; k++ {
		gap := NewMoon(k+1) - NewMoon(k)
		if math.Abs(gap-SynodicMonth) > 0.7 {
			t.Fatalf("k=%d: Want gap near %f days, have %f", k, SynodicMonth, gap)
		}
	}
}

func ymd(y, m, d int) string {
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

func TestNewMoonDate(t *testing.T) {
	cases := []struct {
		k      int
		offset float64
		want   string
	}{
		{0, 0, "2000-01-06"},
		{0, 9, "2000-01-07"}, //03:14 JST, already past midnight locally
		{1, 0, "2000-02-05"},
		{298, 9, "2024-02-10"}, //lunar new year 2024 in Japan
		{-11, 9, "1999-02-16"},
	}
	for _, c := range cases {
		y, m, d := NewMoonDate(c.k, c.offset)
		if ymd(y, m, d) != c.want {
			t.Errorf("k=%d offset %+.0f: Want %s, have %s", c.k, c.offset, c.want, ymd(y, m, d))
		}
	}
}

func TestNewMoonMonotonic(t *testing.T) {
	prev := NewMoon(-1000)
	for k := -999; k <= 1000; k++ {
		next := NewMoon(k)
		if next <= prev {
			t.Fatalf("k=%d: Want JDE after %f, have %f", k, prev, next)
		}
		prev = next
	}
}
