package dateutil

import (
	"time"
)

// CalendarYear returns the calendar year in which a person reaches age,
// given the year they were baseAge.
func CalendarYear(baseYear, baseAge, age int) int {
	return baseYear + (age - baseAge)
}

// AgeInYear is the inverse of CalendarYear.
func AgeInYear(baseYear, baseAge, year int) int {
	return baseAge + (year - baseYear)
}

// YearsFrom returns how many whole years separate age from baseAge.
// Negative when age precedes baseAge.
func YearsFrom(baseAge, age int) int {
	return age - baseAge
}

// SpanLength counts the integer ages in [from, to]; zero for an inverted span.
func SpanLength(from, to int) int {
	if to < from {
		return 0
	}
	return to - from + 1
}

// Ages lists every integer age in [from, to] in ascending order.
func Ages(from, to int) []int {
	n := SpanLength(from, to)
	ages := make([]int, 0, n)
	for age := from; age <= to; age++ {
		ages = append(ages, age)
	}
	return ages
}

// InWindow reports whether age lies in the closed window [start, end].
// An inverted window contains nothing.
func InWindow(age, start, end int) bool {
	return age >= start && age <= end
}

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// CurrentYear returns the calendar year of now in UTC.
func CurrentYear(now time.Time) int {
	return now.UTC().Year()
}
