package dashboard

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Overview is everything the dashboard page shows.
type Overview struct {
	Range          DateRange    `yaml:"range"`
	Teams          []TeamGroup  `yaml:"teams"`
	Stats          []Stat       `yaml:"stats"`
	Revenue        []MonthTotal `yaml:"revenue"`
	SalesThisMonth int          `yaml:"sales_this_month"`
	RecentSales    []Sale       `yaml:"recent_sales"`
}

type DateRange struct {
	From time.Time `yaml:"from"`
	To   time.Time `yaml:"to"`
}

// Label formats the range the way the date picker shows it, e.g. "Jan 20, 2023 - Feb 09, 2023".
func (r DateRange) Label() string {
	const layout = "Jan 02, 2006"
	return r.From.Format(layout) + " - " + r.To.Format(layout)
}

type TeamGroup struct {
	Label string `yaml:"label"`
	Teams []Team `yaml:"teams"`
}

type Team struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Stat is a single headline card.
type Stat struct {
	Title  string `yaml:"title"`
	Value  string `yaml:"value"`
	Change string `yaml:"change"`
	Icon   string `yaml:"icon"`
}

type MonthTotal struct {
	Month string `yaml:"month"`
	Total int    `yaml:"total"`
}

type Sale struct {
	Name   string `yaml:"name"`
	Email  string `yaml:"email"`
	Amount string `yaml:"amount"`
}

// Initials returns the avatar fallback for the buyer.
func (s Sale) Initials() string {
	return Initials(s.Name)
}

// Initials returns up to two upper-case initials of name, e.g. "OM" for "Olivia Martin".
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, f := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(f)
		b.WriteString(strings.ToUpper(string(r)))
		if n++; n == 2 {
			break
		}
	}
	return b.String()
}

// MaxTotal is the largest total in points, used to scale the chart.
func MaxTotal(points []MonthTotal) int {
	m := 0
	for _, p := range points {
		m = max(m, p.Total)
	}
	return m
}
