package analytics

import (
	"math"
	"time"

	"erp-dashboard/internal/models"
)

// ExpectedProgress is the share of the planned span elapsed at now, capped at
// 100. It is negative before the start date. A single-day span is expected
// complete once that day has passed. ok is false when either date is missing
// or unparseable, or when the end precedes the start.
func ExpectedProgress(p *models.Project, now time.Time) (expected float64, ok bool) {
	start, startOK := ParseCalendarDate(p.StartDate)
	end, endOK := ParseCalendarDate(p.EndDate)
	if !startOK || !endOK {
		return 0, false
	}

	span := end.Sub(start)
	if span < 0 {
		return 0, false
	}
	if span == 0 {
		if now.After(start) {
			return 100, true
		}
		return 0, true
	}

	elapsed := now.Sub(start)
	return math.Min(100, float64(elapsed)/float64(span)*100), true
}

// BehindSchedule returns the projects whose progress trails the expected
// progress by more than slackPercent points.
func BehindSchedule(projects []models.Project, now time.Time, slackPercent float64) []models.Project {
	var behind []models.Project
	for i := range projects {
		expected, ok := ExpectedProgress(&projects[i], now)
		if !ok {
			continue
		}
		if float64(projects[i].Progress) < expected-slackPercent {
			behind = append(behind, projects[i])
		}
	}
	return behind
}

// OverdueInvoices returns pending invoices whose due date is before now.
// Invoices already marked overdue are not included, and neither are those
// with a due date that cannot be parsed.
func OverdueInvoices(invoices []models.Invoice, now time.Time) []models.Invoice {
	var overdue []models.Invoice
	for i := range invoices {
		if !invoices[i].IsPending() {
			continue
		}
		due, ok := ParseCalendarDate(invoices[i].DueDate)
		if ok && due.Before(now) {
			overdue = append(overdue, invoices[i])
		}
	}
	return overdue
}
