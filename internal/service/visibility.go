package service

import (
	"sort"

	"github.com/EYOB-A19/Astu-compliant-system/internal/models"
)

// VisibleTickets filters the collection down to what the session's role may
// see: admins see everything, staff see their department, students see their
// own tickets. No session, or a role outside the closed set, sees nothing.
func VisibleTickets(all []models.Ticket, session *models.Session) []models.Ticket {
	if session == nil {
		return []models.Ticket{}
	}
	switch session.Role {
	case models.RoleAdmin:
		return all
	case models.RoleStaff:
		out := make([]models.Ticket, 0, len(all))
		for _, t := range all {
			if t.Department == session.Department {
				out = append(out, t)
			}
		}
		return out
	case models.RoleStudent:
		out := make([]models.Ticket, 0, len(all))
		for _, t := range all {
			if t.StudentID == session.UserID {
				out = append(out, t)
			}
		}
		return out
	}
	return []models.Ticket{}
}

// CanView reports whether the session may see a single ticket, using the
// same role dispatch as VisibleTickets.
func CanView(t models.Ticket, session *models.Session) bool {
	if session == nil {
		return false
	}
	switch session.Role {
	case models.RoleAdmin:
		return true
	case models.RoleStaff:
		return t.Department == session.Department
	case models.RoleStudent:
		return t.StudentID == session.UserID
	}
	return false
}

// StatusCounts summarizes a ticket set by workflow status. A status outside
// the fixed enumeration counts toward the total but no bucket.
type StatusCounts struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
	Closed     int `json:"closed"`
}

func CountByStatus(tickets []models.Ticket) StatusCounts {
	counts := StatusCounts{Total: len(tickets)}
	for _, t := range tickets {
		switch t.Status {
		case models.StatusOpen:
			counts.Open++
		case models.StatusInProgress:
			counts.InProgress++
		case models.StatusResolved:
			counts.Resolved++
		case models.StatusClosed:
			counts.Closed++
		}
	}
	return counts
}

// CategoryCount is one bar of the per-category distribution.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryDistribution counts tickets per category, in first-seen order, and
// returns the maximum count for proportional rendering.
func CategoryDistribution(tickets []models.Ticket) ([]CategoryCount, int) {
	index := make(map[string]int)
	entries := make([]CategoryCount, 0)
	for _, t := range tickets {
		i, ok := index[t.Category]
		if !ok {
			i = len(entries)
			index[t.Category] = i
			entries = append(entries, CategoryCount{Category: t.Category})
		}
		entries[i].Count++
	}
	max := 0
	for _, e := range entries {
		if e.Count > max {
			max = e.Count
		}
	}
	return entries, max
}

// Recent returns the n most recently updated tickets, newest first. The sort
// is stable, so ties keep their original relative order.
func Recent(tickets []models.Ticket, n int) []models.Ticket {
	out := make([]models.Ticket, len(tickets))
	copy(out, tickets)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
