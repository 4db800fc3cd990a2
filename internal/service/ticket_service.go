package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/EYOB-A19/Astu-compliant-system/internal/models"
	"github.com/EYOB-A19/Astu-compliant-system/internal/store"
)

// TicketService owns the ticket lifecycle: creation from complaint
// submissions and staff/admin status or remark updates. It also manages the
// category collection that drives department routing.
type TicketService struct {
	mu    sync.Mutex
	store *store.Store
	now   func() time.Time
	newID func() string
}

func NewTicketService(st *store.Store) *TicketService {
	return &TicketService{store: st, now: time.Now, newID: uuid.NewString}
}

var ticketIDPattern = regexp.MustCompile(`^TKT-(\d+)$`)

// NextTicketID derives the next sequential id from the maximum numeric
// suffix among the existing tickets. The sequence floor is 1000, so the
// first ticket of an empty collection is TKT-1001.
func NextTicketID(tickets []models.Ticket) string {
	max := 1000
	for _, t := range tickets {
		m := ticketIDPattern.FindStringSubmatch(t.ID)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("TKT-%d", max+1)
}

// ComplaintForm is a student complaint submission.
type ComplaintForm struct {
	Title       string
	Category    string
	Location    string
	Priority    string
	Description string
}

// Create files a new ticket for the session's student. The department is
// resolved from the chosen category; an unknown category name falls back to
// the default department rather than failing.
func (t *TicketService) Create(form ComplaintForm, session *models.Session) (*models.Ticket, error) {
	if session == nil {
		return nil, ErrForbidden
	}

	title := strings.TrimSpace(form.Title)
	category := strings.TrimSpace(form.Category)
	location := strings.TrimSpace(form.Location)
	priority := strings.TrimSpace(form.Priority)
	description := strings.TrimSpace(form.Description)
	if title == "" || category == "" || location == "" || priority == "" || description == "" {
		return nil, ErrIncompleteForm
	}

	department := models.DefaultDepartment
	for _, c := range t.store.Categories() {
		if c.Name == category {
			department = c.Department
			break
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	tickets := t.store.Tickets()
	now := t.now()
	ticket := models.Ticket{
		ID:          NextTicketID(tickets),
		Title:       title,
		Category:    category,
		Department:  department,
		Location:    location,
		Priority:    priority,
		Description: description,
		Status:      models.StatusOpen,
		StudentID:   session.UserID,
		StudentName: session.Name,
		Remarks:     []models.Remark{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	tickets = append(tickets, ticket)
	if err := t.store.SaveTickets(tickets); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Update applies a status draft and an optional remark to the identified
// ticket. An empty status draft keeps the current status; a non-empty remark
// is attributed to "Admin" for admin actors and to the actor's department
// label otherwise. The updated timestamp is always refreshed, even when
// neither field changed. Students cannot update tickets, and staff may only
// touch tickets routed to their own department.
func (t *TicketService) Update(id, statusDraft, remarkDraft string, actor *models.Session) (*models.Ticket, error) {
	if actor == nil {
		return nil, ErrForbidden
	}
	switch actor.Role {
	case models.RoleStaff, models.RoleAdmin:
	default:
		return nil, ErrForbidden
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	tickets := t.store.Tickets()
	idx := -1
	for i := range tickets {
		if tickets[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}
	if actor.Role == models.RoleStaff && tickets[idx].Department != actor.Department {
		return nil, ErrForbidden
	}

	ticket := tickets[idx]
	if status := strings.TrimSpace(statusDraft); status != "" {
		ticket.Status = status
	}
	now := t.now()
	if remark := strings.TrimSpace(remarkDraft); remark != "" {
		by := actor.Department
		if actor.Role == models.RoleAdmin {
			by = "Admin"
		}
		ticket.Remarks = append(ticket.Remarks, models.Remark{By: by, Text: remark, At: now})
	}
	ticket.UpdatedAt = now

	tickets[idx] = ticket
	if err := t.store.SaveTickets(tickets); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// AddCategory registers a new issue category owned by a department. Names
// are unique case-insensitively. Admin only.
func (t *TicketService) AddCategory(name, department string, actor *models.Session) (*models.Category, error) {
	if actor == nil || actor.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}

	name = strings.TrimSpace(name)
	department = strings.TrimSpace(department)
	if name == "" || !models.IsDepartment(department) {
		return nil, ErrMissingField
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	categories := t.store.Categories()
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return nil, ErrCategoryExists
		}
	}

	category := models.Category{ID: t.newID(), Name: name, Department: department}
	categories = append(categories, category)
	if err := t.store.SaveCategories(categories); err != nil {
		return nil, err
	}
	return &category, nil
}
