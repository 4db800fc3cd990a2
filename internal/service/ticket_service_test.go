package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EYOB-A19/Astu-compliant-system/internal/models"
	"github.com/EYOB-A19/Astu-compliant-system/internal/store"
)

func TestNextTicketID(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{"empty collection", nil, "TKT-1001"},
		{"continues the sequence", []string{"TKT-1001", "TKT-1002"}, "TKT-1003"},
		{"gaps do not matter", []string{"TKT-1001", "TKT-2500"}, "TKT-2501"},
		{"non numeric ids ignored", []string{"legacy-7", "TKT-abc"}, "TKT-1001"},
		{"mixed", []string{"legacy-7", "TKT-1010"}, "TKT-1011"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tickets := make([]models.Ticket, len(tt.ids))
			for i, id := range tt.ids {
				tickets[i] = models.Ticket{ID: id}
			}
			assert.Equal(t, tt.want, NextTicketID(tickets))
		})
	}
}

func newTicketServiceAt(t *testing.T, start time.Time) (*TicketService, *store.Store, *time.Time) {
	t.Helper()
	st := newTestStore(t)
	svc := NewTicketService(st)
	current := start
	svc.now = func() time.Time { return current }
	return svc, st, &current
}

func validForm() ComplaintForm {
	return ComplaintForm{
		Title:       "Projector not working",
		Category:    "Classroom Facility Damage",
		Location:    "Block 402, Room 12",
		Priority:    models.PriorityMedium,
		Description: "The projector does not power on.",
	}
}

func TestCreateTicket(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, st, _ := newTicketServiceAt(t, start)
	require.NoError(t, st.SaveCategories([]models.Category{
		{ID: "c1", Name: "Classroom Facility Damage", Department: "Facility Office"},
	}))

	ticket, err := svc.Create(validForm(), studentSession())
	require.NoError(t, err)

	assert.Equal(t, "TKT-1001", ticket.ID)
	assert.Equal(t, models.StatusOpen, ticket.Status)
	assert.Empty(t, ticket.Remarks)
	assert.Equal(t, "Facility Office", ticket.Department)
	assert.Equal(t, "stu-1", ticket.StudentID)
	assert.Equal(t, "Abel Tesfaye", ticket.StudentName)
	assert.True(t, ticket.CreatedAt.Equal(start))
	assert.True(t, ticket.UpdatedAt.Equal(start))

	stored := st.Tickets()
	require.Len(t, stored, 1)
	assert.Equal(t, ticket.ID, stored[0].ID)
}

func TestCreateTicketUnknownCategoryFallsBackToGeneral(t *testing.T) {
	svc, _, _ := newTicketServiceAt(t, time.Now())

	form := validForm()
	form.Category = "Cafeteria Food"
	ticket, err := svc.Create(form, studentSession())
	require.NoError(t, err)
	assert.Equal(t, models.DefaultDepartment, ticket.Department)
}

func TestCreateTicketIncompleteForm(t *testing.T) {
	svc, st, _ := newTicketServiceAt(t, time.Now())

	fields := []func(*ComplaintForm){
		func(f *ComplaintForm) { f.Title = "   " },
		func(f *ComplaintForm) { f.Category = "" },
		func(f *ComplaintForm) { f.Location = "" },
		func(f *ComplaintForm) { f.Priority = "\t" },
		func(f *ComplaintForm) { f.Description = "" },
	}
	for _, mutate := range fields {
		form := validForm()
		mutate(&form)
		_, err := svc.Create(form, studentSession())
		assert.ErrorIs(t, err, ErrIncompleteForm)
	}
	assert.Empty(t, st.Tickets())
}

func TestCreateTicketSequence(t *testing.T) {
	svc, st, _ := newTicketServiceAt(t, time.Now())
	require.NoError(t, st.SaveTickets([]models.Ticket{
		{ID: "TKT-1001"}, {ID: "TKT-1002"},
	}))

	ticket, err := svc.Create(validForm(), studentSession())
	require.NoError(t, err)
	assert.Equal(t, "TKT-1003", ticket.ID)
}

func seedOneTicket(t *testing.T, st *store.Store, department string) models.Ticket {
	t.Helper()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	ticket := models.Ticket{
		ID:          "TKT-1001",
		Title:       "Unstable Wi-Fi in library",
		Category:    "Internet Connectivity",
		Department:  department,
		Location:    "Main Library",
		Priority:    models.PriorityMedium,
		Description: "Connection drops every few minutes.",
		Status:      models.StatusOpen,
		StudentID:   "stu-1",
		StudentName: "Abel Tesfaye",
		Remarks:     []models.Remark{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, st.SaveTickets([]models.Ticket{ticket}))
	return ticket
}

func TestUpdateTicketAuthorization(t *testing.T) {
	svc, st, _ := newTicketServiceAt(t, time.Now())
	seedOneTicket(t, st, "ICT Support")

	_, err := svc.Update("TKT-1001", models.StatusResolved, "", studentSession())
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update("TKT-1001", models.StatusResolved, "", nil)
	assert.ErrorIs(t, err, ErrForbidden)

	// Staff from another department cannot touch the ticket.
	_, err = svc.Update("TKT-1001", models.StatusResolved, "", staffSession("Housing Office"))
	assert.ErrorIs(t, err, ErrForbidden)

	// Nothing changed.
	assert.Equal(t, models.StatusOpen, st.Tickets()[0].Status)
}

func TestUpdateTicketNotFound(t *testing.T) {
	svc, _, _ := newTicketServiceAt(t, time.Now())
	_, err := svc.Update("TKT-9999", models.StatusResolved, "", adminSession())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTicketStatusAndRemark(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, st, current := newTicketServiceAt(t, start)
	seedOneTicket(t, st, "ICT Support")

	*current = start.Add(time.Hour)
	updated, err := svc.Update("TKT-1001", models.StatusInProgress, "Technician dispatched.", staffSession("ICT Support"))
	require.NoError(t, err)

	assert.Equal(t, models.StatusInProgress, updated.Status)
	require.Len(t, updated.Remarks, 1)
	assert.Equal(t, "ICT Support", updated.Remarks[0].By)
	assert.Equal(t, "Technician dispatched.", updated.Remarks[0].Text)
	assert.True(t, updated.UpdatedAt.Equal(start.Add(time.Hour)))
	assert.True(t, updated.CreatedAt.Equal(start))
}

func TestUpdateTicketAdminRemarkAttribution(t *testing.T) {
	svc, st, _ := newTicketServiceAt(t, time.Now())
	seedOneTicket(t, st, "ICT Support")

	updated, err := svc.Update("TKT-1001", "", "Escalated to the vendor.", adminSession())
	require.NoError(t, err)
	require.Len(t, updated.Remarks, 1)
	assert.Equal(t, "Admin", updated.Remarks[0].By)
}

func TestUpdateTicketEmptyStatusKeepsCurrent(t *testing.T) {
	svc, st, _ := newTicketServiceAt(t, time.Now())
	seedOneTicket(t, st, "ICT Support")

	updated, err := svc.Update("TKT-1001", "  ", "", adminSession())
	require.NoError(t, err)
	assert.Equal(t, models.StatusOpen, updated.Status)
	assert.Empty(t, updated.Remarks)
}

func TestUpdateTicketRemarkOnlyAdvancesUpdatedAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, st, current := newTicketServiceAt(t, start)
	before := seedOneTicket(t, st, "ICT Support")

	*current = start.Add(30 * time.Minute)
	updated, err := svc.Update("TKT-1001", "", "Checked the access point.", staffSession("ICT Support"))
	require.NoError(t, err)
	assert.False(t, updated.UpdatedAt.Before(before.UpdatedAt))
	assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
}

func TestUpdateTicketClosedCanReopen(t *testing.T) {
	svc, st, _ := newTicketServiceAt(t, time.Now())
	seedOneTicket(t, st, "ICT Support")

	_, err := svc.Update("TKT-1001", models.StatusClosed, "", adminSession())
	require.NoError(t, err)
	updated, err := svc.Update("TKT-1001", models.StatusOpen, "", adminSession())
	require.NoError(t, err)
	assert.Equal(t, models.StatusOpen, updated.Status)
}

func TestAddCategory(t *testing.T) {
	svc, st, _ := newTicketServiceAt(t, time.Now())

	_, err := svc.AddCategory("Cafeteria Hygiene", "General", studentSession())
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.AddCategory("  ", "General", adminSession())
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = svc.AddCategory("Cafeteria Hygiene", "Not A Department", adminSession())
	assert.ErrorIs(t, err, ErrMissingField)

	category, err := svc.AddCategory("Cafeteria Hygiene", "Facility Office", adminSession())
	require.NoError(t, err)
	assert.NotEmpty(t, category.ID)

	// Duplicate detection is case-insensitive.
	_, err = svc.AddCategory("cafeteria HYGIENE", "General", adminSession())
	assert.ErrorIs(t, err, ErrCategoryExists)
	assert.Len(t, st.Categories(), 1)
}
