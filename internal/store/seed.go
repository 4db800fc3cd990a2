package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/EYOB-A19/Astu-compliant-system/internal/models"
	"github.com/EYOB-A19/Astu-compliant-system/internal/utils"
)

// DemoPassword is shared by the three seeded demo accounts.
const DemoPassword = "123456"

// Seed populates empty collections with the demo data set: four categories,
// one user per role and two tickets owned by the demo student. A collection
// that already has records is left alone, so calling Seed on every start is
// safe.
func (s *Store) Seed() error {
	if len(s.Categories()) == 0 {
		categories := []models.Category{
			{ID: uuid.NewString(), Name: "Dormitory Maintenance", Department: "Housing Office"},
			{ID: uuid.NewString(), Name: "Laboratory Equipment", Department: "Lab Management"},
			{ID: uuid.NewString(), Name: "Internet Connectivity", Department: "ICT Support"},
			{ID: uuid.NewString(), Name: "Classroom Facility Damage", Department: "Facility Office"},
		}
		if err := s.SaveCategories(categories); err != nil {
			return err
		}
	}

	if len(s.Users()) == 0 {
		hash, err := utils.HashPassword(DemoPassword)
		if err != nil {
			return err
		}
		users := []models.User{
			{ID: uuid.NewString(), Name: "Student Demo", Email: "student@astu.edu", Role: models.RoleStudent, Department: models.DefaultDepartment, PasswordHash: hash},
			{ID: uuid.NewString(), Name: "Staff Demo", Email: "staff@astu.edu", Role: models.RoleStaff, Department: "ICT Support", PasswordHash: hash},
			{ID: uuid.NewString(), Name: "Admin Demo", Email: "admin@astu.edu", Role: models.RoleAdmin, Department: models.DefaultDepartment, PasswordHash: hash},
		}
		if err := s.SaveUsers(users); err != nil {
			return err
		}
	}

	if len(s.Tickets()) == 0 {
		var student models.User
		for _, u := range s.Users() {
			if u.Role == models.RoleStudent {
				student = u
				break
			}
		}
		dorm := s.findCategory("Dormitory Maintenance", "Housing Office")
		internet := s.findCategory("Internet Connectivity", "ICT Support")

		now := time.Now()
		tickets := []models.Ticket{
			{
				ID:          "TKT-1001",
				Title:       "Dorm shower leakage",
				Category:    dorm.Name,
				Department:  dorm.Department,
				Location:    "Dorm Block B",
				Priority:    models.PriorityHigh,
				Description: "Continuous leak in shared shower area.",
				Status:      models.StatusInProgress,
				StudentID:   student.ID,
				StudentName: student.Name,
				Remarks: []models.Remark{
					{By: "Housing Office", Text: "Maintenance team assigned.", At: now},
				},
				CreatedAt: now,
				UpdatedAt: now,
			},
			{
				ID:          "TKT-1002",
				Title:       "Unstable Wi-Fi in library",
				Category:    internet.Name,
				Department:  internet.Department,
				Location:    "Main Library",
				Priority:    models.PriorityMedium,
				Description: "Connection drops every few minutes.",
				Status:      models.StatusOpen,
				StudentID:   student.ID,
				StudentName: student.Name,
				Remarks:     []models.Remark{},
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		}
		if err := s.SaveTickets(tickets); err != nil {
			return err
		}
	}

	return nil
}

// findCategory returns the seeded category by name, falling back to the
// given department when the categories collection was seeded differently.
func (s *Store) findCategory(name, fallbackDept string) models.Category {
	for _, c := range s.Categories() {
		if c.Name == name {
			return c
		}
	}
	return models.Category{Name: name, Department: fallbackDept}
}
