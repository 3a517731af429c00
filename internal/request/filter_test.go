package request_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"leavedesk/internal/request"
)

func filterFixture() []request.LeaveRequest {
	mk := func(id, employeeID, name string, leaveType request.LeaveType, status request.Status, site, created string) request.LeaveRequest {
		createdAt, _ := time.Parse("2006-01-02", created)
		return request.LeaveRequest{
			ID:           id,
			EmployeeID:   employeeID,
			EmployeeName: name,
			Type:         leaveType,
			StartDate:    createdAt.AddDate(0, 0, 5),
			EndDate:      createdAt.AddDate(0, 0, 7),
			TotalDays:    3,
			WorkSite:     site,
			Status:       status,
			CreatedAt:    createdAt,
		}
	}

	return []request.LeaveRequest{
		mk("REQ104", "emp001", "Bryan López", request.TypeVacation, request.StatusApproved, "Oficina Principal", "2025-11-20"),
		mk("REQ103", "emp002", "Ana Torres", request.TypeVacation, request.StatusApproved, "Logística", "2025-11-05"),
		mk("REQ102", "emp003", "Carlos Gutiérrez", request.TypeSickLeave, request.StatusPending, "Operaciones", "2025-11-02"),
		mk("REQ101", "emp002", "Ana Torres", request.TypeCompensatory, request.StatusRejected, "Logística", "2025-10-28"),
		mk("REQ100", "emp004", "Álvaro Núñez", request.TypeVacation, request.StatusApproved, "RRHH", "2025-09-15"),
	}
}

func ids(requests []request.LeaveRequest) []string {
	out := make([]string, len(requests))
	for i, r := range requests {
		out[i] = r.ID
	}
	return out
}

func TestFilterApply(t *testing.T) {
	fixture := filterFixture()

	t.Run("no predicates passes everything through in order", func(t *testing.T) {
		got := request.Filter{}.Apply(fixture)
		assert.Equal(t, ids(fixture), ids(got))
	})

	t.Run("own scope keeps only the employee", func(t *testing.T) {
		got := request.Filter{Scope: request.ScopeOwn, EmployeeID: "emp002"}.Apply(fixture)
		assert.Equal(t, []string{"REQ103", "REQ101"}, ids(got))
	})

	t.Run("team scope excludes the employee", func(t *testing.T) {
		got := request.Filter{Scope: request.ScopeTeam, EmployeeID: "emp001"}.Apply(fixture)
		assert.Equal(t, []string{"REQ103", "REQ102", "REQ101", "REQ100"}, ids(got))
	})

	t.Run("month bucket matches the created month", func(t *testing.T) {
		got := request.Filter{Month: "2025-11"}.Apply(fixture)
		assert.Equal(t, []string{"REQ104", "REQ103", "REQ102"}, ids(got))
	})

	t.Run("date range bounds are inclusive and optional", func(t *testing.T) {
		from := time.Date(2025, time.October, 28, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC)

		got := request.Filter{CreatedFrom: from, CreatedTo: to}.Apply(fixture)
		assert.Equal(t, []string{"REQ103", "REQ102", "REQ101"}, ids(got))

		openEnd := request.Filter{CreatedFrom: from}.Apply(fixture)
		assert.Equal(t, []string{"REQ104", "REQ103", "REQ102", "REQ101"}, ids(openEnd))
	})

	t.Run("search is case-insensitive across id, type and work site", func(t *testing.T) {
		byID := request.Filter{Search: "req101"}.Apply(fixture)
		assert.Equal(t, []string{"REQ101"}, ids(byID))

		byType := request.Filter{Search: "sick"}.Apply(fixture)
		assert.Equal(t, []string{"REQ102"}, ids(byType))

		bySite := request.Filter{Search: "logística"}.Apply(fixture)
		assert.Equal(t, []string{"REQ103", "REQ101"}, ids(bySite))
	})

	t.Run("combined filters equal the intersection of single filters", func(t *testing.T) {
		byStatus := request.Filter{Status: request.StatusApproved}.Apply(fixture)
		byMonth := request.Filter{Month: "2025-11"}.Apply(fixture)
		combined := request.Filter{Status: request.StatusApproved, Month: "2025-11"}.Apply(fixture)

		intersection := make([]string, 0)
		monthIDs := make(map[string]bool)
		for _, r := range byMonth {
			monthIDs[r.ID] = true
		}
		for _, r := range byStatus {
			if monthIDs[r.ID] {
				intersection = append(intersection, r.ID)
			}
		}
		assert.Equal(t, intersection, ids(combined))
	})

	t.Run("search never bypasses the other active filters", func(t *testing.T) {
		// REQ100 matches the search but not the month; it must not pass.
		got := request.Filter{Month: "2025-11", Search: "vacation"}.Apply(fixture)
		assert.Equal(t, []string{"REQ104", "REQ103"}, ids(got))
	})
}

func TestSortBy(t *testing.T) {
	t.Run("descending is the reverse of ascending", func(t *testing.T) {
		asc := filterFixture()
		request.SortBy(asc, request.SortByID, false)
		assert.Equal(t, []string{"REQ100", "REQ101", "REQ102", "REQ103", "REQ104"}, ids(asc))

		desc := filterFixture()
		request.SortBy(desc, request.SortByID, true)
		assert.Equal(t, []string{"REQ104", "REQ103", "REQ102", "REQ101", "REQ100"}, ids(desc))
	})

	t.Run("stable on equal keys", func(t *testing.T) {
		items := filterFixture()
		request.SortBy(items, request.SortByWorkSite, false)
		// Both Logística rows keep their original relative order.
		assert.Equal(t, []string{"REQ103", "REQ101"}, []string{items[0].ID, items[1].ID})
	})

	t.Run("employee name uses locale-aware comparison", func(t *testing.T) {
		items := filterFixture()
		request.SortBy(items, request.SortByEmployeeName, false)
		// Á collates with A, not after Z.
		assert.Equal(t, "Álvaro Núñez", items[0].EmployeeName)
	})

	t.Run("unknown key leaves the order untouched", func(t *testing.T) {
		items := filterFixture()
		request.SortBy(items, request.SortKey("bogus"), false)
		assert.Equal(t, ids(filterFixture()), ids(items))
	})
}

func TestPaginate(t *testing.T) {
	fixture := filterFixture()

	t.Run("first page", func(t *testing.T) {
		page, current, total := request.Paginate(fixture, 1, 2)
		assert.Len(t, page, 2)
		assert.Equal(t, 1, current)
		assert.Equal(t, 3, total)
	})

	t.Run("last page is short", func(t *testing.T) {
		page, current, total := request.Paginate(fixture, 3, 2)
		assert.Len(t, page, 1)
		assert.Equal(t, 3, current)
		assert.Equal(t, 3, total)
	})

	t.Run("out of range clamps", func(t *testing.T) {
		page, current, _ := request.Paginate(fixture, 99, 2)
		assert.Len(t, page, 1)
		assert.Equal(t, 3, current)

		page, current, _ = request.Paginate(fixture, -4, 2)
		assert.Len(t, page, 2)
		assert.Equal(t, 1, current)
	})

	t.Run("empty input", func(t *testing.T) {
		page, current, total := request.Paginate(nil, 1, 5)
		assert.Empty(t, page)
		assert.Equal(t, 1, current)
		assert.Equal(t, 0, total)
	})
}
