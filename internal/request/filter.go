package request

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Scope string

const (
	// ScopeAll applies no ownership predicate.
	ScopeAll Scope = ""
	// ScopeOwn keeps only the given employee's requests ("my requests").
	ScopeOwn Scope = "own"
	// ScopeTeam excludes the given employee's requests ("team requests").
	ScopeTeam Scope = "team"
)

// Filter describes one view over the request collection. Zero values mean
// "no constraint". Every active predicate is evaluated independently and the
// results are AND-combined; the free-text search is one predicate among the
// others, never a replacement for them.
type Filter struct {
	Scope      Scope
	EmployeeID string

	Month    string // YYYY-MM bucket on CreatedAt
	Status   Status
	WorkSite string

	// Inclusive CreatedAt window, either bound optional (zero = open).
	CreatedFrom time.Time
	CreatedTo   time.Time

	// Case-insensitive substring match against id, type and work site.
	Search string
}

// Apply returns the requests passing every active predicate, preserving the
// snapshot's order. The input is never mutated.
func (f Filter) Apply(requests []LeaveRequest) []LeaveRequest {
	out := make([]LeaveRequest, 0, len(requests))
	for _, r := range requests {
		if f.matches(r) {
			out = append(out, r.clone())
		}
	}
	return out
}

func (f Filter) matches(r LeaveRequest) bool {
	scope := f.matchesScope(r)
	month := f.Month == "" || MonthBucket(r.CreatedAt) == f.Month
	status := f.Status == "" || r.Status == f.Status
	site := f.WorkSite == "" || r.WorkSite == f.WorkSite
	window := f.matchesWindow(r)
	search := f.matchesSearch(r)
	return scope && month && status && site && window && search
}

func (f Filter) matchesScope(r LeaveRequest) bool {
	switch f.Scope {
	case ScopeOwn:
		return r.EmployeeID == f.EmployeeID
	case ScopeTeam:
		return r.EmployeeID != f.EmployeeID
	}
	return true
}

func (f Filter) matchesWindow(r LeaveRequest) bool {
	created := midnightUTC(r.CreatedAt)
	if !f.CreatedFrom.IsZero() && created.Before(midnightUTC(f.CreatedFrom)) {
		return false
	}
	if !f.CreatedTo.IsZero() && created.After(midnightUTC(f.CreatedTo)) {
		return false
	}
	return true
}

func (f Filter) matchesSearch(r LeaveRequest) bool {
	if f.Search == "" {
		return true
	}
	q := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(r.ID), q) ||
		strings.Contains(strings.ToLower(string(r.Type)), q) ||
		strings.Contains(strings.ToLower(r.WorkSite), q)
}

type SortKey string

const (
	SortByID           SortKey = "id"
	SortByCreatedAt    SortKey = "created_at"
	SortByStartDate    SortKey = "start_date"
	SortByEmployeeName SortKey = "employee_name"
	SortByTotalDays    SortKey = "total_days"
	SortByType         SortKey = "type"
	SortByStatus       SortKey = "status"
	SortByWorkSite     SortKey = "work_site"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortByID, SortByCreatedAt, SortByStartDate, SortByEmployeeName,
		SortByTotalDays, SortByType, SortByStatus, SortByWorkSite:
		return true
	}
	return false
}

// SortBy orders requests in place by a single key. The sort is stable, so
// records with equal keys keep their relative order and descending is the
// exact reverse of ascending for the same input. Employee names compare with
// a Spanish collator; the fixture data carries accented names.
func SortBy(requests []LeaveRequest, key SortKey, descending bool) {
	if !key.Valid() {
		return
	}

	var less func(a, b LeaveRequest) bool
	switch key {
	case SortByID:
		less = func(a, b LeaveRequest) bool { return a.ID < b.ID }
	case SortByCreatedAt:
		less = func(a, b LeaveRequest) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortByStartDate:
		less = func(a, b LeaveRequest) bool { return a.StartDate.Before(b.StartDate) }
	case SortByEmployeeName:
		c := collate.New(language.Spanish)
		less = func(a, b LeaveRequest) bool { return c.CompareString(a.EmployeeName, b.EmployeeName) < 0 }
	case SortByTotalDays:
		less = func(a, b LeaveRequest) bool { return a.TotalDays < b.TotalDays }
	case SortByType:
		less = func(a, b LeaveRequest) bool { return a.Type < b.Type }
	case SortByStatus:
		less = func(a, b LeaveRequest) bool { return a.Status < b.Status }
	case SortByWorkSite:
		less = func(a, b LeaveRequest) bool { return a.WorkSite < b.WorkSite }
	}

	sort.SliceStable(requests, func(i, j int) bool {
		if descending {
			return less(requests[j], requests[i])
		}
		return less(requests[i], requests[j])
	})
}

// Paginate slices one 1-indexed page out of items. Out-of-range pages clamp
// to [1, totalPages]. It returns the page slice, the clamped page number and
// the total page count.
func Paginate(items []LeaveRequest, page, pageSize int) ([]LeaveRequest, int, int) {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := (len(items) + pageSize - 1) / pageSize

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []LeaveRequest{}, page, totalPages
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page, totalPages
}
