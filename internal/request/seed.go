package request

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// DemoEmployeeID is the employee the demo session runs as; the seeded
// history below belongs to them, everything else belongs to the "team".
const (
	DemoEmployeeID   = "emp001"
	DemoEmployeeName = "Bryan López"
)

// seedAnchor pins the generated timeline so the same seed always produces
// the same records, independent of the wall clock.
var seedAnchor = time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC)

var (
	seedNames = []string{
		"María Fernández", "Carlos Gutiérrez", "Lucía Ramírez", "Jorge Peña",
		"Ana Sofía Torres", "Diego Álvarez", "Valentina Rojas", "Andrés Castillo",
		"Camila Herrera", "Sebastián Morales", "Paula Jiménez", "Ricardo Salazar",
	}
	seedWorkSites = []string{
		"Oficina Principal", "Sucursal A", "Sucursal B", "Remoto",
		"Logística", "Operaciones", "RRHH",
	}
	seedTypes = []LeaveType{
		TypeVacation, TypeVacation, TypeSickLeave, TypeCompensatory, TypePersonalLeave,
	}
)

// Seeder produces the deterministic demo fixture: the demo employee's fixed
// history plus a batch of other employees' requests in a separate numbering
// band. All randomness flows from the explicit seed.
type Seeder struct {
	rng        *rand.Rand
	teamSize   int
	anchorDate time.Time
}

func NewSeeder(seed int64) *Seeder {
	return &Seeder{
		rng:        rand.New(rand.NewSource(seed)),
		teamSize:   14,
		anchorDate: seedAnchor,
	}
}

// Generate returns the full seed collection, most recent first.
func (s *Seeder) Generate() []LeaveRequest {
	out := s.ownRequests()
	out = append(out, s.teamRequests()...)
	return out
}

// ownRequests is the demo employee's fixed history, spanning two years of
// mixed types and every terminal state.
func (s *Seeder) ownRequests() []LeaveRequest {
	rejected := "Cobertura insuficiente en las fechas solicitadas"
	reviewedAt := date(2025, time.September, 3)

	return []LeaveRequest{
		s.record("REQ001", DemoEmployeeID, DemoEmployeeName, TypeVacation,
			date(2025, time.December, 1), date(2025, time.December, 5),
			"Oficina Principal", StatusPending, date(2025, time.November, 15), nil, nil, false),
		s.record("REQ002", DemoEmployeeID, DemoEmployeeName, TypeSickLeave,
			date(2025, time.October, 25), date(2025, time.October, 26),
			"Remoto", StatusApproved, date(2025, time.October, 20), nil, nil, true),
		s.record("REQ003", DemoEmployeeID, DemoEmployeeName, TypeVacation,
			date(2025, time.September, 10), date(2025, time.September, 12),
			"Sucursal A", StatusRejected, date(2025, time.September, 1), &rejected, &reviewedAt, false),
		s.record("REQ004", DemoEmployeeID, DemoEmployeeName, TypeCompensatory,
			date(2025, time.August, 10), date(2025, time.August, 10),
			"Oficina Principal", StatusApproved, date(2025, time.August, 5), nil, nil, false),
		s.record("REQ005", DemoEmployeeID, DemoEmployeeName, TypeVacation,
			date(2024, time.December, 23), date(2024, time.December, 27),
			"Oficina Principal", StatusApproved, date(2024, time.November, 28), nil, nil, false),
	}
}

// teamRequests fills the REQ101+ band with other employees' records. The
// status distribution is skewed toward PENDING so the manager view has work
// to review.
func (s *Seeder) teamRequests() []LeaveRequest {
	out := make([]LeaveRequest, 0, s.teamSize)
	for i := 0; i < s.teamSize; i++ {
		id := fmt.Sprintf("REQ%03d", 101+i)
		name := seedNames[s.rng.Intn(len(seedNames))]
		employeeID := fmt.Sprintf("emp%03d", 2+s.rng.Intn(40))
		site := seedWorkSites[s.rng.Intn(len(seedWorkSites))]
		leaveType := seedTypes[s.rng.Intn(len(seedTypes))]

		created := s.anchorDate.AddDate(0, 0, -s.rng.Intn(120))
		start := created.AddDate(0, 0, 3+s.rng.Intn(20))
		end := start.AddDate(0, 0, s.rng.Intn(5))

		status := StatusPending
		var notes *string
		var reviewedAt *time.Time
		switch roll := s.rng.Float64(); {
		case roll < 0.60:
			// pending
		case roll < 0.85:
			status = StatusApproved
		default:
			status = StatusRejected
			v := "No cumple con los requisitos de cobertura del área"
			t := created.AddDate(0, 0, 2)
			notes = &v
			reviewedAt = &t
		}

		out = append(out, s.record(id, employeeID, name, leaveType,
			start, end, site, status, created, notes, reviewedAt, s.rng.Float64() < 0.4))
	}
	return out
}

func (s *Seeder) record(id, employeeID, employeeName string, leaveType LeaveType,
	start, end time.Time, site string, status Status, created time.Time,
	notes *string, reviewedAt *time.Time, evidence bool) LeaveRequest {

	return LeaveRequest{
		ID:           id,
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Type:         leaveType,
		StartDate:    start,
		EndDate:      end,
		TotalDays:    InclusiveDays(start, end),
		WorkSite:     site,
		Status:       status,
		CreatedAt:    created,
		ManagerNotes: notes,
		ReviewedAt:   reviewedAt,
		Evidence:     evidence,
		// Derived from the id so the fixture stays byte-for-byte reproducible.
		Version: uuid.NewSHA1(uuid.NameSpaceOID, []byte(id)).String(),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
