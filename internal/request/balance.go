package request

// Allotment is the base entitlement an employee starts each cycle with.
// The figures are configuration, not constants: earlier revisions of the
// policy granted 12/3, the current one 15/4.
type Allotment struct {
	VacationDays     int
	CompensatoryDays int
}

// Balance is the remaining entitlement per deducting leave type. It is
// derived on demand from the request history and never stored.
type Balance struct {
	VacationDays     int `json:"vacation_days"`
	CompensatoryDays int `json:"compensatory_days"`
}

// ComputeBalance derives the employee's current balance from the full
// request snapshot. Both PENDING and APPROVED requests reserve days, so a
// request holds its span from the moment it is filed until it is rejected.
// Balances clamp at zero even when history would imply an overdraft.
func ComputeBalance(employeeID string, requests []LeaveRequest, base Allotment) Balance {
	vacation := base.VacationDays
	compensatory := base.CompensatoryDays

	for _, r := range requests {
		if r.EmployeeID != employeeID {
			continue
		}
		if r.Status != StatusPending && r.Status != StatusApproved {
			continue
		}
		switch r.Type {
		case TypeVacation:
			vacation -= r.TotalDays
		case TypeCompensatory:
			compensatory -= r.TotalDays
		}
	}

	if vacation < 0 {
		vacation = 0
	}
	if compensatory < 0 {
		compensatory = 0
	}
	return Balance{VacationDays: vacation, CompensatoryDays: compensatory}
}

// Available returns the balance field matching the given leave type, or -1
// for types that never deduct.
func (b Balance) Available(t LeaveType) int {
	switch t {
	case TypeVacation:
		return b.VacationDays
	case TypeCompensatory:
		return b.CompensatoryDays
	}
	return -1
}
