// Package hrtest provides an in-memory employee/attendance store with the
// same integrity rules as the Postgres schema, for handler tests.
package hrtest

import (
	"context"
	"sort"
	"sync"
	"time"

	attendanceModel "hrms_backend/internals/features/hr/attendance/model"
	attendanceRepository "hrms_backend/internals/features/hr/attendance/repository"
	employeeModel "hrms_backend/internals/features/hr/employees/model"
	employeeRepository "hrms_backend/internals/features/hr/employees/repository"
	helper "hrms_backend/internals/helpers"
)

type MemoryStore struct {
	mu sync.Mutex

	employees  []employeeModel.EmployeeModel
	attendance []attendanceModel.AttendanceModel
	nextEmpID  int64
	nextAttID  int64

	nextErr map[string]error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextErr: make(map[string]error)}
}

// SetErr makes the next call of op fail with err.
func (s *MemoryStore) SetErr(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextErr[op] = err
}

func (s *MemoryStore) takeErr(op string) error {
	if err, ok := s.nextErr[op]; ok {
		delete(s.nextErr, op)
		return err
	}
	return nil
}

// AttendanceCount counts rows for employeeID regardless of whether the
// employee still exists.
func (s *MemoryStore) AttendanceCount(employeeID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, a := range s.attendance {
		if a.EmployeeID == employeeID {
			n++
		}
	}
	return n
}

// ===== employees =====

func (s *MemoryStore) List(_ context.Context) ([]employeeModel.EmployeeModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr("List"); err != nil {
		return nil, err
	}
	out := append([]employeeModel.EmployeeModel(nil), s.employees...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *MemoryStore) ExistsByEmployeeID(_ context.Context, employeeID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr("ExistsByEmployeeID"); err != nil {
		return false, err
	}
	return s.indexOfEmployee(employeeID) >= 0, nil
}

func (s *MemoryStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr("ExistsByEmail"); err != nil {
		return false, err
	}
	for _, e := range s.employees {
		if e.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) Create(_ context.Context, m *employeeModel.EmployeeModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr("Create"); err != nil {
		return err
	}
	for _, e := range s.employees {
		if e.EmployeeID == m.EmployeeID {
			return helper.DuplicateKey("employee_id", employeeRepository.MsgEmployeeIDExists)
		}
		if e.Email == m.Email {
			return helper.DuplicateKey("email", employeeRepository.MsgEmployeeEmailUsed)
		}
	}
	s.nextEmpID++
	m.ID = s.nextEmpID
	s.employees = append(s.employees, *m)
	return nil
}

// Delete cascades under the same lock, like the transactional repository.
func (s *MemoryStore) Delete(_ context.Context, employeeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr("Delete"); err != nil {
		return err
	}
	i := s.indexOfEmployee(employeeID)
	if i < 0 {
		return helper.NotFound(employeeRepository.MsgEmployeeNotFound)
	}
	s.employees = append(s.employees[:i], s.employees[i+1:]...)

	kept := s.attendance[:0]
	for _, a := range s.attendance {
		if a.EmployeeID != employeeID {
			kept = append(kept, a)
		}
	}
	s.attendance = kept
	return nil
}

func (s *MemoryStore) indexOfEmployee(employeeID string) int {
	for i, e := range s.employees {
		if e.EmployeeID == employeeID {
			return i
		}
	}
	return -1
}

// ===== attendance =====

// AttendanceStore exposes the attendance half under the method names the
// attendance controller expects (Create collides with the employee side).
func (s *MemoryStore) AttendanceStore() *AttendanceView { return &AttendanceView{s: s} }

type AttendanceView struct {
	s *MemoryStore
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (v *AttendanceView) ExistsForDate(_ context.Context, employeeID string, date time.Time) (bool, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr("ExistsForDate"); err != nil {
		return false, err
	}
	for _, a := range s.attendance {
		if a.EmployeeID == employeeID && sameDay(time.Time(a.Date), date) {
			return true, nil
		}
	}
	return false, nil
}

func (v *AttendanceView) Create(_ context.Context, m *attendanceModel.AttendanceModel) error {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr("CreateAttendance"); err != nil {
		return err
	}
	if s.indexOfEmployee(m.EmployeeID) < 0 {
		return helper.NotFound(attendanceRepository.MsgEmployeeNotFound)
	}
	if !attendanceModel.IsValidStatus(m.Status) {
		return helper.InvalidValue("status", attendanceRepository.MsgInvalidStatus)
	}
	for _, a := range s.attendance {
		if a.EmployeeID == m.EmployeeID && sameDay(time.Time(a.Date), time.Time(m.Date)) {
			return helper.DuplicateKey("date", attendanceRepository.MsgAlreadyMarked)
		}
	}
	s.nextAttID++
	m.ID = s.nextAttID
	s.attendance = append(s.attendance, *m)
	return nil
}

func (v *AttendanceView) ListByEmployee(_ context.Context, employeeID string, f attendanceModel.AttendanceFilter) ([]attendanceModel.AttendanceModel, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeErr("ListByEmployee"); err != nil {
		return nil, err
	}
	out := []attendanceModel.AttendanceModel{}
	for _, a := range s.attendance {
		d := time.Time(a.Date)
		if a.EmployeeID != employeeID {
			continue
		}
		if f.From != nil && d.Before(*f.From) {
			continue
		}
		if f.To != nil && d.After(*f.To) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return time.Time(out[i].Date).After(time.Time(out[j].Date))
	})
	return out, nil
}

func (v *AttendanceView) Summary(_ context.Context, employeeID string) (attendanceModel.AttendanceSummary, error) {
	s := v.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum attendanceModel.AttendanceSummary
	if err := s.takeErr("Summary"); err != nil {
		return sum, err
	}
	for _, a := range s.attendance {
		if a.EmployeeID != employeeID {
			continue
		}
		sum.TotalRecords++
		switch a.Status {
		case attendanceModel.StatusPresent:
			sum.PresentDays++
		case attendanceModel.StatusAbsent:
			sum.AbsentDays++
		}
	}
	return sum, nil
}
