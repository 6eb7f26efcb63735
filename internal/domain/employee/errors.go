package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrManagerNotFound      = errors.New("manager not found")
	ErrManagerCycle         = errors.New("manager assignment would create a reporting cycle")
	ErrHasAttendanceRecords = errors.New("cannot delete employee with existing attendance records")
)
