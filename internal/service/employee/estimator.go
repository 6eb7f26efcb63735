package employee

import (
	"hash/fnv"

	"github.com/nexhr/hr-backend-go/internal/domain/employee"
)

// HashProjectEstimator derives stable pseudo project counts from the employee
// ID. It keeps the employee cards and dashboard totals populated until a real
// project tracker is integrated.
type HashProjectEstimator struct{}

func NewHashProjectEstimator() employee.ProjectEstimator {
	return &HashProjectEstimator{}
}

func (e *HashProjectEstimator) TotalProjects(employeeID string) int {
	return 3 + int(hashOf(employeeID)%8) // 3..10
}

func (e *HashProjectEstimator) CompletedProjects(employeeID string) int {
	total := e.TotalProjects(employeeID)
	completed := int(hashOf(employeeID+"/completed") % uint32(total+1))
	return completed
}

func hashOf(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
