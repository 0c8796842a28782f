package bench

import "cellbench/internal/model"

// AssignFunc chooses the chemistry tag for the i-th cell (1-based) during
// initialization.
type AssignFunc func(i int) string

// RandomAssign picks uniformly among the registry's chemistries, the bench
// default.
func RandomAssign(reg *model.Registry, src Source) AssignFunc {
	tags := reg.Tags()
	return func(int) string {
		return tags[src.Intn(len(tags))]
	}
}

// RoundRobinAssign cycles through the registry's chemistries in tag order.
func RoundRobinAssign(reg *model.Registry) AssignFunc {
	tags := reg.Tags()
	return func(i int) string {
		return tags[(i-1)%len(tags)]
	}
}

// FixedAssign assigns the same chemistry to every cell.
func FixedAssign(tag string) AssignFunc {
	return func(int) string { return tag }
}
