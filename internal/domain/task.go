package domain

// Task states as stored by the relational schema.
const (
	TaskStatePending    = "pendiente"
	TaskStateInProgress = "en_proceso"
	TaskStateDone       = "completada"
)

func ValidTaskState(s string) bool {
	switch s {
	case TaskStatePending, TaskStateInProgress, TaskStateDone:
		return true
	}
	return false
}
