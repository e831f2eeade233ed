package realtime

// EventKind names the task mutation that triggered a broadcast.
type EventKind string

const (
	EventNewTask    EventKind = "new_task"
	EventUpdateTask EventKind = "update_task"
	EventDeleteTask EventKind = "delete_task"
)

// TaskEvent is an ephemeral notification of one task mutation. It is never
// persisted; a subscriber that is not connected when it fires never sees it.
type TaskEvent struct {
	Kind EventKind
	Data map[string]any
}

// NewTask builds the event broadcast after a successful task creation.
func NewTask(task map[string]any) TaskEvent {
	return TaskEvent{Kind: EventNewTask, Data: map[string]any{"task": task}}
}

// UpdatedTask builds the event broadcast after a successful task update.
func UpdatedTask(task map[string]any) TaskEvent {
	return TaskEvent{Kind: EventUpdateTask, Data: map[string]any{"task": task}}
}

// DeletedTask builds the event broadcast after a successful task deletion.
func DeletedTask(id int64) TaskEvent {
	return TaskEvent{Kind: EventDeleteTask, Data: map[string]any{"task_id": id}}
}
