package usecase

import "github.com/LaryssaGabi/RotinaOdonto/internal/task/domain"

// DragSession tracks one drag-and-drop gesture over a weekday's task list.
// Over may fire many times during a gesture; each call splices the dragged
// task to the hovered position so the caller can render the reorder live.
// End returns the final order for an atomic commit via ReorderTasks.
type DragSession struct {
	tasks   []*domain.Task
	dragged *domain.Task
}

// NewDragSession starts from the current visual order of a day's tasks.
func NewDragSession(tasks []*domain.Task) *DragSession {
	list := make([]*domain.Task, len(tasks))
	copy(list, tasks)
	return &DragSession{tasks: list}
}

// Tasks returns the current in-memory order.
func (s *DragSession) Tasks() []*domain.Task {
	out := make([]*domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *DragSession) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Start remembers the task being dragged. Unknown IDs are ignored.
func (s *DragSession) Start(id string) {
	if i := s.indexOf(id); i >= 0 {
		s.dragged = s.tasks[i]
	}
}

// Over moves the dragged task to the target task's current position.
// Dragging over itself, or with no active drag, is a no-op.
func (s *DragSession) Over(targetID string) {
	if s.dragged == nil || s.dragged.ID == targetID {
		return
	}
	from := s.indexOf(s.dragged.ID)
	to := s.indexOf(targetID)
	if from < 0 || to < 0 || from == to {
		return
	}

	task := s.tasks[from]
	s.tasks = append(s.tasks[:from], s.tasks[from+1:]...)
	s.tasks = append(s.tasks[:to], append([]*domain.Task{task}, s.tasks[to:]...)...)
}

// End finishes the gesture and returns the final order, or nil when no drag
// was active.
func (s *DragSession) End() []*domain.Task {
	if s.dragged == nil {
		return nil
	}
	s.dragged = nil
	return s.Tasks()
}

// OrderedIDs is a convenience for building the ReorderTasks payload.
func OrderedIDs(tasks []*domain.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}
