package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LaryssaGabi/RotinaOdonto/internal/task/domain"
)

func dayList(ids ...string) []*domain.Task {
	tasks := make([]*domain.Task, len(ids))
	for i, id := range ids {
		tasks[i] = &domain.Task{ID: id, DayOfWeek: domain.Monday, OrderPosition: i}
	}
	return tasks
}

func TestDragToFront(t *testing.T) {
	// A(0), B(1), C(2); dragging C before A commits [C, A, B].
	session := NewDragSession(dayList("A", "B", "C"))
	session.Start("C")
	session.Over("A")

	final := session.End()
	require.NotNil(t, final)
	assert.Equal(t, []string{"C", "A", "B"}, OrderedIDs(final))
}

func TestDragOverRepeats(t *testing.T) {
	// Over fires on every hover during a gesture; only the last order counts.
	session := NewDragSession(dayList("A", "B", "C", "D"))
	session.Start("A")
	session.Over("B")
	session.Over("C")
	session.Over("D")

	final := session.End()
	assert.Equal(t, []string{"B", "C", "D", "A"}, OrderedIDs(final))
}

func TestDragOntoItselfIsNoop(t *testing.T) {
	session := NewDragSession(dayList("A", "B", "C"))
	session.Start("B")
	session.Over("B")

	final := session.End()
	assert.Equal(t, []string{"A", "B", "C"}, OrderedIDs(final))
}

func TestOverWithoutStartIsNoop(t *testing.T) {
	session := NewDragSession(dayList("A", "B"))
	session.Over("A")

	assert.Nil(t, session.End())
	assert.Equal(t, []string{"A", "B"}, OrderedIDs(session.Tasks()))
}

func TestEndClearsDrag(t *testing.T) {
	session := NewDragSession(dayList("A", "B"))
	session.Start("B")
	session.Over("A")
	require.NotNil(t, session.End())

	// A second End without a new Start reports no gesture.
	assert.Nil(t, session.End())
}

func TestStartUnknownIDIsNoop(t *testing.T) {
	session := NewDragSession(dayList("A", "B"))
	session.Start("Z")
	session.Over("A")
	assert.Nil(t, session.End())
}
