package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task statuses the reports look at. Status is an open string: any other
// value is stored and returned verbatim.
const (
	TaskPending   = "Pending"
	TaskOngoing   = "Ongoing"
	TaskCompleted = "Completed"
)

// DueDateLayout is the calendar-date format tasks store their due date in.
const DueDateLayout = "2006-01-02"

// Task is a work item owned by exactly one project.
type Task struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProjectID   primitive.ObjectID `json:"project_id" bson:"project_id"`
	AssignedTo  primitive.ObjectID `json:"assigned_to" bson:"assigned_to"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	DueDate     string             `json:"due_date" bson:"due_date"`
	Status      string             `json:"status" bson:"status"`
	Progress    *float64           `json:"progress,omitempty" bson:"progress,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

// IsOverdue reports whether the task is unfinished and its due date lies
// strictly before now. An empty due date is never overdue; a non-empty one
// that does not parse is an error.
func (t *Task) IsOverdue(now time.Time) (bool, error) {
	if t.Status == TaskCompleted || t.DueDate == "" {
		return false, nil
	}
	due, err := time.ParseInLocation(DueDateLayout, t.DueDate, time.UTC)
	if err != nil {
		return false, fmt.Errorf("%w: task %s has due date %q", ErrMalformedDueDate, t.ID.Hex(), t.DueDate)
	}
	return due.Before(now), nil
}

// TaskPatch lists the fields a partial update may touch. Nil means "leave as is".
type TaskPatch struct {
	Name        *string
	Description *string
	DueDate     *string
	Status      *string
	AssignedTo  *primitive.ObjectID
}

// Empty reports whether the patch would change nothing.
func (p TaskPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.DueDate == nil && p.Status == nil && p.AssignedTo == nil
}
