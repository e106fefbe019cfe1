package repository

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/LaryssaGabi/RotinaOdonto/internal/task/domain"
)

// firestoreTaskRepository implements TaskRepository on a Firestore collection.
type firestoreTaskRepository struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreTaskRepository creates a Firestore-backed TaskRepository reading
// and writing the given collection.
func NewFirestoreTaskRepository(client *firestore.Client, collection string) TaskRepository {
	return &firestoreTaskRepository{client: client, collection: collection}
}

func (r *firestoreTaskRepository) col() *firestore.CollectionRef {
	return r.client.Collection(r.collection)
}

func (r *firestoreTaskRepository) decode(doc *firestore.DocumentSnapshot) (*domain.Task, error) {
	var task domain.Task
	if err := doc.DataTo(&task); err != nil {
		return nil, fmt.Errorf("decode task %s: %w", doc.Ref.ID, err)
	}
	task.ID = doc.Ref.ID
	return &task, nil
}

func (r *firestoreTaskRepository) collect(ctx context.Context, q firestore.Query) ([]*domain.Task, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var tasks []*domain.Task
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		task, err := r.decode(doc)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *firestoreTaskRepository) ListByDay(ctx context.Context, day domain.DayOfWeek) ([]*domain.Task, error) {
	q := r.col().
		Where("day_of_week", "==", string(day)).
		OrderBy("order_position", firestore.Asc)
	return r.collect(ctx, q)
}

func (r *firestoreTaskRepository) ListAll(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := r.collect(ctx, r.col().Query)
	if err != nil {
		return nil, err
	}

	dayIndex := make(map[domain.DayOfWeek]int, len(domain.WeekDays))
	for i, d := range domain.WeekDays {
		dayIndex[d] = i
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].DayOfWeek != tasks[j].DayOfWeek {
			return dayIndex[tasks[i].DayOfWeek] < dayIndex[tasks[j].DayOfWeek]
		}
		return tasks[i].OrderPosition < tasks[j].OrderPosition
	})
	return tasks, nil
}

func (r *firestoreTaskRepository) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]*domain.Task, error) {
	q := r.col().
		Where("created_at", ">=", start).
		Where("created_at", "<", end).
		OrderBy("created_at", firestore.Desc)
	return r.collect(ctx, q)
}

func (r *firestoreTaskRepository) RecentCompleted(ctx context.Context, limit int) ([]*domain.Task, error) {
	q := r.col().
		Where("status", "==", string(domain.StatusDone)).
		OrderBy("completed_at", firestore.Desc).
		Limit(limit)
	return r.collect(ctx, q)
}

func (r *firestoreTaskRepository) FindByID(ctx context.Context, id string) (*domain.Task, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r.decode(doc)
}

func (r *firestoreTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	_, err := r.col().Doc(task.ID).Create(ctx, task)
	return err
}

func (r *firestoreTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	task.UpdatedAt = time.Now()
	_, err := r.col().Doc(task.ID).Set(ctx, task)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

func (r *firestoreTaskRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)
	return err
}

// UpdateOrderPositions commits all position writes inside one transaction so a
// failed reorder never persists a mixed old/new ordering.
func (r *firestoreTaskRepository) UpdateOrderPositions(ctx context.Context, positions map[string]int) error {
	now := time.Now()
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		for id, pos := range positions {
			err := tx.Update(r.col().Doc(id), []firestore.Update{
				{Path: "order_position", Value: pos},
				{Path: "updated_at", Value: now},
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *firestoreTaskRepository) ResetCompleted(ctx context.Context) (int, error) {
	tasks, err := r.collect(ctx, r.col().Where("status", "==", string(domain.StatusDone)))
	if err != nil {
		return 0, err
	}

	now := time.Now()
	reset := 0
	var firstErr error
	for _, task := range tasks {
		_, err := r.col().Doc(task.ID).Update(ctx, []firestore.Update{
			{Path: "status", Value: string(domain.StatusPending)},
			{Path: "completed_at", Value: nil},
			{Path: "updated_at", Value: now},
		})
		if err != nil {
			log.Printf("[TaskRepository] reset task %s: %v", task.ID, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		reset++
	}
	return reset, firstErr
}
