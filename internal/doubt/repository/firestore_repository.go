package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/LaryssaGabi/RotinaOdonto/internal/doubt/domain"
)

type firestoreDoubtRepository struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreDoubtRepository creates a Firestore-backed DoubtRepository.
func NewFirestoreDoubtRepository(client *firestore.Client, collection string) DoubtRepository {
	return &firestoreDoubtRepository{client: client, collection: collection}
}

func (r *firestoreDoubtRepository) col() *firestore.CollectionRef {
	return r.client.Collection(r.collection)
}

func (r *firestoreDoubtRepository) decode(doc *firestore.DocumentSnapshot) (*domain.Doubt, error) {
	var doubt domain.Doubt
	if err := doc.DataTo(&doubt); err != nil {
		return nil, fmt.Errorf("decode doubt %s: %w", doc.Ref.ID, err)
	}
	doubt.ID = doc.Ref.ID
	if doubt.Images == nil {
		doubt.Images = []string{}
	}
	return &doubt, nil
}

func (r *firestoreDoubtRepository) ListAll(ctx context.Context) ([]*domain.Doubt, error) {
	iter := r.col().OrderBy("created_at", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var doubts []*domain.Doubt
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		doubt, err := r.decode(doc)
		if err != nil {
			return nil, err
		}
		doubts = append(doubts, doubt)
	}
	return doubts, nil
}

func (r *firestoreDoubtRepository) FindByID(ctx context.Context, id string) (*domain.Doubt, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r.decode(doc)
}

func (r *firestoreDoubtRepository) Create(ctx context.Context, doubt *domain.Doubt) error {
	if doubt.ID == "" {
		doubt.ID = uuid.New().String()
	}
	if doubt.Images == nil {
		doubt.Images = []string{}
	}
	now := time.Now()
	doubt.CreatedAt = now
	doubt.UpdatedAt = now
	_, err := r.col().Doc(doubt.ID).Create(ctx, doubt)
	return err
}

func (r *firestoreDoubtRepository) Update(ctx context.Context, doubt *domain.Doubt) error {
	if doubt.Images == nil {
		doubt.Images = []string{}
	}
	doubt.UpdatedAt = time.Now()
	_, err := r.col().Doc(doubt.ID).Set(ctx, doubt)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

func (r *firestoreDoubtRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col().Doc(id).Delete(ctx)
	return err
}
