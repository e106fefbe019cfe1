package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/LaryssaGabi/RotinaOdonto/internal/doubt/domain"
	"github.com/LaryssaGabi/RotinaOdonto/internal/doubt/repository"
)

var (
	ErrEmptyName    = errors.New("name must not be empty")
	ErrEmptyContent = errors.New("content must not be empty")
)

// DoubtUsecase defines the interface for knowledge-base business logic
type DoubtUsecase interface {
	CreateDoubt(ctx context.Context, req DoubtRequest) (*domain.Doubt, error)
	GetDoubtByID(ctx context.Context, id string) (*domain.Doubt, error)
	ListDoubts(ctx context.Context) ([]*domain.Doubt, error)
	UpdateDoubt(ctx context.Context, id string, req DoubtRequest) (*domain.Doubt, error)
	DeleteDoubt(ctx context.Context, id string) error
}

// DoubtRequest carries the form fields; the same shape serves create and edit.
type DoubtRequest struct {
	Name    string   `json:"name"`
	Content string   `json:"content"`
	Images  []string `json:"images"`
}

type doubtUsecase struct {
	doubtRepo repository.DoubtRepository
}

func NewDoubtUsecase(doubtRepo repository.DoubtRepository) DoubtUsecase {
	return &doubtUsecase{doubtRepo: doubtRepo}
}

func validate(req DoubtRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(req.Content) == "" {
		return ErrEmptyContent
	}
	return nil
}

func (u *doubtUsecase) CreateDoubt(ctx context.Context, req DoubtRequest) (*domain.Doubt, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	doubt := &domain.Doubt{
		Name:    strings.TrimSpace(req.Name),
		Content: req.Content,
		Images:  req.Images,
	}
	if err := u.doubtRepo.Create(ctx, doubt); err != nil {
		return nil, err
	}
	return doubt, nil
}

func (u *doubtUsecase) GetDoubtByID(ctx context.Context, id string) (*domain.Doubt, error) {
	return u.doubtRepo.FindByID(ctx, id)
}

func (u *doubtUsecase) ListDoubts(ctx context.Context) ([]*domain.Doubt, error) {
	doubts, err := u.doubtRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if doubts == nil {
		doubts = []*domain.Doubt{}
	}
	return doubts, nil
}

func (u *doubtUsecase) UpdateDoubt(ctx context.Context, id string, req DoubtRequest) (*domain.Doubt, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	doubt, err := u.doubtRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	doubt.Name = strings.TrimSpace(req.Name)
	doubt.Content = req.Content
	doubt.Images = req.Images
	if err := u.doubtRepo.Update(ctx, doubt); err != nil {
		return nil, err
	}
	return doubt, nil
}

func (u *doubtUsecase) DeleteDoubt(ctx context.Context, id string) error {
	if _, err := u.doubtRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return u.doubtRepo.Delete(ctx, id)
}
