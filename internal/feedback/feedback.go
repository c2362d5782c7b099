// Package feedback stores user-submitted product feedback. Entries hang
// off a user account, not the wedding aggregate, and may be anonymous.
package feedback

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"enlace/internal/remote"
)

const anonymousEmail = "Anonymous"

var ErrEmptyContent = errors.New("feedback content is empty")

type Row struct {
	ID        string    `gorm:"column:id;type:uuid;default:uuid_generate_v4();primaryKey" json:"id,omitempty"`
	UserID    uint64    `gorm:"column:user_id;index;not null;default:0" json:"user_id"`
	UserEmail string    `gorm:"column:user_email;not null;default:''" json:"user_email"`
	Content   string    `gorm:"column:content;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()" json:"created_at"`
}

func (Row) TableName() string { return "feedbacks" }

type Service struct {
	svc remote.Service
	log zerolog.Logger
}

func NewService(svc remote.Service, log zerolog.Logger) *Service {
	return &Service{svc: svc, log: log}
}

// Submit persists one feedback entry. A zero userID and empty email mark
// the entry anonymous.
func (s *Service) Submit(ctx context.Context, userID uint64, email, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyContent
	}
	if email == "" {
		email = anonymousEmail
	}

	row := Row{
		UserID:    userID,
		UserEmail: email,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.svc.Insert(ctx, "feedbacks", &row); err != nil {
		s.log.Error().Err(err).Msg("insert feedback")
		return fmt.Errorf("submit feedback: %w", err)
	}
	return nil
}

// List returns every entry, newest first.
func (s *Service) List(ctx context.Context) ([]Row, error) {
	rows := []Row{}
	if err := s.svc.Select(ctx, "feedbacks", &rows); err != nil {
		return nil, fmt.Errorf("list feedbacks: %w", err)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	return rows, nil
}

func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.svc.Delete(ctx, "feedbacks", remote.Eq("id", id)); err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	return nil
}
