package certificate

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/abhisek/voltiz/internal/store"
)

var (
	// ErrUnknownCategory is returned for a category outside the question bank.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInvalidScore is returned for a score outside 0..100.
	ErrInvalidScore = errors.New("score must be between 0 and 100")
)

// CodeLength is the length of a verification code.
const CodeLength = 12

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Certificate is an issued completion certificate.
type Certificate struct {
	ID           string
	UserID       string
	Category     string
	Date         time.Time
	ScorePercent float64
	BadgesEarned int
	Code         string
}

// CategoryChecker reports whether a category exists.
type CategoryChecker interface {
	HasCategory(id string) bool
}

// Service issues and lists certificates.
type Service struct {
	repo       *store.Repo
	categories CategoryChecker

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewService creates a certificate service drawing codes from rnd.
func NewService(repo *store.Repo, categories CategoryChecker, rnd *rand.Rand) *Service {
	return &Service{repo: repo, categories: categories, rnd: rnd}
}

// NewRand returns a code source. A zero seed picks a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Code draws a verification code from rnd.
func Code(rnd *rand.Rand) string {
	b := make([]byte, CodeLength)
	for i := range b {
		b[i] = codeAlphabet[rnd.IntN(len(codeAlphabet))]
	}
	return string(b)
}

// Issue appends a certificate for category to userID's list.
func (s *Service) Issue(ctx context.Context, userID, category string, score float64, badgesEarned int, date time.Time) (*Certificate, error) {
	if !s.categories.HasCategory(category) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if score < 0 || score > 100 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidScore, score)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.repo.Certificates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load certificates: %w", err)
	}

	c := &Certificate{
		ID:           uuid.New().String(),
		UserID:       userID,
		Category:     category,
		Date:         date.UTC(),
		ScorePercent: score,
		BadgesEarned: badgesEarned,
		Code:         Code(s.rnd),
	}
	list.Certificates = append(list.Certificates, toData(c))
	if err := s.repo.SaveCertificates(ctx, userID, list); err != nil {
		return nil, fmt.Errorf("save certificates: %w", err)
	}

	log.Info().Str("user", userID).Str("category", category).Str("code", c.Code).Msg("certificate issued")
	s.repo.Record(ctx, store.Event{
		UserID:  userID,
		Kind:    store.EventCertificate,
		Subject: category,
		Detail: map[string]string{
			"code":  c.Code,
			"score": strconv.FormatFloat(score, 'f', 1, 64),
		},
		Timestamp: c.Date,
	})
	return c, nil
}

// List returns userID's certificates in issue order.
func (s *Service) List(ctx context.Context, userID string) ([]Certificate, error) {
	list, err := s.repo.Certificates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load certificates: %w", err)
	}
	out := make([]Certificate, 0, len(list.Certificates))
	for _, d := range list.Certificates {
		out = append(out, fromData(d))
	}
	return out, nil
}

func toData(c *Certificate) store.CertificateData {
	return store.CertificateData{
		ID:           c.ID,
		UserID:       c.UserID,
		Category:     c.Category,
		Date:         c.Date,
		ScorePercent: c.ScorePercent,
		BadgesEarned: c.BadgesEarned,
		Code:         c.Code,
	}
}

func fromData(d store.CertificateData) Certificate {
	return Certificate{
		ID:           d.ID,
		UserID:       d.UserID,
		Category:     d.Category,
		Date:         d.Date,
		ScorePercent: d.ScorePercent,
		BadgesEarned: d.BadgesEarned,
		Code:         d.Code,
	}
}
