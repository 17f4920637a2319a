package requests

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/accesshub/accesshub/internal/auth"
	"github.com/accesshub/accesshub/internal/shared"
	"github.com/accesshub/accesshub/internal/software"
)

// Catalog looks up software titles for submission checks.
type Catalog interface {
	Get(ctx context.Context, id int64) (*software.Software, error)
}

// UserDirectory looks up request owners.
type UserDirectory interface {
	FindByID(ctx context.Context, id int64) (*auth.User, error)
}

// Service implements the request workflow: submission and the at-most-once
// Pending → Approved/Rejected transition.
type Service struct {
	repo    Repository
	catalog Catalog
	users   UserDirectory
}

// NewService constructs a new Service.
func NewService(repo Repository, catalog Catalog, users UserDirectory) *Service {
	return &Service{repo: repo, catalog: catalog, users: users}
}

// Submit validates and records a new access request owned by userID. The
// access type must belong to the global enum and be offered by the referenced
// software title; the reason must be non-empty.
func (s *Service) Submit(ctx context.Context, userID int64, req SubmitRequest) (*Detail, error) {
	accessType := AccessType(req.AccessType)
	if !ValidAccessType(accessType) {
		return nil, fmt.Errorf("%w: invalid access type %q", shared.ErrInvalidInput, req.AccessType)
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, fmt.Errorf("%w: reason is required", shared.ErrInvalidInput)
	}

	sw, err := s.catalog.Get(ctx, req.SoftwareID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, fmt.Errorf("%w: software %d", shared.ErrNotFound, req.SoftwareID)
		}
		return nil, err
	}
	if !sw.Offers(req.AccessType) {
		return nil, fmt.Errorf("%w: access type %q is not available for %s (available: %s)",
			shared.ErrInvalidInput, req.AccessType, sw.Name, strings.Join(sw.AccessLevels, ", "))
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %d", shared.ErrNotFound, userID)
		}
		return nil, err
	}

	created, err := s.repo.Create(ctx, AccessRequest{
		UserID:     userID,
		SoftwareID: req.SoftwareID,
		AccessType: accessType,
		Reason:     req.Reason,
		Status:     StatusPending,
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetDetail(ctx, created.ID)
}

// ListOwn returns the caller's requests, newest first, joined with software.
func (s *Service) ListOwn(ctx context.Context, userID int64) ([]Detail, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListPending returns all Pending requests, oldest first, joined with
// sanitized user and software.
func (s *Service) ListPending(ctx context.Context) ([]Detail, error) {
	return s.repo.ListByStatus(ctx, StatusPending)
}

// ListAll returns every request regardless of status, newest first.
func (s *Service) ListAll(ctx context.Context) ([]Detail, error) {
	return s.repo.ListAll(ctx)
}

// Transition moves a Pending request to Approved or Rejected. The transition
// happens at most once: when the request is already terminal the call fails
// with a conflict naming the current status, and nothing changes.
func (s *Service) Transition(ctx context.Context, id int64, target Status) (*Detail, error) {
	if !TerminalStatus(target) {
		return nil, fmt.Errorf("%w: status must be %s or %s", shared.ErrInvalidInput, StatusApproved, StatusRejected)
	}
	ok, err := s.repo.Transition(ctx, id, target)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Either the request does not exist or it already left Pending.
		detail, err := s.repo.GetDetail(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: request is already %s", shared.ErrConflict, strings.ToLower(string(detail.Status)))
	}
	return s.repo.GetDetail(ctx, id)
}
