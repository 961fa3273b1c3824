// Package report files user-against-user complaints into the administrator
// inbox.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/swipehome/api/internal/domain"
	"github.com/swipehome/api/internal/event"
	"github.com/swipehome/api/internal/pkg/id"
)

type Service interface {
	// File persists the report and publishes ReportFiled, which raises one
	// notification in the administrator inbox.
	File(ctx context.Context, reporterID, reportedID, reason string) (*domain.Report, error)
	List(ctx context.Context) ([]domain.Report, error)
}

type reportStore interface {
	List(ctx context.Context) ([]domain.Report, error)
	Put(ctx context.Context, r domain.Report) error
}

type adminStore interface {
	List(ctx context.Context) ([]domain.Identity, error)
}

type publisher interface {
	Publish(ctx context.Context, e event.Event) error
}

type service struct {
	reports reportStore
	admins  adminStore
	bus     publisher
}

func NewService(reports reportStore, admins adminStore, bus publisher) Service {
	return &service{reports: reports, admins: admins, bus: bus}
}

func (s *service) File(ctx context.Context, reporterID, reportedID, reason string) (*domain.Report, error) {
	if reporterID == "" || reportedID == "" || reason == "" {
		return nil, fmt.Errorf("reporter, reported and reason are required: %w", domain.ErrBadRequest)
	}
	if reporterID == reportedID {
		return nil, fmt.Errorf("cannot report yourself: %w", domain.ErrBadRequest)
	}

	admins, err := s.admins.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(admins) == 0 {
		return nil, fmt.Errorf("no administrator inbox: %w", domain.ErrUnavailable)
	}

	r := domain.Report{
		ID:         id.New(),
		ReporterID: reporterID,
		ReportedID: reportedID,
		Reason:     reason,
		Status:     domain.ReportPending,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.reports.Put(ctx, r); err != nil {
		return nil, err
	}
	if err := s.bus.Publish(ctx, event.ReportFiled{Report: r, AdminID: admins[0].ID}); err != nil {
		slog.Warn("report notification delivery incomplete", "report_id", r.ID, "err", err)
	}
	return &r, nil
}

func (s *service) List(ctx context.Context) ([]domain.Report, error) {
	return s.reports.List(ctx)
}
