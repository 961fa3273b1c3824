package localstore

import (
	"context"

	"github.com/swipehome/api/internal/domain"
)

type ReportRepo struct {
	store Blob
}

func NewReportRepo(store Blob) *ReportRepo {
	return &ReportRepo{store: store}
}

func (r *ReportRepo) List(ctx context.Context) ([]domain.Report, error) {
	return readTable(ctx, r.store, tableReports, []domain.Report{})
}

func (r *ReportRepo) Put(ctx context.Context, rep domain.Report) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}
	return writeTable(ctx, r.store, tableReports, append([]domain.Report{rep}, list...))
}
