package services

import (
	"context"
	"time"

	"dailyhome/internal/logger"
	"dailyhome/internal/metrics"
	"dailyhome/internal/models"
)

// DiaryReader defines read-only operations for diary entries.
type DiaryReader interface {
	GetByDate(ctx context.Context, userID int64, date time.Time) (*models.DiaryDB, error)
	ListDays(ctx context.Context, userID int64, year int, month time.Month) ([]int, error)
}

// DiaryWriter defines write operations for diary entries.
type DiaryWriter interface {
	Upsert(ctx context.Context, userID int64, date time.Time, title, content string) error
}

// DiaryService handles the per-user calendar diary.
type DiaryService struct {
	reader DiaryReader
	writer DiaryWriter
}

// NewDiaryService creates a new DiaryService instance.
func NewDiaryService(reader DiaryReader, writer DiaryWriter) *DiaryService {
	return &DiaryService{reader: reader, writer: writer}
}

// EntryDays returns the set of days in the month that have an entry.
func (svc *DiaryService) EntryDays(ctx context.Context, userID int64, year int, month time.Month) (map[int]bool, error) {
	days, err := svc.reader.ListDays(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	marked := make(map[int]bool, len(days))
	for _, d := range days {
		marked[d] = true
	}
	return marked, nil
}

// GetEntry returns the entry for (user, date), or nil when none exists.
func (svc *DiaryService) GetEntry(ctx context.Context, userID int64, date time.Time) (*models.DiaryDB, error) {
	return svc.reader.GetByDate(ctx, userID, date)
}

// SaveEntry writes the single entry for (user, date): insert when absent,
// update in place otherwise.
func (svc *DiaryService) SaveEntry(ctx context.Context, userID int64, date time.Time, title, content string) error {
	if err := svc.writer.Upsert(ctx, userID, date, title, content); err != nil {
		logger.Log.Errorw("failed to save diary entry", "err", err)
		return err
	}
	metrics.IncDiaryWrite()
	return nil
}
