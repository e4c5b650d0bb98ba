package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"dailyhome/internal/calendar"
	"dailyhome/internal/logger"
	"dailyhome/internal/models"
	"dailyhome/internal/sessions"
)

// Years outside this range are rejected rather than rendered.
const (
	minDiaryYear = 1900
	maxDiaryYear = 2100
)

// DiaryServicer defines the diary operations the diary handlers need.
type DiaryServicer interface {
	EntryDays(ctx context.Context, userID int64, year int, month time.Month) (map[int]bool, error)
	GetEntry(ctx context.Context, userID int64, date time.Time) (*models.DiaryDB, error)
	SaveEntry(ctx context.Context, userID int64, date time.Time, title, content string) error
}

type diaryCalendarPage struct {
	basePage
	Grid      calendar.Grid
	EntryDays map[int]bool
	Today     int
}

// monthFromURL reads the optional {year}/{month} route parameters, falling
// back to the current month. ok is false when the parameters are out of range.
func monthFromURL(r *http.Request, now time.Time) (year int, month time.Month, ok bool) {
	yearParam := chi.URLParam(r, "year")
	monthParam := chi.URLParam(r, "month")
	if yearParam == "" && monthParam == "" {
		return now.Year(), now.Month(), true
	}

	y, err := strconv.Atoi(yearParam)
	if err != nil || y < minDiaryYear || y > maxDiaryYear {
		return 0, 0, false
	}
	m, err := strconv.Atoi(monthParam)
	if err != nil || m < 1 || m > 12 {
		return 0, 0, false
	}
	return y, time.Month(m), true
}

// NewDiaryCalendarHandler renders the month view with entry days marked.
func NewDiaryCalendarHandler(svc DiaryServicer, store SessionStore, pages *Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		year, month, ok := monthFromURL(r, now)
		if !ok {
			flashRedirect(w, r, store, sessions.FlashError,
				"유효하지 않은 연도 또는 월입니다.", "/diary")
			return
		}

		sess := sessions.FromContext(r.Context())
		entryDays, err := svc.EntryDays(r.Context(), sess.UserID, year, month)
		if err != nil {
			logger.Log.Errorw("failed to load diary days", "year", year, "month", month, "err", err)
			if addErr := store.AddFlash(r.Context(), sess.SID, sessions.FlashError,
				"일기 데이터를 불러오는 데 실패했습니다."); addErr != nil {
				logger.Log.Errorw("failed to add flash", "err", addErr)
			}
		}

		page := diaryCalendarPage{
			basePage:  newBasePage(r, store),
			Grid:      calendar.MonthGrid(year, month),
			EntryDays: entryDays,
		}
		if year == now.Year() && month == now.Month() {
			page.Today = now.Day()
		}
		pages.Render(w, "diary_calendar", page)
	}
}

type diaryEntryPage struct {
	basePage
	Date  string
	Entry *models.DiaryDB
}

// entryDate parses the {date} route parameter in strict YYYY-MM-DD form.
func entryDate(r *http.Request) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
	if err != nil || date.Year() < minDiaryYear || date.Year() > maxDiaryYear {
		return time.Time{}, false
	}
	return date, true
}

// NewDiaryEntryFormHandler shows the entry editor for a date, prefilled when
// an entry already exists.
func NewDiaryEntryFormHandler(svc DiaryServicer, store SessionStore, pages *Pages) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, ok := entryDate(r)
		if !ok {
			flashRedirect(w, r, store, sessions.FlashError,
				"유효하지 않은 날짜 형식입니다.", "/diary")
			return
		}

		sess := sessions.FromContext(r.Context())
		entry, err := svc.GetEntry(r.Context(), sess.UserID, date)
		if err != nil {
			logger.Log.Errorw("failed to load diary entry", "date", date, "err", err)
			flashRedirect(w, r, store, sessions.FlashError,
				"일기 처리 중 오류가 발생했습니다.", "/diary")
			return
		}

		pages.Render(w, "diary_entry", diaryEntryPage{
			basePage: newBasePage(r, store),
			Date:     date.Format("2006-01-02"),
			Entry:    entry,
		})
	}
}

// NewDiaryEntryHandler saves the entry for a date: insert when absent, full
// replace otherwise.
func NewDiaryEntryHandler(svc DiaryServicer, store SessionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, ok := entryDate(r)
		if !ok {
			flashRedirect(w, r, store, sessions.FlashError,
				"유효하지 않은 날짜 형식입니다.", "/diary")
			return
		}
		dateStr := date.Format("2006-01-02")

		title := strings.TrimSpace(r.PostFormValue("title"))
		content := strings.TrimSpace(r.PostFormValue("content"))
		if content == "" {
			flashRedirect(w, r, store, sessions.FlashError,
				"일기 내용은 비워둘 수 없습니다.", "/diary/entry/"+dateStr)
			return
		}

		sess := sessions.FromContext(r.Context())

		existing, err := svc.GetEntry(r.Context(), sess.UserID, date)
		if err != nil {
			logger.Log.Errorw("failed to check diary entry", "date", dateStr, "err", err)
			flashRedirect(w, r, store, sessions.FlashError,
				"일기 처리 중 오류가 발생했습니다.", "/diary")
			return
		}

		if err := svc.SaveEntry(r.Context(), sess.UserID, date, title, content); err != nil {
			flashRedirect(w, r, store, sessions.FlashError,
				"일기 저장에 실패했습니다. 잠시 후 다시 시도해주세요.", "/diary/entry/"+dateStr)
			return
		}

		message := "일기가 성공적으로 작성되었습니다!"
		if existing != nil {
			message = "일기가 성공적으로 수정되었습니다!"
		}
		flashRedirect(w, r, store, sessions.FlashSuccess, message,
			fmt.Sprintf("/diary/%d/%d", date.Year(), int(date.Month())))
	}
}
