package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"dailyhome/internal/handlers"
	"dailyhome/internal/models"
	"dailyhome/internal/sessions"
)

func diaryRouter(svc handlers.DiaryServicer, store handlers.SessionStore, pages *handlers.Pages) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/diary", handlers.NewDiaryCalendarHandler(svc, store, pages))
	r.Get("/diary/{year}/{month}", handlers.NewDiaryCalendarHandler(svc, store, pages))
	r.Get("/diary/entry/{date}", handlers.NewDiaryEntryFormHandler(svc, store, pages))
	r.Post("/diary/entry/{date}", handlers.NewDiaryEntryHandler(svc, store))
	return r
}

func TestDiaryCalendarHandler(t *testing.T) {
	t.Run("marks entry days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := handlers.NewMockDiaryServicer(ctrl)
		store := handlers.NewMockSessionStore(ctrl)

		svc.EXPECT().
			EntryDays(gomock.Any(), int64(7), 2026, time.March).
			Return(map[int]bool{14: true}, nil)
		store.EXPECT().PopFlashes(gomock.Any(), "sid-1").Return(nil, nil)

		rec := httptest.NewRecorder()
		diaryRouter(svc, store, newTestPages(t)).
			ServeHTTP(rec, getRequest("/diary/2026/3", userSession()))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "2026-03-14")
		assert.Contains(t, rec.Body.String(), "marked")
	})

	t.Run("year out of range redirects", func(t *testing.T) {
		for _, target := range []string{"/diary/1899/5", "/diary/2101/5", "/diary/2026/0", "/diary/2026/13"} {
			t.Run(target, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				svc := handlers.NewMockDiaryServicer(ctrl)
				store := handlers.NewMockSessionStore(ctrl)
				store.EXPECT().
					AddFlash(gomock.Any(), "sid-1", sessions.FlashError, gomock.Any()).
					Return(nil)

				rec := httptest.NewRecorder()
				diaryRouter(svc, store, newTestPages(t)).
					ServeHTTP(rec, getRequest(target, userSession()))

				assert.Equal(t, http.StatusFound, rec.Code)
				assert.Equal(t, "/diary", rec.Header().Get("Location"))
			})
		}
	})
}

func TestDiaryEntryFormHandler(t *testing.T) {
	t.Run("prefills an existing entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := handlers.NewMockDiaryServicer(ctrl)
		store := handlers.NewMockSessionStore(ctrl)

		date := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)
		svc.EXPECT().
			GetEntry(gomock.Any(), int64(7), date).
			Return(&models.DiaryDB{UserID: 7, EntryDate: date, Title: "a walk", Content: "walked a lot"}, nil)
		store.EXPECT().PopFlashes(gomock.Any(), "sid-1").Return(nil, nil)

		rec := httptest.NewRecorder()
		diaryRouter(svc, store, newTestPages(t)).
			ServeHTTP(rec, getRequest("/diary/entry/2026-03-14", userSession()))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "walked a lot")
	})

	t.Run("malformed date redirects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := handlers.NewMockDiaryServicer(ctrl)
		store := handlers.NewMockSessionStore(ctrl)
		store.EXPECT().
			AddFlash(gomock.Any(), "sid-1", sessions.FlashError, gomock.Any()).
			Return(nil)

		rec := httptest.NewRecorder()
		diaryRouter(svc, store, newTestPages(t)).
			ServeHTTP(rec, getRequest("/diary/entry/14-03-2026", userSession()))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/diary", rec.Header().Get("Location"))
	})
}

func TestDiaryEntryHandler_Save(t *testing.T) {
	date := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		existing *models.DiaryDB
		wantMsg  string
	}{
		{name: "first write", existing: nil, wantMsg: "작성"},
		{name: "overwrite", existing: &models.DiaryDB{UserID: 7, EntryDate: date}, wantMsg: "수정"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := handlers.NewMockDiaryServicer(ctrl)
			store := handlers.NewMockSessionStore(ctrl)

			svc.EXPECT().GetEntry(gomock.Any(), int64(7), date).Return(tt.existing, nil)
			svc.EXPECT().
				SaveEntry(gomock.Any(), int64(7), date, "a title", "some content").
				Return(nil)

			var flashed string
			store.EXPECT().
				AddFlash(gomock.Any(), "sid-1", sessions.FlashSuccess, gomock.Any()).
				DoAndReturn(func(_ context.Context, _, _, message string) error {
					flashed = message
					return nil
				})

			rec := httptest.NewRecorder()
			form := url.Values{"title": {"a title"}, "content": {"some content"}}
			diaryRouter(svc, store, newTestPages(t)).
				ServeHTTP(rec, formRequest("/diary/entry/2026-03-14", form, userSession()))

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, fmt.Sprintf("/diary/%d/%d", 2026, 3), rec.Header().Get("Location"))
			assert.Contains(t, flashed, tt.wantMsg)
		})
	}
}

func TestDiaryEntryHandler_BlankContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := handlers.NewMockDiaryServicer(ctrl)
	store := handlers.NewMockSessionStore(ctrl)
	store.EXPECT().
		AddFlash(gomock.Any(), "sid-1", sessions.FlashError, gomock.Any()).
		Return(nil)

	rec := httptest.NewRecorder()
	form := url.Values{"title": {"a title"}, "content": {"   "}}
	diaryRouter(svc, store, newTestPages(t)).
		ServeHTTP(rec, formRequest("/diary/entry/2026-03-14", form, userSession()))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/diary/entry/2026-03-14", rec.Header().Get("Location"))
}
