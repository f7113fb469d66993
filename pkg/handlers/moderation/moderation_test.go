package moderation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kiran/bookbazaar/pkg/api"
	"github.com/kiran/bookbazaar/pkg/models"
	"github.com/kiran/bookbazaar/pkg/storage"
	"github.com/kiran/bookbazaar/pkg/storage/mocks"
	"github.com/kiran/bookbazaar/pkg/websockets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func requestWithBookId(r *http.Request, bookID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("bookId", bookID)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestApproveBook(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		handler := NewModerationHandler(mockStorage, &websockets.NoOpPublisher{})

		approved := &models.Book{Id: "b1", Title: "The Guide", SellerId: "s1", ListStatus: true}
		mockStorage.On("ApproveBook", mock.Anything, "b1").Return(approved, nil)

		req := requestWithBookId(httptest.NewRequest(http.MethodPost, "/admin/books/b1/approve", nil), "b1")
		rr := httptest.NewRecorder()

		handler.ApproveBook(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp api.Book
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "b1", resp.Id)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Lost Moderation Race", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		handler := NewModerationHandler(mockStorage, &websockets.NoOpPublisher{})

		mockStorage.On("ApproveBook", mock.Anything, "b1").Return(nil, storage.ErrAlreadyModerated)

		req := requestWithBookId(httptest.NewRequest(http.MethodPost, "/admin/books/b1/approve", nil), "b1")
		rr := httptest.NewRecorder()

		handler.ApproveBook(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestDeclineBook(t *testing.T) {
	mockStorage := new(mocks.ApiStore)
	handler := NewModerationHandler(mockStorage, &websockets.NoOpPublisher{})

	declined := &models.Book{Id: "b1", Title: "The Guide", SellerId: "s1"}
	mockStorage.On("DeclineBook", mock.Anything, "b1").Return(declined, nil)

	req := requestWithBookId(httptest.NewRequest(http.MethodPost, "/admin/books/b1/decline", nil), "b1")
	rr := httptest.NewRecorder()

	handler.DeclineBook(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockStorage.AssertExpectations(t)
}

func TestRemoveBook(t *testing.T) {
	mockStorage := new(mocks.ApiStore)
	handler := NewModerationHandler(mockStorage, &websockets.NoOpPublisher{})

	removed := &models.Book{Id: "b1", SellerId: "s1"}
	mockStorage.On("RemoveBook", mock.Anything, "b1").Return(removed, nil)

	req := requestWithBookId(httptest.NewRequest(http.MethodPost, "/admin/books/b1/remove", nil), "b1")
	rr := httptest.NewRecorder()

	handler.RemoveBook(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockStorage.AssertExpectations(t)
}
