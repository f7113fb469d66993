package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/kiran/bookbazaar/pkg/api"
	"github.com/kiran/bookbazaar/pkg/models"
	"github.com/kiran/bookbazaar/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func requestWithParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListNotificationsBySeller(t *testing.T) {
	t.Run("Default Limit", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		handler := NewNotificationsHandler(mockStorage)

		feed := []models.Notification{
			{Id: "n1", SellerId: "s1", Status: models.NotificationOrder},
			{Id: "n2", SellerId: "s1", Status: models.NotificationApproved},
		}
		mockStorage.On("ListNotificationsBySeller", mock.Anything, "s1", int32(defaultLimit)).Return(feed, nil)

		req := requestWithParam(httptest.NewRequest(http.MethodGet, "/users/s1/notifications", nil), "userId", "s1")
		rr := httptest.NewRecorder()

		handler.ListNotificationsBySeller(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp []api.Notification
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 2)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Explicit Limit", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		handler := NewNotificationsHandler(mockStorage)

		mockStorage.On("ListNotificationsBySeller", mock.Anything, "s1", int32(5)).Return([]models.Notification{}, nil)

		req := requestWithParam(httptest.NewRequest(http.MethodGet, "/users/s1/notifications?limit=5", nil), "userId", "s1")
		rr := httptest.NewRecorder()

		handler.ListNotificationsBySeller(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Bad Limit", func(t *testing.T) {
		mockStorage := new(mocks.ApiStore)
		handler := NewNotificationsHandler(mockStorage)

		req := requestWithParam(httptest.NewRequest(http.MethodGet, "/users/s1/notifications?limit=zero", nil), "userId", "s1")
		rr := httptest.NewRecorder()

		handler.ListNotificationsBySeller(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertNotCalled(t, "ListNotificationsBySeller", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMarkNotificationRead(t *testing.T) {
	mockStorage := new(mocks.ApiStore)
	handler := NewNotificationsHandler(mockStorage)

	mockStorage.On("MarkNotificationRead", mock.Anything, "n1").Return(nil)

	req := requestWithParam(httptest.NewRequest(http.MethodPost, "/notifications/n1/read", nil), "notificationId", "n1")
	rr := httptest.NewRecorder()

	handler.MarkNotificationRead(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	mockStorage.AssertExpectations(t)
}
