package settlement

import (
	"context"
	"testing"

	"github.com/kiran/bookbazaar/pkg/models"
	"github.com/kiran/bookbazaar/pkg/payments"
	payments_mocks "github.com/kiran/bookbazaar/pkg/payments/mocks"
	"github.com/kiran/bookbazaar/pkg/scheduler"
	"github.com/kiran/bookbazaar/pkg/storage"
	storage_mocks "github.com/kiran/bookbazaar/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func pendingIntent() *models.PaymentIntent {
	return &models.PaymentIntent{
		PurchaseOrderId: "po1",
		UserId:          "buyer1",
		Pidx:            "pidx-1",
		Items: []models.OrderItem{
			{BookId: "b1", SellerId: "s1", UnitPrice: 500, Quantity: 1},
		},
		Amount: 650,
		Status: models.INTENT_PENDING,
	}
}

func TestVerifyIntent(t *testing.T) {
	job := &scheduler.VerificationJob{PurchaseOrderId: "po1", Pidx: "pidx-1"}

	t.Run("Completed Payment Writes The Order", func(t *testing.T) {
		mockStore := new(storage_mocks.SettlementStore)
		mockGateway := new(payments_mocks.Client)
		verifier := NewVerifier(mockStore, mockGateway)

		mockStore.On("GetPaymentIntent", mock.Anything, "po1").Return(pendingIntent(), nil)
		mockGateway.On("Verify", mock.Anything, "pidx-1").
			Return(&payments.VerifyResponse{Pidx: "pidx-1", Status: payments.StatusCompleted, TotalAmount: 650}, nil)
		mockStore.On("CompletePaymentIntent", mock.Anything, mock.Anything, mock.MatchedBy(func(order *models.Order) bool {
			return order.Id == "po1" && order.PaymentRef == "pidx-1" && order.Status == models.PENDING
		})).Return(nil)

		err := verifier.VerifyIntent(context.Background(), job)

		assert.NoError(t, err)
		mockStore.AssertExpectations(t)
		mockGateway.AssertExpectations(t)
	})

	t.Run("Missing Intent Writes Nothing", func(t *testing.T) {
		mockStore := new(storage_mocks.SettlementStore)
		mockGateway := new(payments_mocks.Client)
		verifier := NewVerifier(mockStore, mockGateway)

		mockStore.On("GetPaymentIntent", mock.Anything, "po1").Return(nil, assert.AnError)

		err := verifier.VerifyIntent(context.Background(), job)

		assert.NoError(t, err)
		mockGateway.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
		mockStore.AssertNotCalled(t, "CompletePaymentIntent", mock.Anything, mock.Anything, mock.Anything)
		mockStore.AssertNotCalled(t, "FailPaymentIntent", mock.Anything, mock.Anything)
	})

	t.Run("Already Finalized Intent Writes Nothing", func(t *testing.T) {
		mockStore := new(storage_mocks.SettlementStore)
		mockGateway := new(payments_mocks.Client)
		verifier := NewVerifier(mockStore, mockGateway)

		intent := pendingIntent()
		intent.Status = models.INTENT_COMPLETED
		mockStore.On("GetPaymentIntent", mock.Anything, "po1").Return(intent, nil)

		err := verifier.VerifyIntent(context.Background(), job)

		assert.NoError(t, err)
		mockGateway.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	})

	t.Run("Non Completed Status Fails The Intent", func(t *testing.T) {
		mockStore := new(storage_mocks.SettlementStore)
		mockGateway := new(payments_mocks.Client)
		verifier := NewVerifier(mockStore, mockGateway)

		mockStore.On("GetPaymentIntent", mock.Anything, "po1").Return(pendingIntent(), nil)
		mockGateway.On("Verify", mock.Anything, "pidx-1").
			Return(&payments.VerifyResponse{Pidx: "pidx-1", Status: payments.StatusExpired}, nil)
		mockStore.On("FailPaymentIntent", mock.Anything, "po1").Return(nil)

		err := verifier.VerifyIntent(context.Background(), job)

		assert.NoError(t, err)
		mockStore.AssertNotCalled(t, "CompletePaymentIntent", mock.Anything, mock.Anything, mock.Anything)
		mockStore.AssertExpectations(t)
	})

	t.Run("Still Pending At Gateway Writes Nothing", func(t *testing.T) {
		mockStore := new(storage_mocks.SettlementStore)
		mockGateway := new(payments_mocks.Client)
		verifier := NewVerifier(mockStore, mockGateway)

		mockStore.On("GetPaymentIntent", mock.Anything, "po1").Return(pendingIntent(), nil)
		mockGateway.On("Verify", mock.Anything, "pidx-1").
			Return(&payments.VerifyResponse{Pidx: "pidx-1", Status: payments.StatusPending}, nil)

		err := verifier.VerifyIntent(context.Background(), job)

		assert.NoError(t, err)
		mockStore.AssertNotCalled(t, "CompletePaymentIntent", mock.Anything, mock.Anything, mock.Anything)
		mockStore.AssertNotCalled(t, "FailPaymentIntent", mock.Anything, mock.Anything)
	})

	t.Run("Gateway Error Propagates For Retry", func(t *testing.T) {
		mockStore := new(storage_mocks.SettlementStore)
		mockGateway := new(payments_mocks.Client)
		verifier := NewVerifier(mockStore, mockGateway)

		mockStore.On("GetPaymentIntent", mock.Anything, "po1").Return(pendingIntent(), nil)
		mockGateway.On("Verify", mock.Anything, "pidx-1").Return(nil, assert.AnError)

		err := verifier.VerifyIntent(context.Background(), job)

		assert.Error(t, err)
	})

	t.Run("Lost Completion Race Is Not An Error", func(t *testing.T) {
		mockStore := new(storage_mocks.SettlementStore)
		mockGateway := new(payments_mocks.Client)
		verifier := NewVerifier(mockStore, mockGateway)

		mockStore.On("GetPaymentIntent", mock.Anything, "po1").Return(pendingIntent(), nil)
		mockGateway.On("Verify", mock.Anything, "pidx-1").
			Return(&payments.VerifyResponse{Pidx: "pidx-1", Status: payments.StatusCompleted, TotalAmount: 650}, nil)
		mockStore.On("CompletePaymentIntent", mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ErrIntentNotPending)

		err := verifier.VerifyIntent(context.Background(), job)

		assert.NoError(t, err)
	})
}
