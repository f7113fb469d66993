package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitiate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/payment/initiate/", r.URL.Path)
			assert.Equal(t, "Key secret", r.Header.Get("Authorization"))

			var req InitiateRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "po1", req.PurchaseOrderId)

			json.NewEncoder(w).Encode(InitiateResponse{Pidx: "pidx-1", PaymentUrl: "https://gateway/pay/pidx-1"})
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "secret")
		resp, err := client.Initiate(context.Background(), &InitiateRequest{
			PurchaseOrderId: "po1",
			Amount:          1200,
		})

		assert.NoError(t, err)
		assert.Equal(t, "pidx-1", resp.Pidx)
		assert.Equal(t, "https://gateway/pay/pidx-1", resp.PaymentUrl)
	})

	t.Run("Incomplete Response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(InitiateResponse{})
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "secret")
		_, err := client.Initiate(context.Background(), &InitiateRequest{PurchaseOrderId: "po1"})

		assert.ErrorContains(t, err, "incomplete")
	})

	t.Run("Gateway Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "secret")
		_, err := client.Initiate(context.Background(), &InitiateRequest{PurchaseOrderId: "po1"})

		assert.ErrorContains(t, err, "502")
	})
}

func TestVerify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payment/verify/", r.URL.Path)

		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "pidx-1", req["pidx"])

		json.NewEncoder(w).Encode(VerifyResponse{Pidx: "pidx-1", Status: StatusCompleted, TotalAmount: 1200})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "secret")
	resp, err := client.Verify(context.Background(), "pidx-1")

	assert.NoError(t, err)
	assert.Equal(t, StatusCompleted, resp.Status)
	assert.Equal(t, int64(1200), resp.TotalAmount)
}
