package payments_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workbook-auth/app/driver/payments"
)

func TestNewClient_ConfigValidation(t *testing.T) {
	_, err := payments.NewClient(payments.Config{APIKey: "sk_test"})
	assert.Error(t, err)

	_, err = payments.NewClient(payments.Config{BaseURL: "https://api.example.com"})
	assert.Error(t, err)

	client, err := payments.NewClient(payments.Config{
		BaseURL: "https://api.example.com",
		APIKey:  "sk_test",
	})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClient_ListCustomersByEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/customers", r.URL.Path)
		assert.Equal(t, "buyer@example.com", r.URL.Query().Get("email"))
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"cus_1","email":"buyer@example.com","name":"Buyer"}]}`))
	}))
	defer server.Close()

	client, err := payments.NewClient(payments.Config{BaseURL: server.URL, APIKey: "sk_test"})
	require.NoError(t, err)

	customers, err := client.ListCustomersByEmail(context.Background(), "buyer@example.com")
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "cus_1", customers[0].ID)
	assert.Equal(t, "Buyer", customers[0].Name)
}

func TestClient_ListArtifacts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cus_1", r.URL.Query().Get("customer"))

		switch r.URL.Path {
		case "/v1/subscriptions":
			assert.Equal(t, "active", r.URL.Query().Get("status"))
			_, _ = w.Write([]byte(`{"data":[{"id":"sub_1","amount":100000,"created":1767225600}]}`))
		case "/v1/payment_intents":
			assert.Equal(t, "succeeded", r.URL.Query().Get("status"))
			_, _ = w.Write([]byte(`{"data":[{"id":"pi_1","amount":50000,"created":1767225600}]}`))
		case "/v1/invoices":
			assert.Equal(t, "paid", r.URL.Query().Get("status"))
			_, _ = w.Write([]byte(`{"data":[]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client, err := payments.NewClient(payments.Config{BaseURL: server.URL, APIKey: "sk_test"})
	require.NoError(t, err)
	ctx := context.Background()

	subs, err := client.ListActiveSubscriptions(ctx, "cus_1")
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "sub_1", subs[0].ID)
	assert.Equal(t, int64(100000), subs[0].AmountCents)

	pays, err := client.ListSucceededPayments(ctx, "cus_1")
	require.NoError(t, err)
	require.Len(t, pays, 1)
	assert.Equal(t, "pi_1", pays[0].ID)

	invoices, err := client.ListPaidInvoices(ctx, "cus_1")
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestClient_ErrorResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := payments.NewClient(payments.Config{BaseURL: server.URL, APIKey: "sk_bad"})
	require.NoError(t, err)

	_, err = client.ListCustomersByEmail(context.Background(), "buyer@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client, err := payments.NewClient(payments.Config{
		BaseURL: server.URL,
		APIKey:  "sk_test",
		Timeout: 50 * time.Millisecond,
	})
	require.NoError(t, err)

	_, err = client.ListCustomersByEmail(context.Background(), "buyer@example.com")
	assert.Error(t, err)
}
