package payments_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"workbook-auth/app/domain"
	"workbook-auth/app/driver/payments"
	mock_port "workbook-auth/app/mocks"
	"workbook-auth/app/port"
)

func newAdapter(client port.PaymentClient) *payments.Adapter {
	return payments.NewAdapter(client, 5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAdapter_LookupByEmail(t *testing.T) {
	customer := port.PaymentCustomer{ID: "cus_1", Email: "buyer@example.com", Name: "Paying Member"}

	tests := []struct {
		name       string
		setupMocks func(*mock_port.MockPaymentClient)
		wantFound  bool
		wantErr    bool
		validate   func(*testing.T, *domain.Member)
	}{
		{
			name: "active subscription qualifies first",
			setupMocks: func(client *mock_port.MockPaymentClient) {
				client.EXPECT().
					ListCustomersByEmail(gomock.Any(), "buyer@example.com").
					Return([]port.PaymentCustomer{customer}, nil)
				client.EXPECT().
					ListActiveSubscriptions(gomock.Any(), "cus_1").
					Return([]port.PaymentArtifact{
						{ID: "sub_1", AmountCents: 100000, Created: 1767225600},
					}, nil)
			},
			wantFound: true,
			validate: func(t *testing.T, m *domain.Member) {
				assert.Equal(t, domain.MembershipPremium, m.MembershipType)
				assert.Equal(t, "sub_1", m.SourceReference)
				assert.Equal(t, domain.SourcePayments, m.SourceID)
				assert.Equal(t, "Paying Member", m.DisplayName)
				assert.True(t, m.IsActive)
				assert.Equal(t, time.Unix(1767225600, 0).UTC(), m.JoinDate)
			},
		},
		{
			name: "falls through to one-time payment",
			setupMocks: func(client *mock_port.MockPaymentClient) {
				client.EXPECT().
					ListCustomersByEmail(gomock.Any(), "buyer@example.com").
					Return([]port.PaymentCustomer{customer}, nil)
				client.EXPECT().
					ListActiveSubscriptions(gomock.Any(), "cus_1").
					Return(nil, nil)
				client.EXPECT().
					ListSucceededPayments(gomock.Any(), "cus_1").
					Return([]port.PaymentArtifact{
						{ID: "pi_1", AmountCents: 150000, Created: 1767225600},
					}, nil)
			},
			wantFound: true,
			validate: func(t *testing.T, m *domain.Member) {
				assert.Equal(t, domain.MembershipVIP, m.MembershipType)
				assert.Equal(t, "pi_1", m.SourceReference)
			},
		},
		{
			name: "falls through to paid invoice",
			setupMocks: func(client *mock_port.MockPaymentClient) {
				client.EXPECT().
					ListCustomersByEmail(gomock.Any(), "buyer@example.com").
					Return([]port.PaymentCustomer{customer}, nil)
				client.EXPECT().
					ListActiveSubscriptions(gomock.Any(), "cus_1").
					Return(nil, nil)
				client.EXPECT().
					ListSucceededPayments(gomock.Any(), "cus_1").
					Return(nil, nil)
				client.EXPECT().
					ListPaidInvoices(gomock.Any(), "cus_1").
					Return([]port.PaymentArtifact{
						{ID: "in_1", AmountCents: 50000, Created: 1767225600},
					}, nil)
			},
			wantFound: true,
			validate: func(t *testing.T, m *domain.Member) {
				assert.Equal(t, domain.MembershipPro, m.MembershipType)
				assert.Equal(t, "in_1", m.SourceReference)
			},
		},
		{
			name: "first qualifying artifact wins over larger later one",
			setupMocks: func(client *mock_port.MockPaymentClient) {
				client.EXPECT().
					ListCustomersByEmail(gomock.Any(), "buyer@example.com").
					Return([]port.PaymentCustomer{customer}, nil)
				client.EXPECT().
					ListActiveSubscriptions(gomock.Any(), "cus_1").
					Return([]port.PaymentArtifact{
						{ID: "sub_small", AmountCents: 100, Created: 1767225600},
						{ID: "sub_big", AmountCents: 200000, Created: 1767225600},
					}, nil)
			},
			wantFound: true,
			validate: func(t *testing.T, m *domain.Member) {
				assert.Equal(t, domain.MembershipBasic, m.MembershipType)
				assert.Equal(t, "sub_small", m.SourceReference)
			},
		},
		{
			name: "zero-amount artifacts are skipped",
			setupMocks: func(client *mock_port.MockPaymentClient) {
				client.EXPECT().
					ListCustomersByEmail(gomock.Any(), "buyer@example.com").
					Return([]port.PaymentCustomer{customer}, nil)
				client.EXPECT().
					ListActiveSubscriptions(gomock.Any(), "cus_1").
					Return([]port.PaymentArtifact{
						{ID: "sub_free", AmountCents: 0, Created: 1767225600},
					}, nil)
				client.EXPECT().
					ListSucceededPayments(gomock.Any(), "cus_1").
					Return([]port.PaymentArtifact{
						{ID: "pi_1", AmountCents: 1000, Created: 1767225600},
					}, nil)
			},
			wantFound: true,
			validate: func(t *testing.T, m *domain.Member) {
				assert.Equal(t, "pi_1", m.SourceReference)
			},
		},
		{
			name: "customer with no qualifying artifacts",
			setupMocks: func(client *mock_port.MockPaymentClient) {
				client.EXPECT().
					ListCustomersByEmail(gomock.Any(), "buyer@example.com").
					Return([]port.PaymentCustomer{customer}, nil)
				client.EXPECT().
					ListActiveSubscriptions(gomock.Any(), "cus_1").
					Return(nil, nil)
				client.EXPECT().
					ListSucceededPayments(gomock.Any(), "cus_1").
					Return(nil, nil)
				client.EXPECT().
					ListPaidInvoices(gomock.Any(), "cus_1").
					Return(nil, nil)
			},
			wantFound: false,
		},
		{
			name: "unknown email",
			setupMocks: func(client *mock_port.MockPaymentClient) {
				client.EXPECT().
					ListCustomersByEmail(gomock.Any(), "buyer@example.com").
					Return(nil, nil)
			},
			wantFound: false,
		},
		{
			name: "second customer qualifies",
			setupMocks: func(client *mock_port.MockPaymentClient) {
				dup := port.PaymentCustomer{ID: "cus_2", Email: "buyer@example.com", Name: "Paying Member"}
				client.EXPECT().
					ListCustomersByEmail(gomock.Any(), "buyer@example.com").
					Return([]port.PaymentCustomer{customer, dup}, nil)
				client.EXPECT().
					ListActiveSubscriptions(gomock.Any(), "cus_1").
					Return(nil, nil)
				client.EXPECT().
					ListSucceededPayments(gomock.Any(), "cus_1").
					Return(nil, nil)
				client.EXPECT().
					ListPaidInvoices(gomock.Any(), "cus_1").
					Return(nil, nil)
				client.EXPECT().
					ListActiveSubscriptions(gomock.Any(), "cus_2").
					Return([]port.PaymentArtifact{
						{ID: "sub_2", AmountCents: 50000, Created: 1767225600},
					}, nil)
			},
			wantFound: true,
			validate: func(t *testing.T, m *domain.Member) {
				assert.Equal(t, "sub_2", m.SourceReference)
			},
		},
		{
			name: "processor outage surfaces as source unavailable",
			setupMocks: func(client *mock_port.MockPaymentClient) {
				client.EXPECT().
					ListCustomersByEmail(gomock.Any(), "buyer@example.com").
					Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
		{
			name: "artifact listing failure surfaces as source unavailable",
			setupMocks: func(client *mock_port.MockPaymentClient) {
				client.EXPECT().
					ListCustomersByEmail(gomock.Any(), "buyer@example.com").
					Return([]port.PaymentCustomer{customer}, nil)
				client.EXPECT().
					ListActiveSubscriptions(gomock.Any(), "cus_1").
					Return(nil, errors.New("rate limited"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock_port.NewMockPaymentClient(ctrl)
			tt.setupMocks(client)

			adapter := newAdapter(client)
			member, found, err := adapter.LookupByEmail(context.Background(), "buyer@example.com")

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
				assert.False(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			if tt.validate != nil {
				require.NotNil(t, member)
				tt.validate(t, member)
			}
		})
	}
}

func TestAdapter_Name(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adapter := newAdapter(mock_port.NewMockPaymentClient(ctrl))
	assert.Equal(t, domain.SourcePayments, adapter.Name())
}
