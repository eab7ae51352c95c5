package service_test

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-web-api-sdk/internal/mock"
	"github.com/MKhiriev/go-web-api-sdk/internal/service"
	"github.com/MKhiriev/go-web-api-sdk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newValidated(t *testing.T) (service.ClientService, *mock.MockClientService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	inner := mock.NewMockClientService(ctrl)
	return service.NewClientValidationService().Wrap(inner), inner
}

func TestClientValidation_Load_NilBundle(t *testing.T) {
	svc, _ := newValidated(t)

	_, err := svc.Load(context.Background(), nil)

	require.ErrorIs(t, err, service.ErrValidationNoBundleGiven)
}

func TestClientValidation_Load_Delegates(t *testing.T) {
	svc, inner := newValidated(t)
	ctx := context.Background()
	raw := map[string]any{}

	inner.EXPECT().Load(ctx, raw).Return(nil, nil)

	_, err := svc.Load(ctx, raw)
	require.NoError(t, err)
}

func TestClientValidation_Client(t *testing.T) {
	svc, inner := newValidated(t)
	ctx := context.Background()

	_, err := svc.Client(ctx, "  ")
	require.ErrorIs(t, err, service.ErrValidationNoServiceKey)

	want := models.ClientInfo{ServiceKey: "ns.a.simple_client"}
	inner.EXPECT().Client(ctx, "ns.a.simple_client").Return(want, nil)

	got, err := svc.Client(ctx, "ns.a.simple_client")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientValidation_Clients_Delegates(t *testing.T) {
	svc, inner := newValidated(t)
	ctx := context.Background()

	inner.EXPECT().Clients(ctx).Return([]models.ClientInfo{{ServiceKey: "a"}})

	assert.Len(t, svc.Clients(ctx), 1)
}

func TestClientValidation_Probe(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		path    string
		wantErr error
	}{
		{name: "empty key", key: "", path: "/", wantErr: service.ErrValidationNoServiceKey},
		{name: "relative path", key: "ns.a.simple_client", path: "health", wantErr: service.ErrValidationInvalidPath},
		{name: "empty path", key: "ns.a.simple_client", path: "", wantErr: service.ErrValidationInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newValidated(t)

			_, err := svc.Probe(context.Background(), tt.key, tt.path)

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientValidation_Probe_Delegates(t *testing.T) {
	svc, inner := newValidated(t)
	ctx := context.Background()

	inner.EXPECT().
		Probe(ctx, "ns.a.simple_client", "/health").
		Return(models.ProbeResult{StatusCode: 200}, nil)

	result, err := svc.Probe(ctx, "ns.a.simple_client", "/health")

	require.NoError(t, err)
	assert.Equal(t, 200, result.StatusCode)
}
