package otel

import (
	"context"
	"strings"
	"testing"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := Setup(context.Background(), Settings{ServiceName: "storefront-test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), Settings{
		ServiceName: "storefront-test",
		Endpoint:    "http://localhost:4318",
		Disabled:    true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no export actually happens.
	shutdown, err := Setup(context.Background(), Settings{
		ServiceName: "storefront-test",
		Environment: "test",
		Endpoint:    "http://192.0.2.1:4318",
		SampleRatio: 0.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_RejectsBadInputs(t *testing.T) {
	for name, s := range map[string]Settings{
		"no service":  {Endpoint: "http://localhost:4318"},
		"no scheme":   {ServiceName: "storefront", Endpoint: "localhost:4318"},
		"grpc scheme": {ServiceName: "storefront", Endpoint: "grpc://localhost:4317"},
		"unparseable": {ServiceName: "storefront", Endpoint: "http://[::1"},
	} {
		if _, err := Setup(context.Background(), s); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestSettingsSampler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ratio float64
		want  string
	}{
		{ratio: 0, want: "AlwaysOnSampler"},
		{ratio: 1, want: "AlwaysOnSampler"},
		{ratio: 0.25, want: "TraceIDRatioBased{0.25}"},
	}
	for _, tc := range tests {
		got := Settings{SampleRatio: tc.ratio}.sampler().Description()
		if !strings.Contains(got, tc.want) {
			t.Fatalf("sampler(%v) = %q, want it to contain %q", tc.ratio, got, tc.want)
		}
	}
}
