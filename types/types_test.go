package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	idracerrors "github.com/srl-labs/idracctl/errors"
)

func TestNewDesiredSyslogConfig(t *testing.T) {
	tests := map[string]struct {
		enabled  bool
		servers  []string
		port     int
		want     *DesiredSyslogConfig
		wantErr  error
		wantSlot [MaxSyslogServers]string
	}{
		"defaults port": {
			enabled:  true,
			servers:  []string{"10.0.0.1", "10.0.0.2"},
			want:     &DesiredSyslogConfig{Enabled: true, Servers: []string{"10.0.0.1", "10.0.0.2"}, Port: 514},
			wantSlot: [MaxSyslogServers]string{"10.0.0.1", "10.0.0.2", ""},
		},
		"custom port no servers": {
			enabled: true,
			port:    1514,
			want:    &DesiredSyslogConfig{Enabled: true, Port: 1514},
		},
		"too many servers": {
			enabled: true,
			servers: []string{"a", "b", "c", "d"},
			wantErr: idracerrors.ErrIncorrectInput,
		},
		"bad port": {
			enabled: true,
			port:    70000,
			wantErr: idracerrors.ErrIncorrectInput,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := NewDesiredSyslogConfig(tt.enabled, tt.servers, tt.port)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got error %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("config mismatch (-want +got):\n%s", d)
			}

			if d := cmp.Diff(tt.wantSlot, got.PaddedServers()); d != "" {
				t.Errorf("padded servers mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestDeviceCallResult(t *testing.T) {
	r := &DeviceCallResult{
		Status: StatusError,
		Detail: map[string]any{"MessageID": "SUP011"},
	}

	if r.Succeeded() {
		t.Error("error result reported as success")
	}

	if got := r.NativeMessage(); got != StatusError {
		t.Errorf("NativeMessage() = %q, want %q", got, StatusError)
	}

	want := map[string]any{"MessageID": "SUP011", "Status": "Error"}
	if d := cmp.Diff(want, r.Payload()); d != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", d)
	}

	var nilResult *DeviceCallResult
	if nilResult.Succeeded() || nilResult.Payload() != nil {
		t.Error("nil result must not succeed or carry a payload")
	}
}

func TestModeFromCheck(t *testing.T) {
	if ModeFromCheck(true) != DryRun || ModeFromCheck(false) != Apply {
		t.Error("unexpected mode mapping")
	}

	if DryRun.String() != "check" {
		t.Errorf("DryRun.String() = %q", DryRun.String())
	}
}

func TestValidatePortOnlyWhenEnabled(t *testing.T) {
	tests := map[string]struct {
		cfg     DesiredSyslogConfig
		wantErr bool
	}{
		"disabled zero value":       {cfg: DesiredSyslogConfig{}},
		"disabled port ignored":     {cfg: DesiredSyslogConfig{Port: 70000}},
		"enabled zero port":         {cfg: DesiredSyslogConfig{Enabled: true}, wantErr: true},
		"enabled port in range":     {cfg: DesiredSyslogConfig{Enabled: true, Port: 514}},
		"disabled too many servers": {cfg: DesiredSyslogConfig{Servers: []string{"a", "b", "c", "d"}}, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
