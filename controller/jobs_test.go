// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

package controller

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	idracerrors "github.com/srl-labs/idracctl/errors"
	"github.com/srl-labs/idracctl/mocks/mocksession"
	"github.com/srl-labs/idracctl/session"
	"github.com/srl-labs/idracctl/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCreds = &session.Credentials{
	Address:  "192.168.0.1",
	Username: "user_name",
	Password: "user_password",
	Port:     443,
}

// openerFor returns a mock opener handing out s exactly once.
func openerFor(ctrl *gomock.Controller, s session.Session) *mocksession.MockOpener {
	o := mocksession.NewMockOpener(ctrl)
	o.EXPECT().Open(gomock.Any(), testCreds).Return(s, nil)

	return o
}

func TestJobControllerDelete(t *testing.T) {
	jobDeleted := &types.DeviceCallResult{
		Status:  types.StatusSuccess,
		Message: "The specified job was deleted",
		Detail:  map[string]any{"MessageID": "SUP020", "ReturnValue": "0"},
	}
	queueFailed := &types.DeviceCallResult{
		Status:  types.StatusError,
		Message: "Unable to delete the job queue",
		Detail:  map[string]any{"MessageID": "SUP011"},
	}

	tests := map[string]struct {
		jobID  string
		expect func(s *mocksession.MockSession)
		want   *types.OperationResult
	}{
		"delete one job": {
			jobID: "JID_801841929470",
			expect: func(s *mocksession.MockSession) {
				s.EXPECT().DeleteJob(gomock.Any(), "JID_801841929470").Return(jobDeleted, nil)
			},
			want: &types.OperationResult{
				Msg:     "Successfully deleted the job.",
				Changed: true,
				Status:  jobDeleted.Payload(),
			},
		},
		"delete job queue": {
			expect: func(s *mocksession.MockSession) {
				s.EXPECT().DeleteAllJobs(gomock.Any()).Return(&types.DeviceCallResult{Status: types.StatusSuccess}, nil)
			},
			want: &types.OperationResult{
				Msg:     "Successfully deleted the job queue.",
				Changed: true,
				Status:  map[string]any{"Status": "Success"},
			},
		},
		"delete job queue rejected": {
			expect: func(s *mocksession.MockSession) {
				s.EXPECT().DeleteAllJobs(gomock.Any()).Return(queueFailed, nil)
			},
			want: &types.OperationResult{
				Msg:    "Failed to delete the Job: None.",
				Failed: true,
				Status: queueFailed.Payload(),
			},
		},
		"delete unknown job rejected": {
			jobID: "JID_000000000000",
			expect: func(s *mocksession.MockSession) {
				s.EXPECT().DeleteJob(gomock.Any(), "JID_000000000000").
					Return(&types.DeviceCallResult{Status: types.StatusError, Message: "Invalid Job ID"}, nil)
			},
			want: &types.OperationResult{
				Msg:    "Failed to delete the Job: JID_000000000000.",
				Failed: true,
				Status: map[string]any{"Status": "Error", "Message": "Invalid Job ID"},
			},
		},
		"http error": {
			jobID: "JID_801841929470",
			expect: func(s *mocksession.MockSession) {
				s.EXPECT().DeleteJob(gomock.Any(), gomock.Any()).Return(nil, &idracerrors.HTTPError{
					StatusCode: 500,
					Body:       map[string]any{"error": map[string]any{"code": "Base.1.0.GeneralError"}},
				})
			},
			want: &types.OperationResult{
				Msg:       "HTTP Error 500: Internal Server Error",
				Failed:    true,
				ErrorInfo: map[string]any{"error": map[string]any{"code": "Base.1.0.GeneralError"}},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s := mocksession.NewMockSession(ctrl)
			tt.expect(s)
			s.EXPECT().Close().Return(nil)

			got := Invoke(context.Background(), openerFor(ctrl, s), testCreds, NewJobController(tt.jobID), types.Apply)

			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("result mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestJobControllerCheckModeUnsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no expectations: opening a session would fail the test
	o := mocksession.NewMockOpener(ctrl)

	got := Invoke(context.Background(), o, testCreds, NewJobController("JID_801841929470"), types.DryRun)

	if !got.Failed || got.Changed {
		t.Fatalf("expected failed unchanged result, got %+v", got)
	}

	if got.Msg != "jobs delete: check mode is not supported" {
		t.Errorf("unexpected message %q", got.Msg)
	}

	if _, err := NewJobController("").Run(context.Background(), nil, types.DryRun); !errors.Is(err, idracerrors.ErrUnsupportedCheckMode) {
		t.Errorf("Run in DryRun returned %v", err)
	}
}

func TestInvokeUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	// sessions are never handed out, so no read or mutating call can happen
	o := mocksession.NewMockOpener(ctrl)
	o.EXPECT().Open(gomock.Any(), testCreds).
		Return(nil, idracerrors.NewConnectionError(testCreds.Address, errors.New("connection refused"))).
		Times(2)

	for _, c := range []Controller{
		NewJobController(""),
		&SyslogController{Desired: &types.DesiredSyslogConfig{Enabled: true, Port: 514}},
	} {
		got := Invoke(context.Background(), o, testCreds, c, types.Apply)

		if !got.Unreachable || got.Failed || got.Changed {
			t.Errorf("%s: expected unreachable result, got %+v", c.Name(), got)
		}
	}
}

func TestInvokeInvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	o := mocksession.NewMockOpener(ctrl)

	got := Invoke(context.Background(), o, &session.Credentials{Address: "192.168.0.1"}, NewJobController(""), types.Apply)

	if !got.Failed {
		t.Errorf("expected failed result, got %+v", got)
	}
}

func TestInvokeRecoversPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocksession.NewMockSession(ctrl)
	s.EXPECT().DeleteAllJobs(gomock.Any()).DoAndReturn(func(context.Context) (*types.DeviceCallResult, error) {
		var detail map[string]any
		detail["x"] = 1 // nil map write
		return nil, nil
	})
	s.EXPECT().Close().Return(nil)

	got := Invoke(context.Background(), openerFor(ctrl, s), testCreds, NewJobController(""), types.Apply)

	if !got.Failed || got.Changed {
		t.Errorf("expected failed result, got %+v", got)
	}
}

func TestInvokeNilArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	o := mocksession.NewMockOpener(ctrl)

	tests := map[string]func() *types.OperationResult{
		"nil credentials": func() *types.OperationResult {
			return Invoke(context.Background(), o, nil, NewJobController(""), types.Apply)
		},
		"nil controller": func() *types.OperationResult {
			return Invoke(context.Background(), o, testCreds, nil, types.Apply)
		},
		"nil opener": func() *types.OperationResult {
			return Invoke(context.Background(), nil, testCreds, NewJobController(""), types.Apply)
		},
	}

	for name, invoke := range tests {
		t.Run(name, func(t *testing.T) {
			var got *types.OperationResult

			assert.NotPanics(t, func() { got = invoke() })
			require.NotNil(t, got)
			assert.True(t, got.Failed)
			assert.False(t, got.Changed)
		})
	}
}
