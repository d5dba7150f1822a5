// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

// Package racadm implements the device session by running RACADM commands
// over an SSH connection to the iDRAC.
package racadm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/scrapli/scrapligo/driver/generic"
	"github.com/scrapli/scrapligo/driver/options"
	scraplilogging "github.com/scrapli/scrapligo/logging"
	"github.com/scrapli/scrapligo/response"
	"github.com/scrapli/scrapligo/transport"
	"github.com/scrapli/scrapligo/util"
	log "github.com/sirupsen/logrus"
	idracerrors "github.com/srl-labs/idracctl/errors"
	"github.com/srl-labs/idracctl/session"
	"github.com/srl-labs/idracctl/types"
)

// Name is the transport name the RACADM opener is registered under.
const Name = "racadm"

// DefaultPort is the iDRAC SSH port.
const DefaultPort = 22

// promptPattern matches the racadm shell prompt of iDRAC9 and the SMCLP
// prompt of older firmware.
var promptPattern = regexp.MustCompile(`(?im)^(racadm>>|/admin1->)\s*$`)

// errorMarker is the prefix RACADM puts on rejected commands.
const errorMarker = "ERROR"

// commander is the part of the scrapligo generic driver a session needs.
type commander interface {
	SendCommand(command string, opts ...util.Option) (*response.Response, error)
	Close() error
}

// dial opens the SSH connection; replaced in tests.
var dial = func(creds *session.Credentials) (commander, error) {
	li, err := scraplilogging.NewInstance(
		scraplilogging.WithLevel("debug"),
		scraplilogging.WithLogger(log.Debugln))
	if err != nil {
		return nil, err
	}

	opts := []util.Option{
		options.WithAuthNoStrictKey(),
		options.WithAuthUsername(creds.Username),
		options.WithAuthPassword(creds.Password),
		options.WithPort(creds.PortOrDefault(DefaultPort)),
		options.WithTransportType(transport.StandardTransport),
		options.WithTimeoutOps(creds.TimeoutOrDefault()),
		options.WithPromptPattern(promptPattern),
		options.WithFailedWhenContains([]string{errorMarker}),
		options.WithLogger(li),
	}

	d, err := generic.NewDriver(creds.Address, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create racadm driver for %s", creds.Address)
	}

	if err := d.Open(); err != nil {
		return nil, openError(creds.Address, err)
	}

	return d, nil
}

// authFailureMarkers are the texts of the x/crypto/ssh handshake errors
// raised when the device rejects the credentials.
var authFailureMarkers = []string{
	"unable to authenticate",
	"no supported methods remain",
}

// openError classifies a failed connection attempt. Rejected credentials
// are a failure of the operation, anything else means the device is unreachable.
func openError(addr string, err error) error {
	if isAuthError(err) {
		return errors.Wrapf(err, "%s: authentication failed", addr)
	}

	return idracerrors.NewConnectionError(addr, err)
}

func isAuthError(err error) bool {
	if errors.Is(err, util.ErrAuthError) {
		return true
	}

	msg := err.Error()
	for _, m := range authFailureMarkers {
		if strings.Contains(msg, m) {
			return true
		}
	}

	return false
}

func init() {
	session.Register(Name, session.OpenerFunc(Open))
}

// Open connects to the iDRAC over SSH.
func Open(_ context.Context, creds *session.Credentials) (session.Session, error) {
	d, err := dial(creds)
	if err != nil {
		return nil, err
	}

	log.Debugf("%s: racadm session opened", creds.Address)

	return &Session{addr: creds.Address, d: d}, nil
}

// Session is a RACADM device session.
type Session struct {
	addr string
	d    commander
}

// ReadSyslogConfig runs "racadm get iDRAC.SysLog" and parses the attribute group.
func (s *Session) ReadSyslogConfig(_ context.Context) (*types.CurrentSyslogConfig, error) {
	resp, err := s.send("racadm get iDRAC.SysLog")
	if err != nil {
		return nil, err
	}

	if resp.Failed != nil {
		return nil, fmt.Errorf("%s: failed to read syslog attributes: %s", s.addr, nativeMessage(resp.Result))
	}

	return parseSyslogGroup(resp.Result)
}

// ApplySyslogEnable writes the port and the three server slots, then enables
// remote syslog. The first rejected command ends the call.
func (s *Session) ApplySyslogEnable(_ context.Context, port int,
	servers [types.MaxSyslogServers]string,
) (*types.DeviceCallResult, error) {
	cmds := []string{fmt.Sprintf("racadm set iDRAC.SysLog.Port %d", port)}
	for i, srv := range servers {
		cmds = append(cmds, fmt.Sprintf("racadm set iDRAC.SysLog.Server%d %q", i+1, srv))
	}
	cmds = append(cmds, "racadm set iDRAC.SysLog.SysLogEnable Enabled")

	return s.runAll(cmds)
}

// ApplySyslogDisable disables remote syslog.
func (s *Session) ApplySyslogDisable(_ context.Context) (*types.DeviceCallResult, error) {
	return s.runAll([]string{"racadm set iDRAC.SysLog.SysLogEnable Disabled"})
}

// DeleteJob runs "racadm jobqueue delete -i <id>".
func (s *Session) DeleteJob(_ context.Context, id string) (*types.DeviceCallResult, error) {
	return s.runAll([]string{"racadm jobqueue delete -i " + id})
}

// DeleteAllJobs runs "racadm jobqueue delete --all".
func (s *Session) DeleteAllJobs(_ context.Context) (*types.DeviceCallResult, error) {
	return s.runAll([]string{"racadm jobqueue delete --all"})
}

func (s *Session) Close() error {
	log.Debugf("%s: racadm session closed", s.addr)

	return s.d.Close()
}

func (s *Session) runAll(cmds []string) (*types.DeviceCallResult, error) {
	var r *types.DeviceCallResult

	for _, c := range cmds {
		resp, err := s.send(c)
		if err != nil {
			return nil, err
		}

		r = callResult(c, resp)
		if !r.Succeeded() {
			break
		}
	}

	return r, nil
}

func (s *Session) send(cmd string) (*response.Response, error) {
	log.Debugf("%s: --> %s", s.addr, cmd)

	resp, err := s.d.SendCommand(cmd)
	if err != nil {
		return nil, idracerrors.NewConnectionError(s.addr, err)
	}

	log.Debugf("%s: <-- %s", s.addr, resp.Result)

	return resp, nil
}
