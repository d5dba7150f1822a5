// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

// Package redfish implements the device session over the Redfish REST API
// exposed by the iDRAC web service.
package redfish

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	idracerrors "github.com/srl-labs/idracctl/errors"
	"github.com/srl-labs/idracctl/session"
	"github.com/srl-labs/idracctl/types"
)

// Name is the transport name the Redfish opener is registered under.
const Name = "redfish"

const (
	managerPath        = "/redfish/v1/Managers/iDRAC.Embedded.1"
	attributesPath     = managerPath + "/Attributes"
	deleteJobQueuePath = managerPath + "/Oem/Dell/DellJobService/Actions/DellJobService.DeleteJobQueue"

	attrSyslogEnable = "SysLog.1.SysLogEnable"
	attrSyslogPort   = "SysLog.1.Port"
	attrSyslogServer = "SysLog.1.Server%d"

	valueEnabled  = "Enabled"
	valueDisabled = "Disabled"
)

func init() {
	session.Register(Name, &Opener{})
}

// Opener opens Redfish sessions. A nil Client gets a client built from the
// credentials.
type Opener struct {
	Client *http.Client
}

// Open validates reachability and credentials with a GET on the manager resource.
func (o *Opener) Open(ctx context.Context, creds *session.Credentials) (session.Session, error) {
	client := o.Client
	if client == nil {
		client = newHTTPClient(creds)
	}

	s := &Session{
		baseURL: "https://" + creds.HostPort(),
		addr:    creds.Address,
		user:    creds.Username,
		pass:    creds.Password,
		client:  client,
	}

	if err := s.request(ctx, http.MethodGet, managerPath, nil, nil); err != nil {
		return nil, err
	}

	log.Debugf("%s: redfish session opened", s.addr)

	return s, nil
}

func newHTTPClient(creds *session.Credentials) *http.Client {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	// BMCs ship self-signed certificates out of the box
	tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: creds.InsecureSkipVerify} //nolint:gosec

	return &http.Client{
		Transport: tr,
		Timeout:   creds.TimeoutOrDefault(),
	}
}

// Session is a Redfish device session. Requests are authenticated with
// basic auth, so Close has nothing to tear down on the device.
type Session struct {
	baseURL string
	addr    string
	user    string
	pass    string
	client  *http.Client
}

type attributes struct {
	Attributes map[string]any `json:"Attributes"`
}

// ReadSyslogConfig reads the SysLog.1 attribute group.
func (s *Session) ReadSyslogConfig(ctx context.Context) (*types.CurrentSyslogConfig, error) {
	attrs := &attributes{}
	if err := s.request(ctx, http.MethodGet, attributesPath, nil, attrs); err != nil {
		return nil, err
	}

	return syslogFromAttributes(attrs.Attributes)
}

func syslogFromAttributes(a map[string]any) (*types.CurrentSyslogConfig, error) {
	c := &types.CurrentSyslogConfig{}

	enable, ok := a[attrSyslogEnable].(string)
	if !ok {
		return nil, fmt.Errorf("attribute %s missing or not a string: %v", attrSyslogEnable, a[attrSyslogEnable])
	}
	c.Enabled = strings.EqualFold(enable, valueEnabled)

	port, err := intAttribute(a[attrSyslogPort])
	if err != nil {
		return nil, errors.Wrapf(err, "attribute %s", attrSyslogPort)
	}
	c.Port = port

	for i := 1; i <= types.MaxSyslogServers; i++ {
		v, _ := a[fmt.Sprintf(attrSyslogServer, i)].(string)
		c.Servers = append(c.Servers, v)
	}

	return c, nil
}

func intAttribute(v any) (int, error) {
	switch p := v.(type) {
	case float64:
		return int(p), nil
	case string:
		return strconv.Atoi(p)
	case nil:
		return 0, nil
	}

	return 0, fmt.Errorf("unexpected type %T", v)
}

// ApplySyslogEnable enables remote syslog and writes the port and all server slots.
func (s *Session) ApplySyslogEnable(ctx context.Context, port int,
	servers [types.MaxSyslogServers]string,
) (*types.DeviceCallResult, error) {
	a := map[string]any{
		attrSyslogEnable: valueEnabled,
		attrSyslogPort:   port,
	}
	for i, srv := range servers {
		a[fmt.Sprintf(attrSyslogServer, i+1)] = srv
	}

	return s.call(ctx, http.MethodPatch, attributesPath, &attributes{Attributes: a})
}

// ApplySyslogDisable disables remote syslog, leaving port and servers as they are.
func (s *Session) ApplySyslogDisable(ctx context.Context) (*types.DeviceCallResult, error) {
	return s.call(ctx, http.MethodPatch, attributesPath, &attributes{
		Attributes: map[string]any{attrSyslogEnable: valueDisabled},
	})
}

type deleteJobQueue struct {
	JobID string `json:"JobID"`
}

// DeleteJob deletes a single job through the Dell job service.
func (s *Session) DeleteJob(ctx context.Context, id string) (*types.DeviceCallResult, error) {
	return s.call(ctx, http.MethodPost, deleteJobQueuePath, &deleteJobQueue{JobID: id})
}

// DeleteAllJobs clears the job queue through the Dell job service.
func (s *Session) DeleteAllJobs(ctx context.Context) (*types.DeviceCallResult, error) {
	return s.call(ctx, http.MethodPost, deleteJobQueuePath, &deleteJobQueue{JobID: types.ClearAllJobsID})
}

func (s *Session) Close() error {
	s.client.CloseIdleConnections()
	log.Debugf("%s: redfish session closed", s.addr)

	return nil
}

// call performs a mutating request. 2xx is a Success result, 400 carries a
// Redfish error document and is an Error result with the device message,
// any other status is an *errors.HTTPError.
func (s *Session) call(ctx context.Context, method, path string, body any) (*types.DeviceCallResult, error) {
	resp, err := s.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: failed to read response body", s.addr)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		detail := decodeBody(raw)
		return &types.DeviceCallResult{
			Status:  types.StatusSuccess,
			Message: extendedMessage(detail),
			Detail:  detail,
		}, nil
	case resp.StatusCode == http.StatusBadRequest:
		detail := decodeBody(raw)
		if detail != nil {
			return &types.DeviceCallResult{
				Status:  types.StatusError,
				Message: extendedMessage(detail),
				Detail:  detail,
			}, nil
		}
	}

	return nil, newHTTPError(s.baseURL+path, resp.StatusCode, raw)
}

// request performs a read. Non-2xx statuses are returned as *errors.HTTPError.
func (s *Session) request(ctx context.Context, method, path string, body, target any) error {
	resp, err := s.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return newHTTPError(s.baseURL+path, resp.StatusCode, raw)
	}

	if target == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.Wrapf(err, "%s: error decoding %s response", s.addr, path)
	}

	return nil
}

func (s *Session) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, rd)
	if err != nil {
		return nil, err
	}

	req.SetBasicAuth(s.user, s.pass)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debugf("%s: %s %s", s.addr, method, path)

	resp, err := s.client.Do(req)
	if err != nil {
		// an interrupted run is not an unreachable device
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.Wrapf(ctxErr, "%s %s", method, path)
		}

		return nil, idracerrors.NewConnectionError(s.addr, err)
	}

	return resp, nil
}

func newHTTPError(url string, code int, raw []byte) *idracerrors.HTTPError {
	return &idracerrors.HTTPError{
		StatusCode: code,
		URL:        url,
		Body:       decodeBody(raw),
		Raw:        raw,
	}
}

func decodeBody(raw []byte) map[string]any {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}

	return m
}

// extendedMessage returns the first @Message.ExtendedInfo message of a
// Redfish response or error document.
func extendedMessage(doc map[string]any) string {
	if doc == nil {
		return ""
	}

	if e, ok := doc["error"].(map[string]any); ok {
		if m := extendedMessage(e); m != "" {
			return m
		}

		msg, _ := e["message"].(string)

		return msg
	}

	infos, _ := doc["@Message.ExtendedInfo"].([]any)
	for _, i := range infos {
		info, _ := i.(map[string]any)
		if msg, ok := info["Message"].(string); ok && msg != "" {
			return msg
		}
	}

	return ""
}
