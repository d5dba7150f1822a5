// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

// Package session defines the device session contract used by the controllers
// and a registry of the transports implementing it.
package session

import (
	"context"
	"fmt"
	"net"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	idracerrors "github.com/srl-labs/idracctl/errors"
	"github.com/srl-labs/idracctl/types"
)

const (
	// DefaultPort is the management port of the device web service.
	DefaultPort = 443
	// DefaultTimeout bounds a single transport operation.
	DefaultTimeout = 30 * time.Second
)

// Credentials describe how to reach and authenticate to one managed device.
type Credentials struct {
	Address            string
	Port               int
	Username           string
	Password           string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// Validate checks that the credentials are complete.
func (c *Credentials) Validate() error {
	switch {
	case c.Address == "":
		return errors.Wrap(idracerrors.ErrIncorrectInput, "device address is required")
	case c.Username == "":
		return errors.Wrap(idracerrors.ErrIncorrectInput, "device username is required")
	case c.Port < 0 || c.Port > 65535:
		return errors.Wrapf(idracerrors.ErrIncorrectInput, "incorrect device port number %d", c.Port)
	}

	return nil
}

// HostPort returns the address joined with the port, DefaultPort when unset.
func (c *Credentials) HostPort() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.PortOrDefault(DefaultPort)))
}

// PortOrDefault returns the configured port or def when unset.
func (c *Credentials) PortOrDefault(def int) int {
	if c.Port == 0 {
		return def
	}

	return c.Port
}

// TimeoutOrDefault returns the configured timeout or DefaultTimeout when unset.
func (c *Credentials) TimeoutOrDefault() time.Duration {
	if c.Timeout == 0 {
		return DefaultTimeout
	}

	return c.Timeout
}

// Session is an open, authenticated handle to one managed device.
// A Session is owned by a single invocation and must be closed by it.
type Session interface {
	// ReadSyslogConfig reads the current remote syslog settings.
	ReadSyslogConfig(ctx context.Context) (*types.CurrentSyslogConfig, error)
	// ApplySyslogEnable enables remote syslog with the given port and server slots.
	ApplySyslogEnable(ctx context.Context, port int, servers [types.MaxSyslogServers]string) (*types.DeviceCallResult, error)
	// ApplySyslogDisable disables remote syslog.
	ApplySyslogDisable(ctx context.Context) (*types.DeviceCallResult, error)
	// DeleteJob deletes a single job from the job queue.
	DeleteJob(ctx context.Context, id string) (*types.DeviceCallResult, error)
	// DeleteAllJobs clears the job queue.
	DeleteAllJobs(ctx context.Context) (*types.DeviceCallResult, error)
	// Close releases the session.
	Close() error
}

//go:generate mockgen -package=mocksession -source=session.go -destination=../mocks/mocksession/session.go

// Opener opens sessions to managed devices.
// Open returns an *errors.ConnectionError when the device cannot be reached.
type Opener interface {
	Open(ctx context.Context, creds *Credentials) (Session, error)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(ctx context.Context, creds *Credentials) (Session, error)

func (f OpenerFunc) Open(ctx context.Context, creds *Credentials) (Session, error) {
	return f(ctx, creds)
}

var (
	mu      sync.RWMutex
	openers = map[string]Opener{}
)

// Register makes a transport available under name.
// It panics when the name is registered twice.
func Register(name string, o Opener) {
	mu.Lock()
	defer mu.Unlock()

	if _, ok := openers[name]; ok {
		panic(fmt.Sprintf("session transport %q registered twice", name))
	}

	openers[name] = o
}

// GetOpener returns the transport registered under name.
func GetOpener(name string) (Opener, error) {
	mu.RLock()
	defer mu.RUnlock()

	o, ok := openers[name]
	if !ok {
		return nil, errors.Wrapf(idracerrors.ErrUnknownTransport, "%q, supported transports %q", name, transports())
	}

	return o, nil
}

// Transports lists the registered transport names.
func Transports() []string {
	mu.RLock()
	defer mu.RUnlock()

	return transports()
}

func transports() []string {
	names := make([]string, 0, len(openers))
	for n := range openers {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

// With opens a session, passes it to fn and closes it on every exit path,
// including a panic in fn. A close failure is logged and does not replace
// the result of fn.
func With(ctx context.Context, o Opener, creds *Credentials, fn func(Session) error) error {
	s, err := o.Open(ctx, creds)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := s.Close(); cerr != nil {
			log.Warnf("%s: failed to close device session: %v", creds.Address, cerr)
		}
	}()

	return fn(s)
}
