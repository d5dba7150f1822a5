package types

const (
	// StatusSuccess is the native status of an accepted device call.
	StatusSuccess = "Success"
	// StatusError is the native status of a rejected device call.
	StatusError = "Error"

	// ClearAllJobsID is the job id the device understands as "every job in the queue".
	ClearAllJobsID = "JID_CLEARALL"
)

// ExecutionMode selects whether a reconciliation may mutate the device.
type ExecutionMode int

const (
	// Apply performs the mutating device call when a change is needed.
	Apply ExecutionMode = iota
	// DryRun only reports whether a change would be made.
	DryRun
)

func (m ExecutionMode) String() string {
	switch m {
	case Apply:
		return "apply"
	case DryRun:
		return "check"
	}

	return "unknown"
}

// ModeFromCheck maps a check-mode flag to an ExecutionMode.
func ModeFromCheck(check bool) ExecutionMode {
	if check {
		return DryRun
	}

	return Apply
}

// DeviceCallResult is the tagged outcome of a mutating device call.
// A call the device rejected is a DeviceCallResult with a non-success Status,
// not an error.
type DeviceCallResult struct {
	// Status is the device native status, Success or Error at minimum.
	Status string
	// Message is the device native message, reported verbatim.
	Message string
	// Detail is the raw structured response, if any.
	Detail map[string]any
}

// Succeeded reports whether the device accepted the call.
func (r *DeviceCallResult) Succeeded() bool {
	return r != nil && r.Status == StatusSuccess
}

// NativeMessage returns the device message, falling back to the status text.
func (r *DeviceCallResult) NativeMessage() string {
	if r == nil {
		return ""
	}

	if r.Message != "" {
		return r.Message
	}

	return r.Status
}

// Payload flattens the result into the map reported as the envelope status.
func (r *DeviceCallResult) Payload() map[string]any {
	if r == nil {
		return nil
	}

	p := make(map[string]any, len(r.Detail)+2)
	for k, v := range r.Detail {
		p[k] = v
	}

	p["Status"] = r.Status
	if r.Message != "" {
		p["Message"] = r.Message
	}

	return p
}
