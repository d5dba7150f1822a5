package types

// AttributeDiff is a single difference between desired and current state.
type AttributeDiff struct {
	Attribute string `json:"attribute"`
	Before    any    `json:"before"`
	After     any    `json:"after"`
}

// Diff is the structured difference between desired and current state.
// An empty Diff means the device is already in the desired state.
type Diff []AttributeDiff

// Satisfied reports whether no differences were found.
func (d Diff) Satisfied() bool {
	return len(d) == 0
}

// OperationResult is the result envelope of one invocation against one device.
//
// Failed and Unreachable are mutually exclusive and Changed is false
// whenever either of them is set.
type OperationResult struct {
	Msg         string         `json:"msg"`
	Changed     bool           `json:"changed"`
	Failed      bool           `json:"failed"`
	Unreachable bool           `json:"unreachable,omitempty"`
	Status      map[string]any `json:"status,omitempty"`
	ErrorInfo   map[string]any `json:"error_info,omitempty"`
	Diff        Diff           `json:"diff,omitempty"`
}
