package utils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStripNonPrintChars(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"plain":         {in: "RAC1032: JOB_QUEUE deleted.", want: "RAC1032: JOB_QUEUE deleted."},
		"bell and tabs": {in: "\aERROR:\tSWC0283", want: "ERROR:SWC0283"},
		"escape":        {in: "\x1b[0mracadm>>", want: "[0mracadm>>"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, StripNonPrintChars(tt.in)); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPointer(t *testing.T) {
	id := "JID_801841929470"

	got := Pointer(id)
	if got == nil || *got != id {
		t.Fatalf("Pointer() = %v, want pointer to %q", got, id)
	}

	id = "changed"
	if *got == id {
		t.Error("Pointer() must point to a copy")
	}
}
