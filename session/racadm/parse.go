package racadm

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/scrapli/scrapligo/response"
	"github.com/srl-labs/idracctl/types"
	"github.com/srl-labs/idracctl/utils"
)

// parseSyslogGroup parses "racadm get iDRAC.SysLog" output:
//
//	[Key=iDRAC.Embedded.1#SysLog.1]
//	Port=514
//	Server1=10.0.0.1
//	Server2=
//	Server3=
//	SysLogEnable=Enabled
func parseSyslogGroup(out string) (*types.CurrentSyslogConfig, error) {
	attrs := map[string]string{}

	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "[") {
			continue
		}

		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		// read-only attributes are prefixed with '#'
		attrs[strings.TrimPrefix(strings.TrimSpace(k), "#")] = strings.TrimSpace(v)
	}

	enable, ok := attrs["SysLogEnable"]
	if !ok {
		return nil, fmt.Errorf("SysLogEnable attribute not found in output %q", out)
	}

	c := &types.CurrentSyslogConfig{
		Enabled: strings.EqualFold(enable, "Enabled") || enable == "1",
	}

	if p := attrs["Port"]; p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid syslog port %q: %w", p, err)
		}
		c.Port = port
	}

	for i := 1; i <= types.MaxSyslogServers; i++ {
		c.Servers = append(c.Servers, attrs[fmt.Sprintf("Server%d", i)])
	}

	return c, nil
}

// callResult turns a RACADM command response into a device call result.
func callResult(cmd string, resp *response.Response) *types.DeviceCallResult {
	r := &types.DeviceCallResult{
		Status:  types.StatusSuccess,
		Message: nativeMessage(resp.Result),
		Detail: map[string]any{
			"Command": cmd,
			"Output":  strings.TrimSpace(resp.Result),
		},
	}

	if resp.Failed != nil {
		r.Status = types.StatusError
	}

	return r
}

// nativeMessage returns the ERROR line of the output when there is one,
// the whole trimmed output otherwise.
func nativeMessage(out string) string {
	out = strings.ReplaceAll(out, "\r", "")

	for _, l := range strings.Split(out, "\n") {
		l = strings.TrimSpace(utils.StripNonPrintChars(l))
		if strings.HasPrefix(l, errorMarker) {
			return l
		}
	}

	return strings.TrimSpace(out)
}
