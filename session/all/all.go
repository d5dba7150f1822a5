// Copyright 2020 Nokia
// Licensed under the BSD 3-Clause License.
// SPDX-License-Identifier: BSD-3-Clause

// Package all registers every device session transport.
package all

import (
	_ "github.com/srl-labs/idracctl/session/racadm"
	_ "github.com/srl-labs/idracctl/session/redfish"
)
