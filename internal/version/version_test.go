// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	info := Info()

	assert.Contains(t, info, "mpgen version "+Version)
	assert.Contains(t, info, "commit: "+Commit)
	assert.Contains(t, info, runtime.Version())
	assert.Equal(t, Version, Short())
}
