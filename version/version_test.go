package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	var tests = []struct {
		info     debug.BuildInfo
		expected string
	}{
		{
			info:     debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			expected: "unavailable",
		},
		{
			info:     debug.BuildInfo{Main: debug.Module{Version: "v0.3.1"}},
			expected: "v0.3.1",
		},
		{
			info: debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs", Value: "git"},
				{Key: "vcs.revision", Value: "0a1b2c3"},
			}},
			expected: "built from git revision 0a1b2c3",
		},
		{
			info: debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs", Value: "git"},
				{Key: "vcs.revision", Value: "0a1b2c3"},
				{Key: "vcs.time", Value: "2024-05-01T10:00:00Z"},
				{Key: "vcs.modified", Value: "true"},
			}},
			expected: "built from git revision 0a1b2c3-dirty at 2024-05-01T10:00:00Z",
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, describe(&test.info))
	}
}
