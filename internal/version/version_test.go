package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillFromVCS(t *testing.T) {
	settings := []debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef0123"},
		{Key: "vcs.time", Value: "2024-05-01T10:00:00Z"},
		{Key: "vcs.modified", Value: "true"},
	}

	info := fillFromVCS(Info{Version: "dev"}, settings)
	assert.Equal(t, "0123456789ab", info.GitCommit)
	assert.Equal(t, "2024-05-01T10:00:00Z", info.BuildTime)
	assert.True(t, info.Modified)
	assert.Equal(t, "dev (0123456789ab+dirty, 2024-05-01T10:00:00Z)", info.String())
}

func TestFillFromVCS_LdflagsWin(t *testing.T) {
	info := fillFromVCS(Info{Version: "1.2.0", GitCommit: "abc1234", BuildTime: "then"}, []debug.BuildSetting{
		{Key: "vcs.revision", Value: "fffffffffffffff"},
		{Key: "vcs.time", Value: "now"},
	})
	assert.Equal(t, "abc1234", info.GitCommit)
	assert.Equal(t, "then", info.BuildTime)
}

func TestCurrent_NeverEmpty(t *testing.T) {
	info := Current()
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GitCommit)
	assert.NotEmpty(t, info.BuildTime)
}
