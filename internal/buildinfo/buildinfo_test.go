package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGet_DefaultsAndSet(t *testing.T) {
	ov, od, oc := BuildVersion, BuildDate, BuildCommit
	t.Cleanup(func() { BuildVersion, BuildDate, BuildCommit = ov, od, oc })

	BuildVersion, BuildDate, BuildCommit = "", "", ""
	require.Equal(t, Info{Version: "N/A", Date: "N/A", Commit: "N/A"}, Get())

	BuildVersion, BuildDate, BuildCommit = "v1", "2025-09-06", "deadbeef"
	info := Get()
	require.Equal(t, Info{Version: "v1", Date: "2025-09-06", Commit: "deadbeef"}, info)

	core, obs := observer.New(zap.InfoLevel)
	info.Log(zap.New(core).Sugar())
	require.Equal(t, "v1", obs.All()[0].ContextMap()["version"])
}
