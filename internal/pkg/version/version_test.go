package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

// withBuildInfo readBuildInfo를 교체합니다. 전역 변수를 변경하므로 병렬로 실행하지 않습니다.
func withBuildInfo(t *testing.T, bi *debug.BuildInfo, ok bool) {
	t.Helper()

	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, ok }
	t.Cleanup(func() { readBuildInfo = orig })
}

func TestEnrich(t *testing.T) {
	t.Run("주입된 값이 없으면 VCS 메타데이터 사용", func(t *testing.T) {
		withBuildInfo(t, &debug.BuildInfo{
			Main: debug.Module{Version: "v1.3.0"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abcdef1234567"},
				{Key: "vcs.time", Value: "2026-10-01T00:00:00Z"},
				{Key: "vcs.modified", Value: "true"},
			},
		}, true)

		got := enrich(Info{})
		assert.Equal(t, "v1.3.0", got.Version)
		assert.Equal(t, "abcdef1234567", got.Commit)
		assert.Equal(t, "2026-10-01T00:00:00Z", got.BuildDate)
		assert.True(t, got.DirtyBuild)
		assert.Equal(t, runtime.Version(), got.GoVersion)
		assert.Equal(t, runtime.GOOS, got.OS)
		assert.Equal(t, runtime.GOARCH, got.Arch)
	})

	t.Run("주입된 값이 우선", func(t *testing.T) {
		withBuildInfo(t, &debug.BuildInfo{
			Main:     debug.Module{Version: "v9.9.9"},
			Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "zzz"}},
		}, true)

		got := enrich(Info{Version: "v1.0.0", Commit: "f25b8bf"})
		assert.Equal(t, "v1.0.0", got.Version)
		assert.Equal(t, "f25b8bf", got.Commit)
	})

	t.Run("정보가 전혀 없으면 unknown", func(t *testing.T) {
		withBuildInfo(t, nil, false)

		got := enrich(Info{Commit: none})
		assert.Equal(t, unknown, got.Version)
		assert.Equal(t, unknown, got.Commit)
	})

	t.Run("(devel) 버전은 사용하지 않음", func(t *testing.T) {
		withBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true)

		assert.Equal(t, unknown, enrich(Info{}).Version)
	})
}

func TestInfo_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		info Info
		want string
	}{
		{name: "빈 버전", info: Info{}, want: unknown},
		{name: "버전만", info: Info{Version: "v1.0.0"}, want: "v1.0.0"},
		{
			name: "전체 정보",
			info: Info{Version: "v1.0.0", Commit: "f25b8bf1234", BuildNumber: "42", GoVersion: "go1.24.0", OS: "linux", Arch: "amd64", DirtyBuild: true},
			want: "v1.0.0+dirty (commit: f25b8bf, build: 42, go_version: go1.24.0, os: linux, arch: amd64)",
		},
		{name: "unknown 커밋 생략", info: Info{Version: "v1", Commit: unknown}, want: "v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	info := Get()
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Commit)
	assert.Equal(t, info.Version, Version())
	assert.Equal(t, info.Commit, Commit())

	m := info.ToMap()
	assert.Equal(t, info.Version, m["version"])
	assert.Equal(t, info.DirtyBuild, m["dirty_build"])
}
