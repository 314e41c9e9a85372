package version

import (
	"runtime/debug"
	"sync"
)

const modulePath = "github.com/garrettladley/upay"

const product = "upay-go"

const versionDevel = "devel"

// version is set via ldflags at build time.
// falls back to the module version recorded in the build info, which covers
// both the CLI (main module) and applications importing the SDK (dependency).
var version = versionDevel

var once sync.Once

func Get() string {
	once.Do(func() {
		if version != versionDevel {
			return
		}
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		if v := fromBuildInfo(info); v != "" {
			version = v
		}
	})
	return version
}

// UserAgent is the value sent in the User-Agent header of every SDK request.
func UserAgent() string {
	return product + "/" + Get()
}

func fromBuildInfo(info *debug.BuildInfo) string {
	if info.Main.Path == modulePath {
		return usable(info.Main.Version)
	}
	for _, dep := range info.Deps {
		if dep.Path != modulePath {
			continue
		}
		if dep.Replace != nil {
			return usable(dep.Replace.Version)
		}
		return usable(dep.Version)
	}
	return ""
}

func usable(v string) string {
	if v == "" || v == "("+versionDevel+")" {
		return ""
	}
	return v
}
