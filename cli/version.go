package cli

import "fmt"

var (
	// BuildTag set at build time, empty if not a tagged version
	BuildTag string
	// BuildTime set at build time
	BuildTime string
	// BuildSHA set at build time
	BuildSHA string
)

type version struct {
	buildTag  string
	buildTime string
	buildSHA  string
}

// Version returns a simplified version string for the locate command
func Version() string {
	return getVersion().String()
}

func getVersion() *version {
	tag := BuildTag
	if len(tag) == 0 {
		tag = "dirty"
	}

	return &version{
		buildTag:  tag,
		buildTime: BuildTime,
		buildSHA:  BuildSHA,
	}
}

func (v *version) String() string {
	return fmt.Sprintf("%s-%s", v.buildSHA, v.buildTag)
}
