package version

// Build-time variables. Override via -ldflags.
var (
	Version   = "0.1.0"
	Commit    = "dev"
	BuildDate = "dev"
)

// Info describes build/version metadata, surfaced in the MCP initialize
// response.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
}

// Get returns version info, filling empty fields with defaults.
func Get() Info {
	return Info{
		Version:   defaultOr(Version, "0.1.0"),
		Commit:    defaultOr(Commit, "dev"),
		BuildDate: defaultOr(BuildDate, "dev"),
	}
}

func defaultOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
