package curator

// DefaultSiteName is used when no site name is configured.
const DefaultSiteName = "The Library"

// Config holds the configuration resolved once at startup. Components
// receive it explicitly; nothing reads the environment after main.
type Config struct {
	// LibraryDir is the library root: one subdirectory per article.
	LibraryDir string

	// SiteName prefixes every generated page title.
	SiteName string

	// BaseURL, when set, absolutizes the locations written to the
	// sitemap. Optional.
	BaseURL string
}

// Validate returns an error if the configuration is unusable.
func (c Config) Validate() error {
	if c.LibraryDir == "" {
		return Errorf(ECONFIG, "library path required (set CURATOR_LIBRARY)")
	}
	return nil
}
