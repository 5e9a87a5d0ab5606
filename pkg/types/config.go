package types

// ArchiveConfig holds settings for the archive (conversion) stage.
type ArchiveConfig struct {
	// OutputDir is the destination directory for rendered Markdown files.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Limit caps how many conversations are processed. Zero means all.
	Limit int `json:"limit" yaml:"limit"`

	// SlugMaxLen bounds the slug portion of derived filenames (default 50).
	SlugMaxLen int `json:"slug_max_len" yaml:"slug_max_len"`
}

// CatalogConfig holds settings for the conversation catalog.
type CatalogConfig struct {
	// CatalogDir is the directory holding the SQLite database and exports.
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
