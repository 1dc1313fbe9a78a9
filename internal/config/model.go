package config

// File is the format-agnostic content of a configuration file. Nil fields
// were not set in the file.
type File struct {
	Directory *string
	Verbosity *int
	Tool      *string
	Compile   ToolSection
	Sync      ToolSection
}

// ToolSection holds the per-tool settings of a configuration file.
type ToolSection struct {
	Tool *string
	// ToolOptions is nil when unset and non-nil, possibly empty, otherwise.
	ToolOptions []string
}
