package ports

// FilesystemPort answers existence checks during resolution. A probe hit may
// be a file or a directory; callers that need a directory listing do their
// own follow-up lookups.
type FilesystemPort interface {
	Exists(path string) bool

	// Abs converts a path to absolute form, resolving against the current
	// working directory when the path is relative.
	Abs(path string) (string, error)
}
