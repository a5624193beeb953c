package filestorage

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// Save writes data under name, replacing any previous file, and returns its public URL
	Save(name string, data []byte) (string, error)

	// Delete removes a file from storage
	Delete(name string) error
}
