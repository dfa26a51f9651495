package ports

type AccessMode int

const (
	// OwnerRead keeps a file private to its owner; everything the vault
	// writes uses this mode.
	OwnerRead AccessMode = iota
	OwnerReadExecute
)

type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte, accessMode AccessMode) error
	FileExists(path string) (bool, error)
}
