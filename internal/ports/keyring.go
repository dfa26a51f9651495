package ports

// Keyring stores small secrets (the vault encryption key) in the operating
// system's credential store.
type Keyring interface {
	GetKey(keyName string) (string, error)
	SetKey(keyName string, keyValue string) error
	HasKey(keyName string) (bool, error)
}
