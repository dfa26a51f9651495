package domain

// Secret is one named value stored in the vault.
type Secret struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
