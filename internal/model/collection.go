package model

// Collection is a named resource group in the remote data store.
type Collection struct {
	Name        string // wire name used in /etc/get/{name} and /etc/edit/{name}
	Plural      string
	DisplayName string // record field printed instead of the id when present
}

var (
	Teams   = Collection{Name: "team", Plural: "teams", DisplayName: "team_name"}
	Members = Collection{Name: "member", Plural: "members", DisplayName: "name_zh"}
)

// IgnoreEncryption asks the store to return and match the listed fields unencrypted.
type IgnoreEncryption struct {
	ID bool `json:"_id"`
}

// DefaultIgnoreEncryption is sent with every request this tool makes.
var DefaultIgnoreEncryption = IgnoreEncryption{ID: true}
