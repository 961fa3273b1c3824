// Package fixtures carries the embedded seed bundle the store is initialized
// from. Bump Version whenever any of the JSON files change so every device
// reseeds on its next start.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/swipehome/api/internal/domain"
)

// Version gates wholesale reseeding of the non-identity tables.
const Version = "2026-08-31-listings-v1"

//go:embed listings.json renters.json listers.json administrators.json
var files embed.FS

// SeedIdentity is an identity fixture. Passwords ship as plaintext here and
// are bcrypt-hashed at seed time; they never reach the store in this form.
type SeedIdentity struct {
	domain.Identity
	Password string `json:"password"`
}

// Bundle is the full fixture payload handed to the seed manager.
type Bundle struct {
	Listings       []domain.Listing
	Renters        []SeedIdentity
	Listers        []SeedIdentity
	Administrators []SeedIdentity
}

// Load decodes the embedded bundle.
func Load() (Bundle, error) {
	var b Bundle
	if err := decode("listings.json", &b.Listings); err != nil {
		return Bundle{}, err
	}
	if err := decode("renters.json", &b.Renters); err != nil {
		return Bundle{}, err
	}
	if err := decode("listers.json", &b.Listers); err != nil {
		return Bundle{}, err
	}
	if err := decode("administrators.json", &b.Administrators); err != nil {
		return Bundle{}, err
	}
	return b, nil
}

func decode(name string, out any) error {
	data, err := files.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}
