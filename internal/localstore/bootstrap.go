package localstore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/swipehome/api/internal/domain"
	"github.com/swipehome/api/internal/fixtures"
	"golang.org/x/crypto/bcrypt"
)

// SeedConfig carries everything the seed manager needs. There is no ambient
// fixture state: callers hand the bundle and target version in explicitly.
type SeedConfig struct {
	Bundle  fixtures.Bundle
	Version string
}

// Seeded holds the hashed identity fixtures produced by Bootstrap. Identity
// repositories keep these so the identity tables can be re-seeded if the blob
// goes missing even while the version marker still matches.
type Seeded struct {
	Renters        []domain.Identity
	Listers        []domain.Identity
	Administrators []domain.Identity
}

// Bootstrap ensures the store matches the fixture version. On a version
// mismatch it overwrites the listings table from the bundle, clears matches,
// messages, notifications, reports and favorites, merge-seeds the identity
// tables and writes the new marker. With a matching version it only seeds
// identity tables that are absent. Safe to call on every startup.
func Bootstrap(ctx context.Context, store Blob, cfg SeedConfig) (*Seeded, error) {
	seeded, err := hashBundle(cfg.Bundle)
	if err != nil {
		return nil, err
	}

	current, err := readTable[string](ctx, store, tableVersion, "")
	if err != nil {
		return nil, err
	}

	if current != cfg.Version {
		if err := reseed(ctx, store, cfg, seeded); err != nil {
			return nil, err
		}
		slog.Info("reseeded fixture data", "from", current, "to", cfg.Version)
		return seeded, nil
	}

	// Version matches: identity tables are still seeded-if-absent so they
	// survive partial loss of the local store.
	for _, t := range []struct {
		table string
		seed  []domain.Identity
	}{
		{tableRenters, seeded.Renters},
		{tableListers, seeded.Listers},
		{tableAdministrators, seeded.Administrators},
	} {
		if _, ok, err := store.Get(ctx, t.table); err != nil {
			return nil, err
		} else if !ok {
			if err := writeTable(ctx, store, t.table, t.seed); err != nil {
				return nil, err
			}
			slog.Warn("identity table was missing, reseeded", "table", t.table)
		}
	}
	return seeded, nil
}

func reseed(ctx context.Context, store Blob, cfg SeedConfig, seeded *Seeded) error {
	if err := writeTable(ctx, store, tableListings, cfg.Bundle.Listings); err != nil {
		return err
	}
	if err := writeTable(ctx, store, tableMatches, []domain.Match{}); err != nil {
		return err
	}
	if err := writeTable(ctx, store, tableMessages, map[string][]domain.Message{}); err != nil {
		return err
	}
	if err := writeTable(ctx, store, tableNotifications, []domain.Notification{}); err != nil {
		return err
	}
	if err := writeTable(ctx, store, tableReports, []domain.Report{}); err != nil {
		return err
	}
	if err := writeTable(ctx, store, tableFavorites, map[string][]string{}); err != nil {
		return err
	}

	// Identity tables merge: fixture rows are rewritten, identities created
	// at runtime (emails outside the fixture set) are kept.
	for _, t := range []struct {
		table string
		seed  []domain.Identity
	}{
		{tableRenters, seeded.Renters},
		{tableListers, seeded.Listers},
		{tableAdministrators, seeded.Administrators},
	} {
		existing, err := readTable(ctx, store, t.table, []domain.Identity{})
		if err != nil {
			return err
		}
		if err := writeTable(ctx, store, t.table, mergeIdentities(t.seed, existing)); err != nil {
			return err
		}
	}

	return writeTable(ctx, store, tableVersion, cfg.Version)
}

// mergeIdentities returns the seed rows followed by every existing row whose
// email is not claimed by a fixture.
func mergeIdentities(seed, existing []domain.Identity) []domain.Identity {
	claimed := make(map[string]struct{}, len(seed))
	for _, s := range seed {
		claimed[strings.ToLower(s.Email)] = struct{}{}
	}
	merged := append([]domain.Identity{}, seed...)
	for _, e := range existing {
		if _, ok := claimed[strings.ToLower(e.Email)]; !ok {
			merged = append(merged, e)
		}
	}
	return merged
}

func hashBundle(b fixtures.Bundle) (*Seeded, error) {
	renters, err := hashIdentities(b.Renters)
	if err != nil {
		return nil, err
	}
	listers, err := hashIdentities(b.Listers)
	if err != nil {
		return nil, err
	}
	admins, err := hashIdentities(b.Administrators)
	if err != nil {
		return nil, err
	}
	return &Seeded{Renters: renters, Listers: listers, Administrators: admins}, nil
}

func hashIdentities(seeds []fixtures.SeedIdentity) ([]domain.Identity, error) {
	now := time.Now().UTC()
	out := make([]domain.Identity, 0, len(seeds))
	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash fixture password for %s: %w", s.Email, err)
		}
		ident := s.Identity
		ident.PasswordHash = string(hash)
		if ident.CreatedAt.IsZero() {
			ident.CreatedAt = now
		}
		if ident.UpdatedAt.IsZero() {
			ident.UpdatedAt = now
		}
		out = append(out, ident)
	}
	return out, nil
}
