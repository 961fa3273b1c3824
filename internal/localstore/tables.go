package localstore

import (
	"context"
	"encoding/json"
	"fmt"
)

// Logical table names. One addressable blob per table.
const (
	tableListings       = "listings"
	tableMatches        = "matches"
	tableMessages       = "messages"
	tableNotifications  = "notifications"
	tableRenters        = "renters"
	tableListers        = "listers"
	tableAdministrators = "administrators"
	tableReports        = "reports"
	tableFavorites      = "favorites"
	tableVersion        = "version"
)

// readTable decodes a table into a value of type T. An absent table yields
// the caller-supplied fallback, never an error.
func readTable[T any](ctx context.Context, store Blob, table string, fallback T) (T, error) {
	data, ok, err := store.Get(ctx, table)
	if err != nil {
		return fallback, err
	}
	if !ok {
		return fallback, nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return fallback, fmt.Errorf("decode table %s: %w", table, err)
	}
	return v, nil
}

// decodeInto decodes raw table bytes. A present-but-corrupt table is a real
// error, unlike an absent one.
func decodeInto[T any](data []byte, table string, v T) (T, error) {
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decode table %s: %w", table, err)
	}
	return v, nil
}

func writeTable[T any](ctx context.Context, store Blob, table string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode table %s: %w", table, err)
	}
	return store.Put(ctx, table, data)
}
