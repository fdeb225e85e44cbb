// Package slotstore defines the durable, string-keyed medium that holds the
// serialized collections. Each key is a slot; each value is the full
// serialized content of that slot.
package slotstore

import (
	"context"
	"errors"
)

// Driver identifies a Store implementation.
type Driver string

const (
	DriverMemory     Driver = "memory"
	DriverFilesystem Driver = "fs"
	DriverSQLite     Driver = "sqlite"
	DriverPostgres   Driver = "postgres"
	DriverRedis      Driver = "redis"
	DriverS3         Driver = "s3"
)

// ErrQuotaExceeded is returned by a Set that would grow the medium past its
// configured capacity.
var ErrQuotaExceeded = errors.New("slotstore: quota exceeded")

// Store is the key-value medium. Get reports found=false for a slot that was
// never written. Set overwrites the whole slot in one call.
type Store interface {
	Driver() Driver
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
