package database

import (
	"context"

	"gorm.io/gorm"
)

// Provider hands out store connections. The connection passed to fn is
// dedicated to the caller until fn returns and is released on every path.
type Provider interface {
	WithConn(ctx context.Context, fn func(db *gorm.DB) error) error
}

// PoolProvider takes connections from the pool behind a *gorm.DB.
type PoolProvider struct {
	db *gorm.DB
}

func NewPoolProvider(db *gorm.DB) *PoolProvider {
	return &PoolProvider{db: db}
}

// WithConn runs fn on a dedicated connection. Cancellation of ctx is not
// propagated to the store: a statement that has been issued runs to
// completion.
func (p *PoolProvider) WithConn(ctx context.Context, fn func(db *gorm.DB) error) error {
	ctx = context.WithoutCancel(ctx)
	return p.db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		return fn(tx.Session(&gorm.Session{NewDB: true}))
	})
}

// Ping checks that a connection can be acquired and used.
func (p *PoolProvider) Ping(ctx context.Context) error {
	return p.WithConn(ctx, func(db *gorm.DB) error {
		return db.Exec("SELECT 1").Error
	})
}
