package models

import "gorm.io/gorm"

// Model is the set of operations an entity has to provide to be served by
// the generic controller. T is the stored entity, M its mutation payload.
//
// Every operation runs against the connection it is handed; acquiring and
// releasing that connection is the caller's job.
type Model[T any, M any] interface {
	// Create inserts a row. A primary key conflict is ignored and reported as
	// zero affected rows.
	Create(db *gorm.DB, in *M) (int64, error)
	// ReadOne returns gorm.ErrRecordNotFound when no row matches.
	ReadOne(db *gorm.DB, id int32) (T, error)
	ReadAll(db *gorm.DB) ([]T, error)
	// Update overwrites every client-settable column. A missing row is not an
	// error.
	Update(db *gorm.DB, id int32, in *M) (int64, error)
	// Delete removes the row. A missing row is not an error.
	Delete(db *gorm.DB, id int32) (int64, error)
}

// Pair is one row of a one-to-many inner join.
type Pair[P any, C any] struct {
	Parent P
	Child  C
}

// Joinable reads a parent joined with its children as flat pairs.
type Joinable[P any, C any] interface {
	ReadOneJoinOn(db *gorm.DB, id int32) ([]Pair[P, C], error)
}
