package models

import "time"

type Page struct {
	PageID      int32     `gorm:"column:page_id;primaryKey;autoIncrement" json:"page_id"`
	Title       string    `gorm:"not null" json:"title"`
	TimeCreated time.Time `gorm:"column:time_created;autoCreateTime;not null" json:"time_created"`

	// declares modules.page_id REFERENCES pages(page_id), never loaded
	Modules []Module `gorm:"foreignKey:PageID;references:PageID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Page) TableName() string {
	return "pages"
}

// MutPage is both the insert and the update payload for a page.
// PageID is only honoured on insert. Required fields are pointers so that
// only a missing or null field is rejected, not an empty one.
type MutPage struct {
	PageID *int32  `json:"page_id"`
	Title  *string `json:"title" binding:"required"`
}

type Module struct {
	ModuleID     int32   `gorm:"column:module_id;primaryKey;autoIncrement" json:"module_id"`
	ModuleTypeID int32   `gorm:"column:module_type_id;not null" json:"module_type_id"`
	PageID       int32   `gorm:"column:page_id;not null;index" json:"page_id"`
	Content      *string `gorm:"column:content;type:text" json:"content"`
}

func (Module) TableName() string {
	return "modules"
}

// MutModule is both the insert and the update payload for a module.
// ModuleID is only honoured on insert.
type MutModule struct {
	ModuleID     *int32  `json:"module_id"`
	ModuleTypeID *int32  `json:"module_type_id" binding:"required"`
	PageID       *int32  `json:"page_id" binding:"required"`
	Content      *string `json:"content"`
}

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// PageModuleRelation is a page together with every module it owns.
// It is built from a join and never written back.
type PageModuleRelation struct {
	PageID      int32     `json:"page_id"`
	Title       string    `json:"title"`
	TimeCreated time.Time `json:"time_created"`
	Modules     []Module  `json:"modules"`
}
