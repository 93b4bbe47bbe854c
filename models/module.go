package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ModuleModel stores modules in the modules table.
type ModuleModel struct{}

var _ Model[Module, MutModule] = ModuleModel{}

func (ModuleModel) Create(db *gorm.DB, in *MutModule) (int64, error) {
	module := Module{
		ModuleTypeID: value(in.ModuleTypeID),
		PageID:       value(in.PageID),
		Content:      in.Content,
	}
	if in.ModuleID != nil {
		module.ModuleID = *in.ModuleID
	}

	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&module)
	return result.RowsAffected, result.Error
}

func (ModuleModel) ReadOne(db *gorm.DB, id int32) (Module, error) {
	var module Module
	err := db.Where("module_id = ?", id).First(&module).Error
	return module, err
}

func (ModuleModel) ReadAll(db *gorm.DB) ([]Module, error) {
	modules := []Module{}
	if err := db.Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

// Update writes content even when it is absent, clearing the column.
func (ModuleModel) Update(db *gorm.DB, id int32, in *MutModule) (int64, error) {
	result := db.Model(&Module{}).
		Where("module_id = ?", id).
		Updates(map[string]interface{}{
			"module_type_id": value(in.ModuleTypeID),
			"page_id":        value(in.PageID),
			"content":        in.Content,
		})
	return result.RowsAffected, result.Error
}

func (ModuleModel) Delete(db *gorm.DB, id int32) (int64, error) {
	result := db.Where("module_id = ?", id).Delete(&Module{})
	return result.RowsAffected, result.Error
}
