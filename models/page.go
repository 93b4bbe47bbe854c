package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PageModel stores pages in the pages table.
type PageModel struct{}

var (
	_ Model[Page, MutPage]    = PageModel{}
	_ Joinable[Page, Module] = PageModel{}
)

func (PageModel) Create(db *gorm.DB, in *MutPage) (int64, error) {
	page := Page{Title: value(in.Title)}
	if in.PageID != nil {
		page.PageID = *in.PageID
	}

	result := db.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(&page)
	return result.RowsAffected, result.Error
}

func (PageModel) ReadOne(db *gorm.DB, id int32) (Page, error) {
	var page Page
	err := db.Where("page_id = ?", id).First(&page).Error
	return page, err
}

func (PageModel) ReadAll(db *gorm.DB) ([]Page, error) {
	pages := []Page{}
	if err := db.Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

func (PageModel) Update(db *gorm.DB, id int32, in *MutPage) (int64, error) {
	result := db.Model(&Page{}).
		Where("page_id = ?", id).
		Updates(map[string]interface{}{"title": value(in.Title)})
	return result.RowsAffected, result.Error
}

func (PageModel) Delete(db *gorm.DB, id int32) (int64, error) {
	result := db.Where("page_id = ?", id).Delete(&Page{})
	return result.RowsAffected, result.Error
}

// pageModuleRow is the flat shape of one pages ⨝ modules row.
type pageModuleRow struct {
	PageID       int32
	Title        string
	TimeCreated  time.Time
	ModuleID     int32
	ModuleTypeID int32
	ModulePageID int32
	Content      *string
}

// ReadOneJoinOn returns one pair per module owned by the page, in the order
// the store yields them. A page without modules yields no pairs.
func (PageModel) ReadOneJoinOn(db *gorm.DB, id int32) ([]Pair[Page, Module], error) {
	var rows []pageModuleRow
	err := db.Table("pages").
		Select("pages.page_id, pages.title, pages.time_created, " +
			"modules.module_id, modules.module_type_id, modules.page_id AS module_page_id, modules.content").
		Joins("INNER JOIN modules ON modules.page_id = pages.page_id").
		Where("pages.page_id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair[Page, Module], 0, len(rows))
	for _, row := range rows {
		pairs = append(pairs, Pair[Page, Module]{
			Parent: Page{
				PageID:      row.PageID,
				Title:       row.Title,
				TimeCreated: row.TimeCreated,
			},
			Child: Module{
				ModuleID:     row.ModuleID,
				ModuleTypeID: row.ModuleTypeID,
				PageID:       row.ModulePageID,
				Content:      row.Content,
			},
		})
	}
	return pairs, nil
}

// FlattenPageModules folds join pairs into one page owning its modules.
// The page fields come from the first pair; all pairs share the same page.
// It reports false when there are no pairs.
func FlattenPageModules(pairs []Pair[Page, Module]) (PageModuleRelation, bool) {
	if len(pairs) == 0 {
		return PageModuleRelation{}, false
	}

	origin := pairs[0].Parent
	res := PageModuleRelation{
		PageID:      origin.PageID,
		Title:       origin.Title,
		TimeCreated: origin.TimeCreated,
		Modules:     make([]Module, 0, len(pairs)),
	}
	for _, pair := range pairs {
		res.Modules = append(res.Modules, pair.Child)
	}
	return res, true
}
