package postgres

import "gorm.io/gorm"

// brandScope restricts a query to one brand. An empty brand id leaves the query unscoped.
func brandScope(column, brandID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if brandID == "" {
			return db
		}
		return db.Where(column+" = ?", brandID)
	}
}

func limitScope(limit int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit <= 0 {
			return db
		}
		return db.Limit(limit)
	}
}
