package tenant

import "gorm.io/gorm"

// Scope restricts a query to one store. Every tenant-owned table carries a
// store_id column.
func Scope(storeID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("store_id = ?", storeID)
	}
}
