package favorites

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yevv0ne/placepick/models/place"
)

// Favorite is a place a caller saved under an opaque owner key.
type Favorite struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerKey  string    `gorm:"column:owner_key;type:varchar(64);not null;uniqueIndex:uniq_owner_place,priority:1" json:"ownerKey"`
	Name      string    `gorm:"column:name;type:varchar(255);not null;uniqueIndex:uniq_owner_place,priority:2" json:"name"`
	Address   string    `gorm:"column:address;type:varchar(255);not null;uniqueIndex:uniq_owner_place,priority:3" json:"address"`
	Category  string    `gorm:"column:category;type:varchar(255)" json:"category"`
	Phone     string    `gorm:"column:phone;type:varchar(32)" json:"phone"`
	Link      string    `gorm:"column:link;type:varchar(512)" json:"link"`
	Lng       float64   `gorm:"column:lng" json:"lng"`
	Lat       float64   `gorm:"column:lat" json:"lat"`
	Note      string    `gorm:"column:note;type:varchar(512)" json:"note"`
	CreatedAt time.Time `gorm:"column:created_at;type:datetime(3)" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:datetime(3)" json:"updatedAt"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// FromRecord fills the place columns from a resolved record.
func FromRecord(ownerKey string, rec *place.Record, note string) Favorite {
	fav := Favorite{
		OwnerKey: ownerKey,
		Name:     rec.Name,
		Address:  rec.Address,
		Category: rec.Category,
		Phone:    rec.Phone,
		Link:     rec.Link,
		Note:     note,
	}
	if rec.Coordinates != nil {
		fav.Lng = rec.Coordinates.Lng
		fav.Lat = rec.Coordinates.Lat
	}
	return fav
}

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// Save upserts a favorite. Saving the same place twice for one owner
// refreshes the note instead of duplicating the row.
func (r *Repo) Save(ctx context.Context, fav *Favorite) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_key"}, {Name: "name"}, {Name: "address"}},
			DoUpdates: clause.AssignmentColumns([]string{"category", "phone", "link", "lng", "lat", "note", "updated_at"}),
		}).
		Create(fav).
		Error
}

// ListByOwner returns an owner's favorites, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerKey string, limit int) ([]Favorite, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []Favorite
	err := r.db.WithContext(ctx).
		Where("owner_key = ?", ownerKey).
		Order("updated_at DESC").
		Limit(limit).
		Find(&rows).
		Error
	return rows, err
}

// Delete removes one favorite owned by ownerKey. Returns the number of
// rows removed so callers can distinguish a missing id.
func (r *Repo) Delete(ctx context.Context, ownerKey string, id uint64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("owner_key = ? AND id = ?", ownerKey, id).
		Delete(&Favorite{})
	return result.RowsAffected, result.Error
}

// Migrate creates or updates the favorites table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Favorite{})
}
