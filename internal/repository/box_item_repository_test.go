package repository

import (
	"testing"

	"stashed/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	err = db.AutoMigrate(
		&models.User{},
		&models.StorageLocation{},
		&models.Item{},
		&models.Box{},
		&models.BoxItem{},
		&models.Session{},
	)
	assert.NoError(t, err)
	return db
}

func uintPtr(v uint) *uint {
	return &v
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "x", DisplayName: "Test User"}
	assert.NoError(t, db.Create(user).Error)
	return user
}

func seedLocation(t *testing.T, db *gorm.DB, userID uint, name string) *models.StorageLocation {
	t.Helper()
	location := &models.StorageLocation{UserID: userID, Name: name, Location: "Home"}
	assert.NoError(t, db.Create(location).Error)
	return location
}

func seedBox(t *testing.T, db *gorm.DB, userID uint, label string, locationID *uint) *models.Box {
	t.Helper()
	box := &models.Box{UserID: userID, Label: label, Category: "MISC", LocationID: locationID}
	assert.NoError(t, db.Create(box).Error)
	return box
}

func seedItem(t *testing.T, db *gorm.DB, userID uint, name string, locationID *uint) *models.Item {
	t.Helper()
	item := &models.Item{UserID: userID, Name: name, Category: "MISC", Quantity: 1, LocationID: locationID}
	assert.NoError(t, db.Create(item).Error)
	return item
}

func TestBoxItemRepository_AssignSyncsItemLocation(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewBoxItemRepository(db)

	user := seedUser(t, db, "assign@example.com")
	garage := seedLocation(t, db, user.ID, "Garage")
	attic := seedLocation(t, db, user.ID, "Attic")
	box := seedBox(t, db, user.ID, "Tools", uintPtr(garage.ID))
	item := seedItem(t, db, user.ID, "Hammer", uintPtr(attic.ID))

	membership, err := repo.Assign(item, box)

	assert.NoError(t, err)
	assert.Equal(t, item.ID, membership.ItemID)
	assert.Equal(t, box.ID, membership.BoxID)

	var stored models.Item
	assert.NoError(t, db.First(&stored, item.ID).Error)
	assert.Equal(t, garage.ID, *stored.LocationID)
}

func TestBoxItemRepository_AssignSameLocationLeavesItemAlone(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewBoxItemRepository(db)

	user := seedUser(t, db, "same@example.com")
	garage := seedLocation(t, db, user.ID, "Garage")
	box := seedBox(t, db, user.ID, "Tools", uintPtr(garage.ID))
	item := seedItem(t, db, user.ID, "Hammer", uintPtr(garage.ID))

	_, err := repo.Assign(item, box)

	assert.NoError(t, err)
	var stored models.Item
	assert.NoError(t, db.First(&stored, item.ID).Error)
	assert.Equal(t, garage.ID, *stored.LocationID)
}

func TestBoxItemRepository_SecondAssignFails(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewBoxItemRepository(db)

	user := seedUser(t, db, "unique@example.com")
	garage := seedLocation(t, db, user.ID, "Garage")
	boxA := seedBox(t, db, user.ID, "Box A", uintPtr(garage.ID))
	boxB := seedBox(t, db, user.ID, "Box B", uintPtr(garage.ID))
	item := seedItem(t, db, user.ID, "Hammer", uintPtr(garage.ID))

	_, err := repo.Assign(item, boxA)
	assert.NoError(t, err)

	_, err = repo.Assign(item, boxB)
	assert.Error(t, err)

	memberships, err := repo.FindByBoxID(boxA.ID)
	assert.NoError(t, err)
	assert.Len(t, memberships, 1)
}

func TestBoxItemRepository_ReassignMovesAndSyncs(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewBoxItemRepository(db)

	user := seedUser(t, db, "reassign@example.com")
	garage := seedLocation(t, db, user.ID, "Garage")
	attic := seedLocation(t, db, user.ID, "Attic")
	boxA := seedBox(t, db, user.ID, "Box A", uintPtr(garage.ID))
	boxB := seedBox(t, db, user.ID, "Box B", uintPtr(attic.ID))
	item := seedItem(t, db, user.ID, "Hammer", uintPtr(garage.ID))

	_, err := repo.Assign(item, boxA)
	assert.NoError(t, err)

	membership, err := repo.Reassign(item, boxB)

	assert.NoError(t, err)
	assert.Equal(t, boxB.ID, membership.BoxID)

	var stored models.Item
	assert.NoError(t, db.First(&stored, item.ID).Error)
	assert.Equal(t, attic.ID, *stored.LocationID)
}

func TestBoxItemRepository_RelocateBoxMovesMembersOnly(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewBoxItemRepository(db)

	user := seedUser(t, db, "relocate@example.com")
	garage := seedLocation(t, db, user.ID, "Garage")
	cellar := seedLocation(t, db, user.ID, "Cellar")
	box := seedBox(t, db, user.ID, "Tools", uintPtr(garage.ID))
	boxed := seedItem(t, db, user.ID, "Hammer", uintPtr(garage.ID))
	loose := seedItem(t, db, user.ID, "Broom", uintPtr(garage.ID))

	_, err := repo.Assign(boxed, box)
	assert.NoError(t, err)

	err = repo.RelocateBox(box.ID, map[string]interface{}{"location_id": cellar.ID})
	assert.NoError(t, err)

	var storedBox models.Box
	assert.NoError(t, db.First(&storedBox, box.ID).Error)
	assert.Equal(t, cellar.ID, *storedBox.LocationID)

	var storedBoxed, storedLoose models.Item
	assert.NoError(t, db.First(&storedBoxed, boxed.ID).Error)
	assert.NoError(t, db.First(&storedLoose, loose.ID).Error)
	assert.Equal(t, cellar.ID, *storedBoxed.LocationID)
	assert.Equal(t, garage.ID, *storedLoose.LocationID)
}

func TestBoxItemRepository_RelocateItemDropsMembership(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewBoxItemRepository(db)

	user := seedUser(t, db, "unbox@example.com")
	garage := seedLocation(t, db, user.ID, "Garage")
	attic := seedLocation(t, db, user.ID, "Attic")
	box := seedBox(t, db, user.ID, "Tools", uintPtr(garage.ID))
	item := seedItem(t, db, user.ID, "Hammer", uintPtr(garage.ID))

	_, err := repo.Assign(item, box)
	assert.NoError(t, err)

	err = repo.RelocateItem(item.ID, map[string]interface{}{"location_id": attic.ID})
	assert.NoError(t, err)

	var stored models.Item
	assert.NoError(t, db.First(&stored, item.ID).Error)
	assert.Equal(t, attic.ID, *stored.LocationID)

	membership, err := repo.FindByItemID(item.ID)
	assert.NoError(t, err)
	assert.Nil(t, membership)
}

func TestBoxItemRepository_FindMemberItems(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewBoxItemRepository(db)

	user := seedUser(t, db, "members@example.com")
	garage := seedLocation(t, db, user.ID, "Garage")
	box := seedBox(t, db, user.ID, "Tools", uintPtr(garage.ID))
	hammer := seedItem(t, db, user.ID, "Hammer", uintPtr(garage.ID))
	wrench := seedItem(t, db, user.ID, "Wrench", uintPtr(garage.ID))
	seedItem(t, db, user.ID, "Broom", uintPtr(garage.ID))

	_, err := repo.Assign(hammer, box)
	assert.NoError(t, err)
	_, err = repo.Assign(wrench, box)
	assert.NoError(t, err)

	members, err := repo.FindMemberItems(box.ID)

	assert.NoError(t, err)
	assert.Len(t, members, 2)
}
