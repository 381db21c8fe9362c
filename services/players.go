package services

import (
	"errors"
	"time"

	"funhub/models"

	"gorm.io/gorm"
)

// Players is the device-keyed player store. A device id is the only identity
// most players ever have.
type Players struct {
	db *gorm.DB
}

func NewPlayers(db *gorm.DB) *Players {
	return &Players{db: db}
}

// ByDevice looks up the player registered for a device.
func (p *Players) ByDevice(deviceID string) (*models.Player, error) {
	var player models.Player
	if err := p.db.Where("device_id = ?", deviceID).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &player, nil
}

// GetOrCreate returns the player for a device, creating the row on first
// contact. A non-empty displayName overwrites the stored name; an empty one
// leaves it alone. Last-active is refreshed either way.
func (p *Players) GetOrCreate(deviceID, displayName string) (*models.Player, error) {
	now := time.Now().UTC()

	var player models.Player
	err := p.db.Where("device_id = ?", deviceID).First(&player).Error
	if err == nil {
		player.LastActiveAt = now
		if displayName != "" {
			player.DisplayName = displayName
		}
		if err := p.db.Save(&player).Error; err != nil {
			return nil, err
		}
		return &player, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if displayName == "" {
		displayName = "Anonymous"
	}
	player = models.Player{
		DeviceID:     deviceID,
		DisplayName:  displayName,
		LastActiveAt: now,
	}
	if err := p.db.Create(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Concurrent first contact for the same device; use the row the
			// other request won with.
			return p.ByDevice(deviceID)
		}
		return nil, err
	}
	return &player, nil
}
