package models

import (
	"time"
)

type Condition string

const (
	ConditionMint           Condition = "Mint"
	ConditionNearMint       Condition = "Near Mint"
	ConditionLightlyPlayed  Condition = "Lightly Played"
	ConditionModeratePlayed Condition = "Moderately Played"
	ConditionHeavilyPlayed  Condition = "Heavily Played"
	ConditionDamaged        Condition = "Damaged"
)

// InventoryCard is one owned card in the collection. The analysis engine
// only ever reads these; all writes go through the inventory handlers.
type InventoryCard struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CardName  string    `json:"cardName" gorm:"not null;index"`
	SetName   string    `json:"set" gorm:"column:set_name;not null;index"`
	Quantity  int       `json:"quantity" gorm:"default:1"`
	Condition Condition `json:"condition" gorm:"default:'Near Mint'"`
	Notes     string    `json:"notes"`
	AddedAt   time.Time `json:"addedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type AddCardRequest struct {
	CardName  string    `json:"cardName"`
	Set       string    `json:"set"`
	Quantity  int       `json:"quantity"`
	Condition Condition `json:"condition"`
	Notes     string    `json:"notes"`
}

type UpdateCardRequest struct {
	CardName  *string    `json:"cardName"`
	Set       *string    `json:"set"`
	Quantity  *int       `json:"quantity"`
	Condition *Condition `json:"condition"`
	Notes     *string    `json:"notes"`
}

// ImportCard accepts both "cardName" and "name" so exports from other
// tools can be loaded without reshaping.
type ImportCard struct {
	CardName  string    `json:"cardName"`
	Name      string    `json:"name"`
	Set       string    `json:"set"`
	Quantity  int       `json:"quantity"`
	Condition Condition `json:"condition"`
	Notes     string    `json:"notes"`
}

type ImportRequest struct {
	Cards []ImportCard `json:"cards"`
}
