// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

// package model contains the entities shared by the menu cache, the profile
// store and the CLI.
package model

import (
	"fmt"
	"strings"
)

// MenuItem is a single dish of the cached menu catalog.
// ID is assigned by the relational backend on insert; the flat backend
// leaves it zero and relies on slice order instead.
type MenuItem struct {
	ID          int64   `bun:"id,pk,autoincrement" json:"id,omitempty"`
	Name        string  `bun:"name,notnull" json:"name"`
	Price       float64 `bun:"price,notnull" json:"price"`
	Description string  `bun:"description" json:"description"`
	Image       string  `bun:"image" json:"image"`
	Category    string  `bun:"category" json:"category"`
}

// String returns a short "name ($price)" representation.
func (m MenuItem) String() string {
	return fmt.Sprintf("%s ($%.2f)", m.Name, m.Price)
}

// DefaultCategories is the category row shown by the home screen of the app.
var DefaultCategories = []string{"starters", "mains", "desserts", "drinks"}

// NotificationPrefs holds the email notification toggles of a profile.
type NotificationPrefs struct {
	OrderStatus     bool `json:"order_status" yaml:"order_status"`
	PasswordChanges bool `json:"password_changes" yaml:"password_changes"`
	SpecialOffers   bool `json:"special_offers" yaml:"special_offers"`
	Newsletter      bool `json:"newsletter" yaml:"newsletter"`
}

// Profile is the locally editable user profile.
type Profile struct {
	FirstName     string            `json:"first_name" yaml:"first_name"`
	LastName      string            `json:"last_name" yaml:"last_name"`
	Email         string            `json:"email" yaml:"email"`
	PhoneNumber   string            `json:"phone_number" yaml:"phone_number"`
	AvatarURI     string            `json:"avatar_uri" yaml:"avatar_uri"`
	Notifications NotificationPrefs `json:"notifications" yaml:"notifications"`
}

// Initials returns the upper-cased initials used as avatar placeholder.
func (p Profile) Initials() string {
	out := ""
	if p.FirstName != "" {
		out += string([]rune(p.FirstName)[:1])
	}
	if p.LastName != "" {
		out += string([]rune(p.LastName)[:1])
	}
	return strings.ToUpper(out)
}
