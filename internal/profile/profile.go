// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

// package profile persists the onboarding state and the editable user
// profile in the flat key-value namespace shared with the menu cache.
package profile

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/toeirei/littlelemon/internal/kv"
	"github.com/toeirei/littlelemon/internal/logging"
	"github.com/toeirei/littlelemon/internal/model"
)

// Preference keys. None of them collides with the menu cache key.
const (
	KeyOnboardingCompleted = "onboardingCompleted"
	KeyFirstName           = "firstName"
	KeyLastName            = "lastName"
	KeyEmail               = "email"
	KeyPhoneNumber         = "phoneNumber"
	KeyAvatarURI           = "avatarUri"
	KeyOrderStatusNotif    = "orderStatusNotif"
	KeyPasswordNotif       = "passwordChangesNotif"
	KeySpecialOffersNotif  = "specialOffersNotif"
	KeyNewsletterNotif     = "newsletterNotif"
)

// allKeys is every key owned by this package, removed on logout.
var allKeys = []string{
	KeyOnboardingCompleted, KeyFirstName, KeyLastName, KeyEmail, KeyPhoneNumber, KeyAvatarURI,
	KeyOrderStatusNotif, KeyPasswordNotif, KeySpecialOffersNotif, KeyNewsletterNotif,
}

// Service reads and writes the profile.
type Service struct {
	kv       kv.Store
	notifier Notifier
}

// NewService returns a Service over ns.
func NewService(ns kv.Store) *Service {
	return &Service{kv: ns}
}

// Subscribe registers for profile updates published by this Service.
func (s *Service) Subscribe() (<-chan Update, func()) {
	return s.notifier.Subscribe()
}

// IsOnboarded reports whether onboarding has been completed.
func (s *Service) IsOnboarded(ctx context.Context) (bool, error) {
	v, _, err := s.kv.Get(ctx, KeyOnboardingCompleted)
	if err != nil {
		return false, fmt.Errorf("read onboarding status: %w", err)
	}
	return v == "true", nil
}

// CompleteOnboarding stores the first name and email collected by the
// onboarding form and marks onboarding done.
func (s *Service) CompleteOnboarding(ctx context.Context, firstName, email string) error {
	if !ValidName(firstName) {
		return &ValidationError{Field: "first_name", Msg: "must contain only letters and spaces"}
	}
	if !ValidEmail(email) {
		return &ValidationError{Field: "email", Msg: "please enter a valid email address"}
	}
	if err := s.setAll(ctx, [][2]string{
		{KeyFirstName, firstName},
		{KeyEmail, email},
		{KeyOnboardingCompleted, "true"},
	}); err != nil {
		return fmt.Errorf("complete onboarding: %w", err)
	}
	logging.Infof("onboarding completed for %s", email)
	p, err := s.Load(ctx)
	if err == nil {
		s.notifier.Publish(Update{Profile: p})
	}
	return nil
}

// Load returns the stored profile. Missing keys read as zero values.
func (s *Service) Load(ctx context.Context) (model.Profile, error) {
	var p model.Profile
	get := func(key string) (string, error) {
		v, _, err := s.kv.Get(ctx, key)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", key, err)
		}
		return v, nil
	}
	strs := []struct {
		key string
		dst *string
	}{
		{KeyFirstName, &p.FirstName},
		{KeyLastName, &p.LastName},
		{KeyEmail, &p.Email},
		{KeyPhoneNumber, &p.PhoneNumber},
		{KeyAvatarURI, &p.AvatarURI},
	}
	for _, f := range strs {
		v, err := get(f.key)
		if err != nil {
			return model.Profile{}, err
		}
		*f.dst = v
	}
	bools := []struct {
		key string
		dst *bool
	}{
		{KeyOrderStatusNotif, &p.Notifications.OrderStatus},
		{KeyPasswordNotif, &p.Notifications.PasswordChanges},
		{KeySpecialOffersNotif, &p.Notifications.SpecialOffers},
		{KeyNewsletterNotif, &p.Notifications.Newsletter},
	}
	for _, f := range bools {
		v, err := get(f.key)
		if err != nil {
			return model.Profile{}, err
		}
		*f.dst = v == "true"
	}
	return p, nil
}

// Validate checks p the way the profile form does.
func Validate(p model.Profile) error {
	if strings.TrimSpace(p.FirstName) == "" {
		return &ValidationError{Field: "first_name", Msg: "first name is required"}
	}
	if strings.TrimSpace(p.Email) == "" {
		return &ValidationError{Field: "email", Msg: "email is required"}
	}
	if !ValidEmail(p.Email) {
		return &ValidationError{Field: "email", Msg: "please enter a valid email address"}
	}
	if p.PhoneNumber != "" && len(phoneDigits(p.PhoneNumber)) != 10 {
		return &ValidationError{Field: "phone_number", Msg: "please enter a valid 10-digit USA phone number"}
	}
	return nil
}

// Save validates and stores p, then notifies subscribers. The stored phone
// number is normalised by FormatPhone.
func (s *Service) Save(ctx context.Context, p model.Profile) (model.Profile, error) {
	if err := Validate(p); err != nil {
		return model.Profile{}, err
	}
	if p.PhoneNumber != "" {
		p.PhoneNumber = FormatPhone(p.PhoneNumber)
	}
	n := p.Notifications
	if err := s.setAll(ctx, [][2]string{
		{KeyFirstName, p.FirstName},
		{KeyLastName, p.LastName},
		{KeyEmail, p.Email},
		{KeyPhoneNumber, p.PhoneNumber},
		{KeyAvatarURI, p.AvatarURI},
		{KeyOrderStatusNotif, strconv.FormatBool(n.OrderStatus)},
		{KeyPasswordNotif, strconv.FormatBool(n.PasswordChanges)},
		{KeySpecialOffersNotif, strconv.FormatBool(n.SpecialOffers)},
		{KeyNewsletterNotif, strconv.FormatBool(n.Newsletter)},
	}); err != nil {
		return model.Profile{}, fmt.Errorf("save profile: %w", err)
	}
	s.notifier.Publish(Update{Profile: p})
	return p, nil
}

// Logout removes the profile and the onboarding flag. The menu cache is
// kept.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.kv.Remove(ctx, allKeys...); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	logging.Infof("logout completed - profile data cleared")
	s.notifier.Publish(Update{LoggedOut: true})
	return nil
}

func (s *Service) setAll(ctx context.Context, pairs [][2]string) error {
	for _, kvp := range pairs {
		if err := s.kv.Set(ctx, kvp[0], kvp[1]); err != nil {
			return fmt.Errorf("write %s: %w", kvp[0], err)
		}
	}
	return nil
}
