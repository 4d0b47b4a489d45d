// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/toeirei/littlelemon/internal/i18n"
	"github.com/toeirei/littlelemon/internal/profile"
)

// validationMessage localises a profile validation error.
func validationMessage(err error) error {
	var ve *profile.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	switch ve.Field {
	case "first_name":
		return errors.New(i18n.T("validation.first_name"))
	case "email":
		return errors.New(i18n.T("validation.email"))
	case "phone_number":
		return errors.New(i18n.T("validation.phone_number"))
	}
	return err
}

// latestUpdate drains the updates already queued on ch and returns the
// most recent one. It never blocks.
func latestUpdate(ch <-chan profile.Update) (profile.Update, bool) {
	var (
		last profile.Update
		got  bool
	)
	for {
		select {
		case u, open := <-ch:
			if !open {
				return last, got
			}
			last, got = u, true
		default:
			return last, got
		}
	}
}

func newOnboardCmd() *cobra.Command {
	var firstName, email string
	cmd := &cobra.Command{
		Use:   "onboard",
		Short: i18n.T("onboard.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.profile.CompleteOnboarding(cmd.Context(), firstName, email); err != nil {
				return validationMessage(err)
			}
			newRenderer(cmd.OutOrStdout()).success(i18n.T("onboard.done", firstName))
			return nil
		},
	}
	cmd.Flags().StringVar(&firstName, "first-name", "", "Your first name")
	cmd.Flags().StringVar(&email, "email", "", "Your email address")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: i18n.T("profile.short"),
	}

	show := &cobra.Command{
		Use:   "show",
		Short: i18n.T("profile.show.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r := newRenderer(cmd.OutOrStdout())
			onboarded, err := app.profile.IsOnboarded(ctx)
			if err != nil {
				return err
			}
			if !onboarded {
				r.hint(i18n.T("onboard.required"))
				return nil
			}
			p, err := app.profile.Load(ctx)
			if err != nil {
				return err
			}
			r.profile(p)
			return nil
		},
	}

	var (
		firstName, lastName, email, phone, avatar       string
		orderStatus, passwordChanges, offers, newsletter bool
	)
	set := &cobra.Command{
		Use:   "set",
		Short: i18n.T("profile.set.short"),
		Long:  i18n.T("profile.set.long"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.profile.Load(ctx)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("first-name") {
				p.FirstName = firstName
			}
			if flags.Changed("last-name") {
				p.LastName = lastName
			}
			if flags.Changed("email") {
				p.Email = email
			}
			if flags.Changed("phone") {
				p.PhoneNumber = phone
			}
			if flags.Changed("avatar") {
				p.AvatarURI = avatar
			}
			if flags.Changed("order-status") {
				p.Notifications.OrderStatus = orderStatus
			}
			if flags.Changed("password-changes") {
				p.Notifications.PasswordChanges = passwordChanges
			}
			if flags.Changed("special-offers") {
				p.Notifications.SpecialOffers = offers
			}
			if flags.Changed("newsletter") {
				p.Notifications.Newsletter = newsletter
			}
			// The profile card is drawn from the published update, the
			// same value every other subscriber reloads from.
			updates, cancel := app.profile.Subscribe()
			defer cancel()
			saved, err := app.profile.Save(ctx, p)
			if err != nil {
				return validationMessage(err)
			}
			if u, ok := latestUpdate(updates); ok && !u.LoggedOut {
				saved = u.Profile
			}
			r := newRenderer(cmd.OutOrStdout())
			r.success(i18n.T("profile.saved"))
			r.profile(saved)
			return nil
		},
	}
	f := set.Flags()
	f.StringVar(&firstName, "first-name", "", "First name")
	f.StringVar(&lastName, "last-name", "", "Last name")
	f.StringVar(&email, "email", "", "Email address")
	f.StringVar(&phone, "phone", "", "10-digit US phone number")
	f.StringVar(&avatar, "avatar", "", "Avatar image URI")
	f.BoolVar(&orderStatus, "order-status", false, "Order status notifications")
	f.BoolVar(&passwordChanges, "password-changes", false, "Password change notifications")
	f.BoolVar(&offers, "special-offers", false, "Special offer notifications")
	f.BoolVar(&newsletter, "newsletter", false, "Newsletter")

	cmd.AddCommand(show, set)
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: i18n.T("logout.short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.profile.Logout(cmd.Context()); err != nil {
				return err
			}
			newRenderer(cmd.OutOrStdout()).success(i18n.T("logout.done"))
			return nil
		},
	}
}
