package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/CaL7598/Goodlife-gym/internal/domain"
)

// notificationGateway fans notifications out over email and SMS. Each
// channel is attempted independently; a member with only one contact
// channel still gets notified on it.
type notificationGateway struct {
	email EmailSender
	sms   SMSSender
}

func NewNotificationGateway(email EmailSender, sms SMSSender) NotificationGateway {
	return &notificationGateway{email: email, sms: sms}
}

func (g *notificationGateway) SendWelcome(ctx context.Context, p WelcomeParams) error {
	var errs []error
	if p.MemberEmail != "" {
		subject := "Welcome to Goodlife Gym!"
		plain := fmt.Sprintf(
			"Hello %s,\n\nWelcome to Goodlife Gym! Your %s membership is active from %s and runs until %s.\n\nSee you at the gym,\nThe Goodlife Team",
			p.MemberName, p.Plan, p.StartDate, p.ExpiryDate)
		html := fmt.Sprintf(
			"<p>Hello %s,</p><p>Welcome to Goodlife Gym! Your <strong>%s</strong> membership is active from %s and runs until <strong>%s</strong>.</p><p>See you at the gym,<br>The Goodlife Team</p>",
			p.MemberName, p.Plan, p.StartDate, p.ExpiryDate)
		if err := g.email.Send(ctx, p.MemberEmail, p.MemberName, subject, plain, html); err != nil {
			errs = append(errs, fmt.Errorf("email: %w", err))
		}
	}
	if p.MemberPhone != "" {
		msg := fmt.Sprintf("Welcome to Goodlife Gym, %s! Your %s membership runs until %s.", p.MemberName, p.Plan, p.ExpiryDate)
		if err := g.sms.Send(ctx, p.MemberPhone, msg); err != nil {
			errs = append(errs, fmt.Errorf("sms: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (g *notificationGateway) SendPaymentConfirmation(ctx context.Context, p PaymentConfirmationParams) error {
	var errs []error
	if p.MemberEmail != "" {
		subject := "Payment Received - Goodlife Gym"
		plain := fmt.Sprintf(
			"Hello %s,\n\nWe have received your %s payment of %.2f on %s.",
			p.MemberName, p.Method, p.Amount, p.Date)
		if p.TransactionID != "" {
			plain += fmt.Sprintf("\nTransaction reference: %s", p.TransactionID)
		}
		if p.ExpiryDate != "" {
			plain += fmt.Sprintf("\nYour membership is valid until %s.", p.ExpiryDate)
		}
		plain += "\n\nThank you,\nThe Goodlife Team"
		html := fmt.Sprintf(
			"<p>Hello %s,</p><p>We have received your %s payment of <strong>%.2f</strong> on %s.</p>",
			p.MemberName, p.Method, p.Amount, p.Date)
		if p.ExpiryDate != "" {
			html += fmt.Sprintf("<p>Your membership is valid until <strong>%s</strong>.</p>", p.ExpiryDate)
		}
		html += "<p>Thank you,<br>The Goodlife Team</p>"
		if err := g.email.Send(ctx, p.MemberEmail, p.MemberName, subject, plain, html); err != nil {
			errs = append(errs, fmt.Errorf("email: %w", err))
		}
	}
	if p.MemberPhone != "" {
		msg := fmt.Sprintf("Goodlife Gym: %s payment of %.2f received on %s.", p.Method, p.Amount, p.Date)
		if p.ExpiryDate != "" {
			msg += fmt.Sprintf(" Membership valid until %s.", p.ExpiryDate)
		}
		if err := g.sms.Send(ctx, p.MemberPhone, msg); err != nil {
			errs = append(errs, fmt.Errorf("sms: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (g *notificationGateway) SendExpiryReminder(ctx context.Context, member *domain.Member) error {
	var errs []error
	if member.Email != "" {
		subject := "Your Goodlife Gym membership is expiring soon"
		plain := fmt.Sprintf(
			"Hello %s,\n\nYour %s membership expires on %s. Visit the front desk to renew and keep training without interruption.\n\nThe Goodlife Team",
			member.FullName, member.Plan, member.ExpiryDate)
		html := fmt.Sprintf(
			"<p>Hello %s,</p><p>Your %s membership expires on <strong>%s</strong>. Visit the front desk to renew and keep training without interruption.</p><p>The Goodlife Team</p>",
			member.FullName, member.Plan, member.ExpiryDate)
		if err := g.email.Send(ctx, member.Email, member.FullName, subject, plain, html); err != nil {
			errs = append(errs, fmt.Errorf("email: %w", err))
		}
	}
	if member.Phone != "" {
		msg := fmt.Sprintf("Goodlife Gym: hi %s, your %s membership expires on %s. Renew at the front desk.", member.FullName, member.Plan, member.ExpiryDate)
		if err := g.sms.Send(ctx, member.Phone, msg); err != nil {
			errs = append(errs, fmt.Errorf("sms: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (g *notificationGateway) SendMessage(ctx context.Context, member *domain.Member, subject, message string) error {
	var errs []error
	if member.Email != "" {
		plain := fmt.Sprintf("Hello %s,\n\n%s\n\nThe Goodlife Team", member.FullName, message)
		html := fmt.Sprintf("<p>Hello %s,</p><p>%s</p><p>The Goodlife Team</p>", member.FullName, message)
		if err := g.email.Send(ctx, member.Email, member.FullName, subject, plain, html); err != nil {
			errs = append(errs, fmt.Errorf("email: %w", err))
		}
	}
	if member.Phone != "" {
		if err := g.sms.Send(ctx, member.Phone, fmt.Sprintf("Goodlife Gym: %s", message)); err != nil {
			errs = append(errs, fmt.Errorf("sms: %w", err))
		}
	}
	return errors.Join(errs...)
}
