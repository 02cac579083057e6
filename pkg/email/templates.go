package email

import (
	"fmt"
)

// WelcomeEmailData contains the data needed for the signup welcome email.
type WelcomeEmailData struct {
	FullName string
	Email    string
	AppName  string
	BaseURL  string
}

// BuildWelcomeEmail creates a welcome message for newly registered therapists.
func BuildWelcomeEmail(data WelcomeEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Practiq"
	}

	name := data.FullName
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Welcome to %s", appName)

	textBody := fmt.Sprintf(`Hi %s,

Welcome to %s!

Your account is ready. Sign in to add your first client and schedule sessions:
%s

Thanks,
The %s Team`,
		name, appName, data.BaseURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Welcome to %s!</p>
    <p>Your account is ready. Sign in to add your first client and schedule sessions:</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Open %s</a>
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, appName, data.BaseURL, appName, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// SessionReminderData contains the data needed for session reminder emails.
type SessionReminderData struct {
	TherapistName string
	Email         string
	ClientName    string
	SessionType   string
	Date          string
	Time          string
	AppName       string
}

// BuildSessionReminderEmail creates a reminder for an upcoming session.
func BuildSessionReminderEmail(data SessionReminderData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Practiq"
	}

	name := data.TherapistName
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Upcoming session with %s on %s", data.ClientName, data.Date)

	textBody := fmt.Sprintf(`Hi %s,

You have an upcoming session:

Client: %s
Type: %s
Date: %s
Time: %s

Thanks,
The %s Team`,
		name, data.ClientName, data.SessionType, data.Date, data.Time, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>You have an upcoming session:</p>
    <p style="background-color: #f3f4f6; padding: 15px 20px; border-radius: 6px;">
        <strong>Client:</strong> %s<br>
        <strong>Type:</strong> %s<br>
        <strong>Date:</strong> %s<br>
        <strong>Time:</strong> %s
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, data.ClientName, data.SessionType, data.Date, data.Time, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// SubscriptionEmailData contains the data needed for subscription emails.
type SubscriptionEmailData struct {
	FullName string
	Email    string
	Status   string
	AppName  string
	BaseURL  string
}

// BuildSubscriptionActivatedEmail creates a confirmation for an activated subscription.
func BuildSubscriptionActivatedEmail(data SubscriptionEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Practiq"
	}

	name := data.FullName
	if name == "" {
		name = "there"
	}

	subject := fmt.Sprintf("Your %s subscription is active", appName)

	textBody := fmt.Sprintf(`Hi %s,

Your %s subscription is now active. You have full access to scheduling,
therapy notes and analytics.

Manage your subscription anytime from your account settings:
%s

Thanks,
The %s Team`,
		name, appName, data.BaseURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #16a34a;">Hi %s,</h2>
    <p>Your %s subscription is now active. You have full access to scheduling, therapy notes and analytics.</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #16a34a; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Go to %s</a>
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		name, appName, data.BaseURL, appName, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
