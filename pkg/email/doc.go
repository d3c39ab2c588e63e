// Package email provides a provider-agnostic interface for sending
// transactional emails with built-in support for Postmark.
//
// The package is built around the EmailSender interface, allowing different
// email providers to be swapped without changing application code:
//   - NewPostmarkClient for production delivery with open/click tracking
//   - NewDevSender for local development (saves emails to disk)
//
// All implementations validate email parameters before sending and provide
// consistent error handling across providers.
//
// # Usage
//
//	cfg := email.Config{
//	    PostmarkServerToken:  "your-server-token",
//	    PostmarkAccountToken: "your-account-token",
//	    SenderEmail:          "noreply@example.com",
//	    NotificationEmail:    "team@example.com",
//	}
//
//	client, err := email.NewPostmarkClient(cfg)
//	if err != nil {
//	    // Handle configuration error
//	}
//
//	err = client.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "user@example.com",
//	    Subject:  "Welcome!",
//	    BodyHTML: htmlContent,
//	    Tag:      "welcome", // optional, for analytics
//	})
//
// Development mode saves emails locally instead:
//
//	devSender := email.NewDevSender("./tmp/emails")
//	err := devSender.SendEmail(ctx, params)
//	// Creates timestamped HTML and JSON files in ./tmp/emails/
//
// Sentinel errors support programmatic handling with errors.Is:
//   - ErrInvalidConfig: configuration validation failed
//   - ErrFailedToSendEmail: email delivery failed
package email
