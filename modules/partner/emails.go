package partner

import (
	"html/template"
	"strings"
)

// Email bodies are rendered with html/template so user-supplied values are
// escaped automatically.

var notificationTmpl = template.Must(template.New("notification").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>New Design Partner Application</title>
</head>
<body style="margin: 0; padding: 0; background-color: #0a0a0a; font-family: 'IBM Plex Sans', -apple-system, sans-serif;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #0a0a0a;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 560px;">
          <tr>
            <td style="background: linear-gradient(135deg, #4E00FF 0%, #6B00FF 100%); border-radius: 16px 16px 0 0; padding: 32px 40px;">
              <h1 style="margin: 0; color: #ffffff; font-size: 24px; font-weight: 600;">New Design Partner Application</h1>
              <p style="margin: 8px 0 0 0; color: rgba(255,255,255,0.8); font-size: 14px;">A new application has been submitted</p>
            </td>
          </tr>
          <tr>
            <td style="background-color: #141414; border: 1px solid #262626; border-top: none; border-radius: 0 0 16px 16px; padding: 32px 40px;">
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0">
                <tr><td style="padding-bottom: 24px;">
                  <p style="margin: 0 0 6px 0; color: #888888; font-size: 12px; text-transform: uppercase;">Name</p>
                  <p style="margin: 0; color: #ffffff; font-size: 16px;">{{.Name}}</p>
                </td></tr>
                <tr><td style="padding-bottom: 24px;">
                  <p style="margin: 0 0 6px 0; color: #888888; font-size: 12px; text-transform: uppercase;">Email</p>
                  <p style="margin: 0; font-size: 16px;"><a href="mailto:{{.Email}}" style="color: #8B5CF6; text-decoration: none;">{{.Email}}</a></p>
                </td></tr>
                <tr><td style="padding-bottom: 24px;">
                  <p style="margin: 0 0 6px 0; color: #888888; font-size: 12px; text-transform: uppercase;">Company</p>
                  <p style="margin: 0; color: #ffffff; font-size: 16px;">{{.Company}}</p>
                </td></tr>
                <tr><td style="padding-bottom: 24px;">
                  <p style="margin: 0 0 6px 0; color: #888888; font-size: 12px; text-transform: uppercase;">Role</p>
                  <p style="margin: 0; color: #ffffff; font-size: 16px;">{{.Role}}</p>
                </td></tr>
                <tr><td style="padding-bottom: 24px;">
                  <p style="margin: 0 0 6px 0; color: #888888; font-size: 12px; text-transform: uppercase;">Agent Count</p>
                  <p style="margin: 0; color: #ffffff; font-size: 16px;">{{.AgentCount}}</p>
                </td></tr>
                {{if .UseCase}}
                <tr><td>
                  <p style="margin: 0 0 6px 0; color: #888888; font-size: 12px; text-transform: uppercase;">Use Case</p>
                  <p style="margin: 0; color: #ffffff; font-size: 16px; line-height: 1.6; white-space: pre-wrap;">{{.UseCase}}</p>
                </td></tr>
                {{end}}
              </table>
            </td>
          </tr>
          <tr>
            <td style="padding: 24px 0; text-align: center;">
              <p style="margin: 0; color: #666666; font-size: 12px;">Sentinel Design Partner Programme</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>
`))

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="color-scheme" content="light dark">
  <title>Application Received - Sentinel</title>
</head>
<body style="margin: 0; padding: 0; background-color: #0a0a0a; font-family: 'IBM Plex Sans', -apple-system, sans-serif;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #0a0a0a;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 560px;">
          <tr>
            <td style="background: linear-gradient(135deg, #4E00FF 0%, #6B00FF 100%); border-radius: 16px 16px 0 0; padding: 32px 40px; text-align: center;">
              <h1 style="margin: 0; color: #ffffff; font-size: 28px; font-weight: 600;">Sentinel</h1>
            </td>
          </tr>
          <tr>
            <td style="background-color: #141414; border: 1px solid #262626; border-top: none; border-radius: 0 0 16px 16px; padding: 40px;">
              <h2 style="margin: 0 0 16px 0; color: #ffffff; font-size: 22px; font-weight: 600;">Application Received</h2>
              <p style="margin: 0 0 24px 0; color: #a1a1aa; font-size: 16px; line-height: 1.6;">Hi {{.FirstName}},</p>
              <p style="margin: 0 0 24px 0; color: #a1a1aa; font-size: 16px; line-height: 1.6;">
                Thank you for your interest in becoming a Sentinel design partner. We've received your
                application and are excited to learn more about how you're using AI agents at {{.Company}}.
              </p>
              <p style="margin: 0 0 32px 0; color: #a1a1aa; font-size: 16px; line-height: 1.6;">
                Our team will review your application and get back to you within 2-3 business days.
                In the meantime, feel free to reply to this email if you have any questions.
              </p>
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: rgba(139, 92, 246, 0.1); border-radius: 12px; border: 1px solid rgba(139, 92, 246, 0.2);">
                <tr>
                  <td style="padding: 20px;">
                    <p style="margin: 0 0 12px 0; color: #8B5CF6; font-size: 12px; text-transform: uppercase; font-weight: 600;">Your Application Summary</p>
                    <table role="presentation" width="100%" cellspacing="0" cellpadding="0">
                      <tr>
                        <td style="color: #71717a; font-size: 14px; padding: 4px 0;">Company:</td>
                        <td style="color: #ffffff; font-size: 14px; padding: 4px 0; text-align: right;">{{.Company}}</td>
                      </tr>
                      <tr>
                        <td style="color: #71717a; font-size: 14px; padding: 4px 0;">Role:</td>
                        <td style="color: #ffffff; font-size: 14px; padding: 4px 0; text-align: right;">{{.Role}}</td>
                      </tr>
                      <tr>
                        <td style="color: #71717a; font-size: 14px; padding: 4px 0;">Agent Count:</td>
                        <td style="color: #ffffff; font-size: 14px; padding: 4px 0; text-align: right;">{{.AgentCount}}</td>
                      </tr>
                    </table>
                  </td>
                </tr>
              </table>
              <p style="margin: 32px 0 0 0; color: #a1a1aa; font-size: 16px; line-height: 1.6;">
                Best regards,<br>
                <span style="color: #ffffff;">The Sentinel Team</span>
              </p>
            </td>
          </tr>
          <tr>
            <td style="padding: 24px 0; text-align: center;">
              <p style="margin: 0 0 8px 0; color: #71717a; font-size: 12px;">Sentinel - Unified governance for AI agents</p>
              <p style="margin: 0; color: #52525b; font-size: 11px;"><a href="https://sentinel.london" style="color: #8B5CF6; text-decoration: none;">sentinel.london</a></p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>
`))

func renderNotificationEmail(app Application) (string, error) {
	var sb strings.Builder
	if err := notificationTmpl.Execute(&sb, app); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type confirmationData struct {
	Application
	FirstName string
}

func renderConfirmationEmail(app Application) (string, error) {
	first, _, _ := strings.Cut(strings.TrimSpace(app.Name), " ")

	var sb strings.Builder
	if err := confirmationTmpl.Execute(&sb, confirmationData{Application: app, FirstName: first}); err != nil {
		return "", err
	}
	return sb.String(), nil
}
