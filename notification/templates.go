package notification

import (
	"bytes"
	"html/template"
)

// WelcomeData holds data for the welcome email template
type WelcomeData struct {
	FirstName string
}

const welcomeTemplate = `
<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin: 0; padding: 0; background-color: #f6f9fc; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;">
	<div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 6px rgba(0,0,0,0.05); margin-top: 20px; margin-bottom: 20px;">
		<!-- Header -->
		<div style="background-color: #3b82f6; padding: 30px 40px; text-align: center;">
			<h1 style="margin: 0; color: #ffffff; font-size: 24px; font-weight: 700; letter-spacing: 0.5px;">Welcome to NoteGo</h1>
		</div>

		<!-- Body -->
		<div style="padding: 30px 40px; background-color: #ffffff;">
			<div style="font-size: 20px; font-weight: 700; color: #1e293b; margin-bottom: 15px;">Hi {{.FirstName}},</div>
			<p style="margin: 0; color: #334155; font-size: 14px; line-height: 1.6;">
				Your account has been created. Log in to start writing notes.
			</p>
		</div>

		<!-- Footer -->
		<div style="padding: 20px 40px; background-color: #f1f5f9; text-align: center; border-bottom-left-radius: 12px; border-bottom-right-radius: 12px;">
			<p style="margin: 0; color: #94a3b8; font-size: 12px;">
				NoteGo
			</p>
		</div>
	</div>
</body>
</html>
`

// RenderWelcomeEmail renders the welcome HTML email
func RenderWelcomeEmail(data WelcomeData) (string, error) {
	tmpl, err := template.New("welcome").Parse(welcomeTemplate)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
