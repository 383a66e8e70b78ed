package service

import (
	"html/template"
	"strings"
)

const (
	resetMailSubject   = "Reset Your Password"
	changedMailSubject = "Your password has been changed"
)

var resetMailTemplate = template.Must(template.New("reset").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>Password Reset</title>
</head>
<body>
  <h2>Hello,</h2>
  <p>You requested a password reset. Please click the link below to reset your password:</p>
  <a href="{{.Link}}">Reset Password</a>
  <p>This link expires in {{.ValidFor}}. If you did not request this, please ignore this email.</p>
  <p>Thanks,<br/>StoryNook Support Team</p>
</body>
</html>
`))

const changedMailBody = `<!DOCTYPE html>
<html>
<head>
  <title>Password Reset</title>
</head>
<body>
  <h2>Hello,</h2>
  <p>Your password has been successfully changed. If you did not perform this action, please contact our support team immediately.</p>
  <p>Thanks,<br/>StoryNook Support Team</p>
</body>
</html>
`

func renderResetMail(link, validFor string) (string, error) {
	var sb strings.Builder
	err := resetMailTemplate.Execute(&sb, struct {
		Link     string
		ValidFor string
	}{Link: link, ValidFor: validFor})
	return sb.String(), err
}
