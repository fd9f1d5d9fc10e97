package email

import "fmt"

const verificationSubject = "Verify your Cooks account"

// VerificationMessage builds the subject and HTML body for the verification
// email sent on registration.
func VerificationMessage(baseURL, token string) (subject, body string) {
	link := fmt.Sprintf("%s/email-verify/?token=%s", baseURL, token)
	body = fmt.Sprintf(`<p>Welcome to Cooks!</p>
<p>Confirm your email address by opening the link below:</p>
<p><a href=%q>%s</a></p>
<p>If you did not sign up, you can ignore this message.</p>`, link, link)
	return verificationSubject, body
}
