package mail

import "fmt"

func RecoveryBody(code string) (plain, html string) {
	plain = fmt.Sprintf("Your Bandoggie password recovery code is %s. It expires in 30 minutes.", code)
	html = fmt.Sprintf(`<div style="font-family:sans-serif">
<h2>Password recovery</h2>
<p>Your Bandoggie password recovery code is:</p>
<p style="font-size:24px;letter-spacing:4px"><strong>%s</strong></p>
<p>The code expires in 30 minutes. If you did not request it, ignore this email.</p>
</div>`, code)
	return plain, html
}

func RegistrationBody(code string) (plain, html string) {
	plain = fmt.Sprintf("Welcome to Bandoggie! Your email verification code is %s. It expires in 2 hours.", code)
	html = fmt.Sprintf(`<div style="font-family:sans-serif">
<h2>Welcome to Bandoggie!</h2>
<p>Confirm your email with this code:</p>
<p style="font-size:24px;letter-spacing:4px"><strong>%s</strong></p>
<p>The code expires in 2 hours.</p>
</div>`, code)
	return plain, html
}
