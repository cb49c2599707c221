package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("en-US")

	// Page titles
	message.SetString(lang, "title.loading", "Loading")
	message.SetString(lang, "title.sign_in", "Sign In")
	message.SetString(lang, "title.sign_up", "Sign Up")
	message.SetString(lang, "title.dashboard", "Dashboard")
	message.SetString(lang, "title.users", "Users")
	message.SetString(lang, "title.products", "Products")
	message.SetString(lang, "title.typography", "Typography")
	message.SetString(lang, "title.icons", "Icons")
	message.SetString(lang, "title.account", "Account")
	message.SetString(lang, "title.settings", "Settings")
	message.SetString(lang, "title.not_found", "Not Found")

	// Shell
	message.SetString(lang, "shell.loading", "Loading your session...")
	message.SetString(lang, "dialog.ok", "Ok")

	// Navigation
	message.SetString(lang, "nav.greeting", "Hi, %s")
	message.SetString(lang, "nav.sign_out", "Sign out")
	message.SetString(lang, "nav.dashboard", "Dashboard")
	message.SetString(lang, "nav.users", "Users")
	message.SetString(lang, "nav.products", "Products")
	message.SetString(lang, "nav.typography", "Typography")
	message.SetString(lang, "nav.icons", "Icons")
	message.SetString(lang, "nav.account", "Account")
	message.SetString(lang, "nav.settings", "Settings")

	// Dashboard placeholders
	message.SetString(lang, "dashboard.placeholder", "This section is not available yet.")

	// Not found
	message.SetString(lang, "notfound.heading", "404: The page you are looking for isn't here")
	message.SetString(lang, "notfound.text", "You either tried some shady route or you came here by mistake.")
	message.SetString(lang, "notfound.back", "Back to the dashboard")

	// Sign in
	message.SetString(lang, "signin.heading", "Sign in")
	message.SetString(lang, "signin.subheading", "Sign in on the internal platform")
	message.SetString(lang, "signin.google", "Sign in with Google")
	message.SetString(lang, "signin.divider", "or login with email address")
	message.SetString(lang, "signin.email", "Email address")
	message.SetString(lang, "signin.password", "Password")
	message.SetString(lang, "signin.submit", "Sign in now")
	message.SetString(lang, "signin.no_account", "Don't have an account?")
	message.SetString(lang, "signin.sign_up_link", "Sign up")

	// Sign up
	message.SetString(lang, "signup.heading", "Create new account")
	message.SetString(lang, "signup.subheading", "Use your email to create new account")
	message.SetString(lang, "signup.first_name", "First name")
	message.SetString(lang, "signup.last_name", "Last name")
	message.SetString(lang, "signup.email", "Email address")
	message.SetString(lang, "signup.password", "Password")
	message.SetString(lang, "signup.policy", "I have read the Terms and Conditions")
	message.SetString(lang, "signup.submit", "Sign up now")
	message.SetString(lang, "signup.have_account", "Have an account?")
	message.SetString(lang, "signup.sign_in_link", "Sign in")
	message.SetString(lang, "signup.welcome.title", "Welcome %[1]s!")
	message.SetString(lang, "signup.welcome.text", "Your account was created. We have sent an email with a confirmation link to %[2]s. In order to complete the sign-up process, please click the confirmation link.")

	// Sign out
	message.SetString(lang, "signout.done.title", "Signed out")
	message.SetString(lang, "signout.done.text", "You have been signed out.")

	// Alerts
	message.SetString(lang, "alert.generic.title", "Oops!")
	message.SetString(lang, "alert.generic.text", "There's a problem. Please try again later.")
	message.SetString(lang, "alert.email_unavailable.title", "Email Unavailable")
	message.SetString(lang, "alert.email_unavailable.text", "An account with this email already exists.")
	message.SetString(lang, "alert.invalid_credentials.title", "Invalid credentials")
	message.SetString(lang, "alert.invalid_credentials.text", "The email or password you entered is incorrect.")

	// Validation
	message.SetString(lang, "validation.required", "is required")
	message.SetString(lang, "validation.too_long", "is too long (maximum is %d characters)")
	message.SetString(lang, "validation.email", "is not a valid email")
	message.SetString(lang, "validation.policy", "must be accepted")
}
