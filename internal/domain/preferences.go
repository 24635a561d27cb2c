package domain

// Keys of the per-session preference store. They match the browser storage
// keys the pages used before the portal moved server-side.
const (
	PrefIsLoggedIn   = "isLoggedIn"
	PrefCurrentUser  = "currentUser"
	PrefTheme        = "theme"
	PrefWelcomeShown = "welcomeShown"
)

// Theme is the colour scheme of the pages.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Opposite returns the theme the toggle switches to.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Session is what the auth glue hands to the pages: who is logged in and
// under which namespace the browser's preferences live.
type Session struct {
	BrowserID   string
	CurrentUser string
	IsLoggedIn  bool
}
