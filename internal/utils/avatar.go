package utils

import (
	"fmt"
	"net/url"
)

// AvatarURL builds the profile photo URL generated for a user at
// signup. The avatar service renders the username initials on the
// app's brand color.
func AvatarURL(username string) string {
	return fmt.Sprintf(
		"https://ui-avatars.com/api/?name=%s&background=667eea&color=fff&size=200",
		url.QueryEscape(username))
}
