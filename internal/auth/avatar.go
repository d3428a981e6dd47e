package auth

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// AvatarURL derives a gravatar URL from an email address. Same email,
// same URL, always: the hash is md5 of the trimmed, lowercased address
// per the gravatar scheme.
func AvatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=300&r=pg&d=mm", hex.EncodeToString(sum[:]))
}
