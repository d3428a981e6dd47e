package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventsnow/backend/internal/auth"
)

func TestAvatarURL(t *testing.T) {
	// md5("ann@x.com") = 0530e08f7da74c378704ddaaf7adca72
	want := "https://www.gravatar.com/avatar/0530e08f7da74c378704ddaaf7adca72?s=300&r=pg&d=mm"

	assert.Equal(t, want, auth.AvatarURL("ann@x.com"))

	// Case and surrounding whitespace do not change the avatar.
	assert.Equal(t, want, auth.AvatarURL("  Ann@X.com "))

	// Different emails map to different avatars.
	assert.NotEqual(t, want, auth.AvatarURL("bob@x.com"))
}
