package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("user-42", []string{"operator"}, time.Hour)
	req.NoError(err)
	req.NotEmpty(token)

	claims, err := ValidateToken(token)
	req.NoError(err)
	req.Equal("user-42", claims.UserID)
	req.Equal([]string{"operator"}, claims.Roles)
	req.Equal("grouplink", claims.Issuer)
}

func TestValidateToken_Expired(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("user-42", []string{"operator"}, -time.Minute)
	req.NoError(err)

	_, err = ValidateToken(token)
	req.Error(err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-jwt")
	require.Error(t, err)
}
