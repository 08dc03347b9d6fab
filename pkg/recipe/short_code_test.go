package recipe

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/VyacheslavShestakov09/foodgram/domain"
	"github.com/stretchr/testify/require"
)

func TestGenerateShortCode(t *testing.T) {
	code, err := generateShortCode(context.Background(), func(context.Context, string) (bool, error) {
		return false, nil
	})
	require.NoError(t, err)
	require.Len(t, code, shortCodeLength)

	_, err = hex.DecodeString(code)
	require.NoError(t, err, "code should be hex")
}

func TestGenerateShortCode_RetriesOnCollision(t *testing.T) {
	calls := 0
	code, err := generateShortCode(context.Background(), func(context.Context, string) (bool, error) {
		calls++
		return calls <= 2, nil
	})
	require.NoError(t, err)
	require.Len(t, code, shortCodeLength)
	require.Equal(t, 3, calls)
}

func TestGenerateShortCode_Exhaustion(t *testing.T) {
	calls := 0
	_, err := generateShortCode(context.Background(), func(context.Context, string) (bool, error) {
		calls++
		return true, nil
	})
	require.ErrorIs(t, err, domain.ErrShortCodeGeneration)
	require.Equal(t, shortCodeMaxAttempts, calls)
}
