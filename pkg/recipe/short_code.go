package recipe

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/VyacheslavShestakov09/foodgram/domain"
)

const (
	shortCodeLength      = 10 // hex characters
	shortCodeMaxAttempts = 5
)

type codeExistsFunc func(ctx context.Context, code string) (bool, error)

// generateShortCode draws random fixed-length hex codes until one is unused.
// Collisions are practically impossible at this length, but the loop is
// capped anyway and reports exhaustion instead of spinning.
func generateShortCode(ctx context.Context, exists codeExistsFunc) (string, error) {
	buf := make([]byte, shortCodeLength/2)
	for attempt := 0; attempt < shortCodeMaxAttempts; attempt++ {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		code := hex.EncodeToString(buf)

		taken, err := exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", domain.ErrShortCodeGeneration
}
