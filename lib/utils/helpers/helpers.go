package helpers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

const (
	EmpleatCodePrefix   = "EMP"
	SolicitudCodePrefix = "SOL"
	MobilitatCodePrefix = "MOB"
)

// NewPublicCode builds a collision-resistant public identifier in the
// <prefix>-<unix ts>-<8 hex> format existing records use.
func NewPublicCode(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().Unix(), suffix)
}
