package lock

import (
	"context"
	"errors"
	"fmt"
)

// ErrTimeout indica que a trava não foi obtida dentro do tempo de espera.
var ErrTimeout = errors.New("lock: wait timeout")

// Locker serializa seções críticas por chave. release é idempotente.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

func EventKey(eventID uint) string {
	return fmt.Sprintf("booking:event:%d", eventID)
}
