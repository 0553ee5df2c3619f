package repositories

import (
	"context"
)

// TransactionManager runs a function inside one store transaction.
// Repositories called with the context passed to fn take part in that
// transaction; any error returned by fn rolls every write back.
type TransactionManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
