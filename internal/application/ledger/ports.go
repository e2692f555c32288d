package ledger

import (
	"context"

	"github.com/jhoicas/Eventos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la escritura del log y la
// mutación del stock confirmen o reviertan juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		issuances repository.IssuanceRepository,
		stocks repository.StockRepository,
	) error) error
}
