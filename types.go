package levelbuffer

import (
	"github.com/pkg/errors"
)

// DefaultPoolChunkSize is the number of nodes allocated at once when Config.PoolChunkSize is not set.
const DefaultPoolChunkSize = 1024

// ErrUnderflow is returned when the requested count exceeds the number of nodes available in the chain.
var ErrUnderflow = errors.New("buffer underflow")

// Config stores level configuration.
type Config struct {
	// GroupSize is the number of payloads packed into a single node of the level above.
	GroupSize uint64

	// PoolChunkSize is the number of nodes allocated by the pools in one go.
	PoolChunkSize uint64
}

func underflow(requested, available uint64) error {
	return errors.Wrapf(ErrUnderflow, "requested %d nodes, %d available", requested, available)
}
