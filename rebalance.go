package levelbuffer

// MoveUp moves the last moveCount payloads of this to the level above, packing them into groups
// prepended to next. It returns the new chains of both levels.
func (l *Level[P]) MoveUp(this Chain[P], next Chain[[]P], moveCount uint64) (Chain[P], Chain[[]P], error) {
	if moveCount > this.Len() {
		return Chain[P]{}, Chain[[]P]{}, underflow(moveCount, this.Len())
	}
	moved, err := this.Advance(this.Len() - moveCount)
	if err != nil {
		return Chain[P]{}, Chain[[]P]{}, err
	}
	newThis, err := l.ShrinkFromTail(this, moveCount)
	if err != nil {
		return Chain[P]{}, Chain[[]P]{}, err
	}
	return newThis, l.PackUpward(moved, next), nil
}

// MoveDown expands the first nodeCount groups of next into the new chain of this level.
// It returns the new chains of both levels.
func (l *Level[P]) MoveDown(next Chain[[]P], nodeCount uint64) (Chain[P], Chain[[]P], error) {
	newThis, err := l.UnpackDownward(next, nodeCount)
	if err != nil {
		return Chain[P]{}, Chain[[]P]{}, err
	}
	newNext, err := next.Advance(nodeCount)
	if err != nil {
		return Chain[P]{}, Chain[[]P]{}, err
	}
	return newThis, newNext, nil
}

// MaxMoveUpCount returns the largest multiple of group size which may be moved up from
// a chain of size payloads leaving at least one payload behind.
func (l *Level[P]) MaxMoveUpCount(size uint64) uint64 {
	if size == 0 {
		return 0
	}
	return (size - 1) / l.config.GroupSize * l.config.GroupSize
}

// MaxMoveDownCount returns the number of groups which fit into a buffer of bufferSize payloads.
func (l *Level[P]) MaxMoveDownCount(bufferSize uint64) uint64 {
	return bufferSize / l.config.GroupSize
}
