package machine

const (
	FloorTiles = 20 // Number of addressable floor tiles.
)

// Floor is the sparse tile memory of a single run. Tiles exist once
// written; reading an unwritten tile is a failure.
type Floor map[int]Value

// Get reads a floor tile.
func (fl Floor) Get(tile int) (value Value, err error) {
	if tile < 0 || tile >= FloorTiles {
		err = ErrTileRange
		return
	}

	value, ok := fl[tile]
	if !ok {
		err = ErrTileEmpty
	}

	return
}

// Set writes a floor tile.
func (fl Floor) Set(tile int, value Value) (err error) {
	if tile < 0 || tile >= FloorTiles {
		err = ErrTileRange
		return
	}

	fl[tile] = value

	return
}
