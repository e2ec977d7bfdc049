package game

import (
	"encoding/binary"

	"lukechampine.com/frand"

	"github.com/domino14/rokudoku/brick"
)

const (
	seededBufSize = 1024
	seededRounds  = 12
)

// NewRandSource returns a fresh source seeded from system entropy.
func NewRandSource() brick.RandSource {
	return frand.New()
}

// NewSeededRandSource returns a deterministic source. The same seed and
// stream always produce the same draws; different streams of one seed are
// independent, which gives every episode of a seeded run its own sequence.
func NewSeededRandSource(seed, stream uint64) brick.RandSource {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[0:], seed)
	binary.LittleEndian.PutUint64(key[8:], stream)
	return frand.NewCustom(key[:], seededBufSize, seededRounds)
}
