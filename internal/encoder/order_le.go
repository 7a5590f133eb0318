//go:build !bigendiandefault

package encoder

import "github.com/wippyai/bytify/internal/binary"

// DefaultOrder applies to every element without an explicit byte-order tag.
// Build with -tags bigendiandefault to flip it.
var DefaultOrder = binary.LittleEndian
