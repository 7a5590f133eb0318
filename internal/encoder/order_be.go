//go:build bigendiandefault

package encoder

import "github.com/wippyai/bytify/internal/binary"

// DefaultOrder applies to every element without an explicit byte-order tag.
var DefaultOrder = binary.BigEndian
