package g2p

import "sync"

var (
	Debug     = false // set to true for verbose debug output
	debugSeen sync.Map
	// Compile time checks that every surface, sampler and mapper satisfies its interface
	_ Surface        = (*Plane)(nil)
	_ Surface        = (*Sieve)(nil)
	_ Surface        = (*Composite)(nil)
	_ RandomSource   = (*Rand)(nil)
	_ CoordConverter = HallConverter{}
	_ frameMapper    = identityMap{}
	_ frameMapper    = translateMap{}
	_ frameMapper    = rotateMap{}
	_ frameMapper    = affineMap{}
)
