// Package proto defines the record kinds the loader ships with, together
// with the small concept types their fields are built from.
//
// The registry and the conversion protocol are generic over kinds; nothing
// in here is special to the loader. The set is deliberately small but
// exercises every conversion feature: conditional and sibling-dependent
// defaults, from-string enums, mandatory-if constraints, post-decode
// checks, named references (including references to the abstract "setting"
// kind), and image/audio resource claims.
package proto
