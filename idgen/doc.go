// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package idgen generates short random identifiers for events.

# Short IDs

GenerateShortID reads byteLen bytes from crypto/rand and encodes them in
base62 (0-9, a-z, A-Z), so ids are safe in URLs and query strings:

	id, err := idgen.GenerateShortID(6) // up to 9 characters

# Unique IDs

UniqueID keeps drawing ids until the supplied predicate reports the id as
unused. With 48 bits per id a collision is rare; the loop gives up after
MaxAttempts draws and returns ErrExhausted.

	id, err := idgen.UniqueID(func(id string) bool {
		_, ok := events[id]
		return ok
	})
*/
package idgen
