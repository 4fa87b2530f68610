// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/snap

package snap

import "sync"

// encodeTable is the encoder's scratch hash table, always allocated at the
// maximum size; encodeWindow clears and uses only its scaled prefix.
type encodeTable [1 << maxTableBits]int32

// encodeTablePool is a pool of encoder hash tables.
var encodeTablePool = sync.Pool{
	New: func() any {
		return new(encodeTable)
	},
}

// acquireEncodeTable acquires a hash table from the pool. Slots hold stale
// positions from earlier calls; the caller clears the prefix it uses.
func acquireEncodeTable() *encodeTable {
	return encodeTablePool.Get().(*encodeTable)
}

// releaseEncodeTable releases a hash table to the pool.
func releaseEncodeTable(table *encodeTable) {
	if table == nil {
		return
	}

	encodeTablePool.Put(table)
}
