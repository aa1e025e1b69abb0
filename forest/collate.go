package forest

import (
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// nameCollator orders directory names with the root locale collation: case is a
// tertiary difference, so "a" < "b" < "B". A Collator keeps scratch buffers
// and is not safe for concurrent use.
var nameCollator = struct {
	mu sync.Mutex
	c  *collate.Collator
}{c: collate.New(language.Und)}

// compareNames orders a and b by collation, falling back to byte order for
// distinct names the collation considers equal. Only identical names compare 0.
func compareNames(a, b string) int {
	if a == b {
		return 0
	}
	nameCollator.mu.Lock()
	r := nameCollator.c.CompareString(a, b)
	nameCollator.mu.Unlock()
	if r != 0 {
		return r
	}
	return strings.Compare(a, b)
}
