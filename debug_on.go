//go:build arenadebug

package arena

// scrubOnCollapse zeroes memory discarded by Collapse and Rewind so stale
// views read zeros instead of plausible old data.
const scrubOnCollapse = true
