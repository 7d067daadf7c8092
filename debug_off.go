//go:build !arenadebug

package arena

const scrubOnCollapse = false
