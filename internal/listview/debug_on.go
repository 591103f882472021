//go:build listview_debug

package listview

// Builds tagged listview_debug panic when Add receives a duplicate id.
const debugChecks = true
