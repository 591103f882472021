//go:build !listview_debug

package listview

const debugChecks = false
