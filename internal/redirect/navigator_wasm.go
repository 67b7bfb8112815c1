//go:build js && wasm

package redirect

import "syscall/js"

type browserNavigator struct {
	location js.Value
}

// NavigateToRoot assigns location.href, which reloads the document rather
// than performing a client-side route change.
func (n browserNavigator) NavigateToRoot() {
	n.location.Set("href", "/")
}

// DetectNavigator returns the browser navigator when a window is present.
func DetectNavigator() Navigator {
	window := js.Global().Get("window")
	if window.IsUndefined() || window.IsNull() {
		return NoopNavigator{}
	}
	return browserNavigator{location: window.Get("location")}
}
