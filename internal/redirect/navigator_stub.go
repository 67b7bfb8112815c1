//go:build !js || !wasm

package redirect

// DetectNavigator returns a NoopNavigator outside js/wasm builds.
func DetectNavigator() Navigator {
	return NoopNavigator{}
}
