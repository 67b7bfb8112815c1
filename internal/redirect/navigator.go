package redirect

// Navigator performs a full page navigation to the site root.
type Navigator interface {
	NavigateToRoot()
}

// NoopNavigator is used outside the browser, where there is nothing to
// navigate.
type NoopNavigator struct{}

func (NoopNavigator) NavigateToRoot() {}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func()

func (f NavigatorFunc) NavigateToRoot() { f() }
