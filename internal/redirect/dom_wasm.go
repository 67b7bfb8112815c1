//go:build js && wasm

package redirect

import "syscall/js"

const elementNode = 1

// BrowserDocument adapts the global document to Document.
type BrowserDocument struct {
	document js.Value
}

func NewBrowserDocument() *BrowserDocument {
	return &BrowserDocument{document: js.Global().Get("document")}
}

func (d *BrowserDocument) QuerySelectorAll(selector string) []Element {
	list := d.document.Call("querySelectorAll", selector)
	n := list.Get("length").Int()
	out := make([]Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, jsElement{v: list.Call("item", i)})
	}
	return out
}

func (d *BrowserDocument) OnClick(fn func(target Element)) (remove func()) {
	handler := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) == 0 {
			return nil
		}
		target := args[0].Get("target")
		if el, ok := wrap(target); ok {
			fn(el)
		}
		return nil
	})
	d.document.Call("addEventListener", "click", handler)
	return func() {
		d.document.Call("removeEventListener", "click", handler)
		handler.Release()
	}
}

type jsElement struct {
	v js.Value
}

// wrap returns the nearest element for v; click targets can be text nodes.
func wrap(v js.Value) (Element, bool) {
	for v.Truthy() {
		if v.Get("nodeType").Int() == elementNode {
			return jsElement{v: v}, true
		}
		v = v.Get("parentNode")
	}
	return nil, false
}

func (e jsElement) Matches(selector string) bool {
	return e.v.Call("matches", selector).Bool()
}

func (e jsElement) Parent() Element {
	p := e.v.Get("parentElement")
	if !p.Truthy() {
		return nil
	}
	return jsElement{v: p}
}

func (e jsElement) SetCursor(cursor string) {
	e.v.Get("style").Set("cursor", cursor)
}
