//go:build js && wasm

// Command redirect-wasm is the browser side of the home redirect. Build it
// with GOOS=js GOARCH=wasm, publish it as the configured homeRedirect.wasmPath
// together with wasm_exec.js, and enable homeRedirect in the config.
//
// A client-side renderer that replaces page content can call
// window.shadowlight.renderComplete() after every render.
package main

import (
	"log/slog"
	"syscall/js"

	"github.com/Bitlatte/shadowlight/internal/redirect"
)

func main() {
	document := js.Global().Get("document")

	binder := redirect.New(redirect.NewBrowserDocument(), redirect.DetectNavigator(), redirect.WithLogger(slog.Default()))
	events := redirect.NewRenderEvents()
	binder.Attach(events)

	api := js.Global().Get("Object").New()
	api.Set("renderComplete", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		events.Emit()
		return nil
	}))
	js.Global().Set("shadowlight", api)

	if document.Get("readyState").String() != "loading" {
		events.Emit()
	} else {
		var onReady js.Func
		onReady = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			events.Emit()
			onReady.Release()
			return nil
		})
		document.Call("addEventListener", "DOMContentLoaded", onReady, map[string]interface{}{"once": true})
	}

	// Keep the WASM runtime alive
	select {}
}
