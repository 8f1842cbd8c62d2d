package bridge

import (
	_ "embed"
	"encoding/json"
	"strings"
)

// DefaultBinding is the name of the native function the shells expose.
const DefaultBinding = "__deskbridgeInvoke"

//go:embed shim.js
var shimSource string

// Shim returns the script that defines window.__DESKBRIDGE__.invoke on top of
// the native binding. When compatGlobal is set, invoke is also published as
// window[compatGlobal].invoke. A non-empty title is applied to pages that do
// not set their own.
func Shim(binding, compatGlobal, title string) string {
	return strings.NewReplacer(
		"__BINDING__", jsString(binding),
		"__COMPAT__", jsString(compatGlobal),
		"__TITLE__", jsString(title),
	).Replace(shimSource)
}

// ResolveExpression returns the script that settles a pending invoke() with
// an encoded Response.
func ResolveExpression(response []byte) string {
	return "window.__DESKBRIDGE__._resolve(" + string(response) + ")"
}

func jsString(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}
