package watchpage

import "github.com/dop251/goja"

// decodeLooseJSON re-serializes an embedded document that is not strict
// JSON (unquoted keys, single quotes, trailing commas) by evaluating the
// object literal in a throwaway JS runtime. The page embeds these blobs as
// JavaScript, so JS grammar is the authoritative reading.
func decodeLooseJSON(raw []byte) ([]byte, bool) {
	vm := goja.New()
	value, err := vm.RunString("JSON.stringify((" + string(raw) + "))")
	if err != nil {
		return nil, false
	}
	s, ok := value.Export().(string)
	if !ok || s == "" || s == "null" {
		return nil, false
	}
	return []byte(s), true
}
