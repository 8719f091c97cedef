package pathmap

import "strings"

// ParsePath splits a dotted path string into a string-keyed Path:
// "server.tls.cert" becomes {"server", "tls", "cert"}. The empty string
// denotes the root. There is no escaping; keys containing dots must be built
// as a Path literal instead.
func ParsePath(s string) Path[string] {
	if s == "" {
		return nil
	}
	return strings.Split(s, ".")
}
