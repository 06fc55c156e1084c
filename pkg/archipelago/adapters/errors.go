package adapters

import "github.com/toyz/archipelago/pkg/archipelago"

// errorBody renders a handler error the same way for every framework
func errorBody(err error) (int, map[string]string) {
	code, message := archipelago.ErrorStatus(err)
	return code, map[string]string{"error": message}
}
