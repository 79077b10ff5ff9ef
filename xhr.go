package mobylette

import (
	"net/http"
	"strings"
)

// HeaderRequestedWith is the de facto header browsers and JS libraries set
// on XMLHttpRequest/fetch calls.
const HeaderRequestedWith = "X-Requested-With"

const xmlHTTPRequest = "xmlhttprequest"

// IsXHR checks if the request was made via XMLHttpRequest.
func IsXHR(r *http.Request) bool {
	return strings.ToLower(r.Header.Get(HeaderRequestedWith)) == xmlHTTPRequest
}
