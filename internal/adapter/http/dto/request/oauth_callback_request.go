package request

import "strings"

// OAuthCallbackRequest is the query string Zoho sends back to the redirect URI.
type OAuthCallbackRequest struct {
	Code     string `form:"code"`
	State    string `form:"state"`
	Location string `form:"location"`
	Error    string `form:"error"`
}

func (r OAuthCallbackRequest) ResolveCode() string {
	return strings.TrimSpace(r.Code)
}

// Denied reports whether the user refused consent on the Zoho screen.
func (r OAuthCallbackRequest) Denied() bool {
	return strings.TrimSpace(r.Error) != ""
}
