package models

// Credentials is the user name and personal access token pair kept between runs.
type Credentials struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

// Identity is what the provider reports for a token.
type Identity struct {
	Login  string
	Scopes []string
}

// HasScope reports whether the token was granted the given OAuth scope.
func (i Identity) HasScope(scope string) bool {
	for _, s := range i.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}
