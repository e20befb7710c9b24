package models

// Credentials is the request body of the token creation endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// VerifyTokenRequest is the request body of the token verification endpoint.
type VerifyTokenRequest struct {
	Token string `json:"token"`
}

// PostRequest is the body of post create and partial update requests.
// Nil fields are omitted from the JSON document.
type PostRequest struct {
	Title     *string `json:"title,omitempty"`
	Text      *string `json:"text,omitempty"`
	Published *bool   `json:"published,omitempty"`
}
