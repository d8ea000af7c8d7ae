package session

import "encoding/json"

// ExtractAccessToken opportunistically pulls the accessToken field out of a
// submitted payload. This is best-effort metadata, not validation: a payload
// that is not JSON, not an object, or has no string accessToken yields nil
// and never an error.
func ExtractAccessToken(sessionData string) *string {
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(sessionData), &parsed); err != nil {
		return nil
	}

	v, ok := parsed["accessToken"].(string)
	if !ok || v == "" {
		return nil
	}

	return &v
}
