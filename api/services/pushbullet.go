package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrInvalidAccessToken classifies a push rejected because the user's access
// token is not valid.
var ErrInvalidAccessToken = errors.New("invalid access token")

// PushbulletError is an unclassified Pushbullet failure. Details are carried
// in the message.
type PushbulletError struct {
	Message string
}

func (e *PushbulletError) Error() string {
	return e.Message
}

// PushClient is the capability the dispatcher needs from the push-delivery
// service: deliver one notification given a credential, title and body.
type PushClient interface {
	CreatePush(accessToken, title, body string) error
}

// PushbulletClient is a client for the Pushbullet API.
type PushbulletClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewPushbulletClient creates a new instance of PushbulletClient.
func NewPushbulletClient(baseURL string) *PushbulletClient {
	return &PushbulletClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
	}
}

type pushbulletErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreatePush creates a new push. A 401 response means the access token was
// rejected and is reported as ErrInvalidAccessToken; any other non-200
// response is a generic PushbulletError (200 is the only status the API
// documents for a successful push).
func (c *PushbulletClient) CreatePush(accessToken, title, body string) error {
	payload := map[string]string{
		"title": title,
		"body":  body,
		"type":  "note",
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/pushes", bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Access-Token", accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &PushbulletError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return nil
	}

	respBody, _ := io.ReadAll(resp.Body)
	var errBody pushbulletErrorBody
	_ = json.Unmarshal(respBody, &errBody)
	message := errBody.Error.Message
	if message == "" {
		message = fmt.Sprintf("unexpected status %d", resp.StatusCode)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s: %w", message, ErrInvalidAccessToken)
	}
	return &PushbulletError{Message: message}
}
