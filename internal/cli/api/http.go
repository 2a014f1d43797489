package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// doJSON выполняет запрос с JSON-телом (или без него) и bearer-токеном.
func doJSON(method, url string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	respBody, _ := io.ReadAll(resp.Body)
	return resp, respBody, nil
}

// PostJSON sends a JSON POST request. If token is non-empty, it is passed as bearer auth.
func PostJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return doJSON(http.MethodPost, url, payload, token)
}

// GetJSON sends a GET request with bearer auth.
func GetJSON(url, token string) (*http.Response, []byte, error) {
	return doJSON(http.MethodGet, url, nil, token)
}

// PutJSON sends a JSON PUT request with bearer auth.
func PutJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return doJSON(http.MethodPut, url, payload, token)
}

// Delete sends a DELETE request with bearer auth.
func Delete(url, token string) (*http.Response, []byte, error) {
	return doJSON(http.MethodDelete, url, nil, token)
}
