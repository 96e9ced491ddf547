//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"
)

func uniqueSuffix() int64 {
	return time.Now().UnixNano()
}

func envOrDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func baseURL() string {
	return envOrDefault("API_BASE_URL", "http://localhost:8080")
}

func getJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	resp, err := http.Get(baseURL() + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	return resp.StatusCode, decodeBody(t, resp)
}

func postJSON(t *testing.T, path string, payload any) (int, map[string]any) {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	resp, err := http.Post(baseURL()+path, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	return resp.StatusCode, decodeBody(t, resp)
}

func deleteJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, baseURL()+path, nil)
	if err != nil {
		t.Fatalf("build DELETE %s: %v", path, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	return resp.StatusCode, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	return out
}

func createQuestion(t *testing.T, question, answer string, category, difficulty int) int {
	t.Helper()

	status, body := postJSON(t, "/questions", map[string]any{
		"question":   question,
		"answer":     answer,
		"category":   category,
		"difficulty": difficulty,
	})
	if status != http.StatusOK {
		t.Fatalf("unexpected create status %d: %v", status, body)
	}
	created, ok := body["created"].(float64)
	if !ok {
		t.Fatalf("create response missing id: %v", body)
	}
	return int(created)
}

func deleteQuestion(t *testing.T, id int) {
	t.Helper()

	status, body := deleteJSON(t, fmt.Sprintf("/questions/%d", id))
	if status != http.StatusOK {
		t.Fatalf("unexpected delete status %d: %v", status, body)
	}
}
