package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/etnz/optionbook"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New(optionbook.New()).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s error = %v", method, url, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("cannot decode response: %v", err)
	}
}

func TestServer_UserLifecycle(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, "POST", ts.URL+"/api/users", `{"name":"Alice"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST /api/users status = %d, want 201", resp.StatusCode)
	}
	var u optionbook.User
	decode(t, resp, &u)
	if u.ID != 1 || u.Name != "Alice" {
		t.Errorf("created user = %+v", u)
	}

	resp = do(t, "GET", ts.URL+"/api/users", "")
	var users []optionbook.User
	decode(t, resp, &users)
	if len(users) != 1 || users[0].Name != "Alice" {
		t.Errorf("GET /api/users = %+v", users)
	}

	resp = do(t, "DELETE", ts.URL+"/api/users/1", "")
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("DELETE /api/users/1 status = %d, want 204", resp.StatusCode)
	}
	resp.Body.Close()

	// The user is gone, a second delete is a 404.
	resp = do(t, "DELETE", ts.URL+"/api/users/1", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("second DELETE status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestServer_CreateUserValidation(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, "POST", ts.URL+"/api/users", `{"name":"  "}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("POST empty name status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()

	resp = do(t, "POST", ts.URL+"/api/users", `{not json`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("POST bad json status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestServer_CreateOptionValidation(t *testing.T) {
	ts := newTestServer(t)

	testCases := []struct {
		name string
		body string
	}{
		{name: "empty symbol", body: `{"symbol":"","kind":"call","strike":150,"expiration":"2025-06-20"}`},
		{name: "bad kind", body: `{"symbol":"AAPL","kind":"straddle","strike":150,"expiration":"2025-06-20"}`},
		{name: "negative strike", body: `{"symbol":"AAPL","kind":"call","strike":-1,"expiration":"2025-06-20"}`},
		{name: "bad expiration", body: `{"symbol":"AAPL","kind":"call","strike":150,"expiration":"someday"}`},
	}
	for _, tc := range testCases {
		resp := do(t, "POST", ts.URL+"/api/options", tc.body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tc.name, resp.StatusCode)
		}
		resp.Body.Close()
	}

	// And nothing was created along the way.
	resp := do(t, "GET", ts.URL+"/api/options", "")
	var options []optionbook.Option
	decode(t, resp, &options)
	if len(options) != 0 {
		t.Errorf("GET /api/options = %+v, want empty", options)
	}
}

func TestServer_OwnershipAndMatrix(t *testing.T) {
	ts := newTestServer(t)

	do(t, "POST", ts.URL+"/api/users", `{"name":"Alice"}`).Body.Close()
	do(t, "POST", ts.URL+"/api/users", `{"name":"Bob"}`).Body.Close()
	resp := do(t, "POST", ts.URL+"/api/options", `{"symbol":"AAPL","kind":"call","strike":150,"expiration":"2025-06-20"}`)
	var o optionbook.Option
	decode(t, resp, &o)

	resp = do(t, "PUT", ts.URL+"/api/ownership", `{"user_id":1,"option_id":1,"quantity":5}`)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("PUT /api/ownership status = %d, want 204", resp.StatusCode)
	}
	resp.Body.Close()

	resp = do(t, "PUT", ts.URL+"/api/ownership", `{"user_id":1,"option_id":1,"quantity":-2}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("PUT negative quantity status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()

	resp = do(t, "PUT", ts.URL+"/api/ownership", `{"user_id":99,"option_id":1,"quantity":2}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("PUT unknown user status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()

	resp = do(t, "GET", ts.URL+"/api/matrix", "")
	var v struct {
		Users []optionbook.User `json:"users"`
		Rows  []struct {
			Option     optionbook.Option `json:"option"`
			Quantities []int64           `json:"quantities"`
		} `json:"rows"`
	}
	decode(t, resp, &v)
	if len(v.Users) != 2 || len(v.Rows) != 1 {
		t.Fatalf("GET /api/matrix = %+v", v)
	}
	if v.Rows[0].Quantities[0] != 5 || v.Rows[0].Quantities[1] != 0 {
		t.Errorf("matrix quantities = %v, want [5 0]", v.Rows[0].Quantities)
	}
}
