package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/redspace/tmdb-mcp-server/internal/config"
	"github.com/redspace/tmdb-mcp-server/internal/mcp"
	"github.com/redspace/tmdb-mcp-server/internal/protocol"
)

func stubServer(t *testing.T, handler http.HandlerFunc) *mcp.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.Config{
		Token:        "test-token",
		APIBaseURL:   srv.URL,
		ImageBaseURL: srv.URL + "/t/p/w92",
	}
	return NewMCPServer(cfg, nil)
}

func callTool(t *testing.T, srv *mcp.Server, name, args string) protocol.Response {
	t.Helper()
	params, _ := json.Marshal(protocol.CallParams{Name: name, Args: json.RawMessage(args)})
	resp, err := srv.Handle(context.Background(), protocol.Request{JSONRPC: "2.0", ID: "1", Method: "tools/call", Params: params})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	return resp
}

func TestListToolsCatalog(t *testing.T) {
	srv := stubServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.NotFound(w, nil)
	})

	resp, err := srv.Handle(context.Background(), protocol.Request{ID: "1", Method: "tools/list"})
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	list, ok := resp.Result.(protocol.ListResult)
	if !ok {
		t.Fatalf("unexpected result type: %T", resp.Result)
	}
	if len(list.Tools) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(list.Tools))
	}
	if list.Tools[0].Name != "get_actor_info" || list.Tools[1].Name != "get_movies_by_actor" {
		t.Fatalf("unexpected catalog: %+v", list.Tools)
	}
}

func TestGetActorInfoEndToEnd(t *testing.T) {
	srv := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/search/person":
			_, _ = w.Write([]byte(`{"results":[{"id":1234}]}`))
		case r.URL.Path == "/person/1234":
			_, _ = w.Write([]byte(`{"id":1234,"name":"Sylvester Stallone","birthday":"1946-07-06","place_of_birth":"New York City, New York, USA","biography":"An actor.","profile_path":"/stallone.jpg"}`))
		case strings.HasPrefix(r.URL.Path, "/t/p/w92/"):
			_, _ = w.Write([]byte("jpeg-bytes"))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	})

	resp := callTool(t, srv, "get_actor_info", `{"actor_name":"Sylvester Stallone"}`)
	if resp.Error != nil {
		t.Fatalf("unexpected protocol error: %+v", resp.Error)
	}
	result, ok := resp.Result.(protocol.CallResult)
	if !ok {
		t.Fatalf("unexpected result type: %T", resp.Result)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %+v", result)
	}
	if len(result.Content) != 2 {
		t.Fatalf("expected text + image, got %+v", result.Content)
	}
	if result.Content[0].Type != "text" || !strings.HasPrefix(result.Content[0].Text, "ID: 1234\nName: Sylvester Stallone") {
		t.Fatalf("unexpected text part: %+v", result.Content[0])
	}
	if result.Content[1].Type != "image" || result.Content[1].MimeType != "image/jpeg" {
		t.Fatalf("unexpected image part: %+v", result.Content[1])
	}
}

func TestGetMoviesByActorEndToEnd(t *testing.T) {
	srv := stubServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/discover/movie" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"results":[
			{"id":1,"title":"Cliffhanger","release_date":"1993-11-19"},
			{"id":2,"title":"Rocky","release_date":"1976-11-21"}
		]}`))
	})

	resp := callTool(t, srv, "get_movies_by_actor", `{"actor_id":1234}`)
	if resp.Error != nil {
		t.Fatalf("unexpected protocol error: %+v", resp.Error)
	}
	result := resp.Result.(protocol.CallResult)
	if result.IsError {
		t.Fatalf("unexpected error result: %+v", result)
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected one text part, got %+v", result.Content)
	}
	want := "0. Cliffhanger (1993)\n1. Rocky (1976)"
	if result.Content[0].Text != want {
		t.Fatalf("text mismatch:\n got %q\nwant %q", result.Content[0].Text, want)
	}
}

func TestUnknownToolRejectedBeforeAPICall(t *testing.T) {
	srv := stubServer(t, func(_ http.ResponseWriter, r *http.Request) {
		t.Errorf("no API call expected, got %s", r.URL.Path)
	})

	resp := callTool(t, srv, "get_tv_shows", `{}`)
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Fatalf("expected -32601, got %+v", resp.Error)
	}
}
