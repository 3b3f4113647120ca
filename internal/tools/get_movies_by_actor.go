package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/redspace/tmdb-mcp-server/internal/protocol"
	"github.com/redspace/tmdb-mcp-server/internal/tmdb"
	"github.com/sirupsen/logrus"
)

// getMoviesByActorTool lists movies featuring a TMDB actor ID.
type getMoviesByActorTool struct {
	client *tmdb.Client
	log    *logrus.Entry
}

// GetMoviesByActor constructs the movie listing tool around a shared TMDB client.
func GetMoviesByActor(client *tmdb.Client, log *logrus.Entry) *getMoviesByActorTool {
	if log == nil {
		log = logrus.NewEntry(logrus.New())
	}
	return &getMoviesByActorTool{client: client, log: log.WithField("tool", "get_movies_by_actor")}
}

func (t *getMoviesByActorTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:  "get_movies_by_actor",
		Title: "Get Movies by Actor ID",
		Description: "Retrieve a list of movies featuring a specific actor. " +
			"Specify `actor_id` to search for movies that the actor appeared in.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"actor_id": {
					Type:        "integer",
					Description: "Required filter: return movies for this actor ID",
				},
			},
			Required: []string{"actor_id"},
		},
		Icons: []protocol.Icon{{
			Src:      "https://raw.githubusercontent.com/theREDspace/mcp-server-example/main/icons/movies-128.png",
			MimeType: "image/png",
			Sizes:    []string{"128x128"},
		}},
	}
}

type getMoviesByActorArgs struct {
	ActorID *int64 `json:"actor_id"`
}

func (t *getMoviesByActorTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args getMoviesByActorArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
		}
	}
	if args.ActorID == nil {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "actor_id is required and must be an integer"}
	}

	movies, err := t.client.MoviesByActor(ctx, *args.ActorID)
	if err != nil {
		return protocol.ErrorResult(err.Error()), nil
	}
	if len(movies) == 0 {
		return protocol.ErrorResult("No movies were found!"), nil
	}

	lines := make([]string, 0, len(movies))
	for i, movie := range movies {
		lines = append(lines, fmt.Sprintf("%d. %s", i, movie.Label()))
	}
	return protocol.CallResult{Content: []protocol.ContentPart{
		protocol.TextContent(strings.Join(lines, "\n")),
	}}, nil
}
