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

// getActorInfoTool looks up an actor profile on TMDB by name.
type getActorInfoTool struct {
	client *tmdb.Client
	log    *logrus.Entry
}

// GetActorInfo constructs the actor lookup tool around a shared TMDB client.
func GetActorInfo(client *tmdb.Client, log *logrus.Entry) *getActorInfoTool {
	if log == nil {
		log = logrus.NewEntry(logrus.New())
	}
	return &getActorInfoTool{client: client, log: log.WithField("tool", "get_actor_info")}
}

func (t *getActorInfoTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:  "get_actor_info",
		Title: "Get Actor Information",
		Description: "Search for detailed information about an actor based on their name. " +
			"This tool retrieves data such as actor id, biography, filmography, and other relevant " +
			"information to provide a comprehensive profile of the actor. " +
			"Use this tool when you want to learn more about a specific actor or explore their career. " +
			"Simply provide the actor's name, and the tool will fetch all available details.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"actor_name": {
					Type:        "string",
					Description: "The name of the actor.",
				},
			},
			Required: []string{"actor_name"},
		},
		Icons: []protocol.Icon{{
			Src:      "https://raw.githubusercontent.com/theREDspace/mcp-server-example/main/icons/stallone-128.png",
			MimeType: "image/png",
			Sizes:    []string{"128x128"},
		}},
	}
}

type getActorInfoArgs struct {
	ActorName *string `json:"actor_name"`
}

func (t *getActorInfoTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args getActorInfoArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
		}
	}
	if args.ActorName == nil || strings.TrimSpace(*args.ActorName) == "" {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "actor_name is required and must be a non-empty string"}
	}
	actorName := *args.ActorName

	actor, err := t.client.ActorByName(ctx, actorName)
	if err != nil {
		return protocol.ErrorResult(err.Error()), nil
	}
	if actor == nil {
		return protocol.ErrorResult(fmt.Sprintf("No actors matching the name %q were found", actorName)), nil
	}

	content := []protocol.ContentPart{protocol.TextContent(actor.String())}

	// The profile image is best-effort: skip it when the record has no
	// path, and fall back to text-only when the download fails.
	if actor.ProfilePath != "" {
		image, err := t.client.ImageAsBase64(ctx, actor.ProfilePath)
		if err != nil {
			t.log.WithError(err).WithField("actor_id", actor.ID).Warn("profile image fetch failed")
		} else {
			content = append(content, protocol.ImageContent(image, "image/jpeg"))
		}
	}

	return protocol.CallResult{Content: content}, nil
}
