package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerTimezonesResource(srv, svc)
	registerTimezoneTemplate(srv, svc)
}

func registerTimezonesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"clocker://timezones",
		"Timezones",
		mcp.WithResourceDescription("Every panel row with its current time."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		rows, err := svc.ListTimezones(ctx, 0)
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"timezones": rows,
			"count":     len(rows),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerTimezoneTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"clocker://timezones/{id}",
		"Timezone Details",
		mcp.WithTemplateDescription("A single panel row by entry identifier."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request.Params.Arguments["id"])
		if id == "" {
			return nil, fmt.Errorf("timezone id is required")
		}
		dto, err := svc.TimezoneByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"timezone": dto})
	})
}

// templateArg unwraps a URI template variable, which the server may pass
// as a string or a one-element slice.
func templateArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
