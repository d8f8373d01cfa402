package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListTimezonesTool(srv, svc)
	registerGetTimezoneTool(srv, svc)
	registerAddTimezoneTool(srv, svc)
	registerRemoveTimezoneTool(srv, svc)
	registerSetNoteTool(srv, svc)
}

func registerListTimezonesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_timezones",
		mcp.WithDescription("List the panel rows with their current time, relative date and sunrise or sunset."),
		mcp.WithNumber("offset_minutes",
			mcp.Description("Show times this many minutes from now, like the panel's time slider."),
			mcp.Min(-1440),
			mcp.Max(1440),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		offset := request.GetInt("offset_minutes", 0)
		results, err := svc.ListTimezones(ctx, offset)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"offsetMinutes": offset,
			"timezones":     results,
			"count":         len(results),
		})
	})
}

func registerGetTimezoneTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_timezone",
		mcp.WithDescription("Fetch a single panel row by entry identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to fetch."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.TimezoneByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerAddTimezoneTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_timezone",
		mcp.WithDescription("Append a timezone to the panel."),
		mcp.WithString("timezone",
			mcp.Required(),
			mcp.Description("IANA zone name such as Europe/Berlin."),
		),
		mcp.WithString("label",
			mcp.Description("Optional label shown instead of the zone name."),
		),
		mcp.WithString("note",
			mcp.Description("Optional note shown under the row."),
		),
		mcp.WithBoolean("city",
			mcp.Description("Mark the entry as a city rather than a bare timezone."),
		),
		mcp.WithNumber("latitude",
			mcp.Description("Latitude for sunrise and sunset."),
			mcp.Min(-90),
			mcp.Max(90),
		),
		mcp.WithNumber("longitude",
			mcp.Description("Longitude for sunrise and sunset."),
			mcp.Min(-180),
			mcp.Max(180),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Timezone  string   `json:"timezone"`
			Label     string   `json:"label"`
			Note      string   `json:"note"`
			City      bool     `json:"city"`
			Latitude  *float64 `json:"latitude"`
			Longitude *float64 `json:"longitude"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if strings.TrimSpace(args.Timezone) == "" {
			return mcp.NewToolResultError("timezone is required"), nil
		}
		if (args.Latitude == nil) != (args.Longitude == nil) {
			return mcp.NewToolResultError("latitude and longitude must be set together"), nil
		}

		dto, err := svc.AddTimezone(ctx, AddTimezoneOptions{
			TimezoneID: strings.TrimSpace(args.Timezone),
			Label:      args.Label,
			Note:       args.Note,
			City:       args.City,
			Latitude:   args.Latitude,
			Longitude:  args.Longitude,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerRemoveTimezoneTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove_timezone",
		mcp.WithDescription("Remove the row at an index. The home row is kept unless confirm_home is true."),
		mcp.WithNumber("row",
			mcp.Required(),
			mcp.Description("Zero-based row index, as returned by list_timezones."),
			mcp.Min(0),
		),
		mcp.WithBoolean("confirm_home",
			mcp.Description("Answer yes when removing the home row."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		row, err := request.RequireInt("row")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := svc.RemoveTimezone(ctx, row, request.GetBool("confirm_home", false))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(result)
	})
}

func registerSetNoteTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_note",
		mcp.WithDescription("Set or clear the note on a row."),
		mcp.WithNumber("row",
			mcp.Required(),
			mcp.Description("Zero-based row index."),
			mcp.Min(0),
		),
		mcp.WithString("note",
			mcp.Description("New note text; empty clears the note."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		row, err := request.RequireInt("row")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.SetNote(ctx, row, request.GetString("note", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
