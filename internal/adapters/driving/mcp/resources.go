package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for payslip resources.
	uriScheme = "payslips://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "payslips",
		Name:        "payslips",
		Description: "All payslips, most recent first",
		MIMEType:    "application/json",
	}, s.handlePayslipsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "payslips/{id}",
		Name:        "payslip",
		Description: "A single payslip",
		MIMEType:    "application/json",
	}, s.handlePayslipResource)
}

// handlePayslipsResource returns the whole collection. It reads the sorted
// view and leaves the filter alone.
func (s *Server) handlePayslipsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	state := s.ports.Payslips.State()

	infos := make([]PayslipOutput, len(state.Sorted))
	for i, p := range state.Sorted {
		infos[i] = s.describe(ctx, p)
	}

	return jsonResult(req.Params.URI, infos)
}

// handlePayslipResource returns one payslip.
func (s *Server) handlePayslipResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractPayslipID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	p, ok := s.ports.Payslips.GetByID(id)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return jsonResult(req.Params.URI, s.describe(ctx, p))
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractPayslipID extracts the id from a URI like payslips://payslips/{id}.
func extractPayslipID(uri string) string {
	const prefix = uriScheme + "payslips/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
