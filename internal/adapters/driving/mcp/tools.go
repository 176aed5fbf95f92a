package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/payslip-cli/internal/core/domain"
)

// ListInput is the input schema for the list_payslips tool.
type ListInput struct {
	Sort   string `json:"sort,omitempty" jsonschema:"recent (default) or oldest"`
	Year   string `json:"year,omitempty" jsonschema:"four digit year to filter by"`
	Search string `json:"search,omitempty" jsonschema:"text matched against the formatted period dates, e.g. mar"`
}

// ListOutput is the output schema for the list_payslips tool.
type ListOutput struct {
	Payslips       []PayslipOutput `json:"payslips"`
	Count          int             `json:"count"`
	Total          int             `json:"total"`
	AvailableYears []int           `json:"available_years"`
}

// PayslipOutput describes one payslip.
type PayslipOutput struct {
	ID       string `json:"id"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
	Period   string `json:"period"`
	File     string `json:"file"`
	Type     string `json:"type"`
	Stored   bool   `json:"stored"`
	Path     string `json:"path,omitempty"`
}

// IDInput is the input schema for tools addressing a single payslip.
type IDInput struct {
	ID string `json:"id" jsonschema:"the payslip id"`
}

// DownloadOutput is the output schema for the download_payslip tool.
type DownloadOutput struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_payslips",
		Description: "List payslips, optionally filtered by year and date text",
	}, s.handleList)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_payslip",
		Description: "Get a single payslip and whether its document is saved",
	}, s.handleGet)

	if s.ports.Retrieval != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "download_payslip",
			Description: "Save a payslip's document to local storage and return its path",
		}, s.handleDownload)
	}
}

// handleList applies the requested view and returns its snapshot. Every
// call sets all three inputs so results never depend on a previous call.
func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListInput,
) (*mcp.CallToolResult, ListOutput, error) {
	order := domain.SortRecent
	if input.Sort != "" {
		parsed, err := domain.ParseSortOrder(input.Sort)
		if err != nil {
			return nil, ListOutput{}, err
		}
		order = parsed
	}
	// Validate everything before touching the shared view so a rejected
	// input never leaves it half-applied.
	if year := strings.TrimSpace(input.Year); year != "" {
		if r := domain.ValidateYear(year); !r.Valid {
			return nil, ListOutput{}, domain.NewAppError(domain.ErrCodeInvalidInput, r.Error, domain.ErrInvalidInput)
		}
	}
	if r := domain.ValidateSearchText(input.Search); !r.Valid {
		return nil, ListOutput{}, domain.NewAppError(domain.ErrCodeInvalidInput, r.Error, domain.ErrInvalidInput)
	}

	s.viewMu.Lock()
	defer s.viewMu.Unlock()

	if err := s.ports.Payslips.SetSortOrder(order); err != nil {
		return nil, ListOutput{}, err
	}
	if r := s.ports.Payslips.SetSelectedYear(input.Year); !r.Valid {
		return nil, ListOutput{}, domain.NewAppError(domain.ErrCodeInvalidInput, r.Error, domain.ErrInvalidInput)
	}
	if r := s.ports.Payslips.SetSearchText(input.Search); !r.Valid {
		return nil, ListOutput{}, domain.NewAppError(domain.ErrCodeInvalidInput, r.Error, domain.ErrInvalidInput)
	}

	state := s.ports.Payslips.State()
	output := ListOutput{
		Payslips:       make([]PayslipOutput, len(state.Filtered)),
		Count:          len(state.Filtered),
		Total:          len(state.Sorted),
		AvailableYears: state.AvailableYears,
	}
	for i, p := range state.Filtered {
		output.Payslips[i] = s.describe(ctx, p)
	}
	return nil, output, nil
}

// handleGet returns one payslip by id.
func (s *Server) handleGet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IDInput,
) (*mcp.CallToolResult, PayslipOutput, error) {
	p, err := s.lookup(input.ID)
	if err != nil {
		return nil, PayslipOutput{}, err
	}
	return nil, s.describe(ctx, p), nil
}

// handleDownload acquires a payslip's document.
func (s *Server) handleDownload(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IDInput,
) (*mcp.CallToolResult, DownloadOutput, error) {
	p, err := s.lookup(input.ID)
	if err != nil {
		return nil, DownloadOutput{}, err
	}

	path, err := s.ports.Retrieval.Acquire(ctx, p)
	if err != nil {
		return nil, DownloadOutput{}, fmt.Errorf("%s: %w", domain.UserMessage(err), err)
	}

	return nil, DownloadOutput{
		Path:    path,
		Message: s.ports.Retrieval.LocationMessage(path),
	}, nil
}

func (s *Server) lookup(id string) (domain.Payslip, error) {
	p, ok := s.ports.Payslips.GetByID(id)
	if !ok {
		return domain.Payslip{}, domain.NewAppError(domain.ErrCodePayslipNotFound,
			fmt.Sprintf("payslip %q not found", id), domain.ErrNotFound)
	}
	return p, nil
}

// describe converts a payslip to its output form, including storage state
// when a retrieval service is available.
func (s *Server) describe(ctx context.Context, p domain.Payslip) PayslipOutput {
	out := PayslipOutput{
		ID:       p.ID,
		FromDate: p.FromDate,
		ToDate:   p.ToDate,
		Period:   p.Period(),
		File:     p.File,
		Type:     p.FileType().Label(),
	}
	if s.ports.Retrieval == nil {
		return out
	}
	if out.Stored = s.ports.Retrieval.IsStored(ctx, p); out.Stored {
		out.Path, _ = s.ports.Retrieval.CanonicalPath(p)
	}
	return out
}
