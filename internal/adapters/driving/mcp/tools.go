package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/proconnect-cli/internal/core/domain"
)

// LoginInput is the input schema for the login tool.
type LoginInput struct {
	Name  string `json:"name" jsonschema:"full name of the person searching"`
	Email string `json:"email" jsonschema:"email address"`
	Role  string `json:"role" jsonschema:"one of user, professional, admin, support"`
}

// SessionOutput describes the active session.
type SessionOutput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Notification string `json:"notification"`
}

// LogoutInput is the input schema for the logout tool.
type LogoutInput struct{}

// NotificationOutput carries the notification raised by an action.
type NotificationOutput struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// SearchInput is the input schema for the search_professionals tool.
type SearchInput struct {
	Query      string `json:"query,omitempty" jsonschema:"text matched against name, category, subcategory and city"`
	Category   string `json:"category,omitempty" jsonschema:"exact category, e.g. Technology"`
	Location   string `json:"location,omitempty" jsonschema:"exact city, e.g. Mumbai"`
	PriceRange string `json:"price_range,omitempty" jsonschema:"price bracket: 0-500, 500-1000, 1000-2000 or 2000+"`
}

// SearchOutput is the output schema for the search_professionals tool.
type SearchOutput struct {
	Professionals []ProfessionalOutput `json:"professionals"`
	Statistics    StatisticsOutput     `json:"statistics"`
	Notification  string               `json:"notification"`
}

// ProfessionalOutput represents a single catalog entry.
type ProfessionalOutput struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Location    string  `json:"location"`
	Price       int     `json:"price"`
	PriceUnit   string  `json:"price_unit"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
}

// HireInput is the input schema for the hire_professional tool.
type HireInput struct {
	ID int `json:"id" jsonschema:"ID of the professional to hire"`
}

// StatisticsInput is the input schema for the statistics tool.
type StatisticsInput struct{}

// StatisticsOutput summarises the current search.
type StatisticsOutput struct {
	Count         int     `json:"count"`
	CategoryCount int     `json:"category_count"`
	AverageRating float64 `json:"average_rating"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "login",
		Description: "Open a session; required before searching or hiring",
	}, s.handleLogin)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "logout",
		Description: "Close the session and reset all filters",
	}, s.handleLogout)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_professionals",
		Description: "Filter the catalog of professionals by text, category, city and price",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "hire_professional",
		Description: "Send a hire request for a professional by ID",
	}, s.handleHire)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "statistics",
		Description: "Summary of the current search",
	}, s.handleStatistics)
}

func (s *Server) handleLogin(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input LoginInput,
) (*mcp.CallToolResult, SessionOutput, error) {
	m := s.ports.Marketplace
	session, err := m.Login(input.Name, input.Email, domain.Role(input.Role))
	if err != nil {
		return nil, SessionOutput{}, err
	}

	output := SessionOutput{
		Name:  session.Name,
		Email: session.Email,
		Role:  string(session.Role),
	}
	if n := m.Notification(); n != nil {
		output.Notification = n.Message
	}
	return nil, output, nil
}

func (s *Server) handleLogout(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ LogoutInput,
) (*mcp.CallToolResult, NotificationOutput, error) {
	m := s.ports.Marketplace
	m.Logout()

	var output NotificationOutput
	if n := m.Notification(); n != nil {
		output = toNotificationOutput(*n)
	}
	return nil, output, nil
}

func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	if err := s.throttle(ctx); err != nil {
		return nil, SearchOutput{}, err
	}

	if err := checkFilters(input); err != nil {
		return nil, SearchOutput{}, err
	}

	m := s.ports.Marketplace
	if err := m.SetQuery(input.Query); err != nil {
		return nil, SearchOutput{}, err
	}
	if err := m.SetCategory(domain.Category(input.Category)); err != nil {
		return nil, SearchOutput{}, fmt.Errorf("category: %w", err)
	}
	if err := m.SetLocation(domain.Location(input.Location)); err != nil {
		return nil, SearchOutput{}, fmt.Errorf("location: %w", err)
	}
	if err := m.SetPriceRange(domain.PriceRange(input.PriceRange)); err != nil {
		return nil, SearchOutput{}, fmt.Errorf("price_range: %w", err)
	}

	results, err := m.Professionals()
	if err != nil {
		return nil, SearchOutput{}, err
	}
	stats, err := m.Statistics()
	if err != nil {
		return nil, SearchOutput{}, err
	}
	notification, err := m.Search()
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Professionals: make([]ProfessionalOutput, len(results)),
		Statistics:    toStatisticsOutput(stats),
		Notification:  notification.Message,
	}
	for i, p := range results {
		output.Professionals[i] = toProfessionalOutput(p)
	}
	return nil, output, nil
}

// checkFilters rejects unknown categories and locations before any filter changes.
func checkFilters(input SearchInput) error {
	if c := domain.Category(input.Category); c != "" && !c.IsValid() {
		return fmt.Errorf("category: category %q: %w", c, domain.ErrInvalidInput)
	}
	if l := domain.Location(input.Location); l != "" && !l.IsValid() {
		return fmt.Errorf("location: location %q: %w", l, domain.ErrInvalidInput)
	}
	return nil
}

func (s *Server) handleHire(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HireInput,
) (*mcp.CallToolResult, NotificationOutput, error) {
	if err := s.throttle(ctx); err != nil {
		return nil, NotificationOutput{}, err
	}

	notification, err := s.ports.Marketplace.Hire(input.ID)
	if err != nil {
		return nil, NotificationOutput{}, err
	}
	return nil, toNotificationOutput(notification), nil
}

func (s *Server) handleStatistics(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ StatisticsInput,
) (*mcp.CallToolResult, StatisticsOutput, error) {
	stats, err := s.ports.Marketplace.Statistics()
	if err != nil {
		return nil, StatisticsOutput{}, err
	}
	return nil, toStatisticsOutput(stats), nil
}

// throttle rejects the call when the limiter has no token left.
func (s *Server) throttle(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.limiter.Allow() {
		return fmt.Errorf("%w: try again shortly", domain.ErrRateLimited)
	}
	return nil
}

func toProfessionalOutput(p domain.Professional) ProfessionalOutput {
	return ProfessionalOutput{
		ID:          p.ID,
		Name:        p.Name,
		Category:    string(p.Category),
		Subcategory: p.Subcategory,
		Location:    string(p.Location),
		Price:       p.Price,
		PriceUnit:   p.PriceUnit,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
	}
}

func toStatisticsOutput(stats domain.Statistics) StatisticsOutput {
	return StatisticsOutput{
		Count:         stats.Count,
		CategoryCount: stats.CategoryCount,
		AverageRating: stats.AverageRating,
	}
}

func toNotificationOutput(n domain.Notification) NotificationOutput {
	return NotificationOutput{
		Message: n.Message,
		Kind:    string(n.Kind),
	}
}
