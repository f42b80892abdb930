// Package server wires the bakery MCP components and creates the server
// instance. This is the composition root: concrete tool implementations
// are constructed here and registered against the MCP server. No business
// logic lives here.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/pumpernickelhq/bakery-assistant/bakery/inquiry"
	"github.com/pumpernickelhq/bakery-assistant/bakery/intake"
	"github.com/pumpernickelhq/bakery-assistant/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Config controls the streamable HTTP listener.
type Config struct {
	Host string `split_words:"true" default:"127.0.0.1"`
	Port int    `split_words:"true" default:"4300"`
	Path string `split_words:"true" default:"/bakery-mcp"`
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Deps are the shared services the tools are built from.
type Deps struct {
	Parser    *intake.Parser
	Inquiries *inquiry.Service
}

// New creates the MCP server with every bakery tool and resource
// registered.
func New(deps Deps) (*server.MCPServer, error) {
	if deps.Parser == nil {
		return nil, fmt.Errorf("server: intake parser is required")
	}
	if deps.Inquiries == nil {
		return nil, fmt.Errorf("server: inquiry service is required")
	}

	s := server.NewMCPServer(
		"Pumpernickel Bakery",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// Order management.

	translator := tools.NewOrderTranslatorTool(deps.Parser)
	s.AddTool(translator.Definition(), translator.Handle)

	manager := tools.NewOrderManagerTool(deps.Parser)
	s.AddTool(manager.Definition(), manager.Handle)

	complete := tools.NewOrderCompleteTool(deps.Parser)
	s.AddTool(complete.Definition(), complete.Handle)

	receiveDetails := tools.NewReceiveOrderDetailsTool()
	s.AddTool(receiveDetails.Definition(), receiveDetails.Handle)

	orderTotal := tools.NewOrderTotalTool()
	s.AddTool(orderTotal.Definition(), orderTotal.Handle)

	// Product and company inquiries.

	productInquiry := tools.NewProductInquiryTool(deps.Inquiries)
	s.AddTool(productInquiry.Definition(), productInquiry.Handle)

	companyInquiry := tools.NewCompanyInquiryTool(deps.Inquiries)
	s.AddTool(companyInquiry.Definition(), companyInquiry.Handle)

	// Catalog.

	catalog := tools.NewProductCatalogTool()
	s.AddTool(catalog.Definition(), catalog.Handle)

	fullMenu := tools.NewFullMenuTool()
	s.AddTool(fullMenu.Definition(), fullMenu.Handle)

	search := tools.NewSearchProductsTool()
	s.AddTool(search.Definition(), search.Handle)

	productDetails := tools.NewProductDetailsTool()
	s.AddTool(productDetails.Definition(), productDetails.Handle)

	recommendations := tools.NewRecommendationsTool()
	s.AddTool(recommendations.Definition(), recommendations.Handle)

	// Business information and customer service.

	businessInfo := tools.NewBusinessInfoTool()
	s.AddTool(businessInfo.Definition(), businessInfo.Handle)

	contactOptions := tools.NewContactOptionsTool()
	s.AddTool(contactOptions.Definition(), contactOptions.Handle)

	faq := tools.NewFAQTool()
	s.AddTool(faq.Definition(), faq.Handle)

	allergens := tools.NewAllergenTool()
	s.AddTool(allergens.Definition(), allergens.Handle)

	// Weight conversion.

	poundsToKg := tools.NewPoundsToKilogramsTool()
	s.AddTool(poundsToKg.Definition(), poundsToKg.Handle)

	kgToPounds := tools.NewKilogramsToPoundsTool()
	s.AddTool(kgToPounds.Definition(), kgToPounds.Handle)

	// Fulfillment.

	pickupReminder := tools.NewPickupReminderTool()
	s.AddTool(pickupReminder.Definition(), pickupReminder.Handle)

	scheduleDelivery := tools.NewScheduleDeliveryTool()
	s.AddTool(scheduleDelivery.Definition(), scheduleDelivery.Handle)

	// Resources.

	requirements := tools.NewRequirementsResource()
	s.AddResource(requirements.Definition(), requirements.Handle)

	return s, nil
}

// Start serves the MCP server over streamable HTTP and blocks until the
// listener fails.
func Start(cfg Config, s *server.MCPServer) error {
	httpServer := server.NewStreamableHTTPServer(s, server.WithEndpointPath(cfg.Path))
	return httpServer.Start(cfg.Addr())
}
