package controller

import "github.com/labstack/echo/v4"

// RegisterRoutes wires the public API surface onto an echo instance.
// Shared between the serve command and the end-to-end suite.
func RegisterRoutes(e *echo.Echo, donations *DonationController, enquiries *EnquiryController) {
	e.GET("/health", donations.Health)

	api := e.Group("/api")
	api.GET("/donations/templates", donations.ListTemplates)
	api.POST("/donations/redirect-flow", donations.CreateRedirectFlow)
	api.POST("/enquiries/:kind", enquiries.SubmitEnquiry)
}
