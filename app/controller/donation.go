package controller

import (
	"errors"
	"net/http"

	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/factory"
	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/mapper"
	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/service"
	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/types"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Fixed client-facing messages. Upstream and internal detail is logged
// server-side and never included in a response.
const (
	msgMissingFields      = "Missing required fields"
	msgTemplatesFailed    = "Failed to fetch templates"
	msgRedirectFlowFailed = "Failed to create redirect flow"
)

type DonationController struct {
	donationService *service.DonationService
	logger          logrus.FieldLogger
}

func NewDonationController(donationService *service.DonationService) *DonationController {
	return &DonationController{
		donationService: donationService,
		logger:          factory.NewModuleLogger("donations-controller"),
	}
}

func (c *DonationController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.HealthResponse{Status: "ok"})
}

func (c *DonationController) ListTemplates(ctx echo.Context) error {
	req := types.NewListTemplatesRequestFromContext(ctx)

	templates, err := c.donationService.ListTemplates(req.Type, req.Category)
	if err != nil {
		c.logger.WithError(err).Error("List templates failed")
		return c.writeError(ctx, http.StatusInternalServerError, msgTemplatesFailed)
	}

	return ctx.JSON(http.StatusOK, templates)
}

func (c *DonationController) CreateRedirectFlow(ctx echo.Context) error {
	req, err := types.NewCreateRedirectFlowRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, msgMissingFields)
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, msgMissingFields)
	}

	flow, err := c.donationService.CreateRedirectFlow(
		ctx.Request().Context(),
		req.Description,
		req.SuccessRedirectURL,
		req.SessionToken,
	)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			return c.writeError(ctx, http.StatusBadRequest, msgMissingFields)
		}
		c.logger.WithError(err).Error("Create redirect flow failed")
		return c.writeError(ctx, http.StatusInternalServerError, msgRedirectFlowFailed)
	}

	return ctx.JSON(http.StatusOK, mapper.RedirectFlowToResponse(flow))
}

func (c *DonationController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}
