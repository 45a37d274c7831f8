package controller

import (
	"errors"
	"net/http"

	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/factory"
	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/service"
	"github.com/discoverislamwebvercel-alt/discover-islam-sub000/app/types"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const (
	msgUnknownEnquiry = "Unknown enquiry type"
	msgEnquiryFailed  = "Failed to submit enquiry"
)

type EnquiryController struct {
	enquiryService *service.EnquiryService
	logger         logrus.FieldLogger
}

func NewEnquiryController(enquiryService *service.EnquiryService) *EnquiryController {
	return &EnquiryController{
		enquiryService: enquiryService,
		logger:         factory.NewModuleLogger("enquiries-controller"),
	}
}

func (c *EnquiryController) SubmitEnquiry(ctx echo.Context) error {
	req, err := types.NewEnquiryRequestFromContext(ctx)
	if err != nil {
		return c.writeError(ctx, http.StatusBadRequest, msgMissingFields)
	}
	if err := req.Validate(); err != nil {
		return c.writeError(ctx, http.StatusBadRequest, msgMissingFields)
	}

	if err := c.enquiryService.Submit(ctx.Request().Context(), req.Kind, req.Fields); err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownForm):
			return c.writeError(ctx, http.StatusNotFound, msgUnknownEnquiry)
		case errors.Is(err, service.ErrInvalidRequest):
			return c.writeError(ctx, http.StatusBadRequest, msgMissingFields)
		default:
			c.logger.WithError(err).Error("Submit enquiry failed")
			return c.writeError(ctx, http.StatusInternalServerError, msgEnquiryFailed)
		}
	}

	return ctx.JSON(http.StatusOK, &types.MessageResponse{Message: "Enquiry received"})
}

func (c *EnquiryController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &types.ErrorResponse{Error: message})
}
